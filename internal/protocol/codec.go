package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeRequest serializes a RequestPacket into its 8-byte wire form.
func EncodeRequest(p RequestPacket) []byte {
	buf := make([]byte, RequestSize)
	binary.BigEndian.PutUint16(buf[0:2], RequestHeader)
	binary.BigEndian.PutUint16(buf[2:4], p.num1)
	binary.BigEndian.PutUint16(buf[4:6], p.num2)
	buf[6] = byte(p.opcode)
	buf[7] = p.checksum
	return buf
}

// DecodeRequest parses an 8-byte request frame. The checksum is carried over
// as-is and not verified.
func DecodeRequest(data []byte) (RequestPacket, error) {
	if len(data) != RequestSize {
		return RequestPacket{}, decodeErr(data, fmt.Errorf("%w: %d bytes (need %d)", ErrInvalidLength, len(data), RequestSize))
	}
	if h := binary.BigEndian.Uint16(data[0:2]); h != RequestHeader {
		return RequestPacket{}, decodeErr(data, fmt.Errorf("%w: 0x%04X (need 0x%04X)", ErrInvalidHeader, h, RequestHeader))
	}
	return RequestPacket{
		num1:     binary.BigEndian.Uint16(data[2:4]),
		num2:     binary.BigEndian.Uint16(data[4:6]),
		opcode:   Opcode(data[6]),
		checksum: data[7],
	}, nil
}

// EncodeResponse serializes a ResponsePacket into its 5-byte wire form.
func EncodeResponse(p ResponsePacket) []byte {
	buf := make([]byte, ResponseSize)
	binary.BigEndian.PutUint16(buf[0:2], ResponseHeader)
	binary.BigEndian.PutUint16(buf[2:4], p.result)
	buf[4] = p.checksum
	return buf
}

// DecodeResponse parses a 5-byte response frame without verifying its checksum.
func DecodeResponse(data []byte) (ResponsePacket, error) {
	if len(data) != ResponseSize {
		return ResponsePacket{}, decodeErr(data, fmt.Errorf("%w: %d bytes (need %d)", ErrInvalidLength, len(data), ResponseSize))
	}
	if h := binary.BigEndian.Uint16(data[0:2]); h != ResponseHeader {
		return ResponsePacket{}, decodeErr(data, fmt.Errorf("%w: 0x%04X (need 0x%04X)", ErrInvalidHeader, h, ResponseHeader))
	}
	return ResponsePacket{
		result:   binary.BigEndian.Uint16(data[2:4]),
		checksum: data[4],
	}, nil
}

// EncodeRequestHex returns the 16-character uppercase hex form of p.
func EncodeRequestHex(p RequestPacket) string {
	return encodeHex(EncodeRequest(p))
}

// DecodeRequestHex parses one 16-character hex line into a RequestPacket.
func DecodeRequestHex(line string) (RequestPacket, error) {
	data, err := decodeHex(line, RequestSize)
	if err != nil {
		return RequestPacket{}, err
	}
	return DecodeRequest(data)
}

// EncodeResponseHex returns the 10-character uppercase hex form of p.
func EncodeResponseHex(p ResponsePacket) string {
	return encodeHex(EncodeResponse(p))
}

// DecodeResponseHex parses one 10-character hex line into a ResponsePacket.
func DecodeResponseHex(line string) (ResponsePacket, error) {
	data, err := decodeHex(line, ResponseSize)
	if err != nil {
		return ResponsePacket{}, err
	}
	return DecodeResponse(data)
}

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// decodeHex accepts either case; the length is checked before the digits so
// a short line reports ErrInvalidLength rather than a hex error.
func decodeHex(line string, size int) ([]byte, error) {
	if len(line) != 2*size {
		return nil, &DecodeError{
			Input: line,
			Err:   fmt.Errorf("%w: %d hex characters (need %d)", ErrInvalidLength, len(line), 2*size),
		}
	}
	data, err := hex.DecodeString(line)
	if err != nil {
		return nil, &DecodeError{Input: line, Err: fmt.Errorf("%w: %v", ErrInvalidHex, err)}
	}
	return data, nil
}

func decodeErr(data []byte, err error) error {
	return &DecodeError{Input: encodeHex(data), Err: err}
}
