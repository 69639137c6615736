// Package protocol defines the request/response frames of the arithmetic
// fixture protocol and their byte and hex-text encodings.
package protocol

import "fmt"

// Opcode selects the arithmetic operation of a request.
type Opcode uint8

// Opcode constants.
const (
	OpAdd      Opcode = 0x00 // num1 + num2
	OpSubtract Opcode = 0x01 // num1 - num2
)

// Frame sizes: Header(2) + Num1(2) + Num2(2) + Opcode(1) + Checksum(1),
// and Header(2) + Result(2) + Checksum(1).
const (
	RequestSize  = 8
	ResponseSize = 5
)

// Fixed frame headers, big-endian on the wire.
const (
	RequestHeader  uint16 = 0xBACD
	ResponseHeader uint16 = 0xABCD
)

// Valid reports whether op is one of the defined operations.
func (op Opcode) Valid() bool {
	return op == OpAdd || op == OpSubtract
}

func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	default:
		return fmt.Sprintf("opcode(0x%02X)", uint8(op))
	}
}

// RequestPacket is an immutable 8-byte request frame.
//
// Packets built with NewRequest always carry a correct checksum. Packets
// returned by the decoders carry whatever checksum was on the wire; use
// Verify to check it.
type RequestPacket struct {
	num1     uint16
	num2     uint16
	opcode   Opcode
	checksum byte
}

// NewRequest builds a request frame and computes its checksum. The opcode is
// not range-checked here so malformed requests can still be represented.
func NewRequest(num1, num2 uint16, op Opcode) RequestPacket {
	p := RequestPacket{num1: num1, num2: num2, opcode: op}
	b := p.Bytes()
	p.checksum = Checksum(b[:RequestSize-1])
	return p
}

func (p RequestPacket) Num1() uint16   { return p.num1 }
func (p RequestPacket) Num2() uint16   { return p.num2 }
func (p RequestPacket) Opcode() Opcode { return p.opcode }
func (p RequestPacket) Checksum() byte { return p.checksum }
func (p RequestPacket) Header() uint16 { return RequestHeader }
func (p RequestPacket) Bytes() []byte  { return EncodeRequest(p) }
func (p RequestPacket) Verify() error  { return VerifyChecksum(p.Bytes()) }
func (p RequestPacket) String() string { return EncodeRequestHex(p) }

// ResponsePacket is an immutable 5-byte response frame.
type ResponsePacket struct {
	result   uint16
	checksum byte
}

// NewResponse builds a response frame for result and computes its checksum.
func NewResponse(result uint16) ResponsePacket {
	p := ResponsePacket{result: result}
	b := p.Bytes()
	p.checksum = Checksum(b[:ResponseSize-1])
	return p
}

func (p ResponsePacket) Result() uint16 { return p.result }
func (p ResponsePacket) Checksum() byte { return p.checksum }
func (p ResponsePacket) Header() uint16 { return ResponseHeader }
func (p ResponsePacket) Bytes() []byte  { return EncodeResponse(p) }
func (p ResponsePacket) Verify() error  { return VerifyChecksum(p.Bytes()) }
func (p ResponsePacket) String() string { return EncodeResponseHex(p) }
