// Package handler executes request packets and drives batch processing of
// request files into result files.
package handler

import "github.com/1ureka/pktfixture/internal/protocol"

// Handle computes the response for req. Results wrap modulo 65536 in both
// directions. An opcode outside {add, subtract} yields *protocol.InvalidOpcodeError.
func Handle(req protocol.RequestPacket) (protocol.ResponsePacket, error) {
	var result uint16
	switch req.Opcode() {
	case protocol.OpAdd:
		result = req.Num1() + req.Num2()
	case protocol.OpSubtract:
		result = req.Num1() - req.Num2()
	default:
		return protocol.ResponsePacket{}, &protocol.InvalidOpcodeError{Opcode: req.Opcode()}
	}
	return protocol.NewResponse(result), nil
}

// HandleHex decodes one request line, handles it and returns the response line.
func HandleHex(line string) (string, error) {
	req, err := protocol.DecodeRequestHex(line)
	if err != nil {
		return "", err
	}
	resp, err := Handle(req)
	if err != nil {
		return "", err
	}
	return protocol.EncodeResponseHex(resp), nil
}
