package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrDecode           = errors.New("protocol: decode failed")
	ErrInvalidLength    = errors.New("protocol: invalid length")
	ErrInvalidHex       = errors.New("protocol: invalid hex")
	ErrInvalidHeader    = errors.New("protocol: invalid header")
	ErrInvalidOpcode    = errors.New("protocol: invalid opcode")
	ErrChecksumMismatch = errors.New("protocol: checksum mismatch")
)

// DecodeError reports a frame that could not be parsed. It matches ErrDecode
// and its cause (ErrInvalidLength, ErrInvalidHex or ErrInvalidHeader).
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("protocol: decode %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}

// InvalidOpcodeError reports a request whose opcode is neither add nor subtract.
type InvalidOpcodeError struct {
	Opcode Opcode
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("protocol: invalid opcode 0x%02X (want 0x00 or 0x01)", uint8(e.Opcode))
}

func (e *InvalidOpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}

// ChecksumError reports a frame whose stored checksum does not match its bytes.
type ChecksumError struct {
	Want byte
	Got  byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("protocol: checksum mismatch: got 0x%02X, want 0x%02X", e.Got, e.Want)
}

func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}
