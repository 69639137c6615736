package protocol

// Checksum returns the byte c such that sum(b) + c ≡ 0 (mod 256).
// b is the frame without its trailing checksum slot.
func Checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	// byte arithmetic wraps, so a zero sum yields 0 rather than 256.
	return -sum
}

// VerifyChecksum checks that the last byte of frame is the checksum of the
// bytes before it.
func VerifyChecksum(frame []byte) error {
	if len(frame) == 0 {
		return ErrInvalidLength
	}
	want := Checksum(frame[:len(frame)-1])
	got := frame[len(frame)-1]
	if want != got {
		return &ChecksumError{Want: want, Got: got}
	}
	return nil
}
