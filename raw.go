package tifflzw

import "encoding/binary"

// Raw is the identity codec: bands stored without compression pass through
// unchanged. It satisfies the same Decoder and Encoder contracts as Codec,
// so the two are interchangeable behind the shared decode contract.
type Raw struct{}

// Decode implements the Decoder contract.
func (Raw) Decode(data []byte, order binary.ByteOrder) ([]byte, error) {
	return data, nil
}

// Encode implements the Encoder contract.
func (Raw) Encode(data []byte, order binary.ByteOrder) ([]byte, error) {
	return data, nil
}
