package transform

// DefaultMask is the constant XORed against every retained byte.
const DefaultMask byte = 0xAA

// maskTransform XORs every byte against a fixed mask. It holds no state
// beyond the mask itself. Payloads are []byte, so values are confined to
// 8 bits by construction; there is no out-of-range case to handle.
type maskTransform struct {
	mask byte
}

// NewMaskTransform creates an elementwise XOR transform. The transform
// is its own inverse: Reverse is identical to Apply.
func NewMaskTransform(mask byte) Transform {
	return &maskTransform{mask: mask}
}

func (m *maskTransform) Apply(data []byte) ([]byte, error) {
	output := make([]byte, len(data))
	for i, value := range data {
		output[i] = value ^ m.mask
	}
	return output, nil
}

func (m *maskTransform) Reverse(data []byte) ([]byte, error) {
	return m.Apply(data)
}
