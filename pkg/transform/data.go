package transform

// NewDataProcessor builds the standard payload pipeline: a zero-chunk
// sieve over DefaultChunkSize-byte chunks followed by the DefaultMask
// XOR. Dropped chunks are gone for good, so ParseInput on this pipeline
// only undoes the mask.
func NewDataProcessor() (*PayloadProcessor, error) {
	sieve, err := NewZeroChunkSieve(DefaultChunkSize)
	if err != nil {
		return nil, err
	}
	return NewPayloadProcessor([]Transform{sieve, NewMaskTransform(DefaultMask)})
}

// ProcessData runs data through the standard pipeline: partition into
// chunks of 4, drop all-zero chunks, XOR the survivors with 0xAA.
func ProcessData(data []byte) ([]byte, error) {
	p, err := NewDataProcessor()
	if err != nil {
		return nil, err
	}
	return p.PrepareOutput(data)
}
