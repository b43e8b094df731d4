package transform

import "fmt"

// DefaultChunkSize is the partition size used by the zero-chunk sieve.
const DefaultChunkSize = 4

// zeroChunkSieve partitions the payload into consecutive chunks of a
// fixed size (the final chunk may be shorter) and drops every chunk
// whose bytes are all zero. A partially zero chunk is kept whole.
type zeroChunkSieve struct {
	chunkSize int
}

// NewZeroChunkSieve creates a sieve with the given chunk size.
func NewZeroChunkSieve(chunkSize int) (Transform, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("zero-chunk sieve: chunk size must be positive, got %d", chunkSize)
	}
	return &zeroChunkSieve{chunkSize: chunkSize}, nil
}

func (s *zeroChunkSieve) Apply(data []byte) ([]byte, error) {
	output := make([]byte, 0, len(data))
	for start := 0; start < len(data); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(data) {
			end = len(data)
		}
		if allZero(data[start:end]) {
			continue
		}
		output = append(output, data[start:end]...)
	}
	return output, nil
}

// Reverse is the identity: dropped chunks carry no information that
// would allow reconstructing them.
func (s *zeroChunkSieve) Reverse(data []byte) ([]byte, error) {
	return data, nil
}

func allZero(chunk []byte) bool {
	for _, value := range chunk {
		if value != 0 {
			return false
		}
	}
	return true
}
