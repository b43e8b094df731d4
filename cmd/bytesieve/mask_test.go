package main

import (
	"bytes"
	"testing"

	"bytesieve/pkg/buffers"
)

// Blockwise streaming must produce the same output as a single pass, as
// long as the block size is a multiple of the sieve chunk size.
func TestProcessBlocksMatchesWhole(t *testing.T) {
	p, err := buildProcessor(false)
	if err != nil {
		t.Fatalf("buildProcessor error: %v", err)
	}

	// Spans several blocks, with zero runs crossing block boundaries.
	data := make([]byte, buffers.StreamBlockSize*2+10)
	for i := range data {
		if i%7 == 0 {
			data[i] = byte(i)
		}
	}
	copy(data[buffers.StreamBlockSize-8:], make([]byte, 16))

	var whole bytes.Buffer
	if err := processWhole(bytes.NewReader(data), &whole, p, false); err != nil {
		t.Fatalf("processWhole error: %v", err)
	}

	var streamed bytes.Buffer
	if err := processBlocks(bytes.NewReader(data), &streamed, p, false); err != nil {
		t.Fatalf("processBlocks error: %v", err)
	}

	if !bytes.Equal(whole.Bytes(), streamed.Bytes()) {
		t.Fatalf("streamed output differs from whole-payload output")
	}
}

func TestMaskThenUnmaskRestoresSurvivors(t *testing.T) {
	p, err := buildProcessor(true)
	if err != nil {
		t.Fatalf("buildProcessor error: %v", err)
	}

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	var maskedOut bytes.Buffer
	if err := processWhole(bytes.NewReader(data), &maskedOut, p, false); err != nil {
		t.Fatalf("mask pass error: %v", err)
	}

	var restored bytes.Buffer
	if err := processWhole(bytes.NewReader(maskedOut.Bytes()), &restored, p, true); err != nil {
		t.Fatalf("unmask pass error: %v", err)
	}

	if !bytes.Equal(restored.Bytes(), data) {
		t.Fatalf("round trip failed: got %v, want %v", restored.Bytes(), data)
	}
}
