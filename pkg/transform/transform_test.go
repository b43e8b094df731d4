package transform

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func masked(values ...byte) []byte {
	out := make([]byte, len(values))
	for i, v := range values {
		out[i] = v ^ DefaultMask
	}
	return out
}

func TestProcessDataEmpty(t *testing.T) {
	got, err := ProcessData([]byte{})
	if err != nil {
		t.Fatalf("ProcessData error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ProcessData(empty) = %v, want empty", got)
	}
}

func TestProcessDataDropsAllZeroChunk(t *testing.T) {
	got, err := ProcessData([]byte{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("ProcessData error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("all-zero chunk should be dropped, got %v", got)
	}
}

func TestProcessDataKeepsPartialZeroChunk(t *testing.T) {
	got, err := ProcessData([]byte{0, 0, 0, 1})
	if err != nil {
		t.Fatalf("ProcessData error: %v", err)
	}
	want := masked(0, 0, 0, 1)
	if !bytes.Equal(got, want) {
		t.Errorf("partially-zero chunk must be kept whole: got %v, want %v", got, want)
	}
}

func TestProcessDataDropsMiddleChunk(t *testing.T) {
	got, err := ProcessData([]byte{1, 2, 3, 4, 0, 0, 0, 0, 5, 6})
	if err != nil {
		t.Fatalf("ProcessData error: %v", err)
	}
	want := masked(1, 2, 3, 4, 5, 6)
	if !bytes.Equal(got, want) {
		t.Errorf("only the middle all-zero chunk should drop: got %v, want %v", got, want)
	}
}

func TestMaskIsSelfInverse(t *testing.T) {
	m := NewMaskTransform(DefaultMask)
	data := []byte{0x00, 0x01, 0xAA, 0xFF, 0x55}
	once, err := m.Apply(data)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	twice, err := m.Reverse(once)
	if err != nil {
		t.Fatalf("Reverse error: %v", err)
	}
	if !bytes.Equal(twice, data) {
		t.Errorf("mask applied twice should restore input: got %v, want %v", twice, data)
	}
}

func TestSieveShortFinalChunk(t *testing.T) {
	sieve, err := NewZeroChunkSieve(4)
	if err != nil {
		t.Fatalf("NewZeroChunkSieve error: %v", err)
	}
	// Final short chunk [0 0] is all zero and must drop too.
	got, err := sieve.Apply([]byte{9, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("sieve Apply error: %v", err)
	}
	if !bytes.Equal(got, []byte{9, 0, 0, 0}) {
		t.Errorf("sieve = %v, want [9 0 0 0]", got)
	}
}

func TestSieveRejectsBadChunkSize(t *testing.T) {
	if _, err := NewZeroChunkSieve(0); err == nil {
		t.Error("chunk size 0 should be rejected")
	}
}

func TestPayloadProcessorRequiresTransform(t *testing.T) {
	if _, err := NewPayloadProcessor(nil); err == nil {
		t.Error("NewPayloadProcessor(nil) should fail")
	}
}

func TestNoOpTransform(t *testing.T) {
	n := NewNoOpTransform()
	data := []byte{1, 2, 3}
	out, err := n.Apply(data)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("noop Apply = %v, %v", out, err)
	}
	out, err = n.Reverse(data)
	if err != nil || !bytes.Equal(out, data) {
		t.Errorf("noop Reverse = %v, %v", out, err)
	}
}

func TestZstdRoundTripThroughPipeline(t *testing.T) {
	zt, err := NewZstdTransform(zstd.SpeedFastest)
	if err != nil {
		t.Fatalf("NewZstdTransform error: %v", err)
	}
	p, err := NewPayloadProcessor([]Transform{NewMaskTransform(DefaultMask), zt})
	if err != nil {
		t.Fatalf("NewPayloadProcessor error: %v", err)
	}
	data := bytes.Repeat([]byte("payload data for the round trip "), 32)
	out, err := p.PrepareOutput(data)
	if err != nil {
		t.Fatalf("PrepareOutput error: %v", err)
	}
	back, err := p.ParseInput(out)
	if err != nil {
		t.Fatalf("ParseInput error: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("mask+zstd round trip failed")
	}
}

func TestDataProcessorReverseUndoesMaskOnly(t *testing.T) {
	p, err := NewDataProcessor()
	if err != nil {
		t.Fatalf("NewDataProcessor error: %v", err)
	}
	// No all-zero chunks, so the full round trip restores the input.
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := p.PrepareOutput(data)
	if err != nil {
		t.Fatalf("PrepareOutput error: %v", err)
	}
	back, err := p.ParseInput(out)
	if err != nil {
		t.Fatalf("ParseInput error: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Errorf("round trip without zero chunks failed: got %v, want %v", back, data)
	}
}
