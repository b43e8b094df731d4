package transform

import (
	"errors"
	"fmt"
)

type PayloadProcessor struct {
	// Pipeline transforms: applied 0..N for outgoing, N..0 for incoming.
	transforms []Transform
}

// NewPayloadProcessor creates a processor with a defined pipeline.
// Requires at least one transform. Use NewNoOpTransform() for an
// explicitly empty pipeline.
func NewPayloadProcessor(pipelineTransforms []Transform) (*PayloadProcessor, error) {
	if len(pipelineTransforms) == 0 {
		return nil, errors.New("payload processor requires at least one transform; use NewNoOpTransform() for an empty pipeline")
	}

	s := make([]Transform, len(pipelineTransforms))
	copy(s, pipelineTransforms)

	return &PayloadProcessor{
		transforms: s,
	}, nil
}

// PrepareOutput applies the pipeline transformations in forward order (0..N).
func (p *PayloadProcessor) PrepareOutput(payload []byte) ([]byte, error) {
	var err error
	currentPayload := payload
	for i, t := range p.transforms {
		currentPayload, err = t.Apply(currentPayload)
		if err != nil {
			return nil, fmt.Errorf("prepare output: transform %d (%T) Apply failed: %w", i, t, err)
		}
	}
	return currentPayload, nil
}

// ParseInput applies the pipeline transformations in reverse order (N..0).
func (p *PayloadProcessor) ParseInput(payload []byte) ([]byte, error) {
	var err error
	currentPayload := payload
	for i := len(p.transforms) - 1; i >= 0; i-- {
		t := p.transforms[i]
		currentPayload, err = t.Reverse(currentPayload)
		if err != nil {
			return nil, fmt.Errorf("parse input: transform %d (%T) Reverse failed: %w", i, t, err)
		}
	}
	return currentPayload, nil
}
