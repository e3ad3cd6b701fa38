package ports

import "context"

// EmitFunc receives one decoded text fragment. A non-nil return means the
// consumer is gone and streaming should stop.
type EmitFunc func(fragment string) error

// InterpretationStreamer drives a single streaming generation call and
// pushes text fragments to emit in arrival order. Backend failures of any
// kind are absorbed: the implementation emits one canned fallback sentence
// and returns nil. The returned error only ever reflects a failed emit.
type InterpretationStreamer interface {
	StreamInterpretation(ctx context.Context, system, prompt string, emit EmitFunc) error
}
