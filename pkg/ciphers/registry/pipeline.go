package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/logging"
)

// Step is one operation in a Pipeline with the key it runs under.
type Step struct {
	Operation string `json:"operation" yaml:"operation"`
	Key       string `json:"key" yaml:"key"`
}

// Pipeline chains operations, feeding each step's output to the next.
type Pipeline struct {
	Steps []Step `json:"steps" yaml:"steps"`
}

// Validate checks that every step names a registered operation. Key checks
// that depend on the text (Vernam) are left to Execute.
func (p *Pipeline) Validate(r *Registry) error {
	if len(p.Steps) == 0 {
		return errors.New("pipeline has no steps")
	}

	var errs []error
	for i, step := range p.Steps {
		op, ok := r.Get(step.Operation)
		if !ok {
			errs = append(errs, fmt.Errorf("step %d: %w: %s", i, ErrUnknownOperation, step.Operation))
			continue
		}
		if op.Cipher() == Vernam {
			continue
		}
		if err := op.ValidateKey("", step.Key); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i, step.Operation, err))
		}
	}
	return errors.Join(errs...)
}

// Execute runs the pipeline on input. It stops at the first failing step and
// checks ctx between steps.
func (p *Pipeline) Execute(ctx context.Context, r *Registry, input string) (string, error) {
	result := input
	for i, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("pipeline interrupted before step %d: %w", i, err)
		}

		op, ok := r.Get(step.Operation)
		if !ok {
			return "", fmt.Errorf("unknown operation at step %d: %w: %s", i, ErrUnknownOperation, step.Operation)
		}

		out, err := op.Execute(ctx, result, step.Key)
		if err != nil {
			return "", fmt.Errorf("operation %s failed at step %d: %w", step.Operation, i, err)
		}
		r.logger.Debug(ctx, "pipeline step applied",
			"step", i,
			"operation", step.Operation,
			logging.Redacted("key"),
		)
		result = out
	}
	return result, nil
}

// Reverse returns the inverse pipeline: steps in reverse order, each replaced
// by its inverse operation under the same key.
//
// Ciphers that drop characters (mono-alphabetic, Vernam) or fold case make the
// reverse pipeline recover the normalized text, not the original.
func (p *Pipeline) Reverse(r *Registry) (*Pipeline, error) {
	reversed := &Pipeline{Steps: make([]Step, len(p.Steps))}
	for i, step := range p.Steps {
		op, ok := r.Get(step.Operation)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, step.Operation)
		}
		rev, ok := op.Reverse()
		if !ok {
			return nil, fmt.Errorf("step %d: %w: %s", i, ErrNotReversible, step.Operation)
		}
		reversed.Steps[len(p.Steps)-1-i] = Step{
			Operation: rev.Name(),
			Key:       step.Key,
		}
	}
	return reversed, nil
}
