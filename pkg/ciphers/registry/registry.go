package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/logging"
)

// ErrUnknownOperation is returned when a name is not registered.
var ErrUnknownOperation = errors.New("registry: unknown operation")

// ErrNotReversible is returned when a pipeline step has no inverse.
var ErrNotReversible = errors.New("registry: operation is not reversible")

// Registry maps operation names to operations. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	ops    map[string]Operation
	logger logging.Logger
	keyIDs *logging.Fingerprinter
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used by Execute and pipelines run against the
// registry.
func WithLogger(l logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		ops:    make(map[string]Operation),
		logger: logging.Discard(),
		keyIDs: logging.NewFingerprinter(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefault returns a registry holding the Builtin operations.
func NewDefault(opts ...Option) *Registry {
	r := New(opts...)
	for _, op := range Builtin() {
		// Builtin names are unique, so Register cannot fail here.
		_ = r.Register(op)
	}
	return r
}

// Register adds op to the registry.
func (r *Registry) Register(op Operation) error {
	if op == nil {
		return fmt.Errorf("cannot register nil operation")
	}

	name := op.Name()
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("operation %s is already registered", name)
	}

	r.ops[name] = op
	return nil
}

// Get retrieves an operation by name.
func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, exists := r.ops[name]
	return op, exists
}

// List returns all registered operations sorted by name.
func (r *Registry) List() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}
	sortByName(ops)
	return ops
}

// ListByType returns operations of the given type sorted by name.
func (r *Registry) ListByType(typ OperationType) []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0)
	for _, op := range r.ops {
		if op.Type() == typ {
			ops = append(ops, op)
		}
	}
	sortByName(ops)
	return ops
}

// Unregister removes an operation from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ops, name)
}

// Execute runs the named operation on input. Debug records carry a key_id
// that is stable for this registry only.
func (r *Registry) Execute(ctx context.Context, name, input, key string) (string, error) {
	op, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	out, err := op.Execute(ctx, input, key)
	if err != nil {
		r.logger.Warn(ctx, "operation rejected", "operation", name, "error", err)
		return "", err
	}
	r.logger.Debug(ctx, "operation applied",
		"operation", name,
		logging.Redacted("key"),
		r.keyIDs.Attr("key_id", key),
		"input_len", len(input),
		"output_len", len(out),
	)
	return out, nil
}

func sortByName(ops []Operation) {
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name() < ops[j].Name()
	})
}
