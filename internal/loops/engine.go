// Package loops builds and caches specialized element-wise procedures.
//
// A procedure is synthesized once per (Kind, rank, parallel) triple for each
// element type and reused for every later call. Ranks up to four get
// explicitly nested loops with strides hoisted into locals; other ranks fall
// back to index enumeration. Parallel procedures split the outermost axis and
// run one task per outer index.
package loops

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/parallel"
	"github.com/born-ml/gentensor/internal/tensor"
)

// Key identifies a cached procedure.
type Key struct {
	Kind     Kind
	Rank     int
	Parallel bool
}

func (k Key) String() string {
	mode := "sequential"
	if k.Parallel {
		mode = "parallel"
	}
	return fmt.Sprintf("%s/rank%d/%s", k.Kind, k.Rank, mode)
}

// Procedure writes op(a, b) into res element-wise. All three tensors must
// have the same shape; the procedure does not check this.
type Procedure[T any, O element.Ops[T]] func(a, b, res *tensor.Tensor[T, O]) error

// Option configures an Engine.
type Option func(*options)

type options struct {
	cfg    parallel.Config
	logger *slog.Logger
}

func defaultOptions() options {
	return options{cfg: parallel.PerItem()}
}

var (
	discard       = slog.New(slog.DiscardHandler)
	defaultLogger atomic.Pointer[slog.Logger]
)

// SetLogger sets the logger of every engine created without WithLogger,
// Shared engines included. nil restores the discarding default.
func SetLogger(l *slog.Logger) {
	defaultLogger.Store(l)
}

// WithConfig sets the worker configuration used by parallel procedures.
func WithConfig(cfg parallel.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLogger sets the logger that records procedure builds at Debug level.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Engine caches procedures for one element type.
// It is safe for concurrent use.
type Engine[T any, O element.Ops[T]] struct {
	opts   options
	mu     sync.RWMutex
	procs  map[Key]Procedure[T, O]
	group  singleflight.Group
	builds atomic.Int64
}

// NewEngine creates an engine with an empty cache.
func NewEngine[T any, O element.Ops[T]](opts ...Option) *Engine[T, O] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[T, O]{
		opts:  o,
		procs: make(map[Key]Procedure[T, O]),
	}
}

var registry sync.Map // reflect.Type -> *Engine[T, O]

// Shared returns the process-wide engine for the element type T with ops O.
// Every caller with the same T and O observes the same cache.
func Shared[T any, O element.Ops[T]]() *Engine[T, O] {
	key := reflect.TypeFor[Engine[T, O]]()
	if e, ok := registry.Load(key); ok {
		return e.(*Engine[T, O])
	}
	e, _ := registry.LoadOrStore(key, NewEngine[T, O]())
	return e.(*Engine[T, O])
}

func (e *Engine[T, O]) logger() *slog.Logger {
	if e.opts.logger != nil {
		return e.opts.logger
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return discard
}

// Builds reports how many procedures this engine has synthesized.
func (e *Engine[T, O]) Builds() int {
	return int(e.builds.Load())
}

// Cached reports whether a procedure for key is already built.
func (e *Engine[T, O]) Cached(key Key) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.procs[key]
	return ok
}

func (e *Engine[T, O]) lookup(key Key) (Procedure[T, O], bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	p, ok := e.procs[key]
	return p, ok
}

// Procedure returns the procedure for key, building it on first use.
// Concurrent first requests for the same key share a single build.
func (e *Engine[T, O]) Procedure(key Key) (Procedure[T, O], error) {
	if p, ok := e.lookup(key); ok {
		return p, nil
	}
	if key.Rank < 0 {
		return nil, fmt.Errorf("loops: rank %d: %w", key.Rank, tensor.ErrInvalidShape)
	}

	v, err, _ := e.group.Do(key.String(), func() (any, error) {
		// Another caller may have finished the build between our lookup
		// and entering the group.
		if p, ok := e.lookup(key); ok {
			return p, nil
		}
		op, err := binary[T, O](key.Kind)
		if err != nil {
			return nil, err
		}
		p := build[T, O](key, op, e.opts.cfg)

		e.mu.Lock()
		e.procs[key] = p
		e.mu.Unlock()

		n := e.builds.Add(1)
		e.logger().Debug("built procedure",
			"kind", key.Kind.String(),
			"rank", key.Rank,
			"parallel", key.Parallel,
			"specialized", key.Rank >= 1 && key.Rank <= maxSpecializedRank,
			"builds", n)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Procedure[T, O]), nil
}

// Apply returns a fresh tensor holding kind(a, b) element-wise.
// Operand shapes are compared before any procedure is fetched or built.
func (e *Engine[T, O]) Apply(kind Kind, a, b *tensor.Tensor[T, O], parallel bool) (*tensor.Tensor[T, O], error) {
	if tensor.Checked && !a.Shape().Equal(b.Shape()) {
		return nil, fmt.Errorf("%s of %v and %v: %w", kind, a.Shape(), b.Shape(), tensor.ErrInvalidShape)
	}
	res, err := tensor.Empty[T, O](a.Shape())
	if err != nil {
		return nil, err
	}
	if err := e.run(kind, a, b, res, parallel); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyInto writes kind(a, b) into res, which must already have the operand
// shape. On error res may hold partial results.
func (e *Engine[T, O]) ApplyInto(kind Kind, a, b, res *tensor.Tensor[T, O], parallel bool) error {
	if tensor.Checked && (!a.Shape().Equal(b.Shape()) || !a.Shape().Equal(res.Shape())) {
		return fmt.Errorf("%s of %v and %v into %v: %w", kind, a.Shape(), b.Shape(), res.Shape(), tensor.ErrInvalidShape)
	}
	return e.run(kind, a, b, res, parallel)
}

func (e *Engine[T, O]) run(kind Kind, a, b, res *tensor.Tensor[T, O], parallel bool) error {
	proc, err := e.Procedure(Key{Kind: kind, Rank: a.Rank(), Parallel: parallel})
	if err != nil {
		return err
	}
	if err := proc(a, b, res); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return nil
}
