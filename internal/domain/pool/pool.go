// Package pool provides a generic registry that reuses short-lived instances
// (projectiles, impact effects) instead of allocating one per use.
//
// Entries are either idle or owned by exactly one caller. Acquire hands out
// an idle entry or constructs a new one; Release marks it idle again. The
// pool only grows unless a MaxSize is set, in which case Acquire reports
// ErrExhausted rather than blocking or aliasing an active entry.
package pool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// ErrExhausted is returned by Acquire when a capped pool has no idle entry
	ErrExhausted = errors.New("pool exhausted")
	// ErrNotActive is returned by Release for an instance that is already idle
	ErrNotActive = errors.New("instance is not active")
	// ErrUnknownInstance is returned by Release for an instance the pool never created
	ErrUnknownInstance = errors.New("instance does not belong to pool")
)

// Options configures a pool
type Options[T comparable] struct {
	Name     string
	MaxSize  int     // 0 = unbounded
	Prealloc int     // idle instances created up front
	Reset    func(T) // called on Release, before the entry becomes idle
	Logger   *log.Logger
}

type entry[T comparable] struct {
	item   T
	active bool
}

// Pool is a reuse registry for instances of T.
// T must be comparable so Release can locate the owning entry; pointer types
// are the normal choice.
type Pool[T comparable] struct {
	mu      sync.Mutex
	newFn   func() T
	opts    Options[T]
	logger  *log.Logger
	entries []entry[T]
	index   map[T]int
	free    []int // idle entry indices, LIFO
}

// New creates a pool that constructs instances with newFn
func New[T comparable](newFn func() T, opts Options[T]) *Pool[T] {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Name == "" {
		opts.Name = "pool"
	}

	p := &Pool[T]{
		newFn:  newFn,
		opts:   opts,
		logger: logger.WithPrefix(opts.Name),
		index:  make(map[T]int),
	}

	n := opts.Prealloc
	if opts.MaxSize > 0 && n > opts.MaxSize {
		n = opts.MaxSize
	}
	for i := 0; i < n; i++ {
		p.add(false)
	}
	// Hand out preallocated entries in creation order
	for i, j := 0, len(p.free)-1; i < j; i, j = i+1, j-1 {
		p.free[i], p.free[j] = p.free[j], p.free[i]
	}

	return p
}

// add registers a new instance. Caller holds the lock.
func (p *Pool[T]) add(active bool) T {
	item := p.newFn()
	idx := len(p.entries)
	p.entries = append(p.entries, entry[T]{item: item, active: active})
	p.index[item] = idx
	if !active {
		p.free = append(p.free, idx)
	}
	return item
}

// Acquire returns an idle instance marked active, constructing one if none
// is idle. Never returns an instance that is already active.
func (p *Pool[T]) Acquire() (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.entries[idx].active = true
		return p.entries[idx].item, nil
	}

	if p.opts.MaxSize > 0 && len(p.entries) >= p.opts.MaxSize {
		var zero T
		return zero, fmt.Errorf("%s: %w (size %d)", p.opts.Name, ErrExhausted, p.opts.MaxSize)
	}

	item := p.add(true)
	p.logger.Debug("grew", "size", len(p.entries))
	return item, nil
}

// Release marks an active instance idle. Releasing an idle or foreign
// instance is a caller error; it is reported and leaves the pool unchanged.
func (p *Pool[T]) Release(item T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.index[item]
	if !ok {
		p.logger.Warn("release of foreign instance")
		return fmt.Errorf("%s: %w", p.opts.Name, ErrUnknownInstance)
	}
	if !p.entries[idx].active {
		p.logger.Warn("double release", "index", idx)
		return fmt.Errorf("%s: %w (index %d)", p.opts.Name, ErrNotActive, idx)
	}

	if p.opts.Reset != nil {
		p.opts.Reset(item)
	}
	p.entries[idx].active = false
	p.free = append(p.free, idx)
	return nil
}

// IsActive reports whether item is currently handed out
func (p *Pool[T]) IsActive(item T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx, ok := p.index[item]
	return ok && p.entries[idx].active
}

// Len returns the total number of instances ever created
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// ActiveCount returns the number of instances currently handed out
func (p *Pool[T]) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries) - len(p.free)
}

// Active returns a snapshot of the active instances in creation order.
// The pool lock is not held while the caller uses the result.
func (p *Pool[T]) Active() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]T, 0, len(p.entries)-len(p.free))
	for _, e := range p.entries {
		if e.active {
			out = append(out, e.item)
		}
	}
	return out
}
