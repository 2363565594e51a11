// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Options configures buffer creation and variant selection.
type Options struct {
	// Requested capacity: the fixed slot count, or the reserved
	// allocation for a growable buffer.
	capacity int

	// Growable storage instead of a fixed allocation.
	growable bool

	// Hard ceiling for a growable buffer (0 = unlimited).
	limit int
}

// Builder creates buffers with fluent configuration.
//
// The builder is the forgiving construction path: it auto-selects the
// variant and indexing mode from the options, so any positive capacity
// is accepted (non-power-of-two capacities get the [Modulo] mode
// instead of being rejected). Use the direct constructors when the
// concrete type matters.
//
// Example:
//
//	// Fixed buffer, masked indexing (capacity is a power of two)
//	b, err := ring.Build[Event](ring.New(1024))
//
//	// Fixed buffer, modulo indexing (odd capacity)
//	b, err := ring.Build[Event](ring.New(1000))
//
//	// Growable buffer overwriting past 4096 elements
//	b, err := ring.Build[Event](ring.New(64).Growable().Limit(4096))
type Builder struct {
	opts     Options
	limitSet bool
}

// New creates a buffer builder with the given capacity.
//
// Unlike the direct constructors, New never rejects: validation
// happens in [Build], which returns [ErrInvalidCapacity] for a
// capacity no variant can honor.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// Growable selects growable storage: the capacity becomes an initial
// reservation rather than a bound, and zero is a valid reservation.
func (b *Builder) Growable() *Builder {
	b.opts.growable = true
	return b
}

// Limit bounds a growable buffer at n elements; once reached, Push
// overwrites the oldest element exactly like a fixed buffer.
// Limit implies Growable.
func (b *Builder) Limit(n int) *Builder {
	b.opts.growable = true
	b.opts.limit = n
	b.limitSet = true
	return b
}

// Build creates a Buffer[T] with automatic variant selection:
//
//	Growable()            → *Growable[T] (unlimited)
//	Growable() + Limit(n) → *Growable[T] overwriting past n
//	power-of-two capacity → *Fixed[T, Pow2] (masked indexing)
//	other capacity        → *Fixed[T, Modulo]
//
// Returns [ErrInvalidCapacity] for a non-positive fixed capacity, a
// negative growable reservation, or a non-positive limit passed to
// Limit.
//
// For concrete return types, use the direct constructors ([NewFixed],
// [NewFixedModulo], [NewGrowable]) or [BuildGrowable].
func Build[T any](b *Builder) (Buffer[T], error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	opts := b.opts
	switch {
	case opts.growable && opts.limit > 0:
		return newGrowableLimited[T](opts.capacity, opts.limit), nil
	case opts.growable:
		return NewGrowable[T](opts.capacity), nil
	case isPow2(opts.capacity):
		return NewFixed[T](opts.capacity)
	default:
		return NewFixedModulo[T](opts.capacity)
	}
}

// BuildGrowable creates a *Growable[T] from a growable-configured
// builder. Panics if the builder lacks Growable(); returns
// [ErrInvalidCapacity] under the same conditions as [Build].
func BuildGrowable[T any](b *Builder) (*Growable[T], error) {
	if !b.opts.growable {
		panic("ring: BuildGrowable requires Growable()")
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	if b.opts.limit > 0 {
		return newGrowableLimited[T](b.opts.capacity, b.opts.limit), nil
	}
	return NewGrowable[T](b.opts.capacity), nil
}

func (b *Builder) validate() error {
	opts := b.opts
	if opts.growable {
		if opts.capacity < 0 {
			return ErrInvalidCapacity
		}
		// Limit(0) would silently configure an unlimited buffer.
		if b.limitSet && opts.limit < 1 {
			return ErrInvalidCapacity
		}
		return nil
	}
	if opts.capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}
