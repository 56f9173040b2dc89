// Package simdops exposes the SIMD-accelerated vector operations the modem
// relies on. The demodulator's matched filter is a dot product over every
// received symbol, which makes it the hottest loop in a decode; delegating to
// github.com/tphakala/simd keeps that loop vectorized on AVX2/SSE without any
// CGO.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point sample types.
type Float interface {
	float32 | float64
}

// Ops bundles the vector operations for sample type F. Function pointers keep
// the generic call sites type-safe while dispatching to the type-specific
// SIMD kernels.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when both slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Scale:            f64.Scale,
	}
)

// For returns the Ops instance for type F. The type switch happens at
// instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Float64Ops returns the float64 operations for non-generic call sites.
func Float64Ops() *Ops[float64] {
	return &ops64
}
