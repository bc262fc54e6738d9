//go:build notrace

package trace

import "golang.org/x/exp/constraints"

// Tracing is compiled out. Every entry point is an empty function.

// Enabled reports whether trace support is compiled in.
const Enabled = false

func (s *Sink) Record(_ func(Scope)) {}

func Sprint(_ string, _ func(Scope)) string { return "" }

func (s Scope) Print(_ string) {}

func (s Scope) Printf(_ string, _ ...any) {}

func Int[T constraints.Integer](_ Scope, _ string, _ T) {}

func Uint[T constraints.Unsigned](_ Scope, _ string, _ T) {}

func Hex[T constraints.Unsigned](_ Scope, _ string, _ T) {}

func Ptr(_ Scope, _ string, _ uintptr) {}

func Matrix[T constraints.Unsigned](_ Scope, _ string, _ []T, _, _, _ int) {}
