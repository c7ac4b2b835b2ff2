package scope_test

import (
	"testing"

	"github.com/sghaida/scopekit/scope"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func noop() {}

/*
   Benchmarks
*/

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = scope.New(noop)
	}
}

func BenchmarkNewAndFire(b *testing.B) {
	for i := 0; i < b.N; i++ {
		g := scope.New(noop)
		g.Fire()
	}
}

func BenchmarkDefer(b *testing.B) {
	for i := 0; i < b.N; i++ {
		scope.Defer(noop)()
	}
}

func BenchmarkScope_TwoGuards(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := scope.NewScope()
		s.Defer(noop)
		s.Defer(noop)
		s.Close()
	}
}
