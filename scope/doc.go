// Package scope provides one-shot scope-exit guards for Go.
//
// This package intentionally supports two approaches:
//
//   - Guard — a single deferred action wired with defer at the call
//     site. Construction never runs the action; Fire runs it exactly
//     once at scope exit. Best when the scope boundary is a function
//     boundary and you want the teardown visible next to the setup.
//
//   - Scope — an explicit stack of guards torn down together by
//     Close, in reverse push order. Best when the scope boundary is
//     not a function boundary (loop bodies, builders that hand a
//     teardown to their caller) or when you want to observe the
//     pending teardown via Len.
//
// Both approaches share the same guard semantics: the action runs at
// most once, a second teardown attempt is a no-op, and a panic from
// the action propagates to the teardown caller unsuppressed.
//
// There is deliberately no cancel/disarm operation. The only way to
// prevent a guard's action from running is to never construct it.
//
// Quick guidance
//
// Use Guard when you want:
//   - Teardown visible at the acquisition site
//   - Ordinary defer semantics (reverse order, runs during unwind)
//
// Use Scope when you want:
//   - A teardown stack that outlives the function that built it
//   - Introspection of how many actions are still pending
//
// Keep is a separate, teardown-free helper: it only pins a value as
// reachable, extending its liveness to the end of the enclosing
// function when deferred.
//
// Import
//
//	 "github.com/sghaida/scopekit/scope"
package scope
