package scope

import "runtime"

// Keep marks v as reachable at the point of the call.
//
// Deferred, it extends v's liveness to the end of the enclosing
// function:
//
//	defer scope.Keep(v)
//
// Without the pin, the collector may treat v as dead before the scope
// ends and run its finalizers or cleanups early. Keep pins
// reachability only; it has no teardown behavior of its own and does
// not provide deterministic destruction.
func Keep(v any) {
	runtime.KeepAlive(v)
}
