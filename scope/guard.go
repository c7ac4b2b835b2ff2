package scope

// Guard holds a single deferred action and runs it exactly once.
//
// A guard has two states: armed (action present) and fired (action
// absent). The only transition is one-way, taken by Fire, which is
// normally wired to the end of the owning scope:
//
//	g := scope.New(func() { conn.Close() })
//	defer g.Fire()
//
// A guard is exclusively owned by the scope that created it. Nothing
// here is safe for concurrent use; if a guard is handed to another
// goroutine, exactly one owner may fire it.
type Guard struct {
	action func()
}

// New constructs an armed Guard around action.
//
// Construction never invokes the action. A nil action yields a guard
// with nothing to run: its Fire is a no-op and it reports as not
// armed.
func New(action func()) *Guard {
	return &Guard{action: action}
}

// Armed reports whether the guard's action has not yet been taken.
func (g *Guard) Armed() bool {
	return g != nil && g.action != nil
}

// Fire takes the action out of the guard and invokes it.
//
// The action is consumed before it runs, so a second Fire is a no-op
// even when the first invocation panicked. A panic from the action
// propagates to the caller untouched: Fire does not recover, wrap,
// retry, or log it. Teardown panics raised while the scope itself is
// already unwinding follow Go's usual defer-during-panic semantics;
// Fire adds nothing on top.
//
// Fire on a nil or already-fired guard is a no-op.
func (g *Guard) Fire() {
	if g == nil || g.action == nil {
		return
	}
	action := g.action
	g.action = nil
	action()
}

// Defer constructs a guard around action and returns its teardown,
// so a deferred action can be wired in a single statement:
//
//	defer scope.Defer(func() { cleanup() })()
//
// It is functionally identical to New followed by a deferred Fire;
// the guard is owned by the returned func.
func Defer(action func()) func() {
	return New(action).Fire
}
