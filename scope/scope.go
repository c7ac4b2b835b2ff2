package scope

// Scope is an explicit stack of guards torn down together.
//
// Go's defer already runs deferred calls in reverse order at function
// exit; Scope makes the same stacked teardown available where the
// scope boundary is not a function boundary, and keeps the pending
// stack observable via Len.
//
//	s := scope.NewScope()
//	s.Defer(func() { f.Close() })
//	s.Defer(func() { tx.Rollback() }) // fires before f.Close
//	defer s.Close()
//
// A Scope is owned by exactly one goroutine and is not safe for
// concurrent use.
type Scope struct {
	guards []*Guard
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{}
}

// Defer constructs a guard around action and pushes it onto the
// scope.
//
// The guard is returned for observation (e.g. Armed in tests);
// ownership stays with the scope, which fires it during Close.
func (s *Scope) Defer(action func()) *Guard {
	g := New(action)
	s.Add(g)
	return g
}

// Add pushes an existing guard onto the scope. Nil guards are
// ignored.
func (s *Scope) Add(g *Guard) {
	if s == nil || g == nil {
		return
	}
	s.guards = append(s.guards, g)
}

// Len returns the number of still-armed guards on the stack.
func (s *Scope) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, g := range s.guards {
		if g.Armed() {
			n++
		}
	}
	return n
}

// Close fires every stacked guard in reverse push order and empties
// the stack, so a second Close is a no-op.
//
// Each guard fires at most once, here or anywhere: a guard already
// fired individually is skipped as a no-op. A panic from an action
// propagates out of Close, but only after the guards pushed before
// it have fired, the same order Go's own defer gives a panicking
// function.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	guards := s.guards
	s.guards = nil
	// Registering the fires as real defers keeps reverse order and
	// during-unwind execution without reimplementing either.
	for _, g := range guards {
		defer g.Fire()
	}
}
