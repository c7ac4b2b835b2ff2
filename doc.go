// Package scopekit provides small scope-teardown helpers for Go.
//
// This repository collects a few tiny, explicit idioms around "do
// something at the end of the current scope":
//
//   - scope.Guard: a one-shot deferred action, armed at construction
//     and fired exactly once at scope exit (wired with defer)
//   - scope.Scope: an explicit stack of guards torn down together in
//     reverse order, for scope boundaries that are not function
//     boundaries
//   - scope.Keep: a reachability pin that extends a value's liveness
//     to the end of the enclosing function
//   - text.Join: newline-joining for writing multi-line literals as a
//     list of lines
//
// The goal is to keep teardown explicit and visible at the call site,
// avoid any registration magic, and keep the surface area
// intentionally small.
//
// Package scopekit See subpackages:
//   - scope: guards, scopes and the keep helper
//   - text: the line-joining helper
//   - examples/*: runnable examples for each approach
package scopekit
