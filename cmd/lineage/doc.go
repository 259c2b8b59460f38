// Command lineage replays a derivation script against a versioned container
// and reports every version transition.
//
// It exists as a worked, inspectable demonstration of the container's
// bookkeeping: each script step derives a new container from the previous
// one, and the tool prints the payload before/after together with the result
// of the successor and same-version predicates between source and result. On
// a correct replay the direct-successor check is true at every step and the
// same-version check is false.
//
// Usage:
//
//	lineage -start 5 -steps add:1,advance,mul:2
//	lineage -start 5 -steps add:1,advance,mul:2 -json
//
// Steps:
//   - add:K   clone-derive with payload+K
//   - mul:K   clone-derive with payload*K
//   - set:K   clone-derive with payload replaced by K
//   - advance re-stamp: same payload, version+1
//
// Exit codes: 0 on success, 2 on usage errors (unknown step, malformed
// argument, missing -steps).
package main
