// Package versioned provides a small generic container that pairs a payload
// with a monotonically increasing version counter.
//
// The container is pure bookkeeping: it knows nothing about what the payload
// means. Its job is to produce new versions correctly and to answer two cheap
// questions about lineage: is B the direct successor of A, and do A and B sit
// at the same point in a lineage. Clone-and-mutate workflows (speculative or
// incremental recomputation, where several derived copies of a value may be in
// flight at once) use these predicates to detect stale copies.
//
// The goal is to keep the surface area intentionally small: a handful of
// derivation operations, two predicates, and nothing else. No persistence, no
// merging of concurrent histories, no locking. Callers that share a container
// across goroutines bring their own synchronization, or fan out read-only via
// the non-consuming clone derivation.
//
// See subpackages:
//   - versioned: the container itself
//   - cmd/lineage: replay a derivation script and inspect version transitions
//   - examples/*: runnable examples for the basic and speculative workflows
package versioned
