// Package versioned implements the versioned value container.
//
// A Versioned[T] owns a payload plus a generation counter. Fresh containers
// start at version 0; every derivation yields a container whose version is
// exactly one greater than its source. Callers validate lineage with
// IsDirectSuccessor and IsSameVersion rather than reading the counter, which
// is deliberately not exposed.
//
// Operations split into two ownership flavors:
//
//   - Consuming: Extract, Advance, TransformInPlace. These take the receiver
//     by value; the handle passed in must not be reused afterwards.
//   - Non-consuming: Peek, Replace, TransformClone, TransformCloneFunc and
//     the predicates. The source container stays valid and unchanged.
//
// TransformClone is the primary derivation: it requires the payload to
// support duplication (the Cloner bound) and is the only operation that does.
// Everything else works with any payload type.
package versioned
