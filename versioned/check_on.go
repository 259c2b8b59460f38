//go:build versioned_debug

package versioned

// debugChecks gates the internal derivation postcondition. Build with
// -tags versioned_debug to turn a derivation bookkeeping bug into a panic
// instead of silent version drift.
const debugChecks = true
