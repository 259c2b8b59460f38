//go:build !versioned_debug

package versioned

// debugChecks gates the internal derivation postcondition. Off by default so
// the check folds away in ordinary builds.
const debugChecks = false
