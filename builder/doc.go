// Package builder assembles an App through optional, independent build steps.
//
// A Builder exposes one step per part (BuildA, BuildB, BuildC) and a
// finalizing Result. Steps may be called in any subset and any order; a part
// whose step was never called stays unset, which is a valid result rather
// than an error. Result may be called at any time, including before any step.
//
// Builder has no default method bodies: a concrete builder must implement all
// four operations or it does not satisfy the interface.
package builder
