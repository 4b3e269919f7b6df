// Package creational collects small, explicit object-construction patterns for Go.
//
// Two independent approaches are provided:
//
//   - factory: an abstract factory. A Factory creates one product of each kind
//     (A, B) for a product line; clients use any Factory without knowing its line.
//     New lines register in a factory.Registry.
//   - builder: a step builder. A Builder sets parts of an App through optional,
//     order-free steps and hands back the accumulator from Result.
//
// Both avoid inheritance chains and reflection: every variant is a flat type that
// satisfies an interface, and wiring happens explicitly at the call site.
//
// See subpackages:
//   - factory, builder: library packages
//   - cmd/creational: runnable demonstration of both
package creational
