// Package factory implements an abstract factory over two related product
// kinds (A and B) and the product lines that produce them.
//
// A Factory hides which product line a client works with:
//
//   - SuperFactory produces "ASuper" / "BSuper"
//   - NormalFactory produces "ANormal" / "BNormal"
//   - LineFactory produces products for any other Line
//
// Run is the client side: it takes any Factory, creates both products and logs
// them without knowing which line it was given. New lines are added by
// registering a Factory in a Registry; Run and its callers do not change.
//
// Import
//
//	"github.com/sghaida/creational/factory"
package factory
