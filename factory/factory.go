package factory

import (
	"io"
	"log"
)

// Factory creates one product of each kind for a single product line.
type Factory interface {
	CreateProductA() Product
	CreateProductB() Product
}

// SuperFactory produces products of the Super line.
type SuperFactory struct{}

// CreateProductA returns an "ASuper" product.
func (SuperFactory) CreateProductA() Product { return NewProduct(RootA, LineSuper) }

// CreateProductB returns a "BSuper" product.
func (SuperFactory) CreateProductB() Product { return NewProduct(RootB, LineSuper) }

// NormalFactory produces products of the Normal line.
type NormalFactory struct{}

// CreateProductA returns an "ANormal" product.
func (NormalFactory) CreateProductA() Product { return NewProduct(RootA, LineNormal) }

// CreateProductB returns a "BNormal" product.
func (NormalFactory) CreateProductB() Product { return NewProduct(RootB, LineNormal) }

// LineFactory produces products for an arbitrary line.
// The zero value produces plain "A" / "B" products.
type LineFactory struct {
	Line Line
}

// CreateProductA returns product A suffixed with f.Line.
func (f LineFactory) CreateProductA() Product { return NewProduct(RootA, f.Line) }

// CreateProductB returns product B suffixed with f.Line.
func (f LineFactory) CreateProductB() Product { return NewProduct(RootB, f.Line) }

var (
	_ Factory = SuperFactory{}
	_ Factory = NormalFactory{}
	_ Factory = LineFactory{}
)

// Run creates product A and product B with f and logs each on its own line.
//
// A nil logger discards output. Run returns both products so callers can
// inspect what was logged.
func Run(logger *log.Logger, f Factory) (a, b Product) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	a = f.CreateProductA()
	b = f.CreateProductB()
	logger.Println(a)
	logger.Println(b)
	return a, b
}
