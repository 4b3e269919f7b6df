package factory

import "strings"

// Kind is the label carried by a Product: a root letter followed by zero or
// one line suffix, e.g. "A", "ASuper", "BNormal".
type Kind string

// Root product kinds.
const (
	RootA Kind = "A"
	RootB Kind = "B"
)

// Line is the suffix a product line appends to a root kind.
type Line string

// Built-in product lines.
const (
	LineSuper  Line = "Super"
	LineNormal Line = "Normal"
)

// Product is an immutable value produced by a Factory.
type Product struct {
	kind Kind
}

// NewProduct returns a product of the given root, suffixed with line.
// An empty line yields the plain root product.
func NewProduct(root Kind, line Line) Product {
	return Product{kind: root + Kind(line)}
}

// Kind returns the product's label.
func (p Product) Kind() Kind { return p.kind }

// Root returns the root letter of the product's label.
func (p Product) Root() Kind {
	if p.kind == "" {
		return ""
	}
	return p.kind[:1]
}

// Line returns the suffix after the root letter, or "" for a plain root product.
func (p Product) Line() Line {
	if len(p.kind) <= 1 {
		return ""
	}
	return Line(strings.TrimPrefix(string(p.kind), string(p.Root())))
}

// String implements fmt.Stringer.
func (p Product) String() string { return "Product{kind: " + string(p.kind) + "}" }
