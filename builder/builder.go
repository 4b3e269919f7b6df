package builder

import (
	"io"
	"log"
)

// Builder assembles an App one part at a time.
type Builder interface {
	BuildA()
	BuildB()
	BuildC()

	// Result finalizes and returns the accumulator. It may be called at any
	// time and more than once.
	Result() *App
}

// Values of the parts set by SuperBuilder.
const (
	SuperA = "SuperA"
	SuperB = "SuperB"
	SuperC = "SuperC"
)

// completedMsg is logged by SuperBuilder.Result.
const completedMsg = "build complete"

// SuperBuilder builds an App whose parts carry the Super values.
type SuperBuilder struct {
	app    *App
	logger *log.Logger
}

var _ Builder = (*SuperBuilder)(nil)

// NewSuperBuilder returns a builder with every part unset.
// Completion notices go to logger; a nil logger discards them.
func NewSuperBuilder(logger *log.Logger) *SuperBuilder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SuperBuilder{app: &App{}, logger: logger}
}

// BuildA sets part A to "SuperA".
func (b *SuperBuilder) BuildA() { b.app.set(PartA, SuperA) }

// BuildB sets part B to "SuperB".
func (b *SuperBuilder) BuildB() { b.app.set(PartB, SuperB) }

// BuildC sets part C to "SuperC".
func (b *SuperBuilder) BuildC() { b.app.set(PartC, SuperC) }

// Result logs a completion notice and returns the builder's own accumulator.
// Later build steps keep mutating the same App.
func (b *SuperBuilder) Result() *App {
	b.logger.Println(completedMsg)
	return b.app
}
