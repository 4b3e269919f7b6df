package builder

// Step is one build operation applied to a Builder.
type Step func(Builder)

// Steps for each part.
var (
	StepA Step = func(b Builder) { b.BuildA() }
	StepB Step = func(b Builder) { b.BuildB() }
	StepC Step = func(b Builder) { b.BuildC() }
)

// StepFor returns the step that builds p, or nil for an unknown part.
func StepFor(p Part) Step {
	switch p {
	case PartA:
		return StepA
	case PartB:
		return StepB
	case PartC:
		return StepC
	default:
		return nil
	}
}

// Assemble applies steps to b in order and returns b.Result().
// Nil steps are skipped. With no steps it returns an App with every part unset.
func Assemble(b Builder, steps ...Step) *App {
	for _, step := range steps {
		if step == nil {
			continue
		}
		step(b)
	}
	return b.Result()
}

// BuildAll builds every part and finalizes.
func BuildAll(b Builder) *App {
	return Assemble(b, StepA, StepB, StepC)
}

// BuildWithoutC builds A and B only; C is left unset.
func BuildWithoutC(b Builder) *App {
	return Assemble(b, StepA, StepB)
}
