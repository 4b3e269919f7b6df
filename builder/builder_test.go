package builder_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/sghaida/creational/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Drivers
// -----------------------------------------------------------------------------

func TestBuildAll_SetsEveryPart(t *testing.T) {
	t.Parallel()

	app := builder.BuildAll(builder.NewSuperBuilder(nil))

	assert.Equal(t, "SuperA", app.A)
	assert.Equal(t, "SuperB", app.B)
	assert.Equal(t, "SuperC", app.C)
	assert.Equal(t, builder.AllParts, app.Parts())
	assert.Equal(t, "SuperA SuperB SuperC", app.String())
}

func TestBuildWithoutC_LeavesCUnset(t *testing.T) {
	t.Parallel()

	app := builder.BuildWithoutC(builder.NewSuperBuilder(nil))

	assert.True(t, app.IsSet(builder.PartA))
	assert.True(t, app.IsSet(builder.PartB))
	assert.False(t, app.IsSet(builder.PartC))

	c, ok := app.Value(builder.PartC)
	assert.False(t, ok)
	assert.Empty(t, c)
	assert.Equal(t, "SuperA SuperB <unset>", app.String())
}

// TestAssemble_AnySubsetAnyOrder verifies exactly the invoked parts are set.
func TestAssemble_AnySubsetAnyOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		steps []builder.Step
		want  []builder.Part
	}{
		{name: "none", steps: nil, want: []builder.Part{}},
		{name: "only C", steps: []builder.Step{builder.StepC}, want: []builder.Part{builder.PartC}},
		{name: "C then A", steps: []builder.Step{builder.StepC, builder.StepA}, want: []builder.Part{builder.PartA, builder.PartC}},
		{name: "B twice", steps: []builder.Step{builder.StepB, builder.StepB}, want: []builder.Part{builder.PartB}},
		{name: "reverse all", steps: []builder.Step{builder.StepC, builder.StepB, builder.StepA}, want: builder.AllParts},
		{name: "nil step skipped", steps: []builder.Step{nil, builder.StepA}, want: []builder.Part{builder.PartA}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := builder.Assemble(builder.NewSuperBuilder(nil), tc.steps...)
			require.NotNil(t, app)
			assert.Equal(t, tc.want, app.Parts())
		})
	}
}

func TestStepFor(t *testing.T) {
	t.Parallel()

	for _, p := range builder.AllParts {
		step := builder.StepFor(p)
		require.NotNil(t, step, p.String())

		app := builder.Assemble(builder.NewSuperBuilder(nil), step)
		assert.Equal(t, []builder.Part{p}, app.Parts())

		v, ok := app.Value(p)
		require.True(t, ok)
		assert.Equal(t, "Super"+p.String(), v)
	}

	assert.Nil(t, builder.StepFor(builder.Part(7)))
}

//
// -----------------------------------------------------------------------------
// SuperBuilder.Result
// -----------------------------------------------------------------------------

func TestResult_BeforeAnyStep(t *testing.T) {
	t.Parallel()

	app := builder.NewSuperBuilder(nil).Result()
	require.NotNil(t, app)
	assert.Empty(t, app.Parts())
	assert.Equal(t, "<unset> <unset> <unset>", app.String())
}

func TestResult_Idempotent(t *testing.T) {
	t.Parallel()

	b := builder.NewSuperBuilder(nil)
	b.BuildA()

	first := *b.Result()
	second := *b.Result()
	assert.Equal(t, first, second)
}

// TestResult_ReturnsAccumulator verifies Result hands back the same App the
// builder keeps mutating.
func TestResult_ReturnsAccumulator(t *testing.T) {
	t.Parallel()

	b := builder.NewSuperBuilder(nil)
	app := b.Result()
	assert.Same(t, app, b.Result())

	b.BuildC()
	assert.True(t, app.IsSet(builder.PartC))
}

func TestResult_LogsCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	b := builder.NewSuperBuilder(log.New(&buf, "", 0))

	builder.BuildAll(b)
	b.Result()

	assert.Equal(t, 2, strings.Count(buf.String(), "build complete\n"))
}
