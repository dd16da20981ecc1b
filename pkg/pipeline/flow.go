package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Flow runs an ordered list of passes, threading an accumulating Uniforms
// record from one pass to the next.
type Flow struct {
	Name   string
	Passes []Pass

	// OnPassComplete, when set, is called after each pass succeeds
	OnPassComplete func(pass Pass, elapsed time.Duration)
}

// Run executes every pass in order. Before a pass runs all of its required
// keys must be present; afterwards all of its declared outputs must be. The
// context is checked between passes and handed to each pass.
func (f *Flow) Run(ctx context.Context, initial Uniforms) (Uniforms, error) {
	state := initial
	for i, pass := range f.Passes {
		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("%w before pass %d (%s): %w", ErrFlowCancelled, i, pass.Name(), err)
		}

		for _, key := range pass.Requires() {
			if !state.Has(key) {
				return state, fmt.Errorf("%w: pass %s requires %q", ErrMissingInput, pass.Name(), key)
			}
		}

		logger.Debugf("flow %s: running pass %s", f.Name, pass.Name())
		start := time.Now()
		out, err := pass.Process(ctx, state)
		if err != nil {
			return state, fmt.Errorf("pass %s: %w", pass.Name(), err)
		}

		for _, key := range pass.Produces() {
			if !out.Has(key) {
				return state, fmt.Errorf("%w: pass %s did not produce %q", ErrMissingOutput, pass.Name(), key)
			}
		}

		state = state.Merge(out)
		elapsed := time.Since(start)
		logger.Infof("flow %s: pass %s completed in %s", f.Name, pass.Name(), elapsed)
		if f.OnPassComplete != nil {
			f.OnPassComplete(pass, elapsed)
		}
	}

	return state, nil
}

// HelloWorldFlow renders the gradient test image and its gray version
func HelloWorldFlow(opts Options) *Flow {
	return &Flow{
		Name: "hello",
		Passes: []Pass{
			HelloWorldPass{Width: opts.Width, Height: opts.Height},
			GrayPass{Source: KeyHelloWorld},
		},
	}
}

// PreTestFlow renders the depth and normal visualisations of a scene
func PreTestFlow(opts Options) *Flow {
	return &Flow{
		Name:   "pretest",
		Passes: []Pass{DepthPass{Options: opts}, NormalPass{Options: opts}},
	}
}

// ShadeFlow ray traces a scene with one ray per pixel
func ShadeFlow(opts Options) *Flow {
	return &Flow{
		Name:   "shade",
		Passes: []Pass{ShadePass{Options: opts}},
	}
}

// SSAAFlow ray traces a scene with supersampling, then converts it to gray
func SSAAFlow(opts Options) *Flow {
	return &Flow{
		Name: "ssaa",
		Passes: []Pass{
			SSAAPass{Options: opts},
			GrayPass{Source: KeyShaded},
		},
	}
}

var builtinFlows = map[string]func(Options) *Flow{
	"hello":   HelloWorldFlow,
	"pretest": PreTestFlow,
	"shade":   ShadeFlow,
	"ssaa":    SSAAFlow,
}

// FlowNames returns the names accepted by FlowByName, sorted
func FlowNames() []string {
	names := make([]string, 0, len(builtinFlows))
	for name := range builtinFlows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FlowByName builds the named built-in flow
func FlowByName(name string, opts Options) (*Flow, error) {
	create, ok := builtinFlows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFlow, name, FlowNames())
	}
	return create(opts), nil
}
