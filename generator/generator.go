package generator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Module represents a compiled module's declarations and configuration
type Module struct {
	Name         string        // Module identifier used for reporting
	Declarations []Declaration // Declarations in source order
	Options      Options       // Build configuration
	Diagnostics  []Diagnostic  // Host diagnostics, relayed unchanged
}

// Output represents generation result
type Output struct {
	Module      string       // Module identifier
	Name        string       // Artifact name
	Constants   Set          // Rendered constants
	Source      []byte       // Artifact content, nil when nothing was collected
	Hash        uint64       // Artifact content hash
	Diagnostics []Diagnostic // Relayed host diagnostics
}

// HasSource returns true if an artifact was rendered
func (o *Output) HasSource() bool {
	return o.Source != nil
}

// Generator projects module declarations into a generated constants artifact
type Generator struct {
	collector   *Collector
	emitter     Emitter
	cache       *Cache
	concurrency int
}

// New creates a generator
func New(options ...Option) *Generator {
	ret := &Generator{
		collector:   NewCollector(nil),
		emitter:     &CSharpEmitter{},
		concurrency: 4,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Emitter returns generator emitter
func (g *Generator) Emitter() Emitter {
	return g.emitter
}

// Generate generates artifact for a module. When no declaration yields a constant, Source is nil.
func (g *Generator) Generate(module *Module) (*Output, error) {
	output := &Output{
		Module:      module.Name,
		Name:        g.emitter.Name(),
		Diagnostics: module.Diagnostics,
	}
	collected := g.collector.Collect(module.Declarations)
	if collected.Len() == 0 {
		return output, nil
	}
	set := module.Options.Resolve(collected)
	output.Constants = set
	namespace := module.Options.ThisAssemblyNamespace
	if g.cache != nil {
		if source, ok := g.cache.Get(set, namespace, g.emitter.Name()); ok {
			output.Source = source
			output.Hash = Hash(source)
			return output, nil
		}
	}
	source, err := g.emitter.Emit(set, namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to emit %v: %w", module.Name, err)
	}
	if g.cache != nil {
		g.cache.Put(set, namespace, g.emitter.Name(), source)
	}
	output.Source = source
	output.Hash = Hash(source)
	return output, nil
}

// GenerateAll generates modules in parallel, outputs follow modules order
func (g *Generator) GenerateAll(ctx context.Context, modules []*Module) ([]*Output, error) {
	outputs := make([]*Output, len(modules))
	group, ctx := errgroup.WithContext(ctx)
	if g.concurrency > 0 {
		group.SetLimit(g.concurrency)
	}
	for i, module := range modules {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			output, err := g.Generate(module)
			if err != nil {
				return err
			}
			outputs[i] = output
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
