package generator

// Option configures Generator
type Option func(*Generator)

// WithKinds sets recognized declaration kinds
func WithKinds(kinds *Kinds) Option {
	return func(g *Generator) {
		g.collector = NewCollector(kinds)
	}
}

// WithEmitter sets artifact emitter
func WithEmitter(emitter Emitter) Option {
	return func(g *Generator) {
		g.emitter = emitter
	}
}

// WithCache enables rendered artifact memoization
func WithCache(cache *Cache) Option {
	return func(g *Generator) {
		g.cache = cache
	}
}

// WithConcurrency limits number of modules generated in parallel
func WithConcurrency(limit int) Option {
	return func(g *Generator) {
		g.concurrency = limit
	}
}
