package info

// Config represents inspection options
type Config struct {
	SkipTests         bool   // Skip test sources
	RecursivePackages bool   // Descend into sub directories
	DirectivePrefix   string // Go comment directive prefix, e.g. "assembly:"
}

// DefaultConfig returns default inspection options
func DefaultConfig() *Config {
	return &Config{
		SkipTests:         true,
		RecursivePackages: true,
		DirectivePrefix:   "assembly:",
	}
}
