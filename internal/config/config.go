// Package config loads generator settings from flags, environment and config file.
package config

import "github.com/viant/thisassembly/generator"

// Languages supported by the generate command.
const (
	LanguageAuto   = "auto"
	LanguageCSharp = "csharp"
	LanguageGo     = "go"
)

// Config represents generate command settings.
type Config struct {
	// Language selects the emitter: auto, csharp or go.
	Language string `mapstructure:"language"`

	// Output is the artifact directory, the project root when empty.
	Output string `mapstructure:"output"`

	// Manifest is an explicit declaration manifest path.
	Manifest string `mapstructure:"manifest"`

	// DryRun prints the artifact instead of writing it.
	DryRun bool `mapstructure:"dryRun"`

	// Concurrency limits projects generated in parallel.
	Concurrency int `mapstructure:"concurrency"`

	// AssemblyName overrides the module identity name.
	AssemblyName string `mapstructure:"assemblyName"`

	// DefineConstants overrides the build define string.
	DefineConstants string `mapstructure:"defineConstants"`

	// RootNamespace overrides the root namespace.
	RootNamespace string `mapstructure:"rootNamespace"`

	// Namespace wraps generated output.
	Namespace string `mapstructure:"namespace"`
}

// WithDefaults returns config with empty values defaulted.
func (c *Config) WithDefaults() *Config {
	ret := *c
	if ret.Language == "" {
		ret.Language = LanguageAuto
	}
	if ret.Concurrency <= 0 {
		ret.Concurrency = 4
	}
	return &ret
}

// Options returns explicitly configured build options.
func (c *Config) Options() generator.Options {
	return generator.Options{
		AssemblyName:          c.AssemblyName,
		DefineConstants:       c.DefineConstants,
		RootNamespace:         c.RootNamespace,
		ThisAssemblyNamespace: c.Namespace,
	}
}
