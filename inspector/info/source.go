package info

import "github.com/viant/thisassembly/generator"

// Source represents declarations discovered in a source file
type Source struct {
	Path         string                 // Source path
	Declarations []generator.Declaration // Module level declarations in source order
	Diagnostics  []generator.Diagnostic  // Problems found while inspecting
	Options      generator.Options       // Build options declared by the source
}

// Package represents declarations discovered across package files
type Package struct {
	Name    string    // Package or project name
	Path    string    // Package location
	FileSet []*Source // Inspected files in discovery order
}

// AddFile adds a source to the package
func (p *Package) AddFile(source *Source) {
	p.FileSet = append(p.FileSet, source)
}

// Declarations returns declarations of all files in order
func (p *Package) Declarations() []generator.Declaration {
	var result []generator.Declaration
	for _, source := range p.FileSet {
		result = append(result, source.Declarations...)
	}
	return result
}

// Diagnostics returns diagnostics of all files in order
func (p *Package) Diagnostics() []generator.Diagnostic {
	var result []generator.Diagnostic
	for _, source := range p.FileSet {
		result = append(result, source.Diagnostics...)
	}
	return result
}

// Options returns build options declared by package files, earlier files win
func (p *Package) Options() generator.Options {
	var result generator.Options
	for _, source := range p.FileSet {
		result = result.Merge(source.Options)
	}
	return result
}
