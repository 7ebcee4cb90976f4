package repository

import (
	"github.com/viant/thisassembly/generator"
	"golang.org/x/mod/modfile"
)

// Project types
const (
	TypeCSharp  = "csharp"
	TypeGo      = "go"
	TypeUnknown = "unknown"
)

// Project represents information about a detected project
type Project struct {
	RootPath     string            // Absolute path to the project root directory
	Type         string            // Type of project (csharp, go)
	Name         string            // Compilation name, used as fallback assembly name
	ProjectFile  string            // Project marker file, e.g. App.csproj or go.mod
	RelativePath string            // Path from project root to the specified file
	Properties   map[string]string // MSBuild properties of C# projects
	GoModule     *modfile.Module
}

// Options returns build options derived from the project
func (p *Project) Options() generator.Options {
	return generator.Options{
		AssemblyName:          p.Properties[PropertyAssemblyName],
		DefineConstants:       p.Properties[PropertyDefineConstants],
		RootNamespace:         p.Properties[PropertyRootNamespace],
		ThisAssemblyNamespace: p.Properties[PropertyThisAssemblyNamespace],
		FallbackAssemblyName:  p.Name,
	}
}
