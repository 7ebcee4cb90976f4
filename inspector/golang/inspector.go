package golang

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"

	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/inspector/info"
	"golang.org/x/tools/go/packages"
)

// Inspector discovers assembly directives in Go sources
type Inspector struct {
	fset   *token.FileSet
	config *info.Config
}

// NewInspector creates a Go inspector
func NewInspector(config *info.Config) *Inspector {
	if config == nil {
		config = info.DefaultConfig()
	}
	return &Inspector{
		fset:   token.NewFileSet(),
		config: config,
	}
}

const defaultFilename = "source.go"

// InspectSource parses Go source code and extracts directives
func (i *Inspector) InspectSource(src []byte) (*info.Source, error) {
	return i.inspect(src, defaultFilename)
}

// InspectFile parses a Go source file and extracts directives
func (i *Inspector) InspectFile(filename string) (*info.Source, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(src, filename)
}

func (i *Inspector) inspect(src []byte, filename string) (*info.Source, error) {
	file, err := parser.ParseFile(i.fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}
	source := &info.Source{Path: filename}
	source.Declarations, source.Diagnostics = i.inspectDirectives(i.fset, file, filename)
	return source, nil
}

// InspectPackage loads a Go package with its syntax and extracts directives of every file
func (i *Inspector) InspectPackage(packagePath string) (*info.Package, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	pattern := "."
	if i.config.RecursivePackages {
		pattern = "./..."
	}
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:   absPath,
		Tests: !i.config.SkipTests,
		Fset:  token.NewFileSet(),
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			return parser.ParseFile(fset, filename, src, parser.ParseComments)
		},
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", packagePath, err)
	}
	ret := &info.Package{Name: filepath.Base(absPath), Path: absPath}
	seen := map[string]bool{}
	if len(pkgs) > 0 && pkgs[0].Name != "" {
		ret.Name = pkgs[0].Name
	}
	for _, pkg := range pkgs {
		var diagnostics []generator.Diagnostic
		for _, pkgErr := range pkg.Errors {
			diagnostics = append(diagnostics, generator.Diagnostic{
				Severity: generator.SeverityWarning,
				Code:     CodePackage,
				Message:  pkgErr.Msg,
				Location: pkgErr.Pos,
			})
		}
		if len(diagnostics) > 0 {
			ret.AddFile(&info.Source{Path: pkg.PkgPath, Diagnostics: diagnostics})
		}
		for j, file := range pkg.Syntax {
			filename := cfg.Fset.Position(file.Package).Filename
			if j < len(pkg.CompiledGoFiles) && filename == "" {
				filename = pkg.CompiledGoFiles[j]
			}
			if seen[filename] {
				continue
			}
			seen[filename] = true
			source := &info.Source{Path: filename}
			source.Declarations, source.Diagnostics = i.inspectDirectives(cfg.Fset, file, filename)
			if len(source.Declarations) > 0 || len(source.Diagnostics) > 0 {
				ret.AddFile(source)
			}
		}
	}
	return ret, nil
}
