package csharp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/viant/thisassembly/inspector/info"
)

const defaultFilename = "source.cs"

// Inspector discovers assembly attributes in C# sources
type Inspector struct {
	config *info.Config
}

// NewInspector creates a C# inspector
func NewInspector(config *info.Config) *Inspector {
	if config == nil {
		config = info.DefaultConfig()
	}
	return &Inspector{config: config}
}

// InspectSource parses C# source code and extracts assembly attributes
func (i *Inspector) InspectSource(src []byte) (*info.Source, error) {
	return i.inspect(src, defaultFilename)
}

// InspectFile parses a C# source file and extracts assembly attributes
func (i *Inspector) InspectFile(filename string) (*info.Source, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(src, filename)
}

// InspectPackage inspects all C# files of a project directory
func (i *Inspector) InspectPackage(packagePath string) (*info.Package, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	pkg := &info.Package{Name: filepath.Base(absPath), Path: absPath}
	err = filepath.WalkDir(absPath, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path == absPath {
				return nil
			}
			if !i.config.RecursivePackages || isBuildFolder(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".cs" {
			return nil
		}
		if i.config.SkipTests && strings.HasSuffix(path, "Tests.cs") {
			return nil
		}
		source, err := i.InspectFile(path)
		if err != nil {
			return err
		}
		if len(source.Declarations) > 0 || len(source.Diagnostics) > 0 {
			pkg.AddFile(source)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project directory %s: %w", packagePath, err)
	}
	return pkg, nil
}

// isBuildFolder returns true for MSBuild output and tooling folders
func isBuildFolder(name string) bool {
	switch strings.ToLower(name) {
	case "bin", "obj", ".git", ".vs", "node_modules":
		return true
	}
	return false
}

func (i *Inspector) inspect(src []byte, filename string) (*info.Source, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filename, err)
	}

	source := &info.Source{Path: filename}
	root := tree.RootNode()
	if root.HasError() {
		source.Diagnostics = append(source.Diagnostics, newDiagnostic(CodeSyntax, "source contains syntax errors", filename, root))
	}
	i.processNode(root, src, source)
	return source, nil
}

// processNode collects assembly attributes in source order
func (i *Inspector) processNode(node *sitter.Node, src []byte, source *info.Source) {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		switch child.Type() {
		case "attribute_list", "global_attribute_list", "global_attribute":
			if !isAssemblyTarget(child, src) {
				continue
			}
			for k := 0; k < int(child.NamedChildCount()); k++ {
				attribute := child.NamedChild(k)
				if attribute.Type() != "attribute" {
					continue
				}
				if declaration, ok := parseAttribute(attribute, src, source); ok {
					source.Declarations = append(source.Declarations, declaration)
				}
			}
		case "namespace_declaration", "file_scoped_namespace_declaration", "declaration_list":
			i.processNode(child, src, source)
		}
	}
}
