package golang

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/viant/thisassembly/generator"
)

// Diagnostic codes reported by the Go inspector
const (
	CodeDirective = "TA0101"
	CodePackage   = "TA0102"
)

const attributeSuffix = "Attribute"

// parseDirective parses "//assembly:AssemblyMetadata RepositoryUrl https://x" style comment
func parseDirective(text, prefix string) (generator.Declaration, bool, error) {
	if !strings.HasPrefix(text, "//"+prefix) {
		return generator.Declaration{}, false, nil
	}
	tokens, err := shellquote.Split(text[2+len(prefix):])
	if err != nil {
		return generator.Declaration{}, true, err
	}
	if len(tokens) == 0 {
		return generator.Declaration{}, true, fmt.Errorf("missing directive kind")
	}
	kind := tokens[0]
	if !strings.HasSuffix(kind, attributeSuffix) {
		kind += attributeSuffix
	}
	return generator.NewDeclaration(kind, tokens[1:]...), true, nil
}

// inspectDirectives collects file directives in comment order
func (i *Inspector) inspectDirectives(fset *token.FileSet, file *ast.File, filename string) ([]generator.Declaration, []generator.Diagnostic) {
	var declarations []generator.Declaration
	var diagnostics []generator.Diagnostic
	for _, group := range file.Comments {
		for _, comment := range group.List {
			declaration, ok, err := parseDirective(comment.Text, i.config.DirectivePrefix)
			if !ok {
				continue
			}
			if err != nil {
				diagnostics = append(diagnostics, generator.Diagnostic{
					Severity: generator.SeverityWarning,
					Code:     CodeDirective,
					Message:  fmt.Sprintf("invalid directive %q: %v", comment.Text, err),
					Location: location(fset, comment.Pos(), filename),
				})
				continue
			}
			declarations = append(declarations, declaration)
		}
	}
	return declarations, diagnostics
}

func location(fset *token.FileSet, pos token.Pos, filename string) string {
	position := fset.Position(pos)
	if position.Filename != "" {
		filename = position.Filename
	}
	return fmt.Sprintf("%s:%d", filename, position.Line)
}
