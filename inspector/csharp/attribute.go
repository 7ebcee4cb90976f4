package csharp

import (
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/inspector/info"
)

// Diagnostic codes reported by the C# inspector
const (
	CodeSyntax      = "TA0001"
	CodeUnsupported = "TA0002"
)

const attributeSuffix = "Attribute"

var assemblyTarget = regexp.MustCompile(`^\[\s*assembly\s*:`)

// isAssemblyTarget returns true for [assembly: ...] attribute lists
func isAssemblyTarget(node *sitter.Node, src []byte) bool {
	return assemblyTarget.MatchString(node.Content(src))
}

// normalizeKind returns attribute class name, e.g. System.Reflection.AssemblyVersion becomes AssemblyVersionAttribute
func normalizeKind(name string) string {
	name = strings.TrimSpace(name)
	if index := strings.LastIndex(name, "::"); index != -1 {
		name = name[index+2:]
	}
	if index := strings.LastIndex(name, "."); index != -1 {
		name = name[index+1:]
	}
	if !strings.HasSuffix(name, attributeSuffix) {
		name += attributeSuffix
	}
	return name
}

// parseAttribute extracts attribute kind with its positional arguments
func parseAttribute(node *sitter.Node, src []byte, source *info.Source) (generator.Declaration, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		nameNode = node.NamedChild(0)
	}
	if nameNode == nil {
		return generator.Declaration{}, false
	}
	declaration := generator.Declaration{Kind: normalizeKind(nameNode.Content(src))}

	var argumentList *sitter.Node
	for j := 0; j < int(node.NamedChildCount()); j++ {
		if child := node.NamedChild(j); child.Type() == "attribute_argument_list" {
			argumentList = child
			break
		}
	}
	if argumentList == nil {
		return declaration, true
	}

	for j := 0; j < int(argumentList.NamedChildCount()); j++ {
		argumentNode := argumentList.NamedChild(j)
		if argumentNode.Type() != "attribute_argument" || isNamedArgument(argumentNode) {
			continue
		}
		expression := argumentNode.NamedChild(int(argumentNode.NamedChildCount()) - 1)
		if expression == nil {
			continue
		}
		argument, err := parseArgument(expression, src)
		if err != nil {
			message := fmt.Sprintf("%s argument %d: %v", declaration.Kind, j+1, err)
			source.Diagnostics = append(source.Diagnostics, newDiagnostic(CodeUnsupported, message, source.Path, expression))
			return declaration, false
		}
		declaration.Arguments = append(declaration.Arguments, argument)
	}
	return declaration, true
}

// isNamedArgument returns true for Name = value and name: value arguments
func isNamedArgument(node *sitter.Node) bool {
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		switch child.Type() {
		case "name_equals", "name_colon", "=", ":":
			return true
		case "assignment_expression":
			// property assignments parse as a single expression
			if left := child.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
				return true
			}
		}
	}
	return false
}

func parseArgument(node *sitter.Node, src []byte) (generator.Argument, error) {
	text := node.Content(src)
	switch node.Type() {
	case "string_literal", "verbatim_string_literal", "raw_string_literal":
		value, err := decodeString(text)
		if err != nil {
			return generator.Argument{}, err
		}
		return generator.String(value), nil
	case "character_literal":
		value, err := decodeChar(text)
		if err != nil {
			return generator.Argument{}, err
		}
		return generator.Argument{Type: generator.ArgumentChar, Value: value}, nil
	case "boolean_literal":
		return generator.Argument{Type: generator.ArgumentBool, Value: text}, nil
	case "integer_literal", "real_literal":
		return generator.Argument{Type: generator.ArgumentNumber, Value: text}, nil
	case "null_literal":
		return generator.Argument{Type: generator.ArgumentNull}, nil
	}
	return generator.Argument{}, fmt.Errorf("unsupported expression %s: %s", node.Type(), text)
}

func newDiagnostic(code, message, path string, node *sitter.Node) generator.Diagnostic {
	return generator.Diagnostic{
		Severity: generator.SeverityWarning,
		Code:     code,
		Message:  message,
		Location: fmt.Sprintf("%s:%d", path, node.StartPoint().Row+1),
	}
}
