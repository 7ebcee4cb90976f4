package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/inspector/info"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up in a project root
const DefaultFilename = "thisassembly.yaml"

const attributeSuffix = "Attribute"

type (
	// Manifest represents a YAML list of declarations with optional build options
	Manifest struct {
		Options      generator.Options `yaml:"options,omitempty"`
		Declarations []Declaration     `yaml:"declarations"`
	}

	// Declaration represents a manifest declaration
	Declaration struct {
		Kind string      `yaml:"kind"`
		Args []yaml.Node `yaml:"args"`
	}
)

// Inspector reads declarations from YAML manifests
type Inspector struct{}

// NewInspector creates a manifest inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Load parses manifest content
func Load(src []byte) (*Manifest, error) {
	ret := &Manifest{}
	if err := yaml.Unmarshal(src, ret); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return ret, nil
}

// LoadFile parses manifest file
func LoadFile(filename string) (*Manifest, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", filename, err)
	}
	ret, err := Load(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ret, nil
}

// InspectSource parses manifest content and returns its declarations
func (i *Inspector) InspectSource(src []byte) (*info.Source, error) {
	manifest, err := Load(src)
	if err != nil {
		return nil, err
	}
	return manifest.Source(DefaultFilename), nil
}

// InspectFile parses a manifest file and returns its declarations
func (i *Inspector) InspectFile(filename string) (*info.Source, error) {
	manifest, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return manifest.Source(filename), nil
}

// Source converts manifest declarations, arguments with unsupported YAML types are reported and skipped
func (m *Manifest) Source(path string) *info.Source {
	source := &info.Source{Path: path, Options: m.Options}
	for _, item := range m.Declarations {
		declaration, err := item.declaration()
		if err != nil {
			source.Diagnostics = append(source.Diagnostics, generator.Diagnostic{
				Severity: generator.SeverityWarning,
				Code:     CodeArgument,
				Message:  err.Error(),
				Location: fmt.Sprintf("%s:%d", path, item.line()),
			})
			continue
		}
		source.Declarations = append(source.Declarations, declaration)
	}
	return source
}

// CodeArgument reports unsupported manifest argument
const CodeArgument = "TA0201"

func (d *Declaration) declaration() (generator.Declaration, error) {
	kind := strings.TrimSpace(d.Kind)
	if kind == "" {
		return generator.Declaration{}, fmt.Errorf("declaration kind was empty")
	}
	if !strings.HasSuffix(kind, attributeSuffix) {
		kind += attributeSuffix
	}
	ret := generator.Declaration{Kind: kind}
	for _, node := range d.Args {
		argument, err := parseArgument(&node)
		if err != nil {
			return generator.Declaration{}, fmt.Errorf("%s: %w", kind, err)
		}
		ret.Arguments = append(ret.Arguments, argument)
	}
	return ret, nil
}

func (d *Declaration) line() int {
	if len(d.Args) > 0 {
		return d.Args[0].Line
	}
	return 0
}

func parseArgument(node *yaml.Node) (generator.Argument, error) {
	if node.Kind != yaml.ScalarNode {
		return generator.Argument{}, fmt.Errorf("unsupported argument at line %d: expected scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!str":
		return generator.String(node.Value), nil
	case "!!bool":
		return generator.Argument{Type: generator.ArgumentBool, Value: strings.ToLower(node.Value)}, nil
	case "!!int", "!!float":
		return generator.Argument{Type: generator.ArgumentNumber, Value: node.Value}, nil
	case "!!null":
		return generator.Argument{Type: generator.ArgumentNull}, nil
	}
	return generator.Argument{}, fmt.Errorf("unsupported argument tag %s at line %d", node.ShortTag(), node.Line)
}
