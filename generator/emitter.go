package generator

import (
	"strings"
)

// Version is the generator version embedded in generated code markers
const Version = "1.0.0"

// generatorName identifies the generator in generated code markers
const generatorName = "ThisAssembly.Generator"

// Emitter represents a constant set renderer
type Emitter interface {
	// Name returns logical artifact name
	Name() string
	// Emit renders set, optionally wrapped in namespace
	Emit(set Set, namespace string) ([]byte, error)
}

// codeWriter writes indented lines, blank lines are never indented
type codeWriter struct {
	builder strings.Builder
	indent  int
}

func (w *codeWriter) line(parts ...string) *codeWriter {
	text := strings.Join(parts, "")
	if text != "" {
		w.builder.WriteString(strings.Repeat("    ", w.indent))
		w.builder.WriteString(text)
	}
	w.builder.WriteByte('\n')
	return w
}

func (w *codeWriter) tab(text string) *codeWriter {
	if text != "" {
		w.builder.WriteString(strings.Repeat("\t", w.indent))
		w.builder.WriteString(text)
	}
	w.builder.WriteByte('\n')
	return w
}

func (w *codeWriter) bytes() []byte {
	return []byte(w.builder.String())
}
