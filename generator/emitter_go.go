package generator

import (
	"go/token"
	"strings"
)

// GoEmitter renders constants as a Go const block
type GoEmitter struct{}

// GoArtifact is the Go artifact name
const GoArtifact = "thisassembly_gen.go"

// defaultPackage is used when no namespace is supplied
const defaultPackage = "thisassembly"

// Name returns artifact name
func (e *GoEmitter) Name() string {
	return GoArtifact
}

// Emit renders set as package level constants, namespace is used as package name
func (e *GoEmitter) Emit(set Set, namespace string) ([]byte, error) {
	pkg := packageName(namespace)
	w := &codeWriter{}
	w.tab("// Code generated by " + generatorName + " " + Version + ". DO NOT EDIT.").tab("")
	w.tab("package " + pkg).tab("")
	w.tab("// Assembly attributes exposed as public constants")
	w.tab("const (")
	w.indent++
	for i, constant := range set.constants {
		if i > 0 {
			w.tab("")
		}
		w.tab(SafeName(constant.Name) + " = " + constant.Value)
	}
	w.indent--
	w.tab(")")
	return w.bytes(), nil
}

// packageName derives a Go package name from the last segment of a dotted namespace
func packageName(namespace string) string {
	if index := strings.LastIndex(namespace, "."); index >= 0 {
		namespace = namespace[index+1:]
	}
	name := strings.ToLower(SafeName(namespace))
	if name == "" || token.IsKeyword(name) {
		return defaultPackage
	}
	return name
}
