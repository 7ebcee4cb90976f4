package repository

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MSBuild properties read from C# project files
const (
	PropertyAssemblyName          = "AssemblyName"
	PropertyDefineConstants       = "DefineConstants"
	PropertyRootNamespace         = "RootNamespace"
	PropertyThisAssemblyNamespace = "ThisAssemblyNamespace"
)

var knownProperties = map[string]bool{
	PropertyAssemblyName:          true,
	PropertyDefineConstants:       true,
	PropertyRootNamespace:         true,
	PropertyThisAssemblyNamespace: true,
}

// ParseProperties reads known PropertyGroup values of an MSBuild project, later definitions win.
// Conditions are not evaluated.
func ParseProperties(content []byte) (map[string]string, error) {
	properties := map[string]string{}
	decoder := xml.NewDecoder(bytes.NewReader(content))
	depth := 0
	inGroup := false
	var current string
	var value strings.Builder
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		switch actual := token.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 2 && actual.Name.Local == "PropertyGroup":
				inGroup = true
			case depth == 3 && inGroup && knownProperties[actual.Name.Local]:
				current = actual.Name.Local
				value.Reset()
			}
		case xml.CharData:
			if current != "" {
				value.Write(actual)
			}
		case xml.EndElement:
			if depth == 3 && current != "" {
				properties[current] = expand(strings.TrimSpace(value.String()), current, properties)
				current = ""
			}
			if depth == 2 {
				inGroup = false
			}
			depth--
		}
	}
	return properties, nil
}

// expand replaces $(Name) self references, e.g. <DefineConstants>$(DefineConstants);TRACE</DefineConstants>
func expand(value, name string, properties map[string]string) string {
	reference := "$(" + name + ")"
	if !strings.Contains(value, reference) {
		return value
	}
	value = strings.ReplaceAll(value, reference, properties[name])
	return strings.Trim(value, ";")
}
