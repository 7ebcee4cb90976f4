package generator

import "strings"

// Collector collects constants from module declarations
type Collector struct {
	kinds *Kinds
}

// NewCollector creates a collector, nil kinds uses DefaultKinds
func NewCollector(kinds *Kinds) *Collector {
	if kinds == nil {
		kinds = DefaultKinds()
	}
	return &Collector{kinds: kinds}
}

// Collect returns constants in declaration order.
// Unusable declarations are skipped; metadata keys are deduplicated, first one wins.
func (c *Collector) Collect(declarations []Declaration) Set {
	var constants []Constant
	for _, declaration := range declarations {
		entry, ok := c.kinds.Classify(declaration)
		if !ok {
			continue
		}
		switch actual := entry.(type) {
		case SingleValue:
			if isBlank(actual.Value) {
				continue
			}
			constants = append(constants, Constant{Name: actual.Name, Value: actual.Value})
		case KeyValue:
			if isBlank(actual.Key) || isBlank(actual.Value) {
				continue
			}
			if hasConstant(constants, actual.Key) {
				continue
			}
			constants = append(constants, Constant{Name: actual.Key, Value: actual.Value})
		}
	}
	return Set{constants: constants}
}

func hasConstant(constants []Constant, name string) bool {
	for _, candidate := range constants {
		if candidate.Name == name {
			return true
		}
	}
	return false
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
