package core

import "strconv"

// Parameter is a single labelled value shown on a HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a host displays next to the grid.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer-valued parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

// TextParam builds a free-form parameter.
func TextParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Value: value}
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
