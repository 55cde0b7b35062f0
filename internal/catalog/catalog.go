// Package catalog holds the static variable and imagery-layer
// configuration tables and resolves a selected variable to the layer
// serving it at a given granularity.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"tempodash/internal/core/model"
)

// ErrLayerNotFound indicates no layer serves the variable at the
// requested granularity.
var ErrLayerNotFound = errors.New("layer not found")

// ErrVariableNotFound indicates an unknown variable label.
var ErrVariableNotFound = errors.New("variable not found")

// Layer describes one imagery service layer.
type Layer struct {
	ID            string
	Title         string
	URL           string
	Type          string
	VariableName  string
	VariableLabel string
	Opacity       float64
	Visible       bool
}

// Variable describes a selectable measurement.
type Variable struct {
	Label     string
	Unit      string
	Dimension string
}

// Catalog is a read-only lookup over layers and variables.
type Catalog struct {
	layers          map[string]Layer
	variables       map[string]Variable
	defaultVariable string
}

// New builds a catalog from explicit tables.
func New(layers []Layer, variables []Variable, defaultVariable string) (*Catalog, error) {
	catalog := &Catalog{
		layers:          make(map[string]Layer, len(layers)),
		variables:       make(map[string]Variable, len(variables)),
		defaultVariable: defaultVariable,
	}
	for _, layer := range layers {
		if layer.ID == "" {
			return nil, fmt.Errorf("layer %q: empty id", layer.Title)
		}
		catalog.layers[layer.ID] = layer
	}
	for _, variable := range variables {
		if variable.Label == "" {
			return nil, errors.New("variable with empty label")
		}
		catalog.variables[variable.Label] = variable
	}
	if _, ok := catalog.variables[defaultVariable]; !ok {
		return nil, fmt.Errorf("default variable %q: %w", defaultVariable, ErrVariableNotFound)
	}
	return catalog, nil
}

// DefaultVariable returns the label selected at application start.
func (catalog *Catalog) DefaultVariable() string {
	return catalog.defaultVariable
}

// Layer returns a layer by id.
func (catalog *Catalog) Layer(id string) (Layer, bool) {
	layer, ok := catalog.layers[id]
	return layer, ok
}

// Variable returns a variable by label.
func (catalog *Catalog) Variable(label string) (Variable, bool) {
	variable, ok := catalog.variables[label]
	return variable, ok
}

// Variables returns all variables sorted by label.
func (catalog *Catalog) Variables() []Variable {
	variables := make([]Variable, 0, len(catalog.variables))
	for _, variable := range catalog.variables {
		variables = append(variables, variable)
	}
	sort.Slice(variables, func(i, j int) bool {
		return variables[i].Label < variables[j].Label
	})
	return variables
}

// LayerFor resolves the layer serving a variable at the given
// granularity, following the "<label>_<suffix>" layer-id convention.
func (catalog *Catalog) LayerFor(label string, granularity model.Granularity) (Layer, error) {
	if _, ok := catalog.variables[label]; !ok {
		return Layer{}, fmt.Errorf("variable %q: %w", label, ErrVariableNotFound)
	}
	suffix, ok := granularity.LayerSuffix()
	if !ok {
		return Layer{}, fmt.Errorf("granularity %q has no layer set: %w", granularity, ErrLayerNotFound)
	}
	layer, ok := catalog.layers[label+"_"+suffix]
	if !ok {
		return Layer{}, fmt.Errorf("layer %s_%s: %w", label, suffix, ErrLayerNotFound)
	}
	return layer, nil
}

// Binding resolves the variable and granularity into the binding the
// sequencer and query builders consume.
func (catalog *Catalog) Binding(label string, granularity model.Granularity) (model.Binding, error) {
	layer, err := catalog.LayerFor(label, granularity)
	if err != nil {
		return model.Binding{}, err
	}
	return model.Binding{
		LayerID:       layer.ID,
		VariableName:  layer.VariableName,
		VariableLabel: layer.VariableLabel,
	}, nil
}
