package model

// Binding resolves a selected variable to the imagery layer that renders
// it and the query field the service stores it under.
type Binding struct {
	LayerID       string
	VariableName  string
	VariableLabel string
}

// IsZero reports whether the binding is unresolved.
func (binding Binding) IsZero() bool {
	return binding.LayerID == "" && binding.VariableName == ""
}
