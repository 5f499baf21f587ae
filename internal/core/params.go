package core

// Parameter is one labelled read-only value shown on the HUD.
type Parameter struct {
	Label string
	Value string
}

// ParameterSnapshot captures the values a sim currently exposes.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParameterProvider is implemented by sims that publish HUD parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
