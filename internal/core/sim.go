package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the host loop drives: deterministic reset, one
// generation per Step, and a read-only display buffer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Generation() int
	Cells() []uint8
}

// TextRenderer is implemented by sims that can draw themselves as text.
type TextRenderer interface {
	RenderText() string
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var registry = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return registry
}
