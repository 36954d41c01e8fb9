package core

// Size describes the dimensions of a simulation viewport.
type Size struct {
	W int
	H int
}

// Cell is an (x, y) board coordinate.
type Cell struct {
	X int
	Y int
}

// Transition classifies how a cell's state changed across one generation.
type Transition uint8

const (
	// Died marks a cell that was alive and is now dead.
	Died Transition = iota
	// Born marks a cell that was dead and is now alive.
	Born
	// StayedAlive marks a cell that survived the generation.
	StayedAlive
)

// String returns a short label for the transition kind.
func (t Transition) String() string {
	switch t {
	case Died:
		return "died"
	case Born:
		return "born"
	case StayedAlive:
		return "stayed"
	}
	return "unknown"
}

// Change records a single cell whose rendered state must be updated.
type Change struct {
	X    int
	Y    int
	Kind Transition
}

// Sim defines the contract an incremental simulation must implement. Step
// advances exactly one generation and reports every cell that changed state;
// cells absent from the report kept their previous state.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() []Change
	Population() int
	Cells() []Cell
	Toggle(x, y int) Change
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
