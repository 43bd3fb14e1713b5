package state

// Store holds the live application state owned by the event loop.
type Store interface {
	Snapshot() State
	Replace(State)
	Get(string) string
}

type store struct {
	current State
}

// NewStore returns a Store seeded with a copy of initial.
func NewStore(initial State) Store {
	return &store{current: initial.Clone()}
}

func (s *store) Snapshot() State {
	return s.current.Clone()
}

func (s *store) Replace(next State) {
	s.current = next.Clone()
}

func (s *store) Get(key string) string {
	return s.current.Get(key)
}
