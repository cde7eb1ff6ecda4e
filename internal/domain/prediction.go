package domain

// PredictionSet is the set of identifiers a filter run accepts.
// Duplicates collapse and order is irrelevant.
type PredictionSet map[string]struct{}

// NewPredictionSet builds a set from ids.
func NewPredictionSet(ids ...string) PredictionSet {
	s := make(PredictionSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id.
func (s PredictionSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether id is accepted.
func (s PredictionSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of distinct identifiers.
func (s PredictionSet) Len() int {
	return len(s)
}
