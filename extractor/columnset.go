package extractor

// ColumnSet is a string set that remembers insertion order. Deduplication is
// case-sensitive: physical column names are case-sensitive on the target
// platform, so two spellings differing only in case stay distinct.
type ColumnSet struct {
	order []string
	seen  map[string]struct{}
}

// NewColumnSet creates an empty ColumnSet
func NewColumnSet() *ColumnSet {
	return &ColumnSet{
		seen: make(map[string]struct{}),
	}
}

// Add inserts a column identifier unless it is already present
func (s *ColumnSet) Add(column string) {
	if _, ok := s.seen[column]; ok {
		return
	}

	s.seen[column] = struct{}{}
	s.order = append(s.order, column)
}

// Contains reports whether the identifier is in the set
func (s *ColumnSet) Contains(column string) bool {
	_, ok := s.seen[column]
	return ok
}

// Values returns the identifiers in first-seen order
func (s *ColumnSet) Values() []string {
	return s.order
}

// Len returns the number of identifiers in the set
func (s *ColumnSet) Len() int {
	return len(s.order)
}
