package anatomy

// Registry enumerates the parts currently in the scene. Engines take a
// snapshot via Enumerate and re-enumerate only when told to refresh.
type Registry interface {
	Enumerate() []*Part
}

// Set is an in-memory Registry. Enumeration order is insertion order.
type Set struct {
	parts []*Part
}

// NewSet returns a set holding parts in the given order.
func NewSet(parts ...*Part) *Set {
	s := &Set{}
	for _, p := range parts {
		s.Add(p)
	}
	return s
}

// Add appends p. Nil parts and parts already in the set are ignored.
func (s *Set) Add(p *Part) {
	if p == nil {
		return
	}
	for _, q := range s.parts {
		if q == p {
			return
		}
	}
	s.parts = append(s.parts, p)
}

// Remove drops p, preserving the order of the rest. Returns false if p was not present.
func (s *Set) Remove(p *Part) bool {
	for i, q := range s.parts {
		if q == p {
			s.parts = append(s.parts[:i], s.parts[i+1:]...)
			return true
		}
	}
	return false
}

// Enumerate returns a copy of the part list.
func (s *Set) Enumerate() []*Part {
	out := make([]*Part, len(s.parts))
	copy(out, s.parts)
	return out
}

func (s *Set) Len() int { return len(s.parts) }

// Find returns the part with the given ID.
func (s *Set) Find(id string) (*Part, bool) {
	for _, p := range s.parts {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// FindByName returns the first part whose name equals name, ignoring case.
func (s *Set) FindByName(name string) (*Part, bool) {
	n := Fold(name)
	for _, p := range s.parts {
		if Fold(p.Name) == n {
			return p, true
		}
	}
	return nil, false
}

// ByLayer returns the parts in layer l, in enumeration order.
func (s *Set) ByLayer(l Layer) []*Part {
	var out []*Part
	for _, p := range s.parts {
		if p.layer == l {
			out = append(out, p)
		}
	}
	return out
}

// ByType returns the parts of type t, in enumeration order.
func (s *Set) ByType(t PartType) []*Part {
	var out []*Part
	for _, p := range s.parts {
		if p.typ == t {
			out = append(out, p)
		}
	}
	return out
}

// Replace swaps the whole part list, keeping the order given.
func (s *Set) Replace(parts ...*Part) {
	s.parts = nil
	for _, p := range parts {
		s.Add(p)
	}
}
