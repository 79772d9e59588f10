package state

// Selection is an ordered set of string keys, used for multi-select lists
// such as the city filter.
type Selection struct {
	keys  []string
	index map[string]struct{}
}

// IsSelected reports whether key is selected.
func (s *Selection) IsSelected(key string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[key]
	return ok
}

// Toggle flips membership of key and reports whether it is now selected.
func (s *Selection) Toggle(key string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[key]; ok {
		delete(s.index, key)
		for i, k := range s.keys {
			if k == key {
				s.keys = append(s.keys[:i], s.keys[i+1:]...)
				break
			}
		}
		return false
	}
	s.index[key] = struct{}{}
	s.keys = append(s.keys, key)
	return true
}

// Clear removes every selection.
func (s *Selection) Clear() {
	s.keys = nil
	s.index = nil
}

// Len returns the number of selected keys.
func (s *Selection) Len() int { return len(s.keys) }

// Keys returns the selected keys in the order they were selected.
func (s *Selection) Keys() []string {
	if len(s.keys) == 0 {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}
