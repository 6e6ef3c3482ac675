package document

// SocialNetwork is one social profile link in the CV header.
type SocialNetwork struct {
	Network  string
	Username string
}

// Pair is an ordered key/value item used where mapping order must survive
// serialization.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of pairs with map-like helpers.
type Pairs []Pair

// Get returns the value stored under key.
func (p Pairs) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// Set returns the list with value stored under key, updating in place when
// the key exists and appending otherwise.
func (p Pairs) Set(key, value string) Pairs {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Pair{Key: key, Value: value})
}

// Keys returns the keys in declaration order.
func (p Pairs) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone returns a copy of the list.
func (p Pairs) Clone() Pairs {
	if p == nil {
		return nil
	}
	out := make(Pairs, len(p))
	copy(out, p)
	return out
}

// Section groups entries under a named heading. The name doubles as the
// serialized section key.
type Section struct {
	Name    string
	Entries []*Entry
}

// FindEntry returns the entry with the given id and its position, or nil
// and -1.
func (s *Section) FindEntry(id string) (*Entry, int) {
	for i, e := range s.Entries {
		if e.ID() == id {
			return e, i
		}
	}
	return nil, -1
}

// RemoveEntry deletes the entry with the given id, keeping the order of the
// remaining entries.
func (s *Section) RemoveEntry(id string) bool {
	_, i := s.FindEntry(id)
	if i < 0 {
		return false
	}
	s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
	return true
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	clone := &Section{Name: s.Name, Entries: make([]*Entry, len(s.Entries))}
	for i, e := range s.Entries {
		clone.Entries[i] = e.Clone()
	}
	return clone
}

// CV is the document being edited: identity fields, social profiles, and
// ordered sections of entries.
type CV struct {
	Name     string
	Headline string
	Location string
	Email    string
	Phone    string
	Website  string
	Photo    string

	SocialNetworks    []SocialNetwork
	CustomConnections []Pairs
	Sections          []*Section
}

// NewCV returns an empty CV.
func NewCV() *CV {
	return &CV{}
}

// Section returns the named section, or nil when absent.
func (cv *CV) Section(name string) *Section {
	for _, s := range cv.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// EnsureSection returns the named section, creating and appending it when
// absent.
func (cv *CV) EnsureSection(name string) *Section {
	if s := cv.Section(name); s != nil {
		return s
	}
	s := &Section{Name: name}
	cv.Sections = append(cv.Sections, s)
	return s
}

// RemoveSection drops the named section, keeping the order of the rest.
func (cv *CV) RemoveSection(name string) bool {
	for i, s := range cv.Sections {
		if s.Name == name {
			cv.Sections = append(cv.Sections[:i], cv.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// HasSection reports whether the named section exists.
func (cv *CV) HasSection(name string) bool {
	return cv.Section(name) != nil
}

// SectionNames returns the section names in document order.
func (cv *CV) SectionNames() []string {
	names := make([]string, 0, len(cv.Sections))
	for _, s := range cv.Sections {
		names = append(names, s.Name)
	}
	return names
}

// FindEntry locates an entry by id across all sections.
func (cv *CV) FindEntry(id string) (*Section, *Entry, bool) {
	for _, s := range cv.Sections {
		if e, i := s.FindEntry(id); i >= 0 {
			return s, e, true
		}
	}
	return nil, nil, false
}

// Clone returns a deep copy of the CV.
func (cv *CV) Clone() *CV {
	clone := &CV{
		Name:     cv.Name,
		Headline: cv.Headline,
		Location: cv.Location,
		Email:    cv.Email,
		Phone:    cv.Phone,
		Website:  cv.Website,
		Photo:    cv.Photo,
	}
	if cv.SocialNetworks != nil {
		clone.SocialNetworks = make([]SocialNetwork, len(cv.SocialNetworks))
		copy(clone.SocialNetworks, cv.SocialNetworks)
	}
	if cv.CustomConnections != nil {
		clone.CustomConnections = make([]Pairs, len(cv.CustomConnections))
		for i, conn := range cv.CustomConnections {
			clone.CustomConnections[i] = conn.Clone()
		}
	}
	if cv.Sections != nil {
		clone.Sections = make([]*Section, len(cv.Sections))
		for i, s := range cv.Sections {
			clone.Sections[i] = s.Clone()
		}
	}
	return clone
}

// AsMap returns the CV as the generic session-state map. Every identity
// field is present even when empty, matching the shape UI layers hold, and
// entries include their internal keys.
func (cv *CV) AsMap() map[string]any {
	networks := make([]any, 0, len(cv.SocialNetworks))
	for _, n := range cv.SocialNetworks {
		networks = append(networks, map[string]any{
			"network":  n.Network,
			"username": n.Username,
		})
	}
	connections := make([]any, 0, len(cv.CustomConnections))
	for _, conn := range cv.CustomConnections {
		attrs := make(map[string]any, len(conn))
		for _, pair := range conn {
			attrs[pair.Key] = pair.Value
		}
		connections = append(connections, attrs)
	}
	sections := make(map[string]any, len(cv.Sections))
	for _, s := range cv.Sections {
		entries := make([]any, 0, len(s.Entries))
		for _, e := range s.Entries {
			entries = append(entries, e.AsMap())
		}
		sections[s.Name] = entries
	}
	return map[string]any{
		"name":               cv.Name,
		"headline":           cv.Headline,
		"location":           cv.Location,
		"email":              cv.Email,
		"phone":              cv.Phone,
		"website":            cv.Website,
		"photo":              cv.Photo,
		"social_networks":    networks,
		"custom_connections": connections,
		"sections":           sections,
	}
}
