package model

// NamedRef is a lightweight reference to a creature in the catalog listing:
// its numeric id and display name. The fuzzy ranker works entirely on
// NamedRefs so that ranking never needs a network call.
type NamedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Creature is one fully populated encyclopedia record, as returned by the
// repository's per-id fetch.
type Creature struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Generation int      `json:"generation"`
	Legendary  bool     `json:"legendary,omitempty"`
	FlavorText string   `json:"flavor_text,omitempty"`
	HeightDm   int      `json:"height_dm,omitempty"` // decimetres
	WeightHg   int      `json:"weight_hg,omitempty"` // hectograms
}

// HasType reports whether the creature has the given type (case-sensitive;
// type ids are stored lower-cased).
func (c Creature) HasType(typeID string) bool {
	for _, t := range c.Types {
		if t == typeID {
			return true
		}
	}
	return false
}

// Ref returns the creature's lightweight listing reference.
func (c Creature) Ref() NamedRef {
	return NamedRef{ID: c.ID, Name: c.Name}
}
