package catalog

// Record is one catalog entry. Height and Weight are in tenths of a metre and
// a kilogram. BaseExperience is zero when the provider reports none.
type Record struct {
	ID             int
	Name           string
	Types          []string
	Stats          []Stat
	Abilities      []string
	Image          ImageRefs
	Height         int
	Weight         int
	BaseExperience int
	Species        string
}

type Stat struct {
	Name string
	Base int
}

// ImageRefs holds the preferred artwork reference and the default sprite.
type ImageRefs struct {
	Artwork string
	Sprite  string
}

// Preferred returns the artwork reference, falling back to the sprite. It
// returns "" when neither is present.
func (i ImageRefs) Preferred() string {
	if i.Artwork != "" {
		return i.Artwork
	}
	return i.Sprite
}

func (r Record) HasType(label string) bool {
	for _, t := range r.Types {
		if t == label {
			return true
		}
	}
	return false
}
