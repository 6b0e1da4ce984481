package present

// MaxStat is the value at which a stat bar is drawn full.
const MaxStat = 255

type Band int

const (
	BandWeak Band = iota + 1
	BandLow
	BandMid
	BandHigh
	BandMax
)

var bandColors = map[Band]string{
	BandWeak: "#ff7675",
	BandLow:  "#fdcb6e",
	BandMid:  "#74b9ff",
	BandHigh: "#55efc4",
	BandMax:  "#a29bfe",
}

var bandNames = map[Band]string{
	BandWeak: "weak",
	BandLow:  "low",
	BandMid:  "mid",
	BandHigh: "high",
	BandMax:  "max",
}

// BandFor maps a raw stat value onto its color band. Lower bounds are
// inclusive.
func BandFor(value int) Band {
	switch {
	case value < 50:
		return BandWeak
	case value < 80:
		return BandLow
	case value < 100:
		return BandMid
	case value < 120:
		return BandHigh
	default:
		return BandMax
	}
}

func (b Band) Color() string {
	return bandColors[b]
}

func (b Band) String() string {
	if name, ok := bandNames[b]; ok {
		return name
	}
	return "unknown"
}

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
	"speed":           "Speed",
}

// StatLabel returns the display label for a stat key, or the key itself when
// it is not one of the six known stats.
func StatLabel(key string) string {
	if label, ok := statLabels[key]; ok {
		return label
	}
	return key
}

func KnownStat(key string) bool {
	_, ok := statLabels[key]
	return ok
}
