package config

// Planet is one entry of the gravity preset table. Surface gravities in m/s².
type Planet struct {
	Name    string
	Gravity float64
}

// CustomPlanet selects the user-supplied gravity value instead of a preset.
const CustomPlanet = "custom"

var planets = []Planet{
	{"mercury", 3.70},
	{"venus", 8.87},
	{"earth", 9.81},
	{"moon", 1.62},
	{"mars", 3.71},
	{"jupiter", 24.79},
	{"saturn", 10.44},
	{"uranus", 8.87},
	{"neptune", 11.15},
}

// Planets returns the preset table in selector order, custom last.
func Planets() []Planet {
	out := make([]Planet, len(planets), len(planets)+1)
	copy(out, planets)
	return append(out, Planet{Name: CustomPlanet})
}

// PlanetGravity looks up a preset by name. Custom and unknown names report
// false so the caller falls back to the user gravity.
func PlanetGravity(name string) (float64, bool) {
	for _, p := range planets {
		if p.Name == name {
			return p.Gravity, true
		}
	}
	return 0, false
}
