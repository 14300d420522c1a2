package icons

import "strings"

// ID identifies a catalog icon.
type ID string

const (
	Microphone ID = "microphone"
	Eye        ID = "eye"
)

// Definition describes a catalog icon.
type Definition struct {
	ID          ID
	Name        string
	Description string
	// Paths are outline path commands drawn on a 24x24 viewBox.
	Paths []string
}

var catalog = []Definition{
	{
		ID:          Microphone,
		Name:        "Microphone",
		Description: "Audio capture by the LaLiga app.",
		Paths: []string{
			"M19 11a7 7 0 01-7 7m0 0a7 7 0 01-7-7m7 7v4m0 0H8m4 0h4m-4-8a3 3 0 01-3-3V5a3 3 0 116 0v6a3 3 0 01-3 3z",
		},
	},
	{
		ID:          Eye,
		Name:        "Eye",
		Description: "Biometric surveillance at stadium gates.",
		Paths: []string{
			"M15 12a3 3 0 11-6 0 3 3 0 016 0z",
			"M2.458 12C3.732 7.943 7.523 5 12 5c4.478 0 8.268 2.943 9.542 7-1.274 4.057-5.064 7-9.542 7-4.477 0-8.268-2.943-9.542-7z",
		},
	},
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	id = ID(strings.TrimSpace(string(id)))
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
