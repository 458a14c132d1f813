package config

import "sort"

// Preset is a named games/sets pair.
type Preset struct {
	Games int
	Sets  int
	Info  string
}

var Presets = map[string]Preset{
	"coin":     {Games: 1, Sets: 1, Info: "a single flip"},
	"quick":    {Games: 10, Sets: 1, Info: "ten flips"},
	"season":   {Games: 100, Sets: 10, Info: "ten sets of a hundred"},
	"marathon": {Games: 1000, Sets: 100, Info: "a hundred thousand flips"},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
