package radix

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Preset is a named selector.
type Preset struct {
	Name     string
	Selector string
}

// Settings parses the preset's selector.
func (p Preset) Settings() Settings {
	return MustParseSettings(p.Selector)
}

// presets is ordered by radix.
var presets = []Preset{
	{Name: "base26", Selector: "ddi"},
	{Name: "base36", Selector: "dai"},
	{Name: "base52", Selector: "dds"},
	{Name: "base62", Selector: "das"},
	{Name: "base62-ordered", Selector: "dao"},
	{Name: "base68", Selector: "aai"},
	{Name: "base93-unixsafe", Selector: "uas"},
	{Name: "base94", Selector: "aas"},
}

// Presets returns the named selectors, ordered by radix.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset resolves a preset name, ignoring case.
func LookupPreset(name string) (Settings, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p.Settings(), true
		}
	}
	return Settings{}, false
}

// suggestPreset returns a "did you mean" hint for a mistyped preset name,
// or "" when nothing is close.
func suggestPreset(arg string) string {
	if arg == "" {
		return ""
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}

	ranks := fuzzy.RankFindFold(arg, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return "did you mean " + ranks[0].Target + "?"
}
