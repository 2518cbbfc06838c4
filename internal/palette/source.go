package palette

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.json
var builtinData embed.FS

// Source names one of the built-in palettes.
type Source string

const (
	// SourceGeneral is the main company palette.
	SourceGeneral Source = "general"

	// SourceAdditional is the secondary palette of extended families.
	SourceAdditional Source = "additional"
)

// Sources returns every built-in palette name.
func Sources() []Source {
	return []Source{SourceGeneral, SourceAdditional}
}

// ParseSource maps a name (case-insensitive) to a Source.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceGeneral:
		return SourceGeneral, nil
	case SourceAdditional:
		return SourceAdditional, nil
	default:
		return "", fmt.Errorf("unknown palette: %s (valid palettes: %v)", s, Sources())
	}
}

// String implements pflag.Value.
func (s Source) String() string {
	return string(s)
}

// Set implements pflag.Value.
func (s *Source) Set(v string) error {
	parsed, err := ParseSource(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Source) Type() string {
	return "palette"
}

// Builtin decodes one of the embedded palettes.
func Builtin(src Source) (Definition, error) {
	if _, err := ParseSource(string(src)); err != nil {
		return Definition{}, err
	}

	data, err := builtinData.ReadFile("data/" + string(src) + ".json")
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read built-in palette %s: %w", src, err)
	}

	return DecodeJSON(string(src), data)
}
