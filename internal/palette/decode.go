package palette

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/shadefinder/internal/security"
)

// LoadFile reads a palette definition from a JSON or YAML file.
// The format is chosen by extension; anything else is tried as JSON, then YAML.
// The palette is named after the file.
func LoadFile(path string) (Definition, error) {
	data, err := security.ReadFile(path, security.MaxPaletteFileSize)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read palette file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(name, data)
	case ".yaml", ".yml":
		return DecodeYAML(name, data)
	default:
		if gjson.ValidBytes(data) {
			return DecodeJSON(name, data)
		}
		def, err := DecodeYAML(name, data)
		if err != nil {
			return Definition{}, fmt.Errorf("failed to parse palette as JSON or YAML: %w", err)
		}
		return def, nil
	}
}

// DecodeJSON decodes {"Family": {"shade": "#hex", ...}, ...}, keeping the
// order in which families and shades appear in the document.
func DecodeJSON(name string, data []byte) (Definition, error) {
	if !gjson.ValidBytes(data) {
		return Definition{}, fmt.Errorf("invalid JSON in palette %s", name)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Definition{}, fmt.Errorf("palette %s: top level must be an object of families", name)
	}

	def := Definition{Name: name}
	var decodeErr error

	root.ForEach(func(familyKey, familyValue gjson.Result) bool {
		if !familyValue.IsObject() {
			decodeErr = fmt.Errorf("palette %s: family %q must be an object of shades", name, familyKey.String())
			return false
		}

		family := Family{Name: familyKey.String()}
		familyValue.ForEach(func(shadeKey, shadeValue gjson.Result) bool {
			if shadeValue.Type != gjson.String {
				decodeErr = fmt.Errorf("palette %s: %s/%s must be a hex string", name, family.Name, shadeKey.String())
				return false
			}
			family.Shades = append(family.Shades, Shade{Name: shadeKey.String(), Hex: shadeValue.String()})
			return true
		})
		if decodeErr != nil {
			return false
		}

		def.Families = append(def.Families, family)
		return true
	})

	if decodeErr != nil {
		return Definition{}, decodeErr
	}
	return def, nil
}

// DecodeYAML decodes the same family -> shade -> hex mapping from YAML,
// keeping document order. Hex values must be quoted since '#' starts a
// YAML comment; an unquoted value decodes as empty and is dropped later
// by Flatten.
func DecodeYAML(name string, data []byte) (Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("failed to parse YAML palette %s: %w", name, err)
	}

	def := Definition{Name: name}
	if len(doc.Content) == 0 {
		return def, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Definition{}, fmt.Errorf("palette %s: top level must be a mapping of families", name)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		familyKey, familyValue := root.Content[i], root.Content[i+1]
		if familyValue.Kind != yaml.MappingNode {
			return Definition{}, fmt.Errorf("palette %s: family %q must be a mapping of shades", name, familyKey.Value)
		}

		family := Family{Name: familyKey.Value}
		for j := 0; j+1 < len(familyValue.Content); j += 2 {
			shadeKey, shadeValue := familyValue.Content[j], familyValue.Content[j+1]
			if shadeValue.Kind != yaml.ScalarNode {
				return Definition{}, fmt.Errorf("palette %s: %s/%s must be a hex string", name, family.Name, shadeKey.Value)
			}
			family.Shades = append(family.Shades, Shade{Name: shadeKey.Value, Hex: shadeValue.Value})
		}

		def.Families = append(def.Families, family)
	}

	return def, nil
}
