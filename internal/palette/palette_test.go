package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/shadefinder/internal/colour"
)

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key()
	}
	return out
}

func TestFlatten(t *testing.T) {
	def := Definition{
		Name: "test",
		Families: []Family{
			{Name: "Red", Shades: []Shade{
				{Name: "500", Hex: "#FF0000"},
				{Name: "600", Hex: "#f00"},
			}},
			{Name: "Grey", Shades: []Shade{
				{Name: "100", Hex: "#EEEEEE"},
			}},
		},
	}

	entries := Flatten(def)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Red/500", "Red/600", "Grey/100"}, keys(entries))
	assert.Equal(t, colour.Opaque(255, 0, 0), entries[0].Color)
	assert.Equal(t, colour.Opaque(255, 0, 0), entries[1].Color)
	assert.Equal(t, "#f00", entries[1].Hex)
	assert.Equal(t, "Grey 100", entries[2].Label())
}

func TestFlattenDropsMalformedHex(t *testing.T) {
	def := Definition{Families: []Family{
		{Name: "Red", Shades: []Shade{
			{Name: "50", Hex: "#FEF2F2"},
			{Name: "bad", Hex: "#GGGGGG"},
			{Name: "short", Hex: "#12"},
			{Name: "empty", Hex: ""},
			{Name: "500", Hex: "#EF4444"},
		}},
	}}

	entries := Flatten(def)

	assert.Equal(t, []string{"Red/50", "Red/500"}, keys(entries))
	assert.Equal(t, 5, def.Len())
}

func TestFlattenKeepsFirstDuplicate(t *testing.T) {
	def := Definition{Families: []Family{
		{Name: "Blue", Shades: []Shade{
			{Name: "500", Hex: "#0000FF"},
			{Name: "500", Hex: "#000080"},
		}},
		{Name: "Blue", Shades: []Shade{
			{Name: "500", Hex: "#3B82F6"},
			{Name: "600", Hex: "#2563EB"},
		}},
	}}

	entries := Flatten(def)

	require.Len(t, entries, 2)
	assert.Equal(t, "#0000FF", entries[0].Hex)
	assert.Equal(t, "Blue/600", entries[1].Key())
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten(Definition{}))
	assert.Empty(t, Flatten(Definition{Families: []Family{{Name: "Empty"}}}))
}

func TestDefinitionFamily(t *testing.T) {
	def := Definition{Families: []Family{{Name: "Red"}, {Name: "Blue"}}}

	f, ok := def.Family("Blue")
	assert.True(t, ok)
	assert.Equal(t, "Blue", f.Name)

	_, ok = def.Family("Green")
	assert.False(t, ok)
}

func TestDecodeJSONPreservesOrder(t *testing.T) {
	data := []byte(`{
		"Zinc":  {"900": "#18181B", "50": "#FAFAFA"},
		"Amber": {"500": "#F59E0B"}
	}`)

	def, err := DecodeJSON("custom", data)
	require.NoError(t, err)

	assert.Equal(t, "custom", def.Name)
	require.Len(t, def.Families, 2)
	assert.Equal(t, "Zinc", def.Families[0].Name)
	assert.Equal(t, []Shade{{Name: "900", Hex: "#18181B"}, {Name: "50", Hex: "#FAFAFA"}}, def.Families[0].Shades)
	assert.Equal(t, "Amber", def.Families[1].Name)
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := map[string]string{
		"invalid":        `{"Red": `,
		"array":          `["#fff"]`,
		"family string":  `{"Red": "#ff0000"}`,
		"shade number":   `{"Red": {"500": 255}}`,
		"shade as array": `{"Red": {"500": ["#ff0000"]}}`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeJSON("bad", []byte(data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeYAMLPreservesOrder(t *testing.T) {
	data := []byte(`
Teal:
  900: "#134E4A"
  50: "#F0FDFA"
Brand Blue:
  primary: '#1D4ED8'
  unquoted: #1D4ED8
`)

	def, err := DecodeYAML("brand", data)
	require.NoError(t, err)

	require.Len(t, def.Families, 2)
	assert.Equal(t, "Teal", def.Families[0].Name)
	assert.Equal(t, "900", def.Families[0].Shades[0].Name)
	assert.Equal(t, "Brand Blue", def.Families[1].Name)
	require.Len(t, def.Families[1].Shades, 2)

	// The unquoted hex is a YAML comment, so the shade is dropped on flattening.
	assert.Equal(t, []string{"Teal/900", "Teal/50", "Brand Blue/primary"}, keys(Flatten(def)))
}

func TestDecodeYAMLErrors(t *testing.T) {
	_, err := DecodeYAML("bad", []byte("- a\n- b\n"))
	assert.Error(t, err)

	_, err = DecodeYAML("bad", []byte("Red: \"#ff0000\"\n"))
	assert.Error(t, err)

	_, err = DecodeYAML("bad", []byte("Red:\n  500: [1, 2]\n"))
	assert.Error(t, err)

	_, err = DecodeYAML("bad", []byte("Red: [\n"))
	assert.Error(t, err)

	def, err := DecodeYAML("empty", nil)
	require.NoError(t, err)
	assert.Empty(t, def.Families)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("json", func(t *testing.T) {
		def, err := LoadFile(write("brand.json", `{"Red": {"500": "#ff0000"}}`))
		require.NoError(t, err)
		assert.Equal(t, "brand", def.Name)
		assert.Equal(t, 1, def.Len())
	})

	t.Run("yaml", func(t *testing.T) {
		def, err := LoadFile(write("brand.yml", "Red:\n  500: \"#ff0000\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "brand", def.Name)
		assert.Equal(t, 1, def.Len())
	})

	t.Run("unknown extension json", func(t *testing.T) {
		def, err := LoadFile(write("colours.palette", `{"Red": {"500": "#ff0000"}}`))
		require.NoError(t, err)
		assert.Equal(t, "colours", def.Name)
	})

	t.Run("unknown extension yaml", func(t *testing.T) {
		def, err := LoadFile(write("colours.txt", "Red:\n  500: \"#ff0000\"\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, def.Len())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadFile(write("broken.json", `{"Red": `))
		assert.Error(t, err)
	})
}

func TestBuiltin(t *testing.T) {
	for _, src := range Sources() {
		t.Run(string(src), func(t *testing.T) {
			def, err := Builtin(src)
			require.NoError(t, err)

			assert.Equal(t, string(src), def.Name)
			assert.Len(t, def.Families, 19)

			entries := Flatten(def)
			assert.Len(t, entries, def.Len(), "every built-in shade should parse")
			assert.Equal(t, "Red/50", entries[0].Key())
		})
	}

	_, err := Builtin(Source("missing"))
	assert.Error(t, err)
}

func TestBuiltinKnownShades(t *testing.T) {
	general, err := Builtin(SourceGeneral)
	require.NoError(t, err)
	red, ok := general.Family("Red")
	require.True(t, ok)
	assert.Contains(t, red.Shades, Shade{Name: "500", Hex: "#EF4444"})

	additional, err := Builtin(SourceAdditional)
	require.NoError(t, err)
	_, ok = additional.Family("Deep Orange")
	assert.True(t, ok)
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource(" Additional ")
	require.NoError(t, err)
	assert.Equal(t, SourceAdditional, src)

	_, err = ParseSource("tailwind")
	assert.Error(t, err)

	var flag Source
	require.NoError(t, flag.Set("general"))
	assert.Equal(t, SourceGeneral, flag)
	assert.Equal(t, "palette", flag.Type())
	assert.Error(t, flag.Set("other"))
}

func TestIndex(t *testing.T) {
	ix, err := NewBuiltinIndex()
	require.NoError(t, err)
	assert.Equal(t, []string{"general", "additional"}, ix.Names())

	entries, err := ix.Entries("general")
	require.NoError(t, err)
	assert.Len(t, entries, 190)

	_, err = ix.Entries("brand")
	assert.Error(t, err)

	ix.Add(Definition{Name: "brand", Families: []Family{{Name: "Ink", Shades: []Shade{{Name: "1", Hex: "#111"}}}}})
	ix.Add(Definition{Name: "brand", Families: []Family{{Name: "Ink", Shades: []Shade{{Name: "2", Hex: "#222"}}}}})
	assert.Equal(t, []string{"general", "additional", "brand"}, ix.Names())

	entries, err = ix.Entries("brand")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ink/2"}, keys(entries))

	def, ok := ix.Definition("brand")
	assert.True(t, ok)
	assert.Equal(t, 1, def.Len())
}
