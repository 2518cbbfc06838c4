package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Name", "Hex"})
	table.AddRow([]string{"Red 500", "#EF4444"})
	table.AddRow([]string{"Sky 50", "#F0F9FF"})

	want := strings.Join([]string{
		"Name     Hex    ",
		"-------  -------",
		"Red 500  #EF4444",
		"Sky 50   #F0F9FF",
		"",
	}, "\n")

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableRowsFitHeaders(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want []string
	}{
		{name: "exact", row: []string{"Teal", "500"}, want: []string{"Teal", "500"}},
		{name: "short row is padded", row: []string{"Teal"}, want: []string{"Teal", ""}},
		{name: "long row is cut", row: []string{"Teal", "500", "extra"}, want: []string{"Teal", "500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable([]string{"Family", "Shade"})
			table.AddRow(tt.row)

			got := table.rows[0]
			if len(got) != len(tt.want) {
				t.Fatalf("row = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTableEdges(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("no headers: Render() = %q, want empty", got)
	}

	got := NewTable([]string{"Palette", "Shades"}).Render()
	if got != "Palette  Shades\n-------  ------\n" {
		t.Errorf("headers only: Render() = %q", got)
	}
}

func TestTableRightAlign(t *testing.T) {
	table := NewTable([]string{"Name", "Δ"})
	table.SetRightAlign(1)
	table.AddRow([]string{"Red 500", "2"})
	table.AddRow([]string{"Red 600", "100"})

	lines := strings.Split(table.Render(), "\n")
	if lines[0] != "Name       Δ" {
		t.Errorf("header = %q, want Δ aligned right", lines[0])
	}
	if lines[2] != "Red 500    2" {
		t.Errorf("row = %q, want right-aligned number", lines[2])
	}
	if lines[3] != "Red 600  100" {
		t.Errorf("row = %q, want right-aligned number", lines[3])
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		s     string
		width int
		left  string
		right string
	}{
		{s: "ab", width: 4, left: "  ab", right: "ab  "},
		{s: "abcd", width: 2, left: "abcd", right: "abcd"},
		{s: "Δ", width: 3, left: "  Δ", right: "Δ  "},
		{s: "\x1b[31mx\x1b[0m", width: 2, left: " \x1b[31mx\x1b[0m", right: "\x1b[31mx\x1b[0m "},
	}

	for _, tt := range tests {
		if got := padLeft(tt.s, tt.width); got != tt.left {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.left)
		}
		if got := padRight(tt.s, tt.width); got != tt.right {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.right)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"Δ", 1},
		{"\x1b[48;2;255;0;0m    \x1b[0m", 4},
		{"\x1b[38;5;196mred\x1b[0m text", 8},
	}

	for _, tt := range tests {
		if got := visibleWidth(tt.input); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTableColouredCells(t *testing.T) {
	swatch := "\x1b[48;2;255;0;0m  \x1b[0m"
	table := NewTable([]string{"", "Name"})
	table.AddRow([]string{swatch, "Red"})

	lines := strings.Split(table.Render(), "\n")
	if lines[1] != "--  ----" {
		t.Errorf("separator = %q, want widths from visible text", lines[1])
	}
	if lines[2] != swatch+"  Red " {
		t.Errorf("row = %q, want swatch padded by visible width", lines[2])
	}
}
