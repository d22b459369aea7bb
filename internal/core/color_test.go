package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
		ok       bool
	}{
		{"cyan", ColorCyan, true},
		{"CYAN", ColorCyan, true},
		{" orange ", ColorOrange, true},
		{"bright_blue", ColorBrightBlue, true},
		{"purple", ColorMagenta, true},
		{"grey", ColorGray, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseColor(tc.input)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.input, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = (%v, %v), expected %v", c.String(), got, ok, c)
		}
	}
}
