package view

import "testing"

func TestLineString(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{"empty", nil, ""},
		{"plain", Text("hello"), "hello"},
		{"spans", Line{{Text: "Health: "}, {Text: "130", Style: StyleHealth}}, "Health: 130"},
	}
	for _, tt := range tests {
		if got := tt.line.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestModelStrings(t *testing.T) {
	m := Model{Lines: []Line{Text("a"), Styled("b", StyleBold)}}
	got := m.Strings()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Strings() = %q", got)
	}
}
