package textutil

import "testing"

func TestWidth(t *testing.T) {
	if w := Width("지도"); w != 4 {
		t.Errorf("expected 4 columns for two hangul runes, got %d", w)
	}
	if w := Width("Map"); w != 3 {
		t.Errorf("expected 3, got %d", w)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Journey", 10, "Journey"},
		{"Journey", 4, "Jou…"},
		{"프로필", 4, "프…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if Width(Truncate(tt.in, tt.max)) > tt.max && tt.max > 0 {
			t.Errorf("Truncate(%q, %d) exceeds width", tt.in, tt.max)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("홈", 6); got != "홈    " {
		t.Errorf("expected hangul padded to 6 columns, got %q", got)
	}
	if got := PadRight("Profile", 4); Width(got) != 4 {
		t.Errorf("expected 4 columns, got %q", got)
	}
}
