package nav

import "testing"

func TestTargets_Order(t *testing.T) {
	want := []string{"Home", "Map", "Journey", "Diary", "Profile"}
	got := Targets()
	if len(got) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(got))
	}
	for i, tg := range got {
		if tg.String() != want[i] {
			t.Errorf("target %d: expected %s, got %s", i, want[i], tg)
		}
		if !tg.Valid() {
			t.Errorf("%s should be valid", tg)
		}
	}
}

func TestTarget_StringUnknown(t *testing.T) {
	if s := Target(9).String(); s != "Target(9)" {
		t.Errorf("expected Target(9), got %q", s)
	}
	if Target(-1).Valid() || Target(5).Valid() {
		t.Error("out-of-range targets should be invalid")
	}
}

func TestParseTarget(t *testing.T) {
	for _, s := range []string{"home", "MAP", " Journey ", "diary", "Profile"} {
		if _, err := ParseTarget(s); err != nil {
			t.Errorf("ParseTarget(%q): %v", s, err)
		}
	}
	if tg, _ := ParseTarget("diary"); tg != Diary {
		t.Errorf("expected Diary, got %s", tg)
	}
	if _, err := ParseTarget("news"); err == nil {
		t.Error("expected error for unknown target")
	}
}

func TestTable_Missing(t *testing.T) {
	tb, _ := testTable()
	if m := tb.Missing(); len(m) != 0 {
		t.Errorf("expected total table, missing %v", m)
	}
	delete(tb, Journey)
	delete(tb, Home)
	m := tb.Missing()
	if len(m) != 2 || m[0] != Home || m[1] != Journey {
		t.Errorf("expected [Home Journey], got %v", m)
	}
}
