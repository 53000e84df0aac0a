package depnode

import "testing"

func TestParseEntry_Function(t *testing.T) {
	entry, err := ParseEntry(`\N\foo`)
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if entry.Kind != EntryFunction || entry.Name != `\N\foo` {
		t.Errorf("got %+v, want Function(\\N\\foo)", entry)
	}
}

func TestParseEntry_Method(t *testing.T) {
	entry, err := ParseEntry("C::m")
	if err != nil {
		t.Fatalf("ParseEntry: %v", err)
	}
	if entry.Kind != EntryMethod || entry.Class != "C" || entry.Method != "m" {
		t.Errorf("got %+v, want Member(C, Method(m))", entry)
	}
}

func TestParseEntry_Malformed(t *testing.T) {
	tests := []string{"", "::m", "C::", "A::B::C"}
	for _, raw := range tests {
		if _, err := ParseEntry(raw); err == nil {
			t.Errorf("ParseEntry(%q): expected error", raw)
		}
	}
}
