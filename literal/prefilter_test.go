package literal

import "testing"

func mustPrefilter(t *testing.T, alternatives []string) *Prefilter {
	t.Helper()
	p, err := NewPrefilter(alternatives)
	if err != nil {
		t.Fatalf("NewPrefilter(%v) returned error: %v", alternatives, err)
	}
	return p
}

func TestWholeStringExactMatch(t *testing.T) {
	p := mustPrefilter(t, []string{"foo", "bar", "baz"})
	for _, in := range []string{"foo", "bar", "baz"} {
		accepted, definitive := p.WholeString(in)
		if !definitive || !accepted {
			t.Errorf("WholeString(%q) = (%v, %v), want (true, true)", in, accepted, definitive)
		}
	}
}

func TestWholeStringNoOccurrence(t *testing.T) {
	p := mustPrefilter(t, []string{"foo", "bar"})
	for _, in := range []string{"", "qux", "fo", "ba"} {
		accepted, definitive := p.WholeString(in)
		if !definitive || accepted {
			t.Errorf("WholeString(%q) = (%v, %v), want (false, true)", in, accepted, definitive)
		}
	}
}

func TestWholeStringSubstringOnlyIsInconclusive(t *testing.T) {
	p := mustPrefilter(t, []string{"ab"})
	// "ab" occurs inside "aab" but doesn't span it, so the prefilter
	// can't rule either way.
	if _, definitive := p.WholeString("aab"); definitive {
		t.Error("WholeString(\"aab\") definitive, want inconclusive")
	}
}

func TestPrefilterLen(t *testing.T) {
	p := mustPrefilter(t, []string{"a", "b", "c"})
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}
