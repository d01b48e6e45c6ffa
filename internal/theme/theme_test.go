package theme

import "testing"

func TestEffective(t *testing.T) {
	if got := Effective(Dark); got != Dark {
		t.Errorf("Effective(dark) = %q", got)
	}
	if got := Effective(Light); got != Light {
		t.Errorf("Effective(light) = %q", got)
	}

	// "system" and junk both resolve through Detect to a concrete theme.
	for _, in := range []string{System, "", "neon"} {
		got := Effective(in)
		if got != Dark && got != Light {
			t.Errorf("Effective(%q) = %q, want dark or light", in, got)
		}
	}
}
