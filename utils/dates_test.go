package utils

import "testing"

func TestNormalizeISODateKeepsCanonicalInput(t *testing.T) {
	got := NormalizeISODate("2025-03-07")
	if got != "2025-03-07" {
		t.Fatalf("expected canonical input unchanged, got %q", got)
	}

	// Idempotence: normalizing a normalized value is a no-op.
	if again := NormalizeISODate(got); again != got {
		t.Fatalf("normalization is not idempotent: %q -> %q", got, again)
	}
}

func TestNormalizeISODateConvertsDayFirstForms(t *testing.T) {
	cases := map[string]string{
		"07-03-2025": "2025-03-07",
		"07/03/2025": "2025-03-07",
		"7-3-2025":   "2025-03-07",
		"7/3/2025":   "2025-03-07",
		"2025-3-7":   "2025-03-07",
	}

	for input, want := range cases {
		if got := NormalizeISODate(input); got != want {
			t.Errorf("NormalizeISODate(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeISODatePassesUnrecognizedInputThrough(t *testing.T) {
	for _, input := range []string{"", "not a date", "2025/13", "07.03.2025"} {
		if got := NormalizeISODate(input); got != input {
			t.Errorf("NormalizeISODate(%q) = %q, want input unchanged", input, got)
		}
	}
}
