package handlers

import "testing"

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"9123456789", true},
		{"6000000000", true},
		{"7999999999", true},
		{"8123456780", true},
		{"1234567890", false}, // first digit out of range
		{"5123456789", false},
		{"91234", false},          // too short
		{"91234567890", false},    // too long
		{"", false},
		{"98765 43210", true},     // separators stripped
		{"987-654-3210", true},
		{"+91 9876543210", false}, // country code makes 12 digits
		{"abcdefghij", false},
	}

	for _, c := range cases {
		if got := ValidPhone(c.phone); got != c.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", c.phone, got, c.want)
		}
	}
}

func TestFirstMissing(t *testing.T) {
	fields := map[string]string{"a": "x", "b": "  ", "c": ""}

	if got := firstMissing(fields, "a", "b", "c"); got != "b" {
		t.Errorf("firstMissing = %q, want b (whitespace counts as empty)", got)
	}
	if got := firstMissing(fields, "a"); got != "" {
		t.Errorf("firstMissing = %q, want empty", got)
	}
}
