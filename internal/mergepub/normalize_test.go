package mergepub

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases", "AI in Healthcare", "ai in healthcare"},
		{"strips leading numbering", "12. Deep Learning Advances", "deep learning advances"},
		{"strips parenthesized numbering", "(3) Edge Computing Survey", "edge computing survey"},
		{"strips trailing parenthesized year", "AI in Healthcare (2021)", "ai in healthcare"},
		{"strips trailing dash year", "AI in Healthcare - 2021", "ai in healthcare"},
		{"strips trailing bare year", "AI in Healthcare 2021", "ai in healthcare"},
		{"collapses whitespace", "  AI   in \t Healthcare ", "ai in healthcare"},
		{"year inside title survives", "Predictions for 2030 and beyond", "predictions for 2030 and beyond"},
		{"digits glued to a word survive", "bert2021 fine-tuning", "bert2021 fine-tuning"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.raw); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"12. AI in Healthcare (2021)",
		"1. 2. doubly numbered",
		"Graph Networks 2019 2020",
		"plain title",
		"",
	}
	for _, raw := range inputs {
		once := NormalizeTitle(raw)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeEquatesCaseAndYearVariants(t *testing.T) {
	pairs := [][2]string{
		{"AI in Healthcare", "ai in healthcare"},
		{"X (2021)", "x 2021"},
		{"3. Quantum Sensing (2020)", "Quantum Sensing"},
	}
	for _, p := range pairs {
		if NormalizeTitle(p[0]) != NormalizeTitle(p[1]) {
			t.Errorf("expected %q and %q to normalize equal, got %q vs %q",
				p[0], p[1], NormalizeTitle(p[0]), NormalizeTitle(p[1]))
		}
	}
}

func TestIsMeaningful(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"ai in healthcare", true},
		{"gpt", true},
		{"-", false},
		{"—", false},
		{"•", false},
		{".;:", false},
		{"12", false},
		{"123456", false},
		{"- - -", false},
		{"___", false},
		{"none", false},
		{"n/a", false},
		{"2021 study of x", true},
		{"", false},
		{"  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := IsMeaningful(tt.title); got != tt.want {
				t.Errorf("IsMeaningful(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}
