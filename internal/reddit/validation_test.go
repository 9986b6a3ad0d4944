package reddit

import "testing"

func TestNormalizeSubreddit(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"golang", "golang"},
		{"r/golang", "golang"},
		{"/r/golang/", "golang"},
		{"R/golang", "golang"},
		{"  golang  ", "golang"},
		{"r/", "r"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSubreddit(tt.input); got != tt.expected {
			t.Errorf("NormalizeSubreddit(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestValidateSubreddit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "golang", false},
		{"underscore", "u_spez", false},
		{"multi", "golang+rust", false},
		{"empty", "", true},
		{"slash", "go/lang", true},
		{"space", "go lang", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubreddit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubreddit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		limit   int
		wantErr bool
	}{
		{1, false},
		{5, false},
		{100, false},
		{0, true},
		{-3, true},
		{101, true},
	}

	for _, tt := range tests {
		err := ValidateLimit(tt.limit)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLimit(%d) error = %v, wantErr %v", tt.limit, err, tt.wantErr)
		}
	}
}

func TestValidateTimeframe(t *testing.T) {
	for _, tf := range ValidTimeframes {
		if err := ValidateTimeframe(tf); err != nil {
			t.Errorf("ValidateTimeframe(%q) unexpected error: %v", tf, err)
		}
	}
	for _, tf := range []string{"", "Day", "decade"} {
		if err := ValidateTimeframe(tf); err == nil {
			t.Errorf("ValidateTimeframe(%q) expected error", tf)
		}
	}
}

func TestNormalizeFullname(t *testing.T) {
	tests := []struct {
		id       string
		prefix   string
		expected string
	}{
		{"abc123", "t1_", "t1_abc123"},
		{"t1_abc123", "t1_", "t1_abc123"},
		{" abc ", "t1_", "t1_abc"},
		{"t3_xyz", "t1_", "t3_xyz"},
		{"", "t1_", ""},
	}

	for _, tt := range tests {
		if got := NormalizeFullname(tt.id, tt.prefix); got != tt.expected {
			t.Errorf("NormalizeFullname(%q, %q) = %q, want %q", tt.id, tt.prefix, got, tt.expected)
		}
	}
}

func TestValidateFullname(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		prefixes []string
		wantErr  bool
	}{
		{"comment", "t1_abc", nil, false},
		{"link restricted", "t3_abc", []string{"t1_", "t3_"}, false},
		{"wrong kind", "t5_abc", []string{"t1_", "t3_"}, true},
		{"bare id", "abc", nil, true},
		{"uppercase", "t1_ABC", nil, true},
		{"unknown kind", "t9_abc", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFullname("id", tt.id, tt.prefixes...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFullname(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.expected {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}
