package validation

import "testing"

func TestValidateDate(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2020-06-15", true},
		{"1957-10-04", true},
		{"2020-6-15", false},
		{"2020-02-30", false},
		{"2020-06-15 10:00:00", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		err := ValidateDate(tt.value)
		if tt.ok && err != nil {
			t.Errorf("ValidateDate(%q): unexpected error %v", tt.value, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ValidateDate(%q): expected error", tt.value)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		year int
	}{
		{"2020-06-15", "2020-06-15", 2020},
		{"  1957-10-04  ", "1957-10-04", 1957},
		{"2008-09-28 23:15:00+00:00", "2008-09-28", 2008},
		{"2021-01-01T00:00:00", "2021-01-01", 2021},
	}

	for _, tt := range tests {
		got, year, err := NormalizeDate(tt.raw)
		if err != nil {
			t.Errorf("NormalizeDate(%q): unexpected error %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if year != tt.year {
			t.Errorf("NormalizeDate(%q) year = %d, want %d", tt.raw, year, tt.year)
		}
	}

	if _, _, err := NormalizeDate("Fri Aug 07, 2020"); err == nil {
		t.Error("Expected error for non ISO date")
	}
}

func TestParseYear(t *testing.T) {
	if y, err := ParseYear(" 2020 "); err != nil || y != 2020 {
		t.Errorf("ParseYear: got %d, %v", y, err)
	}
	for _, bad := range []string{"", "twenty", "20.5", "0", "10000"} {
		if _, err := ParseYear(bad); err == nil {
			t.Errorf("ParseYear(%q): expected error", bad)
		}
	}
}

func TestParseLimit(t *testing.T) {
	if n, err := ParseLimit("0"); err != nil || n != 0 {
		t.Errorf("ParseLimit(0): got %d, %v", n, err)
	}
	if n, err := ParseLimit("25"); err != nil || n != 25 {
		t.Errorf("ParseLimit(25): got %d, %v", n, err)
	}
	for _, bad := range []string{"-1", "ten", ""} {
		if _, err := ParseLimit(bad); err == nil {
			t.Errorf("ParseLimit(%q): expected error", bad)
		}
	}
}
