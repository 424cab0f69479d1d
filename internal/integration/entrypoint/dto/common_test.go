package dto

import (
	"testing"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "25000", want: "25000"},
		{name: "two decimals", input: "1234.56", want: "1234.56"},
		{name: "one decimal", input: "99.5", want: "99.5"},
		{name: "surrounding whitespace", input: " 100.00 ", want: "100"},
		{name: "zero rejected", input: "0", wantErr: true},
		{name: "negative rejected", input: "-10", wantErr: true},
		{name: "three decimals rejected", input: "10.005", wantErr: true},
		{name: "not a number", input: "diez mil", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMoney(%q) = %s, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoney(%q) returned error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseMoney(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOptionalMoney(t *testing.T) {
	t.Run("zero allowed", func(t *testing.T) {
		got, err := ParseOptionalMoney("0")
		if err != nil {
			t.Fatalf("ParseOptionalMoney(0) returned error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("got %s, want 0", got)
		}
	})

	t.Run("negative rejected", func(t *testing.T) {
		if _, err := ParseOptionalMoney("-0.01"); err == nil {
			t.Fatal("expected error for negative amount")
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseDate("2025-03-15")
		if err != nil {
			t.Fatalf("ParseDate returned error: %v", err)
		}
		if got.Year() != 2025 || got.Month() != 3 || got.Day() != 15 {
			t.Errorf("got %v", got)
		}
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, input := range []string{"15/03/2025", "2025-3-15", "2025-03-15T00:00:00Z", ""} {
			if _, err := ParseDate(input); err == nil {
				t.Errorf("ParseDate(%q) succeeded, want error", input)
			}
		}
	})
}
