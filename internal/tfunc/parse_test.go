package tfunc

import (
	"errors"
	"testing"
)

func TestParseCoefficients(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []float64
		wantErr bool
	}{
		{"plain", "1 2 3", []float64{1, 2, 3}, false},
		{"bracketed", "[1 5 6]", []float64{1, 5, 6}, false},
		{"floats", "0.1 -2.5 1e3", []float64{0.1, -2.5, 1000}, false},
		{"extra whitespace", "  1\t2  ", []float64{1, 2}, false},
		{"empty", "   ", nil, true},
		{"non-numeric", "1 two 3", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoefficients(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("expected ErrParse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("coeff[%d] = %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}
