package tfunc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCoefficients converts whitespace-separated numeric text into a
// coefficient vector. Surrounding brackets are tolerated, so "1 2 3"
// and "[1 2 3]" parse the same way.
func ParseCoefficients(text string) ([]float64, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "[")
	clean = strings.TrimSuffix(clean, "]")
	fields := strings.Fields(clean)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	coeffs := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q", ErrParse, f)
		}
		coeffs[i] = v
	}
	return coeffs, nil
}
