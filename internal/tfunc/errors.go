package tfunc

import "errors"

// Construction and parsing errors.
var (
	// ErrDegenerateSystem indicates a denominator that is empty or all
	// zeros after leading-zero trimming.
	ErrDegenerateSystem = errors.New("tfunc: degenerate system (empty or zero denominator)")

	// ErrParse indicates malformed coefficient text.
	ErrParse = errors.New("tfunc: invalid coefficient text")
)
