package generator

import "fmt"

// InvalidRangeError reports bounds that cannot describe a non-empty range.
type InvalidRangeError struct {
	Field string
	Min   int
	Max   int
}

func (e *InvalidRangeError) Error() string {
	if e.Field == "count" {
		return fmt.Sprintf("invalid circuit count %d: must be >= 0", e.Min)
	}
	return fmt.Sprintf("invalid %s range [%d, %d]: need 1 <= min <= max", e.Field, e.Min, e.Max)
}

func checkRange(field string, lo, hi int) error {
	if lo < 1 || hi < lo {
		return &InvalidRangeError{Field: field, Min: lo, Max: hi}
	}
	return nil
}
