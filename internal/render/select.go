package render

import "thermocode-go/types"

// Select picks the reading the display should show given the two
// channel enable flags and the latest readings.
//
// Neither channel enabled turns the display logically off. A single
// enabled channel is shown verbatim, valid or not. With both enabled
// the result is the mean when both readings are valid, the one valid
// reading when only one is, and invalid otherwise.
func Select(en1, en2 bool, r1, r2 types.Reading) (types.Reading, bool) {
	switch {
	case !en1 && !en2:
		return types.Reading{}, true
	case en1 && !en2:
		return r1, false
	case !en1 && en2:
		return r2, false
	}

	switch {
	case r1.Valid && r2.Valid:
		return types.Reading{MilliC: (r1.MilliC + r2.MilliC) / 2, Valid: true}, false
	case r1.Valid:
		return r1, false
	case r2.Valid:
		return r2, false
	}
	return types.Reading{}, false
}
