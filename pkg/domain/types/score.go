package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Score boundaries for the ordinal scoring scale. Every sub-factor (impact,
// attainability, follow-up) is scored on this scale, so a composite score
// ranges from ScoreMin*3 to ScoreMax*3.
const (
	ScoreMin = 0
	ScoreMax = 5
)

// Score is an ordinal sub-factor value on the 0-5 scale. A missing sub-factor
// is represented by the zero value, never by an error.
type Score int

// Validate checks if the score is within the ordinal scale
func (s Score) Validate() error {
	if s < ScoreMin || s > ScoreMax {
		return goerr.New("score must be between 0 and 5", goerr.V("score", int(s)))
	}
	return nil
}

// Clamp forces the score onto the ordinal scale. Out-of-range input from an
// external snapshot is pinned to the nearest bound rather than rejected.
func (s Score) Clamp() Score {
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}

// Int returns the score as a plain int
func (s Score) Int() int {
	return int(s)
}
