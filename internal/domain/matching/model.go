package matching

import "errors"

// ErrIncompleteChart: alguna de las dos kundalis no tiene lo mínimo
// para puntuar (Luna, nakshatra válida).
var ErrIncompleteChart = errors.New("incomplete chart")

// KootaScore es el resultado de un koota individual.
type KootaScore struct {
	Name        string  `json:"name"`
	Points      float64 `json:"points"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

type Verdict string

const (
	VerdictUnfavorable Verdict = "unfavorable"
	VerdictAverage     Verdict = "average"
	VerdictFavorable   Verdict = "favorable"
)

// MatchResult agrega los ocho kootas. Total sobre 36.
type MatchResult struct {
	Scores  []KootaScore `json:"scores"`
	Total   float64      `json:"total"`
	Max     float64      `json:"max"`
	Verdict Verdict      `json:"verdict"`
}

const maxPoints = 36.0

func verdictFor(total float64) Verdict {
	switch {
	case total < 18:
		return VerdictUnfavorable
	case total < 24:
		return VerdictAverage
	default:
		return VerdictFavorable
	}
}
