package matching

import (
	"context"
	"fmt"

	"kundali-api/internal/domain/charts"
	"kundali-api/internal/ports/ephemeris"
)

// Service puntúa compatibilidad Ashtakoota entre dos kundalis.
// No depende de la efeméride: trabaja sobre charts ya derivadas.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Match aplica los ocho kootas sobre las lunas de ambas kundalis.
// El orden (novia, novio) importa: Varna y Tara son direccionales.
func (s *Service) Match(ctx context.Context, bride, groom charts.Kundali) (MatchResult, error) {
	bMoon, bNak, err := moonOf(bride)
	if err != nil {
		return MatchResult{}, fmt.Errorf("bride: %w", err)
	}
	gMoon, gNak, err := moonOf(groom)
	if err != nil {
		return MatchResult{}, fmt.Errorf("groom: %w", err)
	}

	scores := []KootaScore{
		varnaKoota(bMoon, gMoon),
		vashyaKoota(bMoon, gMoon),
		taraKoota(bNak, gNak),
		yoniKoota(bNak, gNak),
		maitriKoota(bMoon, gMoon),
		ganaKoota(bNak, gNak),
		bhakootKoota(bMoon, gMoon),
		nadiKoota(bNak, gNak),
	}

	var total float64
	for _, sc := range scores {
		total += sc.Points
	}

	return MatchResult{
		Scores:  scores,
		Total:   total,
		Max:     maxPoints,
		Verdict: verdictFor(total),
	}, nil
}

// moonOf extrae signo lunar (0..11) y nakshatra (0..26) de una kundali.
func moonOf(k charts.Kundali) (sign, nak int, err error) {
	if !k.Complete() {
		return 0, 0, ErrIncompleteChart
	}
	moon, ok := k.Position(ephemeris.Moon)
	if !ok {
		return 0, 0, ErrIncompleteChart
	}
	return moon.SignIndex, k.MoonNakshatra - 1, nil
}
