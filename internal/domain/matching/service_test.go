package matching

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"kundali-api/internal/domain/charts"
	"kundali-api/internal/ports/ephemeris"
)

// kundaliWithMoon arma la kundali mínima que acepta el matcher:
// todas las posiciones presentes, con la Luna en la longitud pedida.
func kundaliWithMoon(t *testing.T, moonLon float64) charts.Kundali {
	t.Helper()

	k := charts.Kundali{
		UTC:  time.Date(1990, 5, 15, 5, 0, 0, 0, time.UTC),
		Zone: "test",
	}
	for _, b := range ephemeris.Bodies() {
		lon := 10.0
		if b == ephemeris.Moon {
			lon = moonLon
		}
		k.Positions = append(k.Positions, charts.PlanetPosition{
			Body:      b,
			Longitude: lon,
			SignIndex: int(lon / 30),
			House:     1,
		})
	}
	k.MoonNakshatra = 1 + int(moonLon/(360.0/27.0))
	k.MoonPada = 1

	if !k.Complete() {
		t.Fatal("test kundali should be complete")
	}
	return k
}

func TestMatch_KnownPair(t *testing.T) {
	svc := NewService()

	// Novia: Luna a 5° (Aries, Ashwini). Novio: Luna a 190° (Libra, Swati).
	bride := kundaliWithMoon(t, 5)
	groom := kundaliWithMoon(t, 190)

	res, err := svc.Match(context.Background(), bride, groom)
	if err != nil {
		t.Fatalf("match: %v", err)
	}

	want := map[string]float64{
		"Varna":        0,
		"Vashya":       1,
		"Tara":         1.5,
		"Yoni":         0,
		"Graha Maitri": 3,
		"Gana":         6,
		"Bhakoot":      7,
		"Nadi":         8,
	}
	if len(res.Scores) != 8 {
		t.Fatalf("scores = %d, want 8", len(res.Scores))
	}
	for _, sc := range res.Scores {
		if w, ok := want[sc.Name]; !ok || math.Abs(sc.Points-w) > 1e-9 {
			t.Errorf("%s = %v, want %v", sc.Name, sc.Points, w)
		}
		if sc.Points < 0 || sc.Points > sc.Max {
			t.Errorf("%s = %v out of [0,%v]", sc.Name, sc.Points, sc.Max)
		}
	}

	if math.Abs(res.Total-26.5) > 1e-9 {
		t.Errorf("total = %v, want 26.5", res.Total)
	}
	if res.Max != 36 {
		t.Errorf("max = %v, want 36", res.Max)
	}
	if res.Verdict != VerdictFavorable {
		t.Errorf("verdict = %s, want favorable", res.Verdict)
	}
}

func TestMatch_IdenticalMoons(t *testing.T) {
	svc := NewService()

	bride := kundaliWithMoon(t, 5)
	groom := kundaliWithMoon(t, 5)

	res, err := svc.Match(context.Background(), bride, groom)
	if err != nil {
		t.Fatalf("match: %v", err)
	}

	// Todo suma, salvo Nadi: misma nadi aporta 0.
	if math.Abs(res.Total-28) > 1e-9 {
		t.Errorf("total = %v, want 28", res.Total)
	}
	for _, sc := range res.Scores {
		if sc.Name == "Nadi" && sc.Points != 0 {
			t.Errorf("nadi = %v, want 0", sc.Points)
		}
	}
}

func TestMatch_DirectionMatters(t *testing.T) {
	svc := NewService()

	a := kundaliWithMoon(t, 5)   // Aries/Ashwini
	b := kundaliWithMoon(t, 190) // Libra/Swati

	fwd, err := svc.Match(context.Background(), a, b)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	rev, err := svc.Match(context.Background(), b, a)
	if err != nil {
		t.Fatalf("match: %v", err)
	}

	// Varna es direccional: Kshatriya novia / Shudra novio da 0,
	// al revés da 1.
	if fwd.Total == rev.Total {
		t.Error("swapping bride and groom should change the total")
	}
}

func TestMatch_IncompleteChart(t *testing.T) {
	svc := NewService()

	_, err := svc.Match(context.Background(), charts.Kundali{}, kundaliWithMoon(t, 5))
	if !errors.Is(err, ErrIncompleteChart) {
		t.Fatalf("err = %v, want ErrIncompleteChart", err)
	}

	_, err = svc.Match(context.Background(), kundaliWithMoon(t, 5), charts.Kundali{})
	if !errors.Is(err, ErrIncompleteChart) {
		t.Fatalf("err = %v, want ErrIncompleteChart", err)
	}
}

func TestVerdictThresholds(t *testing.T) {
	cases := []struct {
		total float64
		want  Verdict
	}{
		{0, VerdictUnfavorable},
		{17.5, VerdictUnfavorable},
		{18, VerdictAverage},
		{23.5, VerdictAverage},
		{24, VerdictFavorable},
		{36, VerdictFavorable},
	}
	for _, c := range cases {
		if got := verdictFor(c.total); got != c.want {
			t.Errorf("verdictFor(%v) = %s, want %s", c.total, got, c.want)
		}
	}
}
