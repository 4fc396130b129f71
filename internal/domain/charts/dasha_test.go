package charts

import (
	"math"
	"testing"
	"time"

	"kundali-api/internal/ports/ephemeris"
)

func TestComputeDasha_CycleIs120Years(t *testing.T) {
	birth := time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC)
	d := computeDasha(100.0, birth)

	if len(d.Periods) != 9 {
		t.Fatalf("periods = %d, want 9", len(d.Periods))
	}

	var total float64
	for _, p := range d.Periods {
		total += p.TotalYears
	}
	if math.Abs(total-120) > 1e-9 {
		t.Errorf("total cycle = %v years, want 120", total)
	}

	// Lo efectivamente cubierto desde el nacimiento: 120 menos lo ya transcurrido.
	var covered float64
	for _, p := range d.Periods {
		covered += p.Years
	}
	want := 120 - d.Periods[0].YearsPassed
	if math.Abs(covered-want) > 1e-9 {
		t.Errorf("covered = %v years, want %v", covered, want)
	}
}

func TestComputeDasha_LordByNakshatra(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		moonLon float64
		want    ephemeris.Body
	}{
		{0, ephemeris.Ketu},      // Ashwini
		{14, ephemeris.Venus},    // Bharani
		{45, ephemeris.Moon},     // Rohini
		{125, ephemeris.Ketu},    // Magha: el ciclo se repite cada 9 nakshatras
		{355, ephemeris.Mercury}, // Revati
	}
	for _, c := range cases {
		d := computeDasha(c.moonLon, birth)
		if d.CurrentLord != c.want {
			t.Errorf("moonLon %v: lord = %s, want %s", c.moonLon, d.CurrentLord, c.want)
		}
		if !d.Periods[0].Current || d.Periods[0].Lord != c.want {
			t.Errorf("moonLon %v: first period should be current %s", c.moonLon, c.want)
		}
	}
}

func TestComputeDasha_PartialFirstPeriod(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	// Luna justo a mitad de Ashwini: mitad del mahadasha de Ketu ya consumida.
	half := nakshatraSpan / 2
	d := computeDasha(half, birth)

	first := d.Periods[0]
	if first.Lord != ephemeris.Ketu {
		t.Fatalf("lord = %s, want Ketu", first.Lord)
	}
	if math.Abs(first.YearsPassed-3.5) > 1e-9 {
		t.Errorf("years passed = %v, want 3.5", first.YearsPassed)
	}
	if math.Abs(first.Years-3.5) > 1e-9 {
		t.Errorf("remaining years = %v, want 3.5", first.Years)
	}
	if !first.Start.Equal(birth) {
		t.Errorf("first period starts at %v, want %v", first.Start, birth)
	}

	// El siguiente mahadasha es Venus y arranca donde termina Ketu.
	second := d.Periods[1]
	if second.Lord != ephemeris.Venus {
		t.Errorf("second lord = %s, want Venus", second.Lord)
	}
	if !second.Start.Equal(first.End) {
		t.Errorf("second period starts at %v, want %v", second.Start, first.End)
	}
}

func TestComputeAntardashas_FullPeriod(t *testing.T) {
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)

	antars := computeAntardashas(ephemeris.Venus, start, 20)
	if len(antars) != 9 {
		t.Fatalf("antardashas = %d, want 9", len(antars))
	}

	// El primer antardasha es del propio señor del mahadasha.
	if antars[0].Lord != ephemeris.Venus {
		t.Errorf("first antar lord = %s, want Venus", antars[0].Lord)
	}

	// Venus-Venus dura 20*20/120 años.
	want := 20.0 * 20.0 / 120.0
	if math.Abs(antars[0].Years-want) > 0.01 {
		t.Errorf("Venus-Venus = %v years, want %v", antars[0].Years, want)
	}

	// Los segmentos son contiguos y suman el mahadasha completo.
	var sum float64
	for i, a := range antars {
		sum += a.Years
		if i > 0 && !a.Start.Equal(antars[i-1].End) {
			t.Errorf("antar %d not contiguous", i)
		}
	}
	if math.Abs(sum-20) > 0.01 {
		t.Errorf("antars sum = %v years, want 20", sum)
	}
}

func TestComputeAntardashas_PartialPeriod(t *testing.T) {
	start := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)

	// Mahadasha de Ketu con solo 3.5 de 7 años restantes: los antardashas
	// anteriores al nacimiento no aparecen.
	antars := computeAntardashas(ephemeris.Ketu, start, 3.5)
	if len(antars) == 0 || len(antars) >= 9 {
		t.Fatalf("antardashas = %d, want partial list", len(antars))
	}

	var sum float64
	for _, a := range antars {
		sum += a.Years
	}
	if math.Abs(sum-3.5) > 0.01 {
		t.Errorf("antars sum = %v years, want 3.5", sum)
	}

	// El primero no puede ser Ketu-Ketu: ese subperíodo (7*7/120 ≈ 0.41 años)
	// quedó atrás junto con los 3.5 años ya consumidos.
	if antars[0].Lord == ephemeris.Ketu {
		t.Errorf("first visible antar = %s, should not be Ketu", antars[0].Lord)
	}
}
