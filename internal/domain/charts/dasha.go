package charts

import (
	"math"
	"time"

	"kundali-api/internal/ports/ephemeris"
)

// Vimshottari dasha: períodos planetarios derivados de la nakshatra de la Luna.
// El ciclo completo dura 120 años; el primer mahadasha arranca parcial según
// cuánto de la nakshatra ya recorrió la Luna al nacer.

const vimshottariCycleYears = 120.0

// daysPerYear: año juliano, igual que el cálculo clásico.
const daysPerYear = 365.25

// Orden fijo de los señores de dasha. La nakshatra n (1..27) cae en
// dashaOrder[(n-1) % 9]: Ashwini => Ketu, Bharani => Venus, etc.
var dashaOrder = [9]ephemeris.Body{
	ephemeris.Ketu, ephemeris.Venus, ephemeris.Sun, ephemeris.Moon, ephemeris.Mars,
	ephemeris.Rahu, ephemeris.Jupiter, ephemeris.Saturn, ephemeris.Mercury,
}

var dashaYears = map[ephemeris.Body]float64{
	ephemeris.Ketu:    7,
	ephemeris.Venus:   20,
	ephemeris.Sun:     6,
	ephemeris.Moon:    10,
	ephemeris.Mars:    7,
	ephemeris.Rahu:    18,
	ephemeris.Jupiter: 16,
	ephemeris.Saturn:  19,
	ephemeris.Mercury: 17,
}

type AntarPeriod struct {
	Lord  ephemeris.Body
	Start time.Time
	End   time.Time
	Years float64
}

type DashaPeriod struct {
	Lord        ephemeris.Body
	Start       time.Time
	End         time.Time
	Years       float64 // duración de este segmento (el primero suele ser parcial)
	TotalYears  float64
	YearsPassed float64 // ya transcurridos al nacer (solo primer segmento)
	Current     bool

	Antardashas []AntarPeriod
}

type Dasha struct {
	CurrentLord ephemeris.Body
	Periods     []DashaPeriod
}

// computeDasha arma los 9 mahadashas (120 años) desde el instante de nacimiento.
func computeDasha(moonLon float64, birth time.Time) Dasha {
	moonLon = normDeg(moonLon)

	nakIdx := int(moonLon / nakshatraSpan) // 0..26
	lordIdx := nakIdx % 9
	lord := dashaOrder[lordIdx]

	// Fracción de la nakshatra ya recorrida => fracción del mahadasha consumida.
	portion := math.Mod(moonLon, nakshatraSpan) / nakshatraSpan
	totalYears := dashaYears[lord]
	passed := totalYears * portion
	remaining := totalYears - passed

	periods := make([]DashaPeriod, 0, 9)

	start := birth
	end := addYears(start, remaining)
	first := DashaPeriod{
		Lord:        lord,
		Start:       start,
		End:         end,
		Years:       remaining,
		TotalYears:  totalYears,
		YearsPassed: passed,
		Current:     true,
	}
	first.Antardashas = computeAntardashas(lord, start, remaining)
	periods = append(periods, first)

	cursor := end
	for i := 1; i < 9; i++ {
		next := dashaOrder[(lordIdx+i)%9]
		years := dashaYears[next]
		nextEnd := addYears(cursor, years)

		p := DashaPeriod{
			Lord:       next,
			Start:      cursor,
			End:        nextEnd,
			Years:      years,
			TotalYears: years,
		}
		p.Antardashas = computeAntardashas(next, cursor, years)
		periods = append(periods, p)

		cursor = nextEnd
	}

	return Dasha{CurrentLord: lord, Periods: periods}
}

// computeAntardashas reparte el segmento de un mahadasha en sub-períodos.
// Duración completa de cada antardasha: (años del mahadasha × años del antar) / 120.
// Si el segmento es parcial (mahadasha corriente al nacer), se salta lo ya
// transcurrido y el primer antardasha devuelto puede venir recortado.
func computeAntardashas(lord ephemeris.Body, segmentStart time.Time, segmentYears float64) []AntarPeriod {
	fullYears := dashaYears[lord]
	elapsed := fullYears - segmentYears
	if elapsed < 0 {
		elapsed = 0
	}
	segmentEnd := addYears(segmentStart, segmentYears)

	startIdx := 0
	for i, b := range dashaOrder {
		if b == lord {
			startIdx = i
			break
		}
	}

	out := make([]AntarPeriod, 0, 9)
	cursor := segmentStart

	const eps = 1e-9
	toSkip := elapsed

	for i := 0; i < 9; i++ {
		sub := dashaOrder[(startIdx+i)%9]
		dur := fullYears * dashaYears[sub] / vimshottariCycleYears

		// Antardashas enteramente anteriores al nacimiento: se saltan.
		if toSkip >= dur-eps {
			toSkip -= dur
			continue
		}

		// Primer antardasha visible: puede venir recortado.
		effective := dur - toSkip
		toSkip = 0

		end := addYears(cursor, effective)
		if end.After(segmentEnd) {
			end = segmentEnd
		}
		out = append(out, AntarPeriod{
			Lord:  sub,
			Start: cursor,
			End:   end,
			Years: end.Sub(cursor).Hours() / 24.0 / daysPerYear,
		})
		cursor = end

		if !cursor.Before(segmentEnd) {
			break
		}
	}

	return out
}

func addYears(t time.Time, years float64) time.Time {
	return t.Add(time.Duration(years * daysPerYear * 24 * float64(time.Hour)))
}
