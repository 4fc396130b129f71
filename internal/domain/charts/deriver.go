package charts

import (
	"math"

	"kundali-api/internal/ports/ephemeris"
)

// Helpers puros de derivación. Todo opera sobre longitudes siderales en grados.

const (
	nakshatraSpan = 360.0 / 27.0        // 13°20'
	padaSpan      = nakshatraSpan / 4.0 // 3°20'
)

func normDeg(x float64) float64 {
	x = math.Mod(x, 360.0)
	if x < 0 {
		x += 360.0
	}
	// Con negativos minúsculos la suma redondea a 360.0 exacto.
	if x >= 360.0 {
		x -= 360.0
	}
	return x
}

// signIndex devuelve 0..11.
func signIndex(lon float64) int {
	return int(normDeg(lon) / 30.0)
}

// signDMS descompone la longitud en grado/minuto/segundo dentro del signo.
func signDMS(lon float64) (d, m int, s float64) {
	within := normDeg(lon) - 30.0*float64(signIndex(lon))
	d = int(within)
	mf := (within - float64(d)) * 60.0
	m = int(mf)
	s = (mf - float64(m)) * 60.0
	return d, m, s
}

// wholeSignHouse devuelve la casa 1..12 bajo convención whole-sign.
func wholeSignHouse(lagnaSign, bodySign int) int {
	return ((bodySign-lagnaSign)%12+12)%12 + 1
}

// nakshatraIndex devuelve 1..27.
func nakshatraIndex(lon float64) int {
	return 1 + int(normDeg(lon)/nakshatraSpan)
}

// nakshatraPada devuelve 1..4 dentro de la nakshatra.
func nakshatraPada(lon float64) int {
	within := math.Mod(normDeg(lon), nakshatraSpan)
	return 1 + int(within/padaSpan)
}

// navamsaSignIndex devuelve el signo D9 (0..11).
// El ciclo de navamsas arranca según el elemento del signo:
// fuego desde Aries, tierra desde Capricornio, aire desde Libra, agua desde Cáncer.
func navamsaSignIndex(lon float64) int {
	lon = normDeg(lon)
	sign := int(lon / 30.0)
	degInSign := math.Mod(lon, 30.0)
	pada := int(degInSign / (30.0 / 9.0)) // 0..8

	var start int
	switch sign % 4 {
	case 0: // fuego
		start = 0
	case 1: // tierra
		start = 9
	case 2: // aire
		start = 6
	default: // agua
		start = 3
	}
	return (start + pada) % 12
}

// angularDistance devuelve la separación mínima entre dos longitudes (0..180).
func angularDistance(a, b float64) float64 {
	d := math.Abs(normDeg(a) - normDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// isCombust indica si el cuerpo está demasiado cerca del Sol.
func isCombust(b ephemeris.Body, lon, sunLon float64, retrograde bool) bool {
	orb, ok := combustOrb[b]
	if !ok {
		return false
	}
	if retrograde {
		if ro, ok := combustOrbRetro[b]; ok {
			orb = ro
		}
	}
	return angularDistance(lon, sunLon) <= orb
}

// buildPosition arma la colocación completa de un cuerpo a partir de su posición cruda.
func buildPosition(raw ephemeris.Position, lagnaSign int) PlanetPosition {
	lon := normDeg(raw.Longitude)
	sign := signIndex(lon)
	d, m, s := signDMS(lon)
	nav := navamsaSignIndex(lon)

	return PlanetPosition{
		Body:       raw.Body,
		Longitude:  lon,
		Speed:      raw.Speed,
		Retrograde: raw.Retrograde,

		SignIndex:    sign,
		Sign:         signNames[sign],
		SignSanskrit: signSanskrit[sign],
		Deg:          d,
		Min:          m,
		Sec:          s,

		House: wholeSignHouse(lagnaSign, sign),

		NavamsaSignIndex: nav,
		NavamsaSign:      signNames[nav],

		Exalted:     sign == exaltationSign[raw.Body],
		Debilitated: sign == debilitationSign[raw.Body],
		Vargottama:  sign == nav,
	}
}
