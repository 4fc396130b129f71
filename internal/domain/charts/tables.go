package charts

import "kundali-api/internal/ports/ephemeris"

// Tablas fijas del dominio. Todas read-only: se indexan, nunca se escriben.

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSanskrit = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashirsha", "Ardra", "Punarvasu",
	"Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra",
	"Swati", "Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha",
	"Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Signos de exaltación (índice 0..11) por cuerpo.
var exaltationSign = map[ephemeris.Body]int{
	ephemeris.Sun:     0,  // Aries
	ephemeris.Moon:    1,  // Taurus
	ephemeris.Mars:    9,  // Capricorn
	ephemeris.Mercury: 5,  // Virgo
	ephemeris.Jupiter: 3,  // Cancer
	ephemeris.Venus:   11, // Pisces
	ephemeris.Saturn:  6,  // Libra
	ephemeris.Rahu:    1,  // Taurus
	ephemeris.Ketu:    7,  // Scorpio
}

// Debilitación: el signo opuesto a la exaltación.
var debilitationSign = map[ephemeris.Body]int{
	ephemeris.Sun:     6,
	ephemeris.Moon:    7,
	ephemeris.Mars:    3,
	ephemeris.Mercury: 11,
	ephemeris.Jupiter: 9,
	ephemeris.Venus:   5,
	ephemeris.Saturn:  0,
	ephemeris.Rahu:    7,
	ephemeris.Ketu:    1,
}

// Orbes de combustión en grados desde el Sol.
// Mercurio y Venus tienen orbe reducido si están retrógrados.
var combustOrb = map[ephemeris.Body]float64{
	ephemeris.Moon:    12,
	ephemeris.Mars:    17,
	ephemeris.Mercury: 14,
	ephemeris.Jupiter: 11,
	ephemeris.Venus:   10,
	ephemeris.Saturn:  15,
}

var combustOrbRetro = map[ephemeris.Body]float64{
	ephemeris.Mercury: 12,
	ephemeris.Venus:   8,
}
