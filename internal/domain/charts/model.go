package charts

import (
	"time"

	"kundali-api/internal/ports/ephemeris"
)

// BirthInput son los datos civiles de nacimiento, tal como los entrega el caller.
// La hora es local al lugar salvo que venga UTCOffsetHours explícito.
type BirthInput struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	Latitude  float64
	Longitude float64

	// Opcional. nil => se resuelve la zona IANA por coordenadas.
	UTCOffsetHours *float64
}

// PlanetPosition es la colocación completa de un cuerpo dentro de la Kundali.
// Inmutable: se calcula una vez y no se toca.
type PlanetPosition struct {
	Body       ephemeris.Body
	Longitude  float64 // sideral, [0,360)
	Speed      float64 // grados/día
	Retrograde bool

	SignIndex    int // 0..11
	Sign         string
	SignSanskrit string
	Deg          int // grado dentro del signo
	Min          int
	Sec          float64

	House int // 1..12, whole-sign desde el lagna

	NavamsaSignIndex int // 0..11 (D9)
	NavamsaSign      string

	Exalted     bool
	Debilitated bool
	Combust     bool
	Vargottama  bool // mismo signo en rasi y navamsa
}

// Kundali es el chart completo. Se arma entera o no se arma:
// no existe la Kundali parcial.
type Kundali struct {
	Birth BirthInput
	UTC   time.Time
	Zone  string

	Ayanamsa ephemeris.Ayanamsa

	Ascendant          float64 // longitud sideral del lagna
	AscendantSignIndex int
	AscendantSign      string

	// Posiciones en el orden canónico de ephemeris.Bodies().
	Positions []PlanetPosition

	MoonNakshatra     int // 1..27
	MoonNakshatraName string
	MoonPada          int // 1..4

	// signo (0..11) -> cuerpos en ese signo
	RasiChart    [12][]ephemeris.Body
	NavamsaChart [12][]ephemeris.Body

	Dasha Dasha
}

// Position busca la colocación de un cuerpo. ok=false si la Kundali está incompleta.
func (k Kundali) Position(b ephemeris.Body) (PlanetPosition, bool) {
	for _, p := range k.Positions {
		if p.Body == b {
			return p, true
		}
	}
	return PlanetPosition{}, false
}

// Complete indica si la Kundali sirve como insumo de matching.
func (k Kundali) Complete() bool {
	if k.UTC.IsZero() || len(k.Positions) != len(ephemeris.Bodies()) {
		return false
	}
	if k.MoonNakshatra < 1 || k.MoonNakshatra > 27 {
		return false
	}
	_, ok := k.Position(ephemeris.Moon)
	return ok
}

// SavedChart es una Kundali persistida bajo un nombre, por usuario.
// La persistencia guarda una copia serializada; nunca muta la Kundali.
type SavedChart struct {
	ID     string
	UserID string
	Name   string

	Birth        BirthInput
	Kundali      Kundali
	LocationName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
