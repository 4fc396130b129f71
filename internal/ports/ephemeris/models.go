package ephemeris

// Body es el conjunto cerrado de cuerpos que entran en una Kundali.
// Nada de dispatch por strings arbitrarios: todo switch sobre Body debe ser exhaustivo.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mars    Body = "Mars"
	Mercury Body = "Mercury"
	Jupiter Body = "Jupiter"
	Venus   Body = "Venus"
	Saturn  Body = "Saturn"
	Rahu    Body = "Rahu"
	Ketu    Body = "Ketu"
)

// Bodies devuelve los cuerpos en el orden canónico del chart.
// El orden importa: los consumidores iteran esta lista para armar la Kundali.
func Bodies() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

func (b Body) Valid() bool {
	switch b {
	case Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu:
		return true
	default:
		return false
	}
}

func (b Body) String() string { return string(b) }

// Position es la posición sideral cruda de un cuerpo en un instante dado.
// Inmutable una vez calculada: mismo instante + cuerpo + ayanamsa => misma Position.
type Position struct {
	Body       Body
	Longitude  float64 // sideral, grados [0, 360)
	Speed      float64 // movimiento diario en grados (negativo = retrógrado)
	Retrograde bool
}

// Ayanamsa es la corrección sideral configurada al construir el engine.
// Es una constante de proceso, no un parámetro por request: así los charts son reproducibles.
type Ayanamsa string

const (
	AyanamsaLahiri       Ayanamsa = "lahiri"
	AyanamsaRaman        Ayanamsa = "raman"
	AyanamsaKrishnamurti Ayanamsa = "krishnamurti"
)

func ParseAyanamsa(s string) (Ayanamsa, bool) {
	switch Ayanamsa(s) {
	case AyanamsaLahiri, "":
		return AyanamsaLahiri, true
	case AyanamsaRaman:
		return AyanamsaRaman, true
	case AyanamsaKrishnamurti:
		return AyanamsaKrishnamurti, true
	default:
		return "", false
	}
}
