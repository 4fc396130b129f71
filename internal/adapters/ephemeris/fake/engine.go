package fake

import (
	"math"
	"time"

	"kundali-api/internal/ports/ephemeris"
)

// Engine es un motor determinista sin dataset: movimientos medios lineales
// desde una época fija. Sirve para modo dev y tests (mismo input => mismo output).
// No es astronómicamente preciso y no pretende serlo.
type Engine struct {
	ayanamsa ephemeris.Ayanamsa
}

func New(a ephemeris.Ayanamsa) *Engine {
	if a == "" {
		a = ephemeris.AyanamsaLahiri
	}
	return &Engine{ayanamsa: a}
}

// epoch: J2000.0
var epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

type meanElement struct {
	base float64 // longitud en la época
	rate float64 // grados por día
}

var elements = map[ephemeris.Body]meanElement{
	ephemeris.Sun:     {base: 256.5, rate: 0.9856},
	ephemeris.Moon:    {base: 194.2, rate: 13.1764},
	ephemeris.Mars:    {base: 4.1, rate: 0.5240},
	ephemeris.Mercury: {base: 228.9, rate: 1.3833},
	ephemeris.Jupiter: {base: 10.7, rate: 0.0831},
	ephemeris.Venus:   {base: 157.6, rate: 1.2000},
	ephemeris.Saturn:  {base: 16.4, rate: 0.0335},
	// Nodo medio: siempre retrógrado.
	ephemeris.Rahu: {base: 93.8, rate: -0.0529},
}

func (e *Engine) Ayanamsa() ephemeris.Ayanamsa { return e.ayanamsa }

func (e *Engine) Position(t time.Time, b ephemeris.Body) (ephemeris.Position, error) {
	if b == ephemeris.Ketu {
		rahu, err := e.Position(t, ephemeris.Rahu)
		if err != nil {
			return ephemeris.Position{}, err
		}
		rahu.Body = ephemeris.Ketu
		rahu.Longitude = normDeg(rahu.Longitude + 180.0)
		return rahu, nil
	}

	el, ok := elements[b]
	if !ok {
		return ephemeris.Position{}, ephemeris.ErrEphemeris
	}

	days := t.UTC().Sub(epoch).Hours() / 24.0
	return ephemeris.Position{
		Body:       b,
		Longitude:  normDeg(el.base + el.rate*days),
		Speed:      el.rate,
		Retrograde: el.rate < 0,
	}, nil
}

func (e *Engine) Ascendant(t time.Time, latitude, longitude float64) (float64, error) {
	// Rotación sidérea aproximada + corrección por longitud geográfica.
	// Suficiente para que el ascendente avance ~1 signo cada 2 horas.
	days := t.UTC().Sub(epoch).Hours() / 24.0
	return normDeg(280.46 + 360.9856*days + longitude), nil
}

func (e *Engine) Close() error { return nil }

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
