package sweph

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"kundali-api/internal/ports/ephemeris"

	"github.com/mshafiee/swephgo"
)

var (
	ErrClosed = errors.New("sweph engine is closed")
)

// Engine implementa ephemeris.Engine sobre Swiss Ephemeris (swephgo).
// La librería C mantiene estado global (ephe path + sid mode), así que se
// instancia UNA vez por proceso y se serializan las llamadas con un mutex.
type Engine struct {
	mu       sync.Mutex
	closed   bool
	ayanamsa ephemeris.Ayanamsa
}

type Config struct {
	// EphePath apunta a los archivos de datos de Swiss Ephemeris (read-only).
	EphePath string
	Ayanamsa ephemeris.Ayanamsa
}

// New carga el dataset y fija el modo sideral. Llamar Close al apagar el proceso.
func New(cfg Config) (*Engine, error) {
	ay := cfg.Ayanamsa
	if ay == "" {
		ay = ephemeris.AyanamsaLahiri
	}

	swephgo.SetEphePath([]byte(cfg.EphePath))
	swephgo.SetSidMode(sidMode(ay), 0, 0)

	return &Engine{ayanamsa: ay}, nil
}

func (e *Engine) Ayanamsa() ephemeris.Ayanamsa { return e.ayanamsa }

func (e *Engine) Position(t time.Time, b ephemeris.Body) (ephemeris.Position, error) {
	if !b.Valid() {
		return ephemeris.Position{}, fmt.Errorf("%w: unknown body %q", ephemeris.ErrEphemeris, b)
	}

	// Ketu no existe en Swiss Ephemeris: es Rahu + 180°, misma velocidad.
	if b == ephemeris.Ketu {
		rahu, err := e.Position(t, ephemeris.Rahu)
		if err != nil {
			return ephemeris.Position{}, err
		}
		return ephemeris.Position{
			Body:       ephemeris.Ketu,
			Longitude:  normDeg(rahu.Longitude + 180.0),
			Speed:      rahu.Speed,
			Retrograde: rahu.Retrograde,
		}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ephemeris.Position{}, ErrClosed
	}

	jd := julianDay(t)
	iflag := int32(swephgo.SeflgSwieph | swephgo.SeflgSpeed | swephgo.SeflgSidereal)

	xx := make([]float64, 6)
	serr := make([]byte, 256)
	if rc := swephgo.CalcUt(jd, planetIndex(b), iflag, xx, serr); rc < 0 {
		return ephemeris.Position{}, fmt.Errorf("%w: body %s at jd %.6f: %s",
			ephemeris.ErrEphemeris, b, jd, cString(serr))
	}

	speed := xx[3]
	return ephemeris.Position{
		Body:       b,
		Longitude:  normDeg(xx[0]),
		Speed:      speed,
		Retrograde: speed < 0,
	}, nil
}

func (e *Engine) Ascendant(t time.Time, latitude, longitude float64) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0, ErrClosed
	}

	jd := julianDay(t)

	// Houses devuelve el ascendente tropical; restamos el ayanamsa a mano,
	// igual que con el resto de longitudes siderales.
	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)
	if rc := swephgo.Houses(jd, latitude, longitude, int('P'), cusps, ascmc); rc < 0 {
		return 0, fmt.Errorf("%w: houses at jd %.6f lat %v lon %v",
			ephemeris.ErrEphemeris, jd, latitude, longitude)
	}

	ay := swephgo.GetAyanamsaUt(jd)
	return normDeg(ascmc[0] - ay), nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	swephgo.Close()
	return nil
}

// planetIndex mapea el enum cerrado al índice de Swiss Ephemeris.
// Ketu se resuelve antes de llegar acá.
func planetIndex(b ephemeris.Body) int {
	switch b {
	case ephemeris.Sun:
		return swephgo.SeSun
	case ephemeris.Moon:
		return swephgo.SeMoon
	case ephemeris.Mars:
		return swephgo.SeMars
	case ephemeris.Mercury:
		return swephgo.SeMercury
	case ephemeris.Jupiter:
		return swephgo.SeJupiter
	case ephemeris.Venus:
		return swephgo.SeVenus
	case ephemeris.Saturn:
		return swephgo.SeSaturn
	case ephemeris.Rahu:
		return swephgo.SeMeanNode
	default:
		return -1
	}
}

func sidMode(a ephemeris.Ayanamsa) int32 {
	switch a {
	case ephemeris.AyanamsaRaman:
		return int32(swephgo.SeSidmRaman)
	case ephemeris.AyanamsaKrishnamurti:
		return int32(swephgo.SeSidmKrishnamurti)
	default:
		return int32(swephgo.SeSidmLahiri)
	}
}

func julianDay(t time.Time) float64 {
	u := t.UTC()
	hour := float64(u.Hour()) + float64(u.Minute())/60.0 + float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/3.6e12
	return swephgo.Julday(u.Year(), int(u.Month()), u.Day(), hour, swephgo.SeGregCal)
}

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

func cString(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
