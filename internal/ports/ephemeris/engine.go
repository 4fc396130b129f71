package ephemeris

import (
	"errors"
	"time"
)

// ErrEphemeris indica que el motor astronómico rechazó el cálculo
// (fecha fuera del rango soportado, dataset ausente, etc.). No se reintenta.
var ErrEphemeris = errors.New("ephemeris computation failed")

// Engine calcula posiciones siderales. La implementación carga su dataset
// una sola vez al construirse (read-only) y lo libera en Close.
type Engine interface {
	// Position devuelve la posición sideral de un cuerpo en un instante UTC.
	Position(t time.Time, b Body) (Position, error)

	// Ascendant devuelve la longitud sideral del ascendente para instante + coordenadas.
	Ascendant(t time.Time, latitude, longitude float64) (float64, error)

	// Ayanamsa devuelve la corrección configurada (fija por proceso).
	Ayanamsa() Ayanamsa

	Close() error
}
