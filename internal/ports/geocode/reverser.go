package geocode

import (
	"context"
	"errors"
)

var ErrGeocode = errors.New("geocode failed")

// Place es el nombre humano de unas coordenadas.
type Place struct {
	Name    string // display name completo
	City    string
	Country string
}

// Reverser resuelve coordenadas a un nombre de lugar.
// Es best-effort: un fallo nunca debe frenar la derivación de un chart.
type Reverser interface {
	Reverse(ctx context.Context, latitude, longitude float64) (Place, error)
}
