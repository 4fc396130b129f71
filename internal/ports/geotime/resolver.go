package geotime

import (
	"context"
	"errors"
	"time"
)

// ErrResolution indica que el momento de nacimiento no se pudo resolver a un
// instante UTC (coordenadas fuera de rango, zona horaria indeterminable).
// Se propaga tal cual: nunca se clampa ni se adivina.
var ErrResolution = errors.New("cannot resolve birth moment")

// Resolver convierte fecha+hora civil local + coordenadas en un único instante UTC,
// aplicando el offset históricamente correcto (incl. DST) de la zona IANA del lugar.
type Resolver interface {
	Resolve(ctx context.Context, in LocalMoment) (Resolved, error)
}

// Resolved es el resultado de la resolución: instante UTC + zona usada.
type Resolved struct {
	UTC  time.Time
	Zone string // nombre IANA, o "fixed" si vino offset explícito
}
