package geotime

import (
	"fmt"
	"time"
)

// LocalMoment es un instante civil local más el lugar donde ocurrió.
// UTCOffsetHours es opcional: si viene, se usa tal cual y no se consulta la zona IANA.
type LocalMoment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	Latitude  float64
	Longitude float64

	UTCOffsetHours *float64
}

// Validate chequea rangos. Fuera de rango => ErrResolution (no se corrige en silencio).
func (m LocalMoment) Validate() error {
	if m.Latitude < -90 || m.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrResolution, m.Latitude)
	}
	if m.Longitude < -180 || m.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrResolution, m.Longitude)
	}
	if m.Month < 1 || m.Month > 12 {
		return fmt.Errorf("%w: month %d out of range [1,12]", ErrResolution, m.Month)
	}
	if m.Day < 1 || m.Day > 31 {
		return fmt.Errorf("%w: day %d out of range [1,31]", ErrResolution, m.Day)
	}
	if m.Hour < 0 || m.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range [0,23]", ErrResolution, m.Hour)
	}
	if m.Minute < 0 || m.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range [0,59]", ErrResolution, m.Minute)
	}
	if m.Second < 0 || m.Second > 59 {
		return fmt.Errorf("%w: second %d out of range [0,59]", ErrResolution, m.Second)
	}
	if off := m.UTCOffsetHours; off != nil && (*off < -12 || *off > 14) {
		return fmt.Errorf("%w: utc offset %v out of range [-12,14]", ErrResolution, *off)
	}
	return nil
}

// InLocation interpreta el momento civil en la location dada y lo pasa a UTC.
// time.Date normaliza huecos de DST (ej. 02:30 inexistente) hacia adelante,
// que es el comportamiento que queremos para horas de nacimiento.
func (m LocalMoment) InLocation(loc *time.Location) time.Time {
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, loc).UTC()
}
