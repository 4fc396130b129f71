package tzfinder

import (
	"context"
	"fmt"
	"math"
	"time"

	"kundali-api/internal/ports/geotime"

	"github.com/ringsaturn/tzf"
)

// Resolver implementa geotime.Resolver con tzf (coordenada -> zona IANA)
// más la base de datos tz de Go para el offset históricamente correcto.
type Resolver struct {
	finder tzf.F
}

// New carga el dataset embebido de tzf. Es costoso: una vez por proceso.
func New() (*Resolver, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("tzfinder: load dataset: %w", err)
	}
	return &Resolver{finder: f}, nil
}

func (r *Resolver) Resolve(ctx context.Context, in geotime.LocalMoment) (geotime.Resolved, error) {
	if err := in.Validate(); err != nil {
		return geotime.Resolved{}, err
	}

	// Offset explícito: no consultamos la zona, el caller sabe mejor.
	if in.UTCOffsetHours != nil {
		loc := fixedZone(*in.UTCOffsetHours)
		return geotime.Resolved{UTC: in.InLocation(loc), Zone: "fixed"}, nil
	}

	name := r.finder.GetTimezoneName(in.Longitude, in.Latitude)
	if name == "" {
		return geotime.Resolved{}, fmt.Errorf("%w: no IANA timezone for lat %v lon %v",
			geotime.ErrResolution, in.Latitude, in.Longitude)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return geotime.Resolved{}, fmt.Errorf("%w: load zone %q: %v", geotime.ErrResolution, name, err)
	}

	return geotime.Resolved{UTC: in.InLocation(loc), Zone: name}, nil
}

// OffsetOnly es un Resolver sin dataset: solo acepta momentos con offset explícito.
// Sirve como fallback de dev cuando el dataset de tzf no está disponible.
type OffsetOnly struct{}

func NewOffsetOnly() *OffsetOnly { return &OffsetOnly{} }

func (OffsetOnly) Resolve(ctx context.Context, in geotime.LocalMoment) (geotime.Resolved, error) {
	if err := in.Validate(); err != nil {
		return geotime.Resolved{}, err
	}
	if in.UTCOffsetHours == nil {
		return geotime.Resolved{}, fmt.Errorf("%w: explicit utc offset required (no timezone dataset)",
			geotime.ErrResolution)
	}
	loc := fixedZone(*in.UTCOffsetHours)
	return geotime.Resolved{UTC: in.InLocation(loc), Zone: "fixed"}, nil
}

func fixedZone(offsetHours float64) *time.Location {
	secs := int(math.Round(offsetHours * 3600))
	return time.FixedZone(fmt.Sprintf("UTC%+05.2f", offsetHours), secs)
}
