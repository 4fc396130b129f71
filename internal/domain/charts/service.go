package charts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"kundali-api/internal/ports/cache"
	"kundali-api/internal/ports/ephemeris"
	"kundali-api/internal/ports/geocode"
	"kundali-api/internal/ports/geotime"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("chart not found")
	ErrDuplicateName = errors.New("chart name already in use")

	// ErrDerivation: la efeméride falló (archivo de datos ausente, fecha fuera
	// de rango del paquete de efemérides, etc). No es culpa del caller.
	ErrDerivation = errors.New("derivation failed")
)

type Service struct {
	engine   ephemeris.Engine
	resolver geotime.Resolver
	repo     Repository
	cache    cache.Cache      // opcional; nil = sin cache
	reverser geocode.Reverser // opcional; nil = sin geocoding inverso
	now      func() time.Time
}

func NewService(engine ephemeris.Engine, resolver geotime.Resolver, repo Repository, c cache.Cache, rev geocode.Reverser) *Service {
	return &Service{
		engine:   engine,
		resolver: resolver,
		repo:     repo,
		cache:    c,
		reverser: rev,
		now:      time.Now,
	}
}

// Derive arma la Kundali completa para un nacimiento. Determinista:
// mismo input + mismo ayanamsa => misma Kundali, por eso se puede cachear.
func (s *Service) Derive(ctx context.Context, in BirthInput) (Kundali, error) {
	if k, ok := s.cached(ctx, in); ok {
		return k, nil
	}

	resolved, err := s.resolver.Resolve(ctx, geotime.LocalMoment{
		Year:   in.Year,
		Month:  in.Month,
		Day:    in.Day,
		Hour:   in.Hour,
		Minute: in.Minute,
		Second: in.Second,

		Latitude:  in.Latitude,
		Longitude: in.Longitude,

		UTCOffsetHours: in.UTCOffsetHours,
	})
	if err != nil {
		if errors.Is(err, geotime.ErrResolution) {
			return Kundali{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Kundali{}, fmt.Errorf("%w: %v", ErrDerivation, err)
	}

	asc, err := s.engine.Ascendant(resolved.UTC, in.Latitude, in.Longitude)
	if err != nil {
		return Kundali{}, fmt.Errorf("%w: %v", ErrDerivation, err)
	}
	asc = normDeg(asc)
	lagnaSign := signIndex(asc)

	bodies := ephemeris.Bodies()
	positions := make([]PlanetPosition, 0, len(bodies))
	for _, b := range bodies {
		raw, err := s.engine.Position(resolved.UTC, b)
		if err != nil {
			return Kundali{}, fmt.Errorf("%w: %v", ErrDerivation, err)
		}
		positions = append(positions, buildPosition(raw, lagnaSign))
	}

	// Segunda pasada: combustión necesita la longitud del Sol ya calculada.
	var sunLon float64
	for _, p := range positions {
		if p.Body == ephemeris.Sun {
			sunLon = p.Longitude
			break
		}
	}
	for i := range positions {
		p := &positions[i]
		if p.Body == ephemeris.Sun {
			continue
		}
		p.Combust = isCombust(p.Body, p.Longitude, sunLon, p.Retrograde)
	}

	k := Kundali{
		Birth: in,
		UTC:   resolved.UTC,
		Zone:  resolved.Zone,

		Ayanamsa: s.engine.Ayanamsa(),

		Ascendant:          asc,
		AscendantSignIndex: lagnaSign,
		AscendantSign:      signNames[lagnaSign],

		Positions: positions,
	}

	moon, _ := k.Position(ephemeris.Moon)
	k.MoonNakshatra = nakshatraIndex(moon.Longitude)
	k.MoonNakshatraName = nakshatraNames[k.MoonNakshatra-1]
	k.MoonPada = nakshatraPada(moon.Longitude)

	for _, p := range positions {
		k.RasiChart[p.SignIndex] = append(k.RasiChart[p.SignIndex], p.Body)
		k.NavamsaChart[p.NavamsaSignIndex] = append(k.NavamsaChart[p.NavamsaSignIndex], p.Body)
	}

	k.Dasha = computeDasha(moon.Longitude, resolved.UTC)

	s.store(ctx, in, k)
	return k, nil
}

// cached intenta recuperar una Kundali ya derivada. Cache miss o corrupto => recalcular.
func (s *Service) cached(ctx context.Context, in BirthInput) (Kundali, bool) {
	if s.cache == nil {
		return Kundali{}, false
	}
	raw, ok := s.cache.Get(ctx, s.cacheKey(in))
	if !ok {
		return Kundali{}, false
	}
	var k Kundali
	if err := json.Unmarshal([]byte(raw), &k); err != nil {
		return Kundali{}, false
	}
	return k, true
}

func (s *Service) store(ctx context.Context, in BirthInput, k Kundali) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(k)
	if err != nil {
		return
	}
	// Best-effort: un fallo de cache no rompe la derivación.
	_ = s.cache.Set(ctx, s.cacheKey(in), string(b))
}

func (s *Service) cacheKey(in BirthInput) string {
	off := "zone"
	if in.UTCOffsetHours != nil {
		off = fmt.Sprintf("%+.2f", *in.UTCOffsetHours)
	}
	return fmt.Sprintf("kundali:%s:%04d-%02d-%02dT%02d:%02d:%02d:%.4f:%.4f:%s",
		s.engine.Ayanamsa(), in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second,
		in.Latitude, in.Longitude, off)
}

type SaveInput struct {
	Name         string
	LocationName string
	Birth        BirthInput
}

// Save deriva y persiste un chart con nombre, por usuario.
func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (SavedChart, error) {
	if strings.TrimSpace(userID) == "" {
		return SavedChart{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return SavedChart{}, ErrInvalidInput
	}

	k, err := s.Derive(ctx, in.Birth)
	if err != nil {
		return SavedChart{}, err
	}

	location := strings.TrimSpace(in.LocationName)
	if location == "" && s.reverser != nil {
		// Best-effort: si el geocoding falla, el chart se guarda sin nombre de lugar.
		if place, err := s.reverser.Reverse(ctx, in.Birth.Latitude, in.Birth.Longitude); err == nil {
			location = place.Name
		}
	}

	now := s.now()
	c := SavedChart{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),

		Birth:        in.Birth,
		Kundali:      k,
		LocationName: location,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return SavedChart{}, err
	}
	return c, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]SavedChart, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (SavedChart, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return SavedChart{}, err
	}
	if c.UserID != userID {
		// No filtramos por user en el repo: el ownership se decide acá.
		return SavedChart{}, ErrNotFound
	}
	return c, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name         *string
	LocationName *string
	Birth        *BirthInput // re-deriva la Kundali
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (SavedChart, error) {
	current, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return SavedChart{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return SavedChart{}, ErrInvalidInput
		}
		current.Name = name
	}
	if in.LocationName != nil {
		current.LocationName = strings.TrimSpace(*in.LocationName)
	}
	if in.Birth != nil {
		k, err := s.Derive(ctx, *in.Birth)
		if err != nil {
			return SavedChart{}, err
		}
		current.Birth = *in.Birth
		current.Kundali = k
	}

	current.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, current); err != nil {
		return SavedChart{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
