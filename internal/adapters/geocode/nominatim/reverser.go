package nominatim

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kundali-api/internal/platform/httpclient"
	"kundali-api/internal/ports/geocode"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim exige User-Agent identificable; sin él responde 403.
	userAgent = "kundali-api/1.0"
)

// Reverser implementa geocode.Reverser sobre la API pública de Nominatim.
type Reverser struct {
	client *httpclient.Client
}

type Config struct {
	BaseURL string // vacío => API pública
	Timeout time.Duration
}

func New(cfg Config) (*Reverser, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	c, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Reverser{client: c}, nil
}

// NewWithClient permite inyectar el httpclient (p.ej. para tests).
func NewWithClient(c *httpclient.Client) *Reverser {
	return &Reverser{client: c}
}

func (r *Reverser) Reverse(ctx context.Context, latitude, longitude float64) (geocode.Place, error) {
	path := fmt.Sprintf("/reverse?format=jsonv2&lat=%.6f&lon=%.6f", latitude, longitude)

	var out struct {
		DisplayName string `json:"display_name"`
		Address     struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			Country string `json:"country"`
		} `json:"address"`
	}

	headers := map[string]string{"User-Agent": userAgent}
	if err := r.client.DoJSON(ctx, http.MethodGet, path, headers, nil, &out); err != nil {
		return geocode.Place{}, fmt.Errorf("%w: %v", geocode.ErrGeocode, err)
	}

	city := out.Address.City
	if city == "" {
		city = out.Address.Town
	}
	if city == "" {
		city = out.Address.Village
	}

	return geocode.Place{
		Name:    out.DisplayName,
		City:    city,
		Country: out.Address.Country,
	}, nil
}
