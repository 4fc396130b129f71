package matching

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kundali-api/internal/domain/charts"
	"kundali-api/internal/ports/ephemeris"
)

func RegisterRoutes(r chi.Router, svc *Service, chartsSvc *charts.Service) {
	r.Post("/match", matchHandler(svc, chartsSvc))
}

type birthRequest struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	UTCOffsetHours *float64 `json:"utc_offset_hours,omitempty"`
}

type matchRequest struct {
	Bride birthRequest `json:"bride"`
	Groom birthRequest `json:"groom"`
}

type matchResponse struct {
	Scores  []KootaScore `json:"scores"`
	Total   float64      `json:"total"`
	Max     float64      `json:"max"`
	Verdict Verdict      `json:"verdict"`

	BrideMoon moonSummary `json:"bride_moon"`
	GroomMoon moonSummary `json:"groom_moon"`
}

type moonSummary struct {
	Sign          string `json:"sign"`
	Nakshatra     string `json:"nakshatra"`
	NakshatraPada int    `json:"nakshatra_pada"`
}

func matchHandler(svc *Service, chartsSvc *charts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bride, err := chartsSvc.Derive(r.Context(), toBirthInput(req.Bride))
		if err != nil {
			writeChartError(w, "bride", err)
			return
		}
		groom, err := chartsSvc.Derive(r.Context(), toBirthInput(req.Groom))
		if err != nil {
			writeChartError(w, "groom", err)
			return
		}

		result, err := svc.Match(r.Context(), bride, groom)
		if err != nil {
			if errors.Is(err, ErrIncompleteChart) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, matchResponse{
			Scores:  result.Scores,
			Total:   result.Total,
			Max:     result.Max,
			Verdict: result.Verdict,

			BrideMoon: toMoonSummary(bride),
			GroomMoon: toMoonSummary(groom),
		})
	}
}

func toMoonSummary(k charts.Kundali) moonSummary {
	var sign string
	if p, ok := k.Position(ephemeris.Moon); ok {
		sign = p.Sign
	}
	return moonSummary{
		Sign:          sign,
		Nakshatra:     k.MoonNakshatraName,
		NakshatraPada: k.MoonPada,
	}
}

func writeChartError(w http.ResponseWriter, who string, err error) {
	switch {
	case errors.Is(err, charts.ErrInvalidInput):
		http.Error(w, who+": "+err.Error(), http.StatusBadRequest)
	case errors.Is(err, charts.ErrDerivation):
		http.Error(w, who+": "+err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toBirthInput(req birthRequest) charts.BirthInput {
	return charts.BirthInput{
		Year:   req.Year,
		Month:  req.Month,
		Day:    req.Day,
		Hour:   req.Hour,
		Minute: req.Minute,
		Second: req.Second,

		Latitude:  req.Latitude,
		Longitude: req.Longitude,

		UTCOffsetHours: req.UTCOffsetHours,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (charts/matching) para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
