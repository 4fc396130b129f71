package charts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kundali-api/internal/middleware"
	"kundali-api/internal/ports/ephemeris"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Derivación pura: sin persistencia, sin usuario.
	r.Post("/kundali", deriveHandler(svc))

	// Charts guardados (por usuario)
	r.Route("/charts", func(cr chi.Router) {
		cr.Post("/", saveChartHandler(svc))
		cr.Get("/", listChartsHandler(svc))
		cr.Get("/{chartID}", getChartHandler(svc))
		cr.Patch("/{chartID}", updateChartHandler(svc))
		cr.Delete("/{chartID}", deleteChartHandler(svc))
	})
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

	// Opcional: si viene, no se resuelve zona por coordenadas.
	UTCOffsetHours *float64 `json:"utc_offset_hours,omitempty"`
}

type positionResponse struct {
	Body       ephemeris.Body `json:"body"`
	Longitude  float64        `json:"longitude"`
	Speed      float64        `json:"speed"`
	Retrograde bool           `json:"retrograde"`

	Sign         string  `json:"sign"`
	SignSanskrit string  `json:"sign_sanskrit"`
	Deg          int     `json:"deg"`
	Min          int     `json:"min"`
	Sec          float64 `json:"sec"`

	House int `json:"house"`

	NavamsaSign string `json:"navamsa_sign"`

	Exalted     bool `json:"exalted"`
	Debilitated bool `json:"debilitated"`
	Combust     bool `json:"combust"`
	Vargottama  bool `json:"vargottama"`
}

type antarResponse struct {
	Lord  ephemeris.Body `json:"lord"`
	Start time.Time      `json:"start"`
	End   time.Time      `json:"end"`
	Years float64        `json:"years"`
}

type dashaPeriodResponse struct {
	Lord        ephemeris.Body  `json:"lord"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Years       float64         `json:"years"`
	TotalYears  float64         `json:"total_years"`
	YearsPassed float64         `json:"years_passed,omitempty"`
	Current     bool            `json:"current,omitempty"`
	Antardashas []antarResponse `json:"antardashas"`
}

type kundaliResponse struct {
	UTC      time.Time `json:"utc"`
	Zone     string    `json:"zone"`
	Ayanamsa string    `json:"ayanamsa"`

	Ascendant     float64 `json:"ascendant"`
	AscendantSign string  `json:"ascendant_sign"`

	Positions []positionResponse `json:"positions"`

	MoonNakshatra     int    `json:"moon_nakshatra"`
	MoonNakshatraName string `json:"moon_nakshatra_name"`
	MoonPada          int    `json:"moon_pada"`

	RasiChart    [12][]ephemeris.Body `json:"rasi_chart"`
	NavamsaChart [12][]ephemeris.Body `json:"navamsa_chart"`

	CurrentDashaLord ephemeris.Body        `json:"current_dasha_lord"`
	Dashas           []dashaPeriodResponse `json:"dashas"`
}

type savedChartResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	LocationName string          `json:"location_name,omitempty"`
	Birth        birthRequest    `json:"birth"`
	Kundali      kundaliResponse `json:"kundali"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func deriveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req birthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		k, err := svc.Derive(r.Context(), toBirthInput(req))
		if err != nil {
			writeDeriveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toKundaliResponse(k))
	}
}

type saveChartRequest struct {
	Name         string       `json:"name"`
	LocationName string       `json:"location_name"`
	Birth        birthRequest `json:"birth"`
}

func saveChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req saveChartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Save(r.Context(), userID, SaveInput{
			Name:         req.Name,
			LocationName: req.LocationName,
			Birth:        toBirthInput(req.Birth),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateName):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				writeDeriveError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toSavedChartResponse(c))
	}
}

func listChartsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]savedChartResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toSavedChartResponse(c))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), userID, chi.URLParam(r, "chartID"))
		if err != nil {
			http.Error(w, "chart not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toSavedChartResponse(c))
	}
}

type updateChartRequest struct {
	Name         *string       `json:"name"`
	LocationName *string       `json:"location_name"`
	Birth        *birthRequest `json:"birth"`
}

func updateChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateChartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var birth *BirthInput
		if req.Birth != nil {
			b := toBirthInput(*req.Birth)
			birth = &b
		}

		c, err := svc.Update(r.Context(), userID, chi.URLParam(r, "chartID"), UpdateInput{
			Name:         req.Name,
			LocationName: req.LocationName,
			Birth:        birth,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "chart not found", http.StatusNotFound)
			case errors.Is(err, ErrDuplicateName):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				writeDeriveError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, toSavedChartResponse(c))
	}
}

func deleteChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "chartID")); err != nil {
			http.Error(w, "chart not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeDeriveError mapea errores del pipeline de derivación a status HTTP.
func writeDeriveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrDerivation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toBirthInput(req birthRequest) BirthInput {
	return BirthInput{
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

func toBirthRequest(in BirthInput) birthRequest {
	return birthRequest{
		Year:   in.Year,
		Month:  in.Month,
		Day:    in.Day,
		Hour:   in.Hour,
		Minute: in.Minute,
		Second: in.Second,

		Latitude:  in.Latitude,
		Longitude: in.Longitude,

		UTCOffsetHours: in.UTCOffsetHours,
	}
}

func toKundaliResponse(k Kundali) kundaliResponse {
	positions := make([]positionResponse, 0, len(k.Positions))
	for _, p := range k.Positions {
		positions = append(positions, positionResponse{
			Body:       p.Body,
			Longitude:  p.Longitude,
			Speed:      p.Speed,
			Retrograde: p.Retrograde,

			Sign:         p.Sign,
			SignSanskrit: p.SignSanskrit,
			Deg:          p.Deg,
			Min:          p.Min,
			Sec:          p.Sec,

			House: p.House,

			NavamsaSign: p.NavamsaSign,

			Exalted:     p.Exalted,
			Debilitated: p.Debilitated,
			Combust:     p.Combust,
			Vargottama:  p.Vargottama,
		})
	}

	dashas := make([]dashaPeriodResponse, 0, len(k.Dasha.Periods))
	for _, d := range k.Dasha.Periods {
		antars := make([]antarResponse, 0, len(d.Antardashas))
		for _, a := range d.Antardashas {
			antars = append(antars, antarResponse{
				Lord:  a.Lord,
				Start: a.Start,
				End:   a.End,
				Years: a.Years,
			})
		}
		dashas = append(dashas, dashaPeriodResponse{
			Lord:        d.Lord,
			Start:       d.Start,
			End:         d.End,
			Years:       d.Years,
			TotalYears:  d.TotalYears,
			YearsPassed: d.YearsPassed,
			Current:     d.Current,
			Antardashas: antars,
		})
	}

	return kundaliResponse{
		UTC:      k.UTC,
		Zone:     k.Zone,
		Ayanamsa: string(k.Ayanamsa),

		Ascendant:     k.Ascendant,
		AscendantSign: k.AscendantSign,

		Positions: positions,

		MoonNakshatra:     k.MoonNakshatra,
		MoonNakshatraName: k.MoonNakshatraName,
		MoonPada:          k.MoonPada,

		RasiChart:    k.RasiChart,
		NavamsaChart: k.NavamsaChart,

		CurrentDashaLord: k.Dasha.CurrentLord,
		Dashas:           dashas,
	}
}

func toSavedChartResponse(c SavedChart) savedChartResponse {
	return savedChartResponse{
		ID:           c.ID,
		Name:         c.Name,
		LocationName: c.LocationName,
		Birth:        toBirthRequest(c.Birth),
		Kundali:      toKundaliResponse(c.Kundali),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (charts/matching) para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
