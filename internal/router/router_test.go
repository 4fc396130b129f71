package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kundali-api/internal/adapters/geotime/tzfinder"
	"kundali-api/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	// Engine nil => fake determinista. Resolver offset-only para no depender
	// del dataset de zonas en tests.
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Resolver: tzfinder.NewOffsetOnly(),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func birthPayload() map[string]any {
	return map[string]any{
		"year": 1990, "month": 5, "day": 15,
		"hour": 10, "minute": 30, "second": 0,
		"latitude":         28.6139,
		"longitude":        77.2090,
		"utc_offset_hours": 5.5,
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health = %d %q", st, string(body))
	}
}

func TestHTTP_DeriveKundali(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/kundali", "", birthPayload())
	if st != http.StatusOK {
		t.Fatalf("expected 200 derive, got %d body=%s", st, string(body))
	}

	var resp struct {
		AscendantSign string `json:"ascendant_sign"`
		Positions     []struct {
			Body  string `json:"body"`
			House int    `json:"house"`
		} `json:"positions"`
		MoonNakshatra int `json:"moon_nakshatra"`
		MoonPada      int `json:"moon_pada"`
		Dashas        []struct {
			Lord string `json:"lord"`
		} `json:"dashas"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}

	if resp.AscendantSign == "" {
		t.Error("missing ascendant_sign")
	}
	if len(resp.Positions) != 9 {
		t.Fatalf("positions = %d, want 9", len(resp.Positions))
	}
	for _, p := range resp.Positions {
		if p.House < 1 || p.House > 12 {
			t.Errorf("%s: house %d out of range", p.Body, p.House)
		}
	}
	if resp.MoonNakshatra < 1 || resp.MoonNakshatra > 27 {
		t.Errorf("moon_nakshatra = %d out of range", resp.MoonNakshatra)
	}
	if len(resp.Dashas) != 9 {
		t.Errorf("dashas = %d, want 9", len(resp.Dashas))
	}
}

func TestHTTP_DeriveKundali_BadInput(t *testing.T) {
	ts := newTestServer(t)

	// Latitud fuera de rango => 400.
	payload := birthPayload()
	payload["latitude"] = 95
	st, _ := doReq(t, ts.URL, "POST", "/api/kundali", "", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for latitude 95, got %d", st)
	}

	// JSON roto => 400.
	req, _ := http.NewRequest("POST", ts.URL+"/api/kundali", bytes.NewBufferString("{no json"))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", res.StatusCode)
	}
}

func TestHTTP_ChartsCRUD(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// Sin usuario => 401.
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/charts", "", map[string]any{
			"name": "x", "birth": birthPayload(),
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}

	// Crear.
	chartID := ""
	{
		st, body := doReq(t, ts.URL, "POST", "/api/charts", userID, map[string]any{
			"name":  "carta de mamá",
			"birth": birthPayload(),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID == "" {
			t.Fatalf("create chart: missing id body=%s", string(body))
		}
		chartID = resp.ID
	}

	// Nombre duplicado => 409.
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/charts", userID, map[string]any{
			"name":  "carta de mamá",
			"birth": birthPayload(),
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate name, got %d", st)
		}
	}

	// Listar.
	{
		st, body := doReq(t, ts.URL, "GET", "/api/charts", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []json.RawMessage
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("list = %d items, want 1", len(items))
		}
	}

	// Otro usuario no lo ve.
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/charts/"+chartID, "user-2", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 cross-user get, got %d", st)
		}
	}

	// Rename.
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/charts/"+chartID, userID, map[string]any{
			"name": "carta natal",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var resp struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Name != "carta natal" {
			t.Fatalf("name = %q after rename", resp.Name)
		}
	}

	// Delete y get posterior.
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/charts/"+chartID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/charts/"+chartID, userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Match(t *testing.T) {
	ts := newTestServer(t)

	bride := birthPayload()
	groom := birthPayload()
	groom["year"] = 1988
	groom["month"] = 11

	st, body := doReq(t, ts.URL, "POST", "/api/match", "", map[string]any{
		"bride": bride,
		"groom": groom,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 match, got %d body=%s", st, string(body))
	}

	var resp struct {
		Scores []struct {
			Name   string  `json:"name"`
			Points float64 `json:"points"`
			Max    float64 `json:"max"`
		} `json:"scores"`
		Total   float64 `json:"total"`
		Max     float64 `json:"max"`
		Verdict string  `json:"verdict"`
		Bride   struct {
			Nakshatra string `json:"nakshatra"`
		} `json:"bride_moon"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}

	if len(resp.Scores) != 8 {
		t.Fatalf("scores = %d, want 8", len(resp.Scores))
	}
	var sum float64
	for _, sc := range resp.Scores {
		if sc.Points < 0 || sc.Points > sc.Max {
			t.Errorf("%s = %v out of [0,%v]", sc.Name, sc.Points, sc.Max)
		}
		sum += sc.Points
	}
	if sum != resp.Total {
		t.Errorf("total = %v, scores sum = %v", resp.Total, sum)
	}
	if resp.Max != 36 || resp.Total < 0 || resp.Total > 36 {
		t.Errorf("total/max = %v/%v out of bounds", resp.Total, resp.Max)
	}
	if resp.Verdict == "" {
		t.Error("missing verdict")
	}
	if resp.Bride.Nakshatra == "" {
		t.Error("missing bride moon nakshatra")
	}
}

func TestHTTP_Match_BadBirth(t *testing.T) {
	ts := newTestServer(t)

	bride := birthPayload()
	bride["latitude"] = -95

	st, _ := doReq(t, ts.URL, "POST", "/api/match", "", map[string]any{
		"bride": bride,
		"groom": birthPayload(),
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad bride input, got %d", st)
	}
}

func doReq(t *testing.T, baseURL, method, path, userID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
