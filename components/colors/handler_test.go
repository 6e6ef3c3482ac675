package colors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func TestNewHandler_EmptyQueryServesPalette(t *testing.T) {
	h := NewHandler(WithCatalog([]string{"aqua", "blue", "teal"}))

	req := httptest.NewRequest(http.MethodGet, "/api/colors", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := strings.TrimSpace(res.Header.Get("Content-Type")); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 3 {
		t.Fatalf("expected the whole palette, got %#v", payload.Data)
	}
}

func TestNewHandler_EmptySearchNoneReturnsEmptyDataArray(t *testing.T) {
	h := NewHandler(
		WithCatalog([]string{"teal"}),
		WithEmptySearchMode(EmptySearchNone),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/colors", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestNewHandler_SearchAndLimitClamped(t *testing.T) {
	h := NewHandler(
		WithCatalog([]string{"blue", "blueviolet", "cadetblue", "teal"}),
		WithMaxLimit(2),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/colors?q=blue&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(payload.Data), payload.Data)
	}
	if payload.Data[0].Value != "blue" || payload.Data[1].Value != "blueviolet" {
		t.Fatalf("unexpected ordering: %#v", payload.Data)
	}
}

func TestNewHandler_CustomQueryParams(t *testing.T) {
	h := NewHandler(
		WithCatalog([]string{"teal", "blue"}),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/colors?search=teal&l=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "teal" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_GuardRejects(t *testing.T) {
	h := NewHandler(
		WithCatalog([]string{"teal"}),
		WithGuard(func(r *http.Request) error {
			return StatusError{Code: http.StatusUnauthorized}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/colors?q=teal", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_MethodNotAllowed(t *testing.T) {
	h := NewHandler(WithCatalog([]string{"teal"}))

	req := httptest.NewRequest(http.MethodPost, "/api/colors?q=teal", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestNewHandler_DefaultCatalogServed(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/colors?q=rebecca", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Value != "rebeccapurple" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestNewHandler_HeadRequestHasNoBody(t *testing.T) {
	h := NewHandler(WithCatalog([]string{"teal"}))

	req := httptest.NewRequest(http.MethodHead, "/api/colors?q=teal", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}
