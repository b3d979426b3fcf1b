package utcoffsets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfields/pkg/utcoffset"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handlerResponse {
	t.Helper()
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return payload
}

func TestHandler_EmptyQueryReturnsCatalog(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	payload := decode(t, rec)
	if len(payload.Data) != len(utcoffset.All()) {
		t.Fatalf("expected %d offsets, got %d", len(utcoffset.All()), len(payload.Data))
	}
	want := Option{Value: "-12:00", Label: "UTC-12:00", Minutes: -720}
	if diff := cmp.Diff(want, payload.Data[0]); diff != "" {
		t.Fatalf("first option mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_EmptySearchNone(t *testing.T) {
	h := Handler(WithEmptySearchMode(EmptySearchNone))

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestHandler_SearchAndLimit(t *testing.T) {
	h := Handler(WithMaxLimit(2))

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets?q=%2B05&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	want := []Option{
		{Value: "+05:00", Label: "UTC+05:00", Minutes: 300},
		{Value: "+05:30", Label: "UTC+05:30", Minutes: 330},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_UnescapedPlusInQuery(t *testing.T) {
	h := Handler(WithMaxLimit(2))

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets?q=+05&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	want := []Option{
		{Value: "+05:00", Label: "UTC+05:00", Minutes: 300},
		{Value: "+05:30", Label: "UTC+05:30", Minutes: 330},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchQuery(t *testing.T) {
	tests := map[string]string{
		" 05":    "+05",
		"+05":    "+05",
		"-05":    "-05",
		" utc":   " utc",
		" ":      " ",
		"":       "",
		"05:30":  "05:30",
		" 05:45": "+05:45",
	}
	for raw, want := range tests {
		if got := searchQuery(raw); got != want {
			t.Errorf("searchQuery(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestHandler_CustomQueryParamsAndOffsets(t *testing.T) {
	h := Handler(
		WithOffsets(utcoffset.UTC, utcoffset.UTCPlus0545, utcoffset.Offset(500)),
		WithSearchParam("search"),
		WithLimitParam("l"),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets?search=utc&l=5", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if len(payload.Data) != 2 || payload.Data[1].Value != "+05:45" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodHead, "/api/utc-offsets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200, got %d with %d bytes", rec.Code, rec.Body.Len())
	}
}

func TestHandler_GuardRejects(t *testing.T) {
	h := Handler(WithGuard(func(r *http.Request) error {
		return StatusError{Code: http.StatusUnauthorized}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets?q=utc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/utc-offsets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_NegativeLimitReturnsEmptyDataArray(t *testing.T) {
	h := Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/utc-offsets?q=utc&limit=-1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	payload := decode(t, rec)
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}
