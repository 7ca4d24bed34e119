package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/gallery"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
)

func newTestServer(t *testing.T, store gallery.Store) http.Handler {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s, err := New(Config{
		Addr:    "localhost:0",
		Runner:  pipeline.NewRunner(nil, nil, logger),
		Gallery: store,
		Logger:  logger,
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return s.Router()
}

func TestNewRequiresRunner(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("missing runner should be an error")
	}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestCloudEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	payload := `{"text": "rain rain river river river stone", "formats": ["svg", "json"]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cloud", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body cloudResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Cloud.Items) == 0 {
		t.Error("cloud has no items")
	}
	if body.Cloud.Items[0].Word != "river" {
		t.Errorf("top word = %s, want river", body.Cloud.Items[0].Word)
	}
	if !bytes.Contains(body.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact missing")
	}
	if body.Heatmap != nil {
		t.Error("heatmap should be absent without characters")
	}
}

func TestCloudEndpointSVGShortcut(t *testing.T) {
	h := newTestServer(t, nil)

	payload := `{"text": "ember ember ash"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cloud?accept=svg", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

func TestCloudEndpointSVGShortcutForcesFormat(t *testing.T) {
	h := newTestServer(t, nil)

	// The client asked for json only, but the svg shortcut must still
	// deliver a picture, not an empty body.
	payload := `{"text": "ember ember ash", "formats": ["json"]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cloud?accept=svg", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

func TestCloudEndpointValidation(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		name    string
		payload string
		status  int
	}{
		{"missing text", `{"max_words": 10}`, http.StatusBadRequest},
		{"bad json", `{not json`, http.StatusBadRequest},
		{"unknown field", `{"text": "x", "bogus": 1}`, http.StatusBadRequest},
		{"bad format", `{"text": "x", "formats": ["pdf"]}`, http.StatusBadRequest},
		{"bad theme", `{"text": "x", "theme": "neon"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cloud", strings.NewReader(tt.payload)))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestTipsEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tips?category=subtext", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body []map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) == 0 {
		t.Error("no tips returned")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tips?daily=true", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("daily status = %d", rec.Code)
	}
	var tip map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &tip); err != nil {
		t.Fatalf("decode daily: %v", err)
	}
	if tip["text"] == "" {
		t.Error("daily tip has no text")
	}
}

func TestGalleryLifecycle(t *testing.T) {
	h := newTestServer(t, gallery.NewMemoryStore())

	doc := gallery.Document{
		Title: "chapter one",
		Cloud: cloud.Cloud{
			Items: []cloud.Item{{Word: "rain", Count: 2, FontSize: 20, W: 30, H: 15}},
		},
	}
	payload, _ := json.Marshal(doc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/gallery/", bytes.NewReader(payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var saved gallery.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved document has no ID")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/gallery/"+saved.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/gallery/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var docs []gallery.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("list len = %d", len(docs))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/gallery/"+saved.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/gallery/"+saved.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", rec.Code)
	}
}

func TestGalleryDisabled(t *testing.T) {
	h := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/gallery/", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
