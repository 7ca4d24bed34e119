package server

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/arcs"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/buildinfo"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/cloud"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/gallery"
	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/pipeline"
)

// maxRequestBody caps request payloads at 4 MiB. Manuscripts are text;
// anything larger is almost certainly a mistake.
const maxRequestBody = 4 << 20

// cloudResponse is the body returned by POST /v1/cloud.
type cloudResponse struct {
	DocHash      string             `json:"doc_hash"`
	Cloud        cloud.Cloud        `json:"cloud"`
	Heatmap      *arcs.Heatmap      `json:"heatmap,omitempty"`
	Artifacts    map[string][]byte  `json:"artifacts"`
	ArcArtifacts map[string][]byte  `json:"arc_artifacts,omitempty"`
	CacheInfo    pipeline.CacheInfo `json:"cache_info"`
}

// errorResponse is the standard error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleCloud runs the full pipeline on posted manuscript text.
func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeJSON(r, &opts); err != nil {
		writeError(w, s.logger, err)
		return
	}

	// The server analyzes posted text only; it never reads files named
	// by the client.
	opts.Document = ""
	if opts.Text == "" {
		writeError(w, s.logger, errors.New(errors.ErrCodeInvalidInput, "text is required"))
		return
	}
	opts.Logger = s.logger

	// Clients that only want the picture can skip the JSON envelope.
	// The svg format is forced into the run so the body is never empty
	// when the client asked for other formats only.
	wantSVG := r.URL.Query().Get("accept") == "svg"
	if wantSVG && len(opts.Formats) > 0 && !slices.Contains(opts.Formats, pipeline.FormatSVG) {
		opts.Formats = append(opts.Formats, pipeline.FormatSVG)
	}

	result, err := s.cfg.Runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	if wantSVG {
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
		return
	}

	writeJSON(w, http.StatusOK, cloudResponse{
		DocHash:      result.DocHash,
		Cloud:        result.Cloud,
		Heatmap:      result.Heatmap,
		Artifacts:    result.Artifacts,
		ArcArtifacts: result.ArcArtifacts,
		CacheInfo:    result.CacheInfo,
	})
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	matched := s.cfg.Tips.ByCategory(category)

	if r.URL.Query().Get("daily") == "true" {
		tip, err := s.cfg.Tips.OfTheDay(time.Now())
		if err != nil {
			writeError(w, s.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, tip)
		return
	}

	writeJSON(w, http.StatusOK, matched)
}

// galleryStore returns the configured store or reports 503.
func (s *Server) galleryStore(w http.ResponseWriter) (gallery.Store, bool) {
	if s.cfg.Gallery == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: "gallery storage is not configured",
		})
		return nil, false
	}
	return s.cfg.Gallery, true
}

func (s *Server) handleGalleryList(w http.ResponseWriter, r *http.Request) {
	store, ok := s.galleryStore(w)
	if !ok {
		return
	}
	docs, err := store.List(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	if docs == nil {
		docs = []gallery.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGallerySave(w http.ResponseWriter, r *http.Request) {
	store, ok := s.galleryStore(w)
	if !ok {
		return
	}

	var doc gallery.Document
	if err := decodeJSON(r, &doc); err != nil {
		writeError(w, s.logger, err)
		return
	}
	if err := store.Save(r.Context(), &doc); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGalleryGet(w http.ResponseWriter, r *http.Request) {
	store, ok := s.galleryStore(w)
	if !ok {
		return
	}
	doc, err := store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleGalleryDelete(w http.ResponseWriter, r *http.Request) {
	store, ok := s.galleryStore(w)
	if !ok {
		return
	}
	if err := store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON decodes a bounded request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
