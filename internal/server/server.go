// Package server exposes the algorithm catalogue and structure replays as a
// small JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/san-kum/algoviz/internal/graph"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/scenario"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/structures"
)

const (
	DefaultMaxSteps = 20000
	maxBodyBytes    = 1 << 20
)

type Server struct {
	reg      *registry.Registry
	logger   *log.Logger
	MaxSteps int
}

func New(reg *registry.Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{reg: reg, logger: logger, MaxSteps: DefaultMaxSteps}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.listAlgorithms)
		r.Get("/algorithms/{name}/steps", s.algorithmSteps)
		r.Get("/structures", s.listStructures)
		r.Post("/structures/{kind}/replay", s.replay)
	})
	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type algorithmInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (s *Server) listAlgorithms(w http.ResponseWriter, _ *http.Request) {
	list := s.reg.List()
	out := make([]algorithmInfo, len(list))
	for i, a := range list {
		out[i] = algorithmInfo{Name: a.Name, Category: string(a.Category), Description: a.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

type stepsResponse struct {
	Algorithm string             `json:"algorithm"`
	Steps     []step.Step        `json:"steps"`
	Final     step.Step          `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Server) algorithmSteps(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	a, err := s.reg.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	in, err := parseInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.New(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	d := playback.New().WithLogger(s.logger)
	for _, m := range metrics.Defaults() {
		d.AddMetric(m)
	}
	res, err := d.Run(r.Context(), p, playback.Config{MaxSteps: s.MaxSteps, Record: true})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, playback.ErrMaxSteps) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, stepsResponse{
		Algorithm: a.Name,
		Steps:     res.Steps,
		Final:     res.Final,
		Metrics:   res.Metrics,
	})
}

type structureInfo struct {
	Kind  string   `json:"kind"`
	Usage []string `json:"usage"`
}

func (s *Server) listStructures(w http.ResponseWriter, _ *http.Request) {
	kinds := structures.Kinds()
	out := make([]structureInfo, 0, len(kinds))
	for _, k := range kinds {
		st, err := structures.New(k, structures.DefaultCapacity)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, structureInfo{Kind: string(k), Usage: st.Usage()})
	}
	writeJSON(w, http.StatusOK, out)
}

type replayRequest struct {
	Capacity int      `json:"capacity"`
	Commands []string `json:"commands"`
}

func (s *Server) replay(w http.ResponseWriter, r *http.Request) {
	var req replayRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	if req.Capacity == 0 {
		req.Capacity = structures.DefaultCapacity
	}

	report, err := scenario.Replay(chi.URLParam(r, "kind"), req.Capacity, req.Commands)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, structures.ErrUnknownKind) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func parseInput(r *http.Request) (registry.Input, error) {
	q := r.URL.Query()
	in := registry.Input{
		Edges:   q.Get("edges"),
		Pattern: q.Get("pattern"),
	}

	if v := q.Get("values"); v != "" {
		values, err := parseInts(v)
		if err != nil {
			return in, fmt.Errorf("values: %w", err)
		}
		in.Values = values
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"target", &in.Target},
		{"start", &in.Start},
		{"end", &in.End},
		{"nodes", &in.Nodes},
		{"limit", &in.Limit},
		{"inner", &in.Inner},
	}
	for _, f := range ints {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}
	in.HasEnd = q.Has("end")
	if q.Has("nodes") {
		if err := graph.CheckNodes(in.Nodes); err != nil {
			return in, err
		}
	}

	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return in, fmt.Errorf("seed: %w", err)
		}
		in.Seed = n
	}
	if v := q.Get("edge_prob"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 || p > 1 {
			return in, fmt.Errorf("edge_prob must be in [0, 1], got %q", v)
		}
		in.EdgeProb = p
	}
	return in, nil
}

// parseInts reads a comma or space separated list of integers.
func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
