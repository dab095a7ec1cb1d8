// Package v1 implements the native REST API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vmunix/screenpairs/internal/actors"
	"github.com/vmunix/screenpairs/internal/popular"
	"github.com/vmunix/screenpairs/internal/ratelimit"
	"github.com/vmunix/screenpairs/internal/tmdb"
)

const (
	defaultPairsLimit = 20
	maxPairsLimit     = 100
)

// MissingActorsMessage is returned when either actor name is absent.
const MissingActorsMessage = "Both actor names must be provided."

// Config holds API server configuration.
type Config struct {
	Version string
	// Per client IP budgets for autocomplete and common-movies. Zero is unlimited.
	ActorRate  ratelimit.Rate
	MoviesRate ratelimit.Rate
}

// Server is the v1 API server.
type Server struct {
	deps          ServerDeps
	cfg           Config
	validate      *validator.Validate
	log           *slog.Logger
	actorLimiter  *ratelimit.Limiter
	moviesLimiter *ratelimit.Limiter
}

// NewWithDeps creates a new v1 API server from explicit dependencies.
func NewWithDeps(deps ServerDeps, cfg Config, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Server{
		deps:          deps,
		cfg:           cfg,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		log:           log,
		actorLimiter:  ratelimit.New(cfg.ActorRate),
		moviesLimiter: ratelimit.New(cfg.MoviesRate),
	}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Actors
	mux.HandleFunc("GET /api/v1/actors/autocomplete", s.limitByIP(s.actorLimiter, s.autocomplete))

	// Pairs
	mux.HandleFunc("GET /api/v1/common-movies", s.limitByIP(s.moviesLimiter, s.commonMovies))
	mux.HandleFunc("GET /api/v1/pairs/popular", s.requirePopular(s.listPopular))

	// System
	mux.HandleFunc("GET /api/v1/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeUpstreamError maps a pipeline failure to a response.
// TMDB failures become 502; anything else is a 500.
func (s *Server) writeUpstreamError(w http.ResponseWriter, err error) {
	var remote *tmdb.RemoteServiceError
	if errors.As(err, &remote) {
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", remote.Error())
		return
	}
	s.log.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(val)
}

// queryString extracts a trimmed string from query string.
func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

func (s *Server) autocomplete(w http.ResponseWriter, r *http.Request) {
	query := queryString(r, "query")
	if query == "" {
		writeJSON(w, http.StatusOK, autocompleteResponse{Results: []actors.Candidate{}})
		return
	}

	results, err := s.deps.Candidates.SearchCandidates(r.Context(), query)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}
	if results == nil {
		results = []actors.Candidate{}
	}

	writeJSON(w, http.StatusOK, autocompleteResponse{Results: results})
}

func (s *Server) commonMovies(w http.ResponseWriter, r *http.Request) {
	req := commonMoviesRequest{
		Actor1: queryString(r, "actor1"),
		Actor2: queryString(r, "actor2"),
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", MissingActorsMessage)
		return
	}

	result, err := s.deps.Engine.ComputePair(r.Context(), req.Actor1, req.Actor2)
	if err != nil {
		s.writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) listPopular(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultPairsLimit)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
		return
	}
	switch {
	case limit == 0:
		limit = defaultPairsLimit
	case limit > maxPairsLimit:
		limit = maxPairsLimit
	}

	var (
		items []*popular.Pair
		total int
	)
	if actor := queryString(r, "actor"); actor != "" {
		items, err = s.deps.Popular.FindByActor(r.Context(), actor, limit)
		total = len(items)
	} else {
		items, err = s.deps.Popular.List(r.Context(), limit)
		if err == nil {
			total, err = s.deps.Popular.Count(r.Context())
		}
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	if items == nil {
		items = []*popular.Pair{}
	}

	writeJSON(w, http.StatusOK, listPairsResponse{Items: items, Total: total, Limit: limit})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Version: s.cfg.Version})
}
