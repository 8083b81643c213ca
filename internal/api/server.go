// Package api implements the Wayreach HTTP API.
//
// The API lets a deployment upload road networks once and run reach queries
// against them by content hash:
//
//	POST /v1/networks                  upload a network JSON, returns its hash
//	GET  /v1/networks/{hash}/reach    reach of one edge (edge, max, direction, profile)
//	GET  /healthz                      liveness probe
//
// Uploaded networks are stored in the configured cache backend (file, Redis,
// or MongoDB) keyed by SHA-256 content hash. Reach results are computed per
// request and never stored.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayreach/wayreach/pkg/cache"
	"github.com/wayreach/wayreach/pkg/costing"
	apperrors "github.com/wayreach/wayreach/pkg/errors"
	"github.com/wayreach/wayreach/pkg/graph"
	"github.com/wayreach/wayreach/pkg/observability"
	"github.com/wayreach/wayreach/pkg/reach"
)

const (
	// maxUploadBytes bounds network upload size (64 MiB).
	maxUploadBytes = 64 << 20

	// defaultMaxReach is used when a reach query omits the max parameter.
	defaultMaxReach = 50

	// maxMaxReach caps the threshold a query may request, keeping worst-case
	// expansion cost bounded on dense networks.
	maxMaxReach = 100000
)

// Server serves reach queries over uploaded networks.
type Server struct {
	store  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	ttl    time.Duration
}

// NewServer creates a server backed by the given cache.
// A zero ttl stores uploaded networks without expiration.
func NewServer(store cache.Cache, logger *log.Logger, ttl time.Duration) *Server {
	return &Server{
		store:  store,
		keyer:  cache.NewDefaultKeyer(),
		logger: logger,
		ttl:    ttl,
	}
}

// Router builds the HTTP handler with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/networks", s.handleUploadNetwork)
		r.Get("/networks/{hash}/reach", s.handleReach)
	})
	return r
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// uploadResponse is the JSON body returned by POST /v1/networks.
type uploadResponse struct {
	Hash  string `json:"hash"`
	Edges int    `json:"edges"`
	Nodes int    `json:"nodes"`
}

func (s *Server) handleUploadNetwork(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read request body"))
		return
	}
	if len(body) > maxUploadBytes {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "network exceeds %d bytes", maxUploadBytes))
		return
	}

	n, err := graph.ReadNetwork(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidNetwork, err, "invalid network"))
		return
	}

	hash := cache.Hash(body)
	key := s.keyer.NetworkKey(hash)
	if err := s.store.Set(r.Context(), key, body, s.ttl); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "store network"))
		return
	}
	observability.Cache().OnCacheSet(r.Context(), "network", len(body))

	writeJSON(w, http.StatusCreated, uploadResponse{
		Hash:  hash,
		Edges: n.EdgeCount(),
		Nodes: n.NodeCount(),
	})
}

// reachResponse is the JSON body returned by GET /v1/networks/{hash}/reach.
type reachResponse struct {
	Edge      uint64       `json:"edge"`
	MaxReach  uint32       `json:"max_reach"`
	Direction string       `json:"direction"`
	Profile   string       `json:"profile"`
	Result    reach.Result `json:"result"`
}

func (s *Server) handleReach(w http.ResponseWriter, r *http.Request) {
	n, ok := s.loadNetwork(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	edge, err := strconv.ParseUint(q.Get("edge"), 10, 64)
	if err != nil {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidEdge, "invalid edge id %q", q.Get("edge")))
		return
	}

	maxReach := uint32(defaultMaxReach)
	if raw := q.Get("max"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || v < 1 || v > maxMaxReach {
			s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidThreshold, "max must be in [1, %d]", maxMaxReach))
			return
		}
		maxReach = uint32(v)
	}

	dir, err := parseDirection(q.Get("direction"))
	if err != nil {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidDirection, "invalid direction %q", q.Get("direction")))
		return
	}

	profileName := q.Get("profile")
	if profileName == "" {
		profileName = "auto"
	}
	profile, err := costing.Builtin(profileName)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidProfile, err, "invalid profile %q", profileName))
		return
	}

	res, err := reach.Compute(graph.EdgeID(edge), maxReach, n, profile, dir)
	if err != nil {
		code := apperrors.ErrCodeInternal
		if isUnknownEdge(err) {
			code = apperrors.ErrCodeEdgeNotFound
		}
		s.writeError(w, r, apperrors.Wrap(code, err, "compute reach for edge %d", edge))
		return
	}

	writeJSON(w, http.StatusOK, reachResponse{
		Edge:      edge,
		MaxReach:  maxReach,
		Direction: dir.String(),
		Profile:   profileName,
		Result:    res,
	})
}

// loadNetwork fetches and decodes the network named by the {hash} URL param.
// On failure it writes the error response and returns false.
func (s *Server) loadNetwork(w http.ResponseWriter, r *http.Request) (*graph.Network, bool) {
	hash := chi.URLParam(r, "hash")
	key := s.keyer.NetworkKey(hash)

	data, hit, err := s.store.Get(r.Context(), key)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "load network %s", hash))
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(r.Context(), "network")
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeNetworkNotFound, "network %s not found", hash))
		return nil, false
	}
	observability.Cache().OnCacheHit(r.Context(), "network")

	n, err := graph.ReadNetwork(bytes.NewReader(data))
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "decode stored network %s", hash))
		return nil, false
	}
	return n, true
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns a UUID to each request and echoes it in X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := contextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests logs one line per request with method, path, status and timing.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", requestIDFromContext(r.Context()),
		)
	})
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// =============================================================================
// Helpers
// =============================================================================

// errorResponse is the JSON body for all error replies.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err *apperrors.Error) {
	status := statusForCode(err.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", requestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Error:     apperrors.UserMessage(err),
		Code:      string(err.Code),
		RequestID: requestIDFromContext(r.Context()),
	})
}

func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidEdge,
		apperrors.ErrCodeInvalidThreshold, apperrors.ErrCodeInvalidDirection,
		apperrors.ErrCodeInvalidNetwork, apperrors.ErrCodeInvalidProfile:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeEdgeNotFound,
		apperrors.ErrCodeNetworkNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func parseDirection(raw string) (reach.Direction, error) {
	switch raw {
	case "", "both":
		return reach.Both, nil
	case "inbound":
		return reach.Inbound, nil
	case "outbound":
		return reach.Outbound, nil
	}
	return 0, fmt.Errorf("unknown direction %q", raw)
}

func isUnknownEdge(err error) bool {
	return errors.Is(err, graph.ErrUnknownEdge)
}

func contextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
