// Package chi exposes the comparer over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jotomicron/mossy/internal/domain"
	"github.com/jotomicron/mossy/internal/metrics"
	compareuc "github.com/jotomicron/mossy/internal/usecase/compare"
	healthuc "github.com/jotomicron/mossy/internal/usecase/health"
	weightsuc "github.com/jotomicron/mossy/internal/usecase/weights"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers of the compare API.
type Server struct {
	compare       *compareuc.Service
	resolver      compareuc.Resolver
	weights       *weightsuc.Table
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	compare *compareuc.Service,
	resolver compareuc.Resolver,
	weights *weightsuc.Table,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		compare:  compare,
		resolver: resolver,
		weights:  weights,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidInputShape, http.StatusBadRequest, codeInvalidInputShape),
		sentinelHandler(domain.ErrUnknownEntity, http.StatusNotFound, codeUnknownEntity),
		sentinelHandler(domain.ErrUndefinedSimilarity, http.StatusUnprocessableEntity, codeUndefinedSimilarity),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
	}
	return s
}

// HandleCompare handles POST /v1/compare.
func (s *Server) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	itemA, err := parseItem(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInputShape, "Item a: "+err.Error())
		return
	}
	itemB, err := parseItem(req.B)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInputShape, "Item b: "+err.Error())
		return
	}

	start := time.Now()
	similarity, err := s.compare.Compare(r.Context(), itemA, itemB)
	metrics.ComparisonDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.ComparisonsTotal.WithLabelValues("ok").Inc()

	writeJSON(w, http.StatusOK, compareResponse{Similarity: similarity})
}

// HandleResolve handles GET /v1/resolve.
func (s *Server) HandleResolve(w http.ResponseWriter, r *http.Request) {
	iri := r.URL.Query().Get("iri")
	if iri == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Query parameter iri is required")
		return
	}

	kind := domain.EntityKind(r.URL.Query().Get("kind"))
	switch kind {
	case "":
		kind = domain.KindConcept
	case domain.KindConcept, domain.KindObjectProperty:
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"Query parameter kind must be \"Concept\" or \"ObjectProperty\"")
		return
	}

	id, err := s.resolver.Resolve(r.Context(), iri, kind)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{IRI: iri, Kind: string(kind), ID: id})
}

// HandleWeights handles GET /v1/weights.
func (s *Server) HandleWeights(w http.ResponseWriter, r *http.Request) {
	snapshot := s.weights.Snapshot()
	perProperty := make(map[int64]float64, len(snapshot))
	for p, weight := range snapshot {
		perProperty[int64(p)] = weight
	}

	writeJSON(w, http.StatusOK, weightsResponse{
		PropertyWeights: perProperty,
		DefaultWeight:   s.weights.DefaultWeight(),
		HierarchyWeight: s.weights.HierarchyWeight(),
	})
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}
	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// handleDomainError maps a usecase error onto an HTTP response.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("Unhandled comparison error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternal, "Internal error")
}

// sentinelHandler maps a sentinel error to a fixed status and code.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}
