package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	pkgstore "github.com/goran-ethernal/DomainIndexor/pkg/store"
)

// Handler handles HTTP requests for the API.
type Handler struct {
	store pkgstore.Store
	log   *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(store pkgstore.Store, log *logger.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

// SearchDomains searches the registry by revealed name.
// @Summary Search domains
// @Description Fuzzy match revealed domain names, ordered by name
// @Tags Domains
// @Produce json
// @Param query query string false "Substring of the domain name"
// @Param owner query string false "Restrict results to this owner address"
// @Param limit query int false "Maximum number of domains to return (capped at 200)" default(200)
// @Param offset query int false "Number of domains to skip" default(0)
// @Param sort_order query string false "Sort order by name: asc or desc" Enums(asc, desc)
// @Success 200 {object} DomainsResponse "Matching domains with pagination info"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /domains [get]
func (h *Handler) SearchDomains(w http.ResponseWriter, r *http.Request) {
	query, err := parseNameQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid query parameters: %v", err))
		return
	}

	names, total, err := h.store.SearchNames(r.Context(), query)
	if err != nil {
		h.log.Errorf("Failed to search domains: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to search domains")
		return
	}

	domains := make([]DomainResponse, 0, len(names))
	for _, n := range names {
		domains = append(domains, newDomainResponse(n))
	}

	respondJSON(w, http.StatusOK, DomainsResponse{
		Domains: domains,
		Pagination: PaginationResult{
			Total:   total,
			Limit:   query.Limit,
			Offset:  query.Offset,
			HasMore: int64(query.Offset+len(domains)) < total,
		},
	})
}

// GetDomain returns one registry entry.
// @Summary Get a domain
// @Description Retrieve a registry entry by its name hash
// @Tags Domains
// @Produce json
// @Param hash path string true "Name hash, decimal or 0x-prefixed hex"
// @Success 200 {object} DomainResponse "Registry entry"
// @Failure 400 {object} ErrorResponse "Invalid hash"
// @Failure 404 {object} ErrorResponse "Domain not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /domains/{hash} [get]
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	hash, err := parseHash(r.PathValue("hash"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.store.GetName(r.Context(), hash)
	if errors.Is(err, pkgstore.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("domain '%s' not found", hash))
		return
	}
	if err != nil {
		h.log.Errorf("Failed to get domain %s: %v", hash, err)
		respondError(w, http.StatusInternalServerError, "failed to get domain")
		return
	}

	respondJSON(w, http.StatusOK, newDomainResponse(n))
}

// GetStatus reports the indexing progress.
// @Summary Indexer status
// @Description Checkpoint, number of queued events and number of registry entries
// @Tags Status
// @Produce json
// @Success 200 {object} StatusResponse "Indexing progress"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /status [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.store.Status(r.Context())
	if err != nil {
		h.log.Errorf("Failed to get status: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to get status")
		return
	}

	respondJSON(w, http.StatusOK, newStatusResponse(status))
}

// Health returns the health status of the API and its store.
// @Summary Health check
// @Description Check that the API can read the store
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Healthy"
// @Failure 503 {object} HealthResponse "Store unavailable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	}

	checkpoint, ok, err := h.store.GetCheckpoint(r.Context())
	if err != nil {
		h.log.Warnf("Health check failed: %v", err)
		response.Status = "unavailable"
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	if ok {
		response.Checkpoint = &checkpoint
	}

	respondJSON(w, http.StatusOK, response)
}

// parseNameQuery parses HTTP query parameters into a registry search.
func parseNameQuery(r *http.Request) (pkgstore.NameQuery, error) {
	values := r.URL.Query()
	query := pkgstore.NameQuery{
		Search: values.Get("query"),
		Limit:  config.MaxSearchResults,
		Order:  pkgstore.SortAsc,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return query, fmt.Errorf("invalid limit: must be a positive integer")
		}
		query.Limit = min(limit, config.MaxSearchResults)
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return query, fmt.Errorf("invalid offset: must be non-negative")
		}
		query.Offset = offset
	}

	if owner := values.Get("owner"); owner != "" {
		if !common.IsHexAddress(owner) {
			return query, fmt.Errorf("invalid owner address")
		}
		addr := common.HexToAddress(owner)
		query.Owner = &addr
	}

	if sortOrder := values.Get("sort_order"); sortOrder != "" {
		switch pkgstore.SortOrder(strings.ToLower(sortOrder)) {
		case pkgstore.SortAsc:
			query.Order = pkgstore.SortAsc
		case pkgstore.SortDesc:
			query.Order = pkgstore.SortDesc
		default:
			return query, fmt.Errorf("invalid sort_order: must be 'asc' or 'desc'")
		}
	}

	return query, nil
}

// parseHash accepts a decimal or 0x-prefixed hex uint256 and returns its decimal form.
func parseHash(s string) (string, error) {
	if s == "" {
		return "", errors.New("hash is required")
	}

	n, ok := new(big.Int).SetString(s, 0)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return "", fmt.Errorf("invalid hash '%s': must be a uint256 in decimal or 0x hex", s)
	}

	return n.String(), nil
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Encode first so a failure can still change the status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)

	// headers are gone at this point, nothing left to report to the client
	_, _ = w.Write(encoded)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	respondJSON(w, status, response)
}
