package api

import (
	"time"

	pkgstore "github.com/goran-ethernal/DomainIndexor/pkg/store"
)

// DomainResponse is one registry entry as served by the API.
type DomainResponse struct {
	// Hash is the decimal form of the uint256 name hash
	Hash string `json:"hash"`
	// Name is the revealed plaintext, null until revealed
	Name *string `json:"name"`
	// Owner is the checksummed owner address, null until registered or transferred
	Owner *string `json:"owner"`
	// Expiry is the unix expiry in seconds as a decimal string
	Expiry *string `json:"expiry"`
	// ExpiresAt is Expiry as a timestamp, omitted when it does not fit a time value
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DomainsResponse is a page of search results.
type DomainsResponse struct {
	Domains    []DomainResponse `json:"domains"`
	Pagination PaginationResult `json:"pagination"`
}

// PaginationResult contains pagination metadata.
type PaginationResult struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// StatusResponse reports the indexing progress.
type StatusResponse struct {
	// Checkpoint is the next block to scan, null before the first scan
	Checkpoint *uint64 `json:"checkpoint"`
	QueueDepth int64   `json:"queue_depth"`
	Names      int64   `json:"names"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	// Checkpoint is the next block to scan, null before the first scan or when the store is unavailable
	Checkpoint *uint64 `json:"checkpoint"`
}

func newDomainResponse(n *pkgstore.Name) DomainResponse {
	resp := DomainResponse{
		Hash:      n.Hash,
		Name:      n.Name,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}

	if n.Owner != nil {
		owner := n.Owner.Hex()
		resp.Owner = &owner
	}

	if n.Expiry != nil {
		expiry := n.Expiry.String()
		resp.Expiry = &expiry

		if n.Expiry.IsInt64() {
			expiresAt := time.Unix(n.Expiry.Int64(), 0).UTC()
			resp.ExpiresAt = &expiresAt
		}
	}

	return resp
}

func newStatusResponse(s *pkgstore.Status) StatusResponse {
	resp := StatusResponse{
		QueueDepth: s.QueueDepth,
		Names:      s.Names,
	}
	if s.HasCheckpoint {
		checkpoint := s.Checkpoint
		resp.Checkpoint = &checkpoint
	}
	return resp
}
