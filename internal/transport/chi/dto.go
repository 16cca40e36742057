package chi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jotomicron/mossy/internal/domain"
)

// Error response codes.
const (
	codeBadRequest          = "bad_request"
	codeInvalidInputShape   = "invalid_input_shape"
	codeUnknownEntity       = "unknown_entity"
	codeUndefinedSimilarity = "undefined_similarity"
	codeStoreUnavailable    = "store_unavailable"
	codeInternal            = "internal_error"
)

type compareRequest struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

type compareResponse struct {
	Similarity float64 `json:"similarity"`
}

type resolveResponse struct {
	IRI  string `json:"iri"`
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

type weightsResponse struct {
	PropertyWeights map[int64]float64 `json:"property_weights"`
	DefaultWeight   float64           `json:"default_weight"`
	HierarchyWeight float64           `json:"hierarchy_weight"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// parseItem decodes one comparison item. The JSON shape is decided
// once here, at the boundary: a string is a concept, an array of
// strings is a concept list, an array of arrays is a chain list.
func parseItem(raw json.RawMessage) (domain.Item, error) {
	if len(raw) == 0 {
		return domain.Item{}, fmt.Errorf("missing item")
	}

	var concept string
	if err := json.Unmarshal(raw, &concept); err == nil {
		return domain.NewConcept(concept), nil
	}

	var concepts []string
	if err := json.Unmarshal(raw, &concepts); err == nil {
		return domain.NewConceptList(concepts), nil
	}

	var chains [][]string
	if err := json.Unmarshal(raw, &chains); err == nil {
		return domain.NewChainList(chains), nil
	}

	return domain.Item{}, fmt.Errorf("item must be a string, an array of strings, or an array of string arrays")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
