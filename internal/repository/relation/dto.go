package relation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jotomicron/mossy/internal/db"
	"github.com/jotomicron/mossy/internal/domain"
)

// edgeFromRow hydrates a domain edge from a stored row, decoding the
// comma-delimited property chain.
func edgeFromRow(row db.RelationRow) (domain.RelationEdge, error) {
	props, err := parseChain(row.Chain)
	if err != nil {
		return domain.RelationEdge{}, err
	}
	return domain.RelationEdge{
		Properties: props,
		End:        domain.ConceptID(row.End),
		Distance:   row.Distance,
	}, nil
}

// parseChain decodes "12,7,3" into property ids.
func parseChain(chain string) ([]domain.PropertyID, error) {
	parts := strings.Split(chain, ",")
	props := make([]domain.PropertyID, len(parts))
	for i, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid property chain %q: %w", chain, err)
		}
		props[i] = domain.PropertyID(id)
	}
	return props, nil
}
