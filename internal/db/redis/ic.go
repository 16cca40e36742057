package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/jotomicron/mossy/internal/db"
)

// IC returns the information-content value stored for the concept.
// Values live under <prefix>ic:<conceptID> as decimal strings, written
// by the external IC pipeline. Returns db.ErrValueNotFound when the
// concept has no stored value.
func (s *Store) IC(ctx context.Context, concept int64) (float64, error) {
	key := s.prefix + "ic:" + strconv.FormatInt(concept, 10)

	cmd := s.client.B().Get().Key(key).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, db.ErrValueNotFound
		}
		return 0, &db.Error{Op: db.OpICGet, Err: err}
	}

	ic, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return 0, &db.Error{Op: db.OpICGet, Err: fmt.Errorf("parse %q: %w", data, err)}
	}
	return ic, nil
}
