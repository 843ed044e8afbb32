package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/MrJJimenez/jobagg/internal/models"
)

// Cache memoizes full paginated responses for the TTL window. It is a
// latency shield for rate-limited providers, not a correctness
// mechanism: a miss must produce the same response as a hit.
type Cache interface {
	Get(ctx context.Context, key string) (*models.SearchResponse, bool)
	Set(ctx context.Context, key string, resp *models.SearchResponse)
}

// Key derives the content hash for a normalized request. Normalization
// already sorted the country set and deduped skills, so semantically
// equal requests hash identically; pagination stays in the key so each
// page caches independently.
func Key(req models.SearchRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		// A SearchRequest is plain data; this cannot fail in practice.
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
