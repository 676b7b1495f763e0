package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/authorization/model"
)

// DecisionCluster is the cache cluster for cached authorization decisions
var DecisionCluster = cache.NewCluster("authorization-decisions", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// DecisionCache stores one write-once entry per upstream event id. The expiry
// bounds retention: the processor stops redelivering well inside 72 hours, so
// expiry is cleanup, not correctness.
var DecisionCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	DecisionCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "decision/:EventID",
		DefaultExpiry: cache.ExpireIn(72 * time.Hour),
	},
)
