package idempotency

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/authorization/model"
)

// ComputeFunc produces the decision for an event seen for the first time.
type ComputeFunc func(ctx context.Context) (*model.AuthorizationDecision, error)

// Store is a single-flight, write-once decision cache keyed by event id.
// Concurrent callers for the same event observe exactly one compute execution.
type Store interface {
	// GetOrCreate returns the cached decision for eventID, or runs compute and
	// caches its result. The bool reports whether the decision came from cache.
	GetOrCreate(ctx context.Context, eventID, requestHash string, compute ComputeFunc) (*model.AuthorizationDecision, bool, error)
}

// Cache is the slice of the decision keyspace the store uses; it is satisfied
// by *cache.StructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry].
type Cache interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

type cacheStore struct {
	cache         Cache
	waitBudget    time.Duration
	pollInterval  time.Duration
	computeBudget time.Duration
}

// NewStore creates a cache-backed store. waitBudget bounds how long a caller
// waits for a concurrent computation of the same event before giving up with a
// retryable error.
func NewStore(waitBudget time.Duration) Store {
	return &cacheStore{
		cache:         DecisionCache,
		waitBudget:    waitBudget,
		pollInterval:  50 * time.Millisecond,
		computeBudget: 30 * time.Second,
	}
}

func (s *cacheStore) GetOrCreate(ctx context.Context, eventID, requestHash string, compute ComputeFunc) (*model.AuthorizationDecision, bool, error) {
	key := model.IdempotencyKey{EventID: eventID}

	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.Miss) {
			return s.computeAndCache(ctx, key, requestHash, compute)
		}
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}
	}

	return s.resolveExisting(ctx, key, entry, requestHash)
}

func (s *cacheStore) computeAndCache(ctx context.Context, key model.IdempotencyKey, requestHash string, compute ComputeFunc) (*model.AuthorizationDecision, bool, error) {
	// The processing marker is claimed atomically: exactly one of the
	// concurrent first deliveries wins and runs compute, everyone else
	// resolves against the winner's entry.
	if err := s.cache.SetIfNotExists(ctx, key, model.IdempotencyCacheEntry{
		Status:      model.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		CreatedAt:   time.Now(),
	}); err != nil {
		if errors.Is(err, cache.KeyExists) {
			entry, getErr := s.cache.Get(ctx, key)
			if getErr != nil {
				return nil, false, &errs.Error{Code: errs.Unavailable, Message: "event is already being processed, retry"}
			}
			return s.resolveExisting(ctx, key, entry, requestHash)
		}
		rlog.Error("failed to mark event as processing", "event_id", key.EventID, "error", err)
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to mark event as processing"}
	}

	// Past the claim the caller's disconnect must not abort the pipeline:
	// the computation and both cache writes run detached from the caller's
	// cancellation, bounded only by the store's own deadline.
	dctx, cancel := detachedContext(ctx, s.computeBudget)
	defer cancel()

	decision, err := compute(dctx)
	if err != nil {
		// Clear the processing marker so a redelivery can retry.
		s.clearMarker(dctx, key)
		return nil, false, err
	}

	payload, err := json.Marshal(decision)
	if err != nil {
		rlog.Error("failed to marshal decision for caching", "event_id", key.EventID, "error", err)
		s.clearMarker(dctx, key)
		return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to cache decision"}
	}

	if err := s.cache.Set(dctx, key, model.IdempotencyCacheEntry{
		Status:      model.IdempotencyStatusCompleted,
		RequestHash: requestHash,
		Decision:    payload,
		UpdatedAt:   time.Now(),
	}); err != nil {
		// A lingering processing marker would wedge every redelivery until
		// expiry, so it is cleared and the processor retries recomputation.
		rlog.Error("failed to cache decision", "event_id", key.EventID, "error", err)
		s.clearMarker(dctx, key)
		return nil, false, &errs.Error{Code: errs.Unavailable, Message: "failed to record decision"}
	}

	return decision, false, nil
}

func (s *cacheStore) clearMarker(ctx context.Context, key model.IdempotencyKey) {
	if _, err := s.cache.Delete(ctx, key); err != nil {
		rlog.Error("failed to clear processing marker", "event_id", key.EventID, "error", err)
	}
}

func (s *cacheStore) resolveExisting(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry, requestHash string) (*model.AuthorizationDecision, bool, error) {
	if err := checkRequestHash(entry, requestHash); err != nil {
		return nil, false, err
	}

	switch entry.Status {
	case model.IdempotencyStatusCompleted:
		decision, err := decodeDecision(entry)
		if err != nil {
			rlog.Error("cached decision is unreadable", "event_id", key.EventID, "error", err)
			return nil, false, &errs.Error{Code: errs.Internal, Message: "cached decision is unreadable"}
		}
		rlog.Info("returning cached decision", "event_id", key.EventID, "approved", decision.Approved)
		return decision, true, nil

	case model.IdempotencyStatusProcessing:
		return s.awaitCompletion(ctx, key)

	default:
		rlog.Warn("unknown idempotency entry status", "event_id", key.EventID, "status", entry.Status)
		return nil, false, &errs.Error{Code: errs.Internal, Message: "unknown idempotency entry status"}
	}
}

// awaitCompletion briefly polls for the concurrent computation's result. A
// redelivery arriving while the first delivery is still in flight must never
// fabricate a second decision, so past the wait budget the caller gets a
// retryable error instead.
func (s *cacheStore) awaitCompletion(ctx context.Context, key model.IdempotencyKey) (*model.AuthorizationDecision, bool, error) {
	deadline := time.Now().Add(s.waitBudget)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, false, &errs.Error{Code: errs.DeadlineExceeded, Message: "caller gave up waiting for decision"}
		case <-time.After(s.pollInterval):
		}

		entry, err := s.cache.Get(ctx, key)
		if err != nil {
			if errors.Is(err, cache.Miss) {
				// The first delivery failed and cleared its marker.
				return nil, false, &errs.Error{Code: errs.Unavailable, Message: "event processing failed, retry"}
			}
			return nil, false, &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}
		}

		if entry.Status == model.IdempotencyStatusCompleted {
			decision, err := decodeDecision(entry)
			if err != nil {
				return nil, false, &errs.Error{Code: errs.Internal, Message: "cached decision is unreadable"}
			}
			return decision, true, nil
		}
	}

	rlog.Info("concurrent delivery still processing", "event_id", key.EventID)
	return nil, false, &errs.Error{Code: errs.Unavailable, Message: "event is already being processed, retry"}
}

// detachedContext severs the caller's cancellation while keeping its values,
// bounded by the given budget instead.
func detachedContext(ctx context.Context, budget time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), budget)
}

func decodeDecision(entry model.IdempotencyCacheEntry) (*model.AuthorizationDecision, error) {
	var decision model.AuthorizationDecision
	if err := json.Unmarshal(entry.Decision, &decision); err != nil {
		return nil, err
	}
	return &decision, nil
}

// checkRequestHash rejects an event id reused with a different payload.
func checkRequestHash(entry model.IdempotencyCacheEntry, requestHash string) *errs.Error {
	if requestHash != "" && entry.RequestHash != "" && requestHash != entry.RequestHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "event id conflict: payload does not match previous delivery"}
	}
	return nil
}

// HashRequest creates a stable hash of the normalized request payload.
func HashRequest(payload any) string {
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request for hashing", "error", err)
		return ""
	}
	return hashing(body)
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
