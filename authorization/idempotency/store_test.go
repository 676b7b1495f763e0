package idempotency

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/authorization/model"
)

func TestHashing(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty_input",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "simple_text",
			input:    []byte("test"),
			expected: "098f6bcd4621d373cade4e832627b4f6", // MD5 of "test"
		},
		{
			name:  "json_payload",
			input: []byte(`{"event_id":"evt_1","amount_cents":4000}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := hashing(tc.input)

			if tc.expected != "" || len(tc.input) == 0 {
				assert.Equal(t, tc.expected, result)
			}
			if len(tc.input) > 0 {
				assert.Len(t, result, 32)
				assert.Regexp(t, "^[a-f0-9]{32}$", result)
				assert.Equal(t, result, hashing(tc.input), "hash should be deterministic")
				assert.NotEqual(t, result, hashing(append(tc.input, 'x')))
			}
		})
	}
}

func TestHashRequest_StableAcrossRedeliveries(t *testing.T) {
	first := &model.AuthorizationRequest{
		EventID:            "evt_1",
		UserID:             "user_1",
		AmountCents:        4000,
		Currency:           "USD",
		ConnectedAccountID: "acct_1",
		ReceivedAt:         time.Now(),
	}
	redelivery := *first
	redelivery.ReceivedAt = first.ReceivedAt.Add(30 * time.Second)

	// ReceivedAt varies per delivery attempt and must not change the hash.
	assert.Equal(t, HashRequest(first.Payload()), HashRequest(redelivery.Payload()))

	tampered := *first
	tampered.AmountCents = 9000
	assert.NotEqual(t, HashRequest(first.Payload()), HashRequest(tampered.Payload()))
}

func TestCheckRequestHash(t *testing.T) {
	testCases := []struct {
		name          string
		entry         model.IdempotencyCacheEntry
		requestHash   string
		expectedError string
	}{
		{
			name:        "matching_hashes",
			entry:       model.IdempotencyCacheEntry{RequestHash: "abc123"},
			requestHash: "abc123",
		},
		{
			name:        "empty_cached_hash_allows_any",
			entry:       model.IdempotencyCacheEntry{},
			requestHash: "abc123",
		},
		{
			name:        "empty_new_hash_allows_any",
			entry:       model.IdempotencyCacheEntry{RequestHash: "abc123"},
			requestHash: "",
		},
		{
			name:          "conflicting_hashes",
			entry:         model.IdempotencyCacheEntry{RequestHash: "abc123"},
			requestHash:   "xyz789",
			expectedError: "event id conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkRequestHash(tc.entry, tc.requestHash)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestDecodeDecision(t *testing.T) {
	decision := model.AuthorizationDecision{
		ID:       "dec_1",
		EventID:  "evt_1",
		Approved: false,
		Reason:   model.ReasonExceedsTransactionLimit,
	}
	payload, err := json.Marshal(decision)
	require.NoError(t, err)

	decoded, err := decodeDecision(model.IdempotencyCacheEntry{Decision: payload})
	require.NoError(t, err)
	assert.Equal(t, decision, *decoded)

	_, err = decodeDecision(model.IdempotencyCacheEntry{Decision: []byte("{broken")})
	assert.Error(t, err)
}
