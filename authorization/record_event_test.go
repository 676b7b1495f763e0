package authorization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordConnectEvent_InformationalTypes(t *testing.T) {
	service := &Service{}

	testCases := []struct {
		name    string
		request *ConnectEventRequest
	}{
		{
			name: "application_fee_created",
			request: &ConnectEventRequest{
				EventID:     "evt_fee_1",
				Type:        "application_fee.created",
				AmountCents: 250,
			},
		},
		{
			name: "transfer_created",
			request: &ConnectEventRequest{
				EventID:     "evt_tr_1",
				Type:        "transfer.created",
				AmountCents: 4000,
				Destination: "acct_1",
			},
		},
		{
			name: "unknown_type_acknowledged",
			request: &ConnectEventRequest{
				EventID: "evt_x_1",
				Type:    "payout.paid",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response, err := service.RecordConnectEvent(context.Background(), tc.request)

			assert.NoError(t, err)
			assert.True(t, response.Received)
		})
	}
}

func TestRecordConnectEvent_AccountUpdatedRequiresPayload(t *testing.T) {
	service := &Service{}

	response, err := service.RecordConnectEvent(context.Background(), &ConnectEventRequest{
		EventID: "evt_acct_1",
		Type:    "account.updated",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account payload is required")
	assert.Nil(t, response)
}

func TestConnectEventRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *ConnectEventRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &ConnectEventRequest{EventID: "evt_1", Type: "account.updated"},
		},
		{
			name:          "missing_event_id",
			request:       &ConnectEventRequest{Type: "account.updated"},
			expectedError: "required",
		},
		{
			name:          "missing_type",
			request:       &ConnectEventRequest{EventID: "evt_1"},
			expectedError: "required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
