package authorization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/authorization/mocks/business/engine_business"
	"encore.app/authorization/model"
)

func TestGetDecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := engine_business.NewMockBusiness(ctrl)
	service := &Service{engine: mockBusiness}

	testCases := []struct {
		name          string
		eventID       string
		mockDecision  *model.AuthorizationDecision
		mockError     error
		expectedError string
	}{
		{
			name:    "found",
			eventID: "evt_1",
			mockDecision: &model.AuthorizationDecision{
				ID:       "dec_1",
				EventID:  "evt_1",
				Approved: true,
				Reason:   model.ReasonApproved,
			},
		},
		{
			name:          "not_found",
			eventID:       "evt_missing",
			mockError:     &errs.Error{Code: errs.NotFound, Message: "no decision recorded for event"},
			expectedError: "no decision recorded",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				GetDecision(gomock.Any(), tc.eventID).
				Return(tc.mockDecision, tc.mockError)

			response, err := service.GetDecision(context.Background(), tc.eventID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, *tc.mockDecision, response.Decision)
			}
		})
	}
}

func TestGetDecision_EmptyEventID(t *testing.T) {
	service := &Service{}

	response, err := service.GetDecision(context.Background(), "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid event ID")
	assert.Nil(t, response)
}
