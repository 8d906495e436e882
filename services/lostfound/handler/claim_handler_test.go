package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	claim "lostfound-tracker/internal/claimService"
	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
	"lostfound-tracker/services/lostfound/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test VerifyClaimHandler
func TestVerifyClaimHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockClaimServiceInterface(ctrl)
	handler := NewClaimHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/found-items/:item_id/claim", handler.VerifyClaimHandler)

	answers := map[string]string{"1": "blue", "2": "wildcraft", "3": "medium"}

	tests := []struct {
		name           string
		itemID         string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "claim_verified_with_contact",
			itemID:      "found1",
			requestBody: helpers.ClaimRequest{Answers: answers},
			mockSetup: func() {
				mockService.EXPECT().
					VerifyClaim("found1", answers).
					Return(claim.VerificationResult{
						Success:    true,
						MatchScore: 100,
						Finder:     &model.User{UserID: "finder1", Name: "Finder One", Email: "f@example.com", Phone: "123"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "claim verified",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, true, data["success"])
				require.Equal(t, 100.0, data["match_score"])
				finder := data["finder"].(map[string]any)
				require.Equal(t, "Finder One", finder["name"])
			},
		},
		{
			name:        "claim_verified_without_contact",
			itemID:      "found1",
			requestBody: helpers.ClaimRequest{Answers: answers},
			mockSetup: func() {
				mockService.EXPECT().
					VerifyClaim("found1", answers).
					Return(claim.VerificationResult{Success: true, MatchScore: 100}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "claim verified",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, true, data["success"])
				_, hasFinder := data["finder"]
				require.False(t, hasFinder, "finder should be omitted when lookup fails")
			},
		},
		{
			name:        "claim_rejected",
			itemID:      "found1",
			requestBody: helpers.ClaimRequest{Answers: map[string]string{"1": "blue", "2": "nike", "3": "large"}},
			mockSetup: func() {
				mockService.EXPECT().
					VerifyClaim("found1", gomock.Any()).
					Return(claim.VerificationResult{Success: false, MatchScore: 200.0 / 3.0}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "claim rejected",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, false, data["success"])
				_, hasFinder := data["finder"]
				require.False(t, hasFinder, "rejected claims never carry contact details")
			},
		},
		{
			name:        "missing_answers",
			itemID:      "found1",
			requestBody: helpers.ClaimRequest{Answers: map[string]string{"1": "blue"}},
			mockSetup: func() {
				mockService.EXPECT().
					VerifyClaim("found1", gomock.Any()).
					Return(claim.VerificationResult{}, lferrors.ErrMissingAnswers)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "all security questions must be answered",
		},
		{
			name:        "item_not_found",
			itemID:      "missing",
			requestBody: helpers.ClaimRequest{Answers: answers},
			mockSetup: func() {
				mockService.EXPECT().
					VerifyClaim("missing", answers).
					Return(claim.VerificationResult{}, lferrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
		{
			name:           "invalid_json",
			itemID:         "found1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "collaborator_failure",
			itemID:      "found1",
			requestBody: helpers.ClaimRequest{Answers: answers},
			mockSetup: func() {
				mockService.EXPECT().
					VerifyClaim("found1", answers).
					Return(claim.VerificationResult{}, errors.New("db unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var body []byte
			switch b := tc.requestBody.(type) {
			case string:
				body = []byte(b)
			default:
				var err error
				body, err = json.Marshal(b)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/found-items/"+tc.itemID+"/claim", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.validateData != nil {
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok, "response should carry a data object")
				tc.validateData(t, data)
			}
		})
	}
}
