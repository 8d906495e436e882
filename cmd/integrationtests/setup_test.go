package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	claim "lostfound-tracker/internal/claimService"
	matching "lostfound-tracker/internal/matchService"
	model "lostfound-tracker/internal/models"
	report "lostfound-tracker/internal/reportService"
	"lostfound-tracker/internal/repository"
	"lostfound-tracker/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository for integration testing.
func SetupTestRouter() *gin.Engine {
	return SetupTestRouterWithUsers()
}

// SetupTestRouterWithUsers initializes the router and seeds the repo with user accounts.
func SetupTestRouterWithUsers(users ...model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, user := range users {
		_ = repo.SaveUser(user)
	}

	reportService := report.NewReportService(repo)
	matchService := matching.NewMatchService(repo)
	claimService := claim.NewClaimService(repo)
	return server.SetupRouter(reportService, matchService, claimService)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
