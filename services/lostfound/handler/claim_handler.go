package handler

import (
	"fmt"
	"net/http"

	claim "lostfound-tracker/internal/claimService"
	"lostfound-tracker/services/lostfound/helpers"
	"lostfound-tracker/utils"

	"github.com/gin-gonic/gin"
)

type ClaimServiceInterface interface {
	VerifyClaim(foundItemID string, answers map[string]string) (claim.VerificationResult, error)
}

type ClaimHandler struct {
	service ClaimServiceInterface
}

func NewClaimHandler(service ClaimServiceInterface) *ClaimHandler {
	return &ClaimHandler{service: service}
}

// VerifyClaimHandler handles POST /found-items/:item_id/claim
func (h *ClaimHandler) VerifyClaimHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyClaimHandler", err)
		return
	}

	result, err := h.service.VerifyClaim(itemID, req.Answers)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("VerifyClaimHandler: claim verification error", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	message := "claim rejected"
	if result.Success {
		message = "claim verified"
	}

	utils.JSONResponse(c, http.StatusOK, result, message)
	helpers.LogSuccess("VerifyClaimHandler", message, map[string]any{
		"item_id":     itemID,
		"success":     result.Success,
		"match_score": result.MatchScore,
	})
}
