package handler

import (
	"fmt"
	"net/http"

	model "lostfound-tracker/internal/models"
	"lostfound-tracker/services/lostfound/helpers"
	"lostfound-tracker/utils"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	service MatchServiceInterface
}

func NewMatchHandler(service MatchServiceInterface) *MatchHandler {
	return &MatchHandler{service: service}
}

// DiscoverMatchesHandler handles POST /users/:user_id/matches/discover
func (h *MatchHandler) DiscoverMatchesHandler(c *gin.Context) {
	userID := c.Param("user_id")
	matches, err := h.service.DiscoverMatches(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DiscoverMatchesHandler: discovery failed", map[string]any{
			"handler": "DiscoverMatchesHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if matches == nil {
		matches = []model.Match{}
	}

	utils.JSONResponse(c, http.StatusOK, matches, "match discovery completed")
	helpers.LogSuccess("DiscoverMatchesHandler", "match discovery completed", map[string]any{
		"user_id":     userID,
		"new_matches": len(matches),
	})
}

// GetUserMatchesHandler handles GET /users/:user_id/matches
func (h *MatchHandler) GetUserMatchesHandler(c *gin.Context) {
	userID := c.Param("user_id")
	userMatches, err := h.service.GetUserMatches(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserMatchesHandler: error retrieving matches", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, userMatches, "matches retrieved successfully")
	helpers.LogSuccess("GetUserMatchesHandler", "matches retrieved successfully", map[string]any{
		"user_id":            userID,
		"lost_item_matches":  len(userMatches.LostItemMatches),
		"found_item_matches": len(userMatches.FoundItemMatches),
	})
}
