package handler

import (
	"fmt"
	"net/http"

	matching "lostfound-tracker/internal/matchService"
	model "lostfound-tracker/internal/models"
	report "lostfound-tracker/internal/reportService"
	"lostfound-tracker/services/lostfound/helpers"
	"lostfound-tracker/utils"

	"github.com/gin-gonic/gin"
)

type ReportServiceInterface interface {
	ReportLostItem(req report.LostItemReport) (model.LostItem, error)
	ReportFoundItem(req report.FoundItemReport) (model.FoundItem, error)
	ListLostItemsByUser(userID string) ([]model.LostItem, error)
	BrowseFoundItems(filter model.ItemFilter) ([]model.FoundItem, error)
}

type MatchServiceInterface interface {
	DiscoverMatches(userID string) ([]model.Match, error)
	GetUserMatches(userID string) (matching.UserMatches, error)
}

type ReportHandler struct {
	service ReportServiceInterface
}

func NewReportHandler(service ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

func toSecurityAnswers(reqs []helpers.SecurityAnswerRequest) []model.SecurityAnswer {
	answers := make([]model.SecurityAnswer, 0, len(reqs))
	for _, r := range reqs {
		answers = append(answers, model.SecurityAnswer{QuestionID: r.QuestionID, Answer: r.Answer})
	}
	return answers
}

// ReportLostItemHandler handles POST /lost-items
func (h *ReportHandler) ReportLostItemHandler(c *gin.Context) {
	var req helpers.ReportLostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReportLostItemHandler", err)
		return
	}

	item, err := h.service.ReportLostItem(report.LostItemReport{
		UserID:            req.UserID,
		DistrictID:        req.DistrictID,
		VenueID:           req.VenueID,
		ItemName:          req.ItemName,
		Description:       req.Description,
		Category:          req.Category,
		DateLost:          req.DateLost,
		SecurityQuestions: toSecurityAnswers(req.SecurityQuestions),
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ReportLostItemHandler: failed to report lost item", map[string]any{
			"handler": "ReportLostItemHandler",
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "lost item reported successfully")
	helpers.LogSuccess("ReportLostItemHandler", "lost item reported successfully", map[string]any{
		"item_id": item.ItemID,
		"user_id": item.UserID,
	})
}

// ReportFoundItemHandler handles POST /found-items
func (h *ReportHandler) ReportFoundItemHandler(c *gin.Context) {
	var req helpers.ReportFoundItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReportFoundItemHandler", err)
		return
	}

	item, err := h.service.ReportFoundItem(report.FoundItemReport{
		UserID:            req.UserID,
		DistrictID:        req.DistrictID,
		VenueID:           req.VenueID,
		ItemName:          req.ItemName,
		Description:       req.Description,
		Category:          req.Category,
		DateFound:         req.DateFound,
		Photos:            req.Photos,
		SecurityQuestions: toSecurityAnswers(req.SecurityQuestions),
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ReportFoundItemHandler: failed to report found item", map[string]any{
			"handler": "ReportFoundItemHandler",
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "found item reported successfully")
	helpers.LogSuccess("ReportFoundItemHandler", "found item reported successfully", map[string]any{
		"item_id": item.ItemID,
		"user_id": item.UserID,
	})
}

// ListLostItemsHandler handles GET /lost-items?user_id=
func (h *ReportHandler) ListLostItemsHandler(c *gin.Context) {
	userID := c.Query("user_id")
	items, err := h.service.ListLostItemsByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListLostItemsHandler: error retrieving lost items", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if items == nil {
		items = []model.LostItem{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "lost items retrieved successfully")
	helpers.LogSuccess("ListLostItemsHandler", "lost items retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(items),
	})
}

// BrowseFoundItemsHandler handles GET /found-items?district_id=&venue_id=&user_id=
func (h *ReportHandler) BrowseFoundItemsHandler(c *gin.Context) {
	filter := model.ItemFilter{
		UserID:     c.Query("user_id"),
		DistrictID: c.Query("district_id"),
		VenueID:    c.Query("venue_id"),
		Status:     c.Query("status"),
	}

	items, err := h.service.BrowseFoundItems(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("BrowseFoundItemsHandler: error retrieving found items", map[string]any{"error": err.Error()})
		return
	}

	if items == nil {
		items = []model.FoundItem{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "found items retrieved successfully")
	helpers.LogSuccess("BrowseFoundItemsHandler", "found items retrieved successfully", map[string]any{
		"count": len(items),
	})
}
