package handler

import (
	"net/http"

	"lostfound-tracker/internal/refdata"
	"lostfound-tracker/utils"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static district/venue/question/category catalogs
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// ListDistrictsHandler handles GET /reference/districts
func (h *ReferenceHandler) ListDistrictsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, refdata.Districts, "districts retrieved successfully")
}

// ListVenuesHandler handles GET /reference/venues?district_id=
func (h *ReferenceHandler) ListVenuesHandler(c *gin.Context) {
	if districtID := c.Query("district_id"); districtID != "" {
		utils.JSONResponse(c, http.StatusOK, refdata.VenuesByDistrict(districtID), "venues retrieved successfully")
		return
	}
	utils.JSONResponse(c, http.StatusOK, refdata.Venues, "venues retrieved successfully")
}

// ListQuestionsHandler handles GET /reference/questions
func (h *ReferenceHandler) ListQuestionsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, refdata.SecurityQuestions, "security questions retrieved successfully")
}

// ListCategoriesHandler handles GET /reference/categories
func (h *ReferenceHandler) ListCategoriesHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, refdata.Categories, "categories retrieved successfully")
}
