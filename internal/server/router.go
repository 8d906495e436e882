package server

import (
	claim "lostfound-tracker/internal/claimService"
	matching "lostfound-tracker/internal/matchService"
	report "lostfound-tracker/internal/reportService"
	handler "lostfound-tracker/services/lostfound/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(reportService *report.ReportService, matchService *matching.MatchService, claimService *claim.ClaimService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	reportHandler := handler.NewReportHandler(reportService)
	matchHandler := handler.NewMatchHandler(matchService)
	claimHandler := handler.NewClaimHandler(claimService)
	referenceHandler := handler.NewReferenceHandler()

	lostItems := router.Group("/lost-items")
	{
		lostItems.POST("", reportHandler.ReportLostItemHandler)
		lostItems.GET("", reportHandler.ListLostItemsHandler)
	}

	foundItems := router.Group("/found-items")
	{
		foundItems.POST("", reportHandler.ReportFoundItemHandler)
		foundItems.GET("", reportHandler.BrowseFoundItemsHandler)
		foundItems.POST("/:item_id/claim", claimHandler.VerifyClaimHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/matches", matchHandler.GetUserMatchesHandler)
		users.POST("/:user_id/matches/discover", matchHandler.DiscoverMatchesHandler)
	}

	reference := router.Group("/reference")
	{
		reference.GET("/districts", referenceHandler.ListDistrictsHandler)
		reference.GET("/venues", referenceHandler.ListVenuesHandler)
		reference.GET("/questions", referenceHandler.ListQuestionsHandler)
		reference.GET("/categories", referenceHandler.ListCategoriesHandler)
	}

	return router
}
