package routes

import (
	"net/http"

	"wetrade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing        = "/ping"
	PathCatalog     = "/catalog"
	PathLoans       = "/loans"
	PathValuations  = "/valuations"
	PathHandoff     = "/handoff"
	PathAssistant   = "/assistant"
	pathListingByID = "/listings/:id"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addStorefrontRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, loanHandler *handlers.LoanHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/listings", catalogHandler.ListListings)
		catalog.GET("/listings/tiers", catalogHandler.ListingTiers)
		catalog.GET(pathListingByID, catalogHandler.GetListing)
		catalog.POST("/listings", catalogHandler.CreateListing)
		catalog.GET("/promotions", catalogHandler.ListPromotions)
		catalog.POST("/promotions", catalogHandler.CreatePromotion)
		catalog.GET("/services", catalogHandler.ListServices)
		catalog.POST("/services", catalogHandler.CreateService)
	}

	loans := rg.Group(PathLoans)
	{
		loans.GET("/terms", loanHandler.Terms)
		loans.POST("/quote", loanHandler.Quote)
		loans.GET("/options", loanHandler.Options)
	}
}

func addAdvisorRoutes(rg *gin.RouterGroup, valuationHandler *handlers.ValuationHandler, handoffHandler *handlers.HandoffHandler) {
	valuations := rg.Group(PathValuations)
	{
		valuations.POST("", valuationHandler.CreateValuation)
		valuations.GET("/:request_id", valuationHandler.GetValuation)
	}

	rg.POST(PathHandoff, handoffHandler.CreateLink)
	rg.POST(PathAssistant+"/chat", handoffHandler.Chat)
}
