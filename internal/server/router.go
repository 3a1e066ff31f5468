package server

import (
	"github.com/gin-gonic/gin"

	handler "huddle-auction/services/huddle/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctions handler.AuctionServiceInterface, ratings handler.RatingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	huddleHandler := handler.NewHuddleHandler(auctions, ratings)

	router.POST("/register", huddleHandler.RegisterHandler)

	huddles := router.Group("/huddles")
	{
		huddles.POST("", huddleHandler.CreateHuddleHandler)
		huddles.POST("/open", huddleHandler.OpenHuddleHandler)
		huddles.POST("/:huddle_id/claim", huddleHandler.ClaimHandler)
	}

	hosts := router.Group("/hosts")
	{
		hosts.POST("/:host/huddles/:huddle_id/accept", huddleHandler.AcceptHuddleHandler)
	}

	router.POST("/bids", huddleHandler.PlaceBidHandler)
	router.POST("/ratings", huddleHandler.RateHandler)

	return router
}
