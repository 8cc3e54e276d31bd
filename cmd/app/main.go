package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"wander/cmd/fx/accountfx"
	"wander/cmd/fx/controllersfx"
	"wander/cmd/fx/dbfx"
	"wander/cmd/fx/itineraryfx"
	"wander/cmd/fx/locationfx"
	"wander/cmd/fx/plannerfx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		accountfx.Module,
		locationfx.Module,
		itineraryfx.Module,
		plannerfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", os.Getenv("PORT"))
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	locationsController *controllers.LocationsController,
	itinerariesController *controllers.ItinerariesController,
	plannerController *controllers.PlannerController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, locationsController, itinerariesController, plannerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	locationsController *controllers.LocationsController,
	itinerariesController *controllers.ItinerariesController,
	plannerController *controllers.PlannerController) {

	accounts := r.Group("/accounts")
	accounts.POST("/signup", accountController.SignUp)
	accounts.POST("/login", accountController.Login)

	accountsAuth := r.Group("/accounts")
	accountsAuth.Use(middleware.JWTAuthMiddleware())
	accountsAuth.GET("/preferences", accountController.GetPreferences)
	accountsAuth.PUT("/preferences", accountController.UpdatePreferences)

	locations := r.Group("/locations")
	locations.GET("", locationsController.ListLocations)
	locations.GET("/nearby", locationsController.NearbyLocations)
	locations.GET("/search", locationsController.SearchLocations)
	locations.GET("/:locationId", locationsController.GetLocationByID)

	locationsAdmin := r.Group("/locations")
	locationsAdmin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	locationsAdmin.POST("", locationsController.CreateLocation)
	locationsAdmin.PUT("", locationsController.UpdateLocation)
	locationsAdmin.DELETE("/:locationId", locationsController.DeleteLocation)

	itineraries := r.Group("/itineraries")
	itineraries.Use(middleware.JWTAuthMiddleware())
	itineraries.POST("", itinerariesController.CreateItinerary)
	itineraries.GET("", itinerariesController.ListItineraries)
	itineraries.POST("/generate", plannerController.GenerateItinerary)
	itineraries.GET("/:itineraryId", itinerariesController.GetItinerary)
	itineraries.PUT("/:itineraryId", itinerariesController.UpdateItinerary)
	itineraries.DELETE("/:itineraryId", itinerariesController.DeleteItinerary)
	itineraries.POST("/:itineraryId/destinations", itinerariesController.AddDestination)
	itineraries.DELETE("/:itineraryId/destinations/:index", itinerariesController.RemoveDestination)
	itineraries.POST("/:itineraryId/reorder", itinerariesController.ReorderDestinations)
	itineraries.POST("/:itineraryId/optimize", itinerariesController.OptimizeItinerary)
}
