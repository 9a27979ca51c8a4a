package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tripplanner/cmd/fx/account_fx"
	"tripplanner/cmd/fx/config_fx"
	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/journey_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/pois_fx"
	"tripplanner/cmd/fx/prompt_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/internal/config"
	"tripplanner/internal/services"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		prompt_fx.Module,
		pois_fx.Module,
		journey_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config              config.Config
	JWT                 *utils.JWTManager
	POIsController      *controllers.POIsController
	AccountController   *controllers.AccountController
	JourneyController   *controllers.JourneyController
	ItineraryController *controllers.ItineraryController
}

func ProvideRouter(p routerParams) *gin.Engine {
	if p.Config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	auth := middleware.JWTAuthMiddleware(p.JWT)
	limiter := middleware.NewRateLimiter(p.Config.RateLimitPerMinute)

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"time": time.Now().UTC().Format(time.RFC3339)}, "ok")
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/signup", p.AccountController.Register)
	accountGroup.POST("/login", p.AccountController.Login)

	poisGroup := r.Group("/pois")
	poisGroup.GET("", p.POIsController.GetPoisByDestination)
	poisGroup.GET("/:id", p.POIsController.GetPoiById)
	poisGroup.POST("", auth, middleware.RoleMiddleware(services.AdminRole), p.POIsController.CreatePoi)

	itineraryGroup := r.Group("/itineraries", limiter.Limit())
	itineraryGroup.POST("/preview", p.ItineraryController.PreviewItinerary)
	itineraryGroup.POST("", auth, p.ItineraryController.GenerateItinerary)

	journeyGroup := r.Group("/journeys", auth)
	journeyGroup.GET("", p.JourneyController.GetJourneyByUserId)
	journeyGroup.GET("/:journeyId", p.JourneyController.GetDetailsInfoOfJourneyById)
	journeyGroup.DELETE("/:journeyId", p.JourneyController.DeleteJourney)

	dayGroup := journeyGroup.Group("/:journeyId/days/:dayNumber")
	dayGroup.PUT("/order", p.ItineraryController.ReorderDay)
	dayGroup.POST("/reoptimize", p.ItineraryController.ReoptimizeDay)
	dayGroup.POST("/pois", p.ItineraryController.AddPoiToDay)
	dayGroup.DELETE("/pois/:poiId", p.ItineraryController.RemovePoiFromDay)
}
