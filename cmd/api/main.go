package main

import (
	"context"
	"net/http"

	_ "orrery-api/docs"
	"orrery-api/internal/cache"
	"orrery-api/internal/catalog"
	"orrery-api/internal/client"
	"orrery-api/internal/config"
	"orrery-api/internal/handler"
	"orrery-api/internal/logger"
	"orrery-api/internal/metrics"
	"orrery-api/internal/orrery"
	"orrery-api/internal/repository"
	"orrery-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Orrery API
//	@version		1.0
//	@description	Maps distances between celestial bodies onto real-world geography.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger.Logger{Level: config.LogLevel, Pretty: config.LogPretty}.Setup()
	if config.LogLevel != "debug" && config.LogLevel != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpClient := client.NewHTTPClient(config.HTTPTimeout)

	// Geocoding, optionally behind valkey
	var geocoder service.Geocoder = client.NewGoogleGeocoder(httpClient, config.MapsAPIURL, config.MapsAPIKey)
	if config.ValkeyAddr != "" {
		store, err := cache.NewValkeyStore(config.ValkeyAddr)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to valkey")
		}
		defer store.Close()

		geocoder = cache.NewCachedGeocoder(geocoder, store, config.GeocodeCacheTTL)
		log.Info().Str("addr", config.ValkeyAddr).Dur("ttl", config.GeocodeCacheTTL).Msg("Geocode cache enabled")
	}

	answers := client.NewWolframClient(httpClient, config.WolframAPIURL, config.WolframAppID)

	// Catalog source
	var source service.CatalogSource
	switch config.CatalogSource {
	case "postgres":
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare catalog schema")
		}
		source = repo
	default:
		source = catalog.NewFileSource(config.CatalogPath)
	}

	// Initialize layers
	orreryService := service.NewOrreryService(geocoder, answers, source, orrery.NewMapper())
	orreryHandler := handler.NewOrreryHandler(orreryService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(), metrics.Middleware(), handler.AllowAllOrigins())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", orreryHandler.Legacy)
	r.GET("/api/v1/orrery", orreryHandler.Report)

	log.Info().
		Str("addr", config.ServerAddress).
		Str("catalog_source", config.CatalogSource).
		Msg("Web server started")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
