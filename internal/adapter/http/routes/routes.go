package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "wetrade/docs"
	"wetrade/internal/adapter/http/handlers"
	"wetrade/internal/adapter/persistence/repository"
	"wetrade/internal/adapter/persistence/seed"
	"wetrade/internal/config"
	"wetrade/internal/domain/entities"
	"wetrade/internal/infrastructure/advisor"
	"wetrade/internal/logging"
	"wetrade/internal/usecase"
	"wetrade/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run builds the router from cfg and blocks serving it.
func Run(cfg *config.Config) error {
	router, err := NewRouter(context.Background(), cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	logging.Component("http", "server").WithField("addr", addr).Info("listening")
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter is the composition root: it owns the catalog store and every use case.
func NewRouter(ctx context.Context, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(cfg.HTTP.GinMode)
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(ctx, router, cfg); err != nil {
		return nil, err
	}
	return router, nil
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg *config.Config) error {
	log := logging.Component("http", "routes")

	catalogRepo := repository.NewCatalogMemoryRepository()
	catalog, err := seed.Load(cfg.Catalog.SeedPath)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, catalogRepo, catalog); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	log.WithField("listings", len(catalog.Listings)).Info("catalog seeded")

	var advisorGateway interfaces.IAdvisorGateway
	gemini, err := advisor.NewGeminiGateway(ctx, advisor.Config{
		APIKey:    cfg.Gemini.APIKey,
		BaseURL:   cfg.Gemini.BaseURL,
		Model:     cfg.Gemini.Model,
		ChatModel: cfg.Gemini.ChatModel,
		Mock:      cfg.Gemini.Mock,
	})
	if err != nil {
		log.Warnf("Gemini gateway not configured: %v", err)
	} else {
		advisorGateway = gemini
	}

	policy := entities.ValuationPolicy{LoanToValue: cfg.Valuation.LoanToValue, Ceiling: cfg.Valuation.Ceiling}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	loanUseCase := usecase.NewLoanUseCase(entities.LoanTerms{
		MinPrincipal:  cfg.Loan.MinPrincipal,
		MaxPrincipal:  cfg.Loan.MaxPrincipal,
		PrincipalStep: cfg.Loan.PrincipalStep,
		MonthlyRate:   cfg.Loan.MonthlyRate,
		Durations:     cfg.Loan.Durations,
	})
	valuationUseCase := usecase.NewValuationUseCase(advisorGateway, usecase.ValuationConfig{
		Policy: policy,
		Market: usecase.MarketContext{
			Region:    cfg.Valuation.Region,
			Currency:  cfg.Valuation.Currency,
			Retailers: cfg.Valuation.Retailers,
		},
		Timeout:      cfg.Gemini.Timeout,
		MaxAttempts:  cfg.Valuation.MaxAttempts,
		RetryDelay:   cfg.Valuation.RetryDelay,
		TrackedLimit: cfg.Valuation.TrackedLimit,
	})
	handoffUseCase := usecase.NewHandoffUseCase(catalogRepo, usecase.HandoffConfig{
		BaseURL: cfg.Handoff.BaseURL,
		Phone:   cfg.Handoff.Phone,
		Ceiling: policy.Ceiling,
	})
	assistantUseCase := usecase.NewAssistantUseCase(advisorGateway, cfg.Gemini.Timeout)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase, handoffUseCase)
	loanHandler := handlers.NewLoanHandler(loanUseCase)
	valuationHandler := handlers.NewValuationHandler(valuationUseCase, handoffUseCase, handlers.ValuationLimits{
		MaxPhotos:     cfg.Valuation.MaxPhotos,
		MaxImageBytes: cfg.Valuation.MaxImageBytes,
	})
	handoffHandler := handlers.NewHandoffHandler(handoffUseCase, assistantUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, catalogHandler, loanHandler)
	addAdvisorRoutes(v1, valuationHandler, handoffHandler)
	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.Component("http", "recovery").Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
