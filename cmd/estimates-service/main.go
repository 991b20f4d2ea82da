package main

import (
	"fmt"
	"os"

	"github.com/nurpe/buildcost-estimates/internal/auth"
	"github.com/nurpe/buildcost-estimates/internal/config"
	"github.com/nurpe/buildcost-estimates/internal/db"
	"github.com/nurpe/buildcost-estimates/internal/excel"
	httphandler "github.com/nurpe/buildcost-estimates/internal/http"
	"github.com/nurpe/buildcost-estimates/internal/http/middleware"
	"github.com/nurpe/buildcost-estimates/internal/logger"
	"github.com/nurpe/buildcost-estimates/internal/pdf"
	"github.com/nurpe/buildcost-estimates/internal/region"
	"github.com/nurpe/buildcost-estimates/internal/repository"
	"github.com/nurpe/buildcost-estimates/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	estimateRepo := repository.NewEstimateRepository(database)

	var advisor region.Advisor
	if cfg.Advisor.URL != "" {
		advisor = region.NewAdvisorClient(cfg.Advisor.URL, cfg.Advisor.APIKey, cfg.Advisor.Timeout)
	} else {
		log.Warn().Msg("ADVISOR_URL not set, regional adjustments use the static table")
	}
	adjuster := region.NewAdjuster(advisor, log)

	estimateService := service.NewEstimateService(
		estimateRepo,
		adjuster,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		cfg,
		log,
	)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(estimateService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting estimates service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
