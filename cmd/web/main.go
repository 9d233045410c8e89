package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Nandeeswar7/chrysalis-web/cmd/internal/logger"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/router"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
	"github.com/Nandeeswar7/chrysalis-web/config"
)

// @title           Chrysalis Web API
// @version         1.0
// @description     JSON endpoints of the recipe browsing front-end
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	lookup := dishclient.New(cfg.LookupService.BaseURL, cfg.LookupService.Timeout)

	strategy, err := search.New(cfg.Search.Mode, cfg.Search.Candidates, lookup)
	if err != nil {
		logger.Log.Errorf("failed to configure search: %v", err)
		os.Exit(1)
	}

	r := router.New(router.Options{
		Lookup:         lookup,
		Strategy:       strategy,
		PageSize:       cfg.Dishes.PageSize,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	logger.InfoWithFields("web server starting", logger.Fields{
		"addr":           cfg.Server.Addr,
		"lookup_service": cfg.LookupService.BaseURL,
		"search_mode":    strategy.Mode(),
	})
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("web server stopped: %v", err)
		os.Exit(1)
	}
}
