package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Nandeeswar7/chrysalis-web/docs"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/handlers"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/middleware"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/services"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/views"
)

const healthTimeout = 3 * time.Second

// Lookup 은 router 가 필요로 하는 lookup service 호출 집합이다.
type Lookup interface {
	services.DishLookup
	Health(ctx context.Context) error
}

type Options struct {
	Lookup         Lookup
	Strategy       search.Strategy
	PageSize       int
	AllowedOrigins []string
}

func New(opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), middleware.RequestTrace())
	r.SetHTMLTemplate(views.Templates())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := opts.Lookup.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "lookup_service": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "search_mode": opts.Strategy.Mode()})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dishSvc := services.NewDishService(opts.Lookup, opts.PageSize)
	ingredientSvc := services.NewIngredientService(opts.Lookup)
	searchSvc := services.NewSearchService(opts.Strategy)

	// pages
	r.GET("/", handlers.HomeHandler())
	r.GET("/dishes", handlers.ListDishesHandler(dishSvc))
	r.GET("/dishes/:id", handlers.GetDishHandler(dishSvc))
	r.GET("/dishes-by-ingredients", handlers.IngredientFinderHandler(ingredientSvc))
	r.GET("/suggestions", handlers.SuggestionsHandler())
	r.GET("/search", handlers.SearchPageHandler(searchSvc))
	r.GET(handlers.ErrorPath, handlers.ErrorPageHandler())

	// JSON
	api := r.Group("/api", middleware.CORS(opts.AllowedOrigins))
	{
		api.GET("/search", handlers.SearchAPIHandler(searchSvc))
		api.POST("/dishes-by-ingredients", handlers.DishesByIngredientsAPIHandler(ingredientSvc))
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	return r
}
