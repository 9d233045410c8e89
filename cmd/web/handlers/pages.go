package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nandeeswar7/chrysalis-web/cmd/internal/logger"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/catalog"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/dto"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/services"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/trace"
)

// ErrorPath 는 페이지 조회 실패 시 리다이렉트되는 경로다.
const ErrorPath = "/error"

// 템플릿 이름은 views/templates 의 파일 이름이다.
const (
	tmplHome        = "home.tmpl"
	tmplDishes      = "dishes.tmpl"
	tmplDish        = "dish.tmpl"
	tmplIngredients = "ingredients.tmpl"
	tmplSearch      = "search.tmpl"
	tmplError       = "error.tmpl"
)

func HomeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, tmplHome, gin.H{"Header": services.IdleHeader()})
	}
}

// ListDishesHandler 는 필터/페이지가 적용된 요리 표를 그린다.
// page 가 숫자가 아니면 1 페이지, 범위를 벗어나면 가장 가까운 페이지로 맞춘다.
func ListDishesHandler(svc *services.DishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			page = 1
		}
		in := services.ListDishesInput{
			Selection: catalog.SelectionFromValues(c.Request.URL.Query()),
			Page:      page,
		}

		view, err := svc.List(c.Request.Context(), in)
		if err != nil {
			logFailure(c, "list dishes failed", err)
			renderError(c)
			return
		}
		view.Header = services.IdleHeader()
		c.HTML(http.StatusOK, tmplDishes, view)
	}
}

// GetDishHandler 는 요리 상세 화면이다. 조회가 실패하면 에러 페이지로 보낸다.
func GetDishHandler(svc *services.DishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		dish, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			logFailure(c, "get dish failed", err)
			c.Redirect(http.StatusFound, ErrorPath)
			return
		}
		c.HTML(http.StatusOK, tmplDish, dto.DishDetailView{
			Header: services.IdleHeader(),
			Dish:   dish,
		})
	}
}

// IngredientFinderHandler 는 "Cook With What You Have" 화면이다.
// 선택된 재료는 반복되는 ingredients 쿼리 파라미터로 전달된다.
func IngredientFinderHandler(svc *services.IngredientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Finder(c.Request.Context(), services.FinderInput{
			Query:    c.Query("q"),
			Selected: c.QueryArray("ingredients"),
		})
		if err != nil {
			logFailure(c, "list ingredients failed", err)
			c.Redirect(http.StatusFound, ErrorPath)
			return
		}
		view.Header = services.IdleHeader()
		c.HTML(http.StatusOK, tmplIngredients, view)
	}
}

func SuggestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dishes-by-ingredients")
	}
}

// SearchPageHandler 는 헤더 검색창을 q 로 실행한 상태로 그린다.
// selected 가 있으면 드롭다운 항목을 고른 것으로 보고 드롭다운을 닫는다.
func SearchPageHandler(svc *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if c.Query("selected") != "" {
			c.HTML(http.StatusOK, tmplSearch, dto.SearchView{Header: svc.Selected(q)})
			return
		}

		header, err := svc.Header(c.Request.Context(), q)
		if err != nil {
			logger.WarnWithFields("header search failed", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"mode":       svc.Mode(),
				"query":      q,
				"error":      err.Error(),
			})
			header = dto.HeaderView{Query: q, State: services.IdleHeader().State}
		}
		c.HTML(http.StatusOK, tmplSearch, dto.SearchView{Header: header})
	}
}

func ErrorPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderError(c)
	}
}

func renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, tmplError, nil)
}

// logFailure 는 lookup service 실패(upstream/malformed)는 error 로, 요청 검증 실패는 warn 으로 남긴다.
func logFailure(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(c.Request.Context()),
		"path":       c.Request.URL.Path,
		"error":      err.Error(),
	}
	if dishclient.IsFailure(err) {
		logger.ErrorWithFields(msg, fields)
		return
	}
	logger.WarnWithFields(msg, fields)
}
