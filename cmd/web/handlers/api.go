package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/dto"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/services"
)

const (
	msgQueryRequired       = "Query parameter is required"
	msgIngredientsRequired = "a list of ingredients is required"
	msgProcessIngredients  = "Failed to process ingredients"
	msgInternal            = "Internal Server Error"
)

// SearchAPIHandler godoc
// @Summary      Search dishes
// @Description  Header search candidates for the given query, using the configured search mode
// @Tags         search
// @Param        q    query  string  true  "Search query"
// @Produce      json
// @Success      200  {array}   dto.SearchCandidateDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.MessageResponseDTO
// @Router       /search [get]
func SearchAPIHandler(svc *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := c.GetQuery("q")
		if !ok {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: msgQueryRequired})
			return
		}
		results, err := svc.Suggest(c.Request.Context(), q)
		if err != nil {
			logFailure(c, "search api failed", err)
			c.JSON(http.StatusInternalServerError, dto.MessageResponseDTO{Message: msgInternal})
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// DishesByIngredientsAPIHandler godoc
// @Summary      Dishes by ingredients
// @Description  Dishes that can be made from the given ingredients.
// @Description  A non-2xx lookup service response is passed through with its status and JSON body.
// @Tags         dishes
// @Accept       json
// @Param        body  body  dto.DishesByIngredientsRequestDTO  true  "Ingredient list"
// @Produce      json
// @Success      200  {array}   dto.DishSummaryDTO
// @Failure      400  {object}  dto.MessageResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /dishes-by-ingredients [post]
func DishesByIngredientsAPIHandler(svc *services.IngredientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.DishesByIngredientsRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: msgIngredientsRequired})
			return
		}

		dishes, err := svc.FindDishes(c.Request.Context(), req.Ingredients)
		if err != nil {
			if services.IsValidation(err) {
				c.JSON(http.StatusBadRequest, dto.MessageResponseDTO{Message: msgIngredientsRequired})
				return
			}
			logFailure(c, "dishes by ingredients api failed", err)
			passUpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, dishes)
	}
}

// passUpstreamError 는 lookup service 의 non-2xx JSON 응답을 같은 상태 코드와 바디로 돌려준다.
// 바디가 JSON 이 아니거나 그 외 실패는 500 이다.
func passUpstreamError(c *gin.Context, err error) {
	var upstream *dishclient.UpstreamError
	if !errors.As(err, &upstream) || upstream.StatusCode < http.StatusBadRequest {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: msgProcessIngredients})
		return
	}
	if body := []byte(upstream.Body); len(body) > 0 && json.Valid(body) {
		c.Data(upstream.StatusCode, "application/json; charset=utf-8", body)
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: msgProcessIngredients})
}
