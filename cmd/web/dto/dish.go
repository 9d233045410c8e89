package dto

import "github.com/Nandeeswar7/chrysalis-web/models"

// DishSummaryDTO 는 재료 기반 검색 결과처럼 id/name/ingredients 만 필요한 응답 형식이다.
type DishSummaryDTO struct {
	ID          string   `json:"id" example:"255"`
	Name        string   `json:"name" example:"Pinaca"`
	Ingredients []string `json:"ingredients"`
}

func NewDishSummaryDTO(d models.Dish) DishSummaryDTO {
	ingredients := make([]string, len(d.Ingredients))
	copy(ingredients, d.Ingredients)
	return DishSummaryDTO{
		ID:          d.ID,
		Name:        d.Name,
		Ingredients: ingredients,
	}
}

// DishesByIngredientsRequestDTO 는 POST /api/dishes-by-ingredients 요청 바디다.
type DishesByIngredientsRequestDTO struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1,dive,required"`
}

// SearchCandidateDTO 는 GET /api/search 응답 항목이다.
type SearchCandidateDTO struct {
	ID   string `json:"id,omitempty" example:"2"`
	Name string `json:"name" example:"Masala Dosa"`
}
