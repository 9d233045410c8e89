package dto

import (
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/catalog"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
	"github.com/Nandeeswar7/chrysalis-web/models"
)

// HeaderView 는 모든 페이지 상단 검색창을 그리기 위한 값이다.
type HeaderView struct {
	Query           string
	State           string
	DropdownVisible bool
	Results         []search.Candidate
}

// DishListView 는 GET /dishes 화면 모델이다.
type DishListView struct {
	Header    HeaderView
	Dishes    []models.Dish
	Options   catalog.FilterOptions
	Selection catalog.Selection
	Filtered  bool // 조건이 하나라도 있으면 "Clear filters" 링크를 보여준다.
	Page      catalog.PageInfo
	PrevURL   string
	NextURL   string
}

// DishDetailView 는 GET /dishes/:id 화면 모델이다.
type DishDetailView struct {
	Header HeaderView
	Dish   models.Dish
}

// IngredientOption 은 재료 선택 목록의 한 항목이다.
type IngredientOption struct {
	Name     string
	Selected bool
}

// IngredientFinderView 는 GET /dishes-by-ingredients 화면 모델이다.
// Error 가 비어 있지 않으면 Dishes 는 비어 있다.
type IngredientFinderView struct {
	Header      HeaderView
	Query       string
	Ingredients []IngredientOption
	Selected    []string
	Dishes      []DishSummaryDTO
	Error       string
}

// SearchView 는 GET /search 화면 모델이다.
type SearchView struct {
	Header HeaderView
}
