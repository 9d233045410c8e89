package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Nandeeswar7/chrysalis-web/cmd/internal/logger"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/dto"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/trace"
)

// FinderErrorMessage 는 재료 기반 요리 조회가 실패했을 때 화면에 보여주는 문구다.
const FinderErrorMessage = "An unknown error occurred"

// IngredientService 는 "Cook With What You Have" 화면을 구성한다.
type IngredientService struct {
	lookup DishLookup
}

func NewIngredientService(lookup DishLookup) *IngredientService {
	return &IngredientService{lookup: lookup}
}

type FinderInput struct {
	// Query 는 재료 목록을 좁히는 검색어다. 비어 있으면 전체 재료를 보여준다.
	Query    string
	Selected []string
}

// Finder 는 재료 목록을 가져와 Query 로 좁히고, 선택된 재료가 있으면 해당 재료로 만들 수 있는 요리를 조회한다.
//
// - 재료 목록 조회 실패는 에러로 반환한다. (호출 측에서 에러 페이지로 보낸다.)
// - 요리 조회 실패는 화면 안의 에러 문구로 바꾸고 요리 목록은 비운다.
func (s *IngredientService) Finder(ctx context.Context, in FinderInput) (dto.IngredientFinderView, error) {
	all, err := s.lookup.ListIngredients(ctx)
	if err != nil {
		return dto.IngredientFinderView{}, err
	}

	selected := normalizeSelection(in.Selected)
	chosen := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		chosen[name] = struct{}{}
	}

	visible := search.FilterNames(in.Query, all)
	options := make([]dto.IngredientOption, 0, len(visible))
	for _, name := range visible {
		_, ok := chosen[name]
		options = append(options, dto.IngredientOption{Name: name, Selected: ok})
	}

	view := dto.IngredientFinderView{
		Query:       in.Query,
		Ingredients: options,
		Selected:    selected,
		Dishes:      []dto.DishSummaryDTO{},
	}
	if len(selected) == 0 {
		return view, nil
	}

	dishes, err := s.FindDishes(ctx, selected)
	if err != nil {
		logger.ErrorWithFields("dishes by ingredients failed", logger.Fields{
			"request_id":  trace.RequestIDFromContext(ctx),
			"ingredients": selected,
			"error":       err.Error(),
		})
		view.Error = FinderErrorMessage
		return view, nil
	}
	view.Dishes = dishes
	return view, nil
}

// FindDishes 는 선택된 재료로 만들 수 있는 요리를 조회한다.
// 빈 목록은 lookup service 호출 없이 dishclient.ErrValidation 으로 거부된다.
func (s *IngredientService) FindDishes(ctx context.Context, ingredients []string) ([]dto.DishSummaryDTO, error) {
	dishes, err := s.lookup.DishesByIngredients(ctx, ingredients)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DishSummaryDTO, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, dto.NewDishSummaryDTO(d))
	}
	return out, nil
}

// IsValidation 은 입력 검증 실패인지 판단한다.
func IsValidation(err error) bool {
	return errors.Is(err, dishclient.ErrValidation)
}

// normalizeSelection 은 공백 항목과 중복을 제거하고 처음 선택한 순서를 유지한다.
func normalizeSelection(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
