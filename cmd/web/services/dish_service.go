package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/catalog"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/dto"
	"github.com/Nandeeswar7/chrysalis-web/models"
)

// DishLookup 은 services 가 사용하는 lookup service 호출 집합이다.
// dishclient.Client 가 구현한다.
type DishLookup interface {
	ListDishes(ctx context.Context) ([]models.Dish, error)
	GetDish(ctx context.Context, id string) (models.Dish, error)
	ListIngredients(ctx context.Context) ([]string, error)
	DishesByIngredients(ctx context.Context, ingredients []string) ([]models.Dish, error)
}

// DishService 는 요리 목록/상세 화면 구성을 담당한다.
//
// - 목록은 매 요청마다 lookup service 에서 전체를 받아 메모리에서 필터링/페이지네이션한다.
// - 요청 간 공유 상태는 없다.
type DishService struct {
	lookup   DishLookup
	pageSize int
}

func NewDishService(lookup DishLookup, pageSize int) *DishService {
	return &DishService{lookup: lookup, pageSize: pageSize}
}

type ListDishesInput struct {
	Selection catalog.Selection
	Page      int
}

// List 는 필터 옵션을 전체 목록에서 계산하고, 선택된 조건으로 걸러낸 뒤 현재 페이지만 잘라낸다.
// page 는 [1, totalPages] 로 clamp 된다.
func (s *DishService) List(ctx context.Context, in ListDishesInput) (dto.DishListView, error) {
	all, err := s.lookup.ListDishes(ctx)
	if err != nil {
		return dto.DishListView{}, err
	}

	filtered := catalog.Filter(all, in.Selection)
	info := catalog.NewPageInfo(in.Page, s.pageSize, len(filtered))

	view := dto.DishListView{
		Dishes:    catalog.Paginate(filtered, s.pageSize, info.Page),
		Options:   catalog.Options(all),
		Selection: in.Selection,
		Filtered:  !in.Selection.IsEmpty(),
		Page:      info,
	}
	if info.HasPrev {
		view.PrevURL = pageURL(in.Selection, info.PrevPage)
	}
	if info.HasNext {
		view.NextURL = pageURL(in.Selection, info.NextPage)
	}
	return view, nil
}

// GetByID 는 단일 요리를 조회한다.
func (s *DishService) GetByID(ctx context.Context, id string) (models.Dish, error) {
	return s.lookup.GetDish(ctx, id)
}

func pageURL(sel catalog.Selection, page int) string {
	v := sel.Values()
	v.Set("page", strconv.Itoa(page))
	u := url.URL{Path: "/dishes", RawQuery: v.Encode()}
	return u.String()
}
