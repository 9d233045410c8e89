package services

import (
	"context"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/dto"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
)

// SearchService 는 헤더 검색창을 위해 설정된 search.Strategy 를 감싼다.
type SearchService struct {
	strategy search.Strategy
}

func NewSearchService(strategy search.Strategy) *SearchService {
	return &SearchService{strategy: strategy}
}

func (s *SearchService) Mode() string {
	return s.strategy.Mode()
}

// Header 는 검색어 하나를 search.Box 에 흘려 보내 드롭다운을 어떤 상태로 그릴지 정한다.
// 요청마다 새 Box 를 만들므로 요청 간 상태는 공유되지 않는다.
func (s *SearchService) Header(ctx context.Context, query string) (dto.HeaderView, error) {
	box := search.NewBox(nil)
	if err := box.Run(ctx, s.strategy, query); err != nil {
		return dto.HeaderView{}, err
	}
	return headerView(box), nil
}

// Selected 는 드롭다운 항목을 고른 뒤의 헤더 값이다. 검색어는 항목 이름이고 드롭다운은 닫힌다.
func (s *SearchService) Selected(name string) dto.HeaderView {
	box := search.NewBox(nil)
	box.Select(search.Candidate{Name: name})
	return headerView(box)
}

// Suggest 는 JSON API 용으로 후보 목록만 돌려준다. 빈 검색어는 빈 목록이다.
func (s *SearchService) Suggest(ctx context.Context, query string) ([]dto.SearchCandidateDTO, error) {
	candidates, err := s.strategy.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SearchCandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, dto.SearchCandidateDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// IdleHeader 는 검색어가 없는 페이지의 헤더 값이다.
func IdleHeader() dto.HeaderView {
	return headerView(search.NewBox(nil))
}

func headerView(box *search.Box) dto.HeaderView {
	return dto.HeaderView{
		Query:           box.Query(),
		State:           box.State().String(),
		DropdownVisible: box.DropdownVisible(),
		Results:         box.Results(),
	}
}
