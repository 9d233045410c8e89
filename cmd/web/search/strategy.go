package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/config"
)

// Candidate 는 검색창 드롭다운에 표시되는 항목이다.
// local-substring 후보는 이름만 있고 ID 는 비어 있다.
type Candidate struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Strategy 는 검색어에 대한 후보 목록을 돌려준다.
// 빈 검색어는 항상 빈 결과다.
type Strategy interface {
	Mode() string
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// Lookup 은 remote-delegate 가 위임하는 외부 검색 API 다.
type Lookup interface {
	Search(ctx context.Context, q string) ([]dishclient.SearchResult, error)
}

// New 는 설정된 mode 에 맞는 Strategy 를 만든다.
func New(mode string, candidates []string, lookup Lookup) (Strategy, error) {
	switch mode {
	case config.SearchModeLocalSubstring:
		return NewLocalSubstring(candidates), nil
	case config.SearchModeRemoteDelegate:
		if lookup == nil {
			return nil, fmt.Errorf("search: %s mode requires a lookup client", mode)
		}
		return NewRemoteDelegate(lookup), nil
	default:
		return nil, fmt.Errorf("search: unknown mode %q", mode)
	}
}

// LocalSubstring 은 고정된 후보 이름 목록에서 대소문자를 무시한 부분 문자열 매칭을 한다.
// 결과는 후보 목록의 원래 순서를 따른다.
type LocalSubstring struct {
	candidates []string
}

func NewLocalSubstring(candidates []string) *LocalSubstring {
	cp := make([]string, len(candidates))
	copy(cp, candidates)
	return &LocalSubstring{candidates: cp}
}

func (l *LocalSubstring) Mode() string { return config.SearchModeLocalSubstring }

func (l *LocalSubstring) Search(_ context.Context, query string) ([]Candidate, error) {
	if query == "" {
		return []Candidate{}, nil
	}
	out := make([]Candidate, 0)
	for _, name := range l.candidates {
		if containsFold(name, query) {
			out = append(out, Candidate{Name: name})
		}
	}
	return out, nil
}

// RemoteDelegate 는 검색어를 그대로 lookup service 에 넘기고 받은 순서를 유지한다.
//
// TODO: 키 입력마다 요청이 하나씩 나간다. debounce 와 이전 요청 취소는 제품 요구사항이 정해지면 추가한다.
type RemoteDelegate struct {
	lookup Lookup
}

func NewRemoteDelegate(lookup Lookup) *RemoteDelegate {
	return &RemoteDelegate{lookup: lookup}
}

func (r *RemoteDelegate) Mode() string { return config.SearchModeRemoteDelegate }

func (r *RemoteDelegate) Search(ctx context.Context, query string) ([]Candidate, error) {
	if query == "" {
		return []Candidate{}, nil
	}
	results, err := r.lookup.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, len(results))
	for i, res := range results {
		out[i] = Candidate{ID: res.ID, Name: res.Name}
	}
	return out, nil
}

// FilterNames 는 재료 선택 목록처럼 빈 검색어일 때 전체를 보여줘야 하는 목록에 쓴다.
// 매칭 규칙은 LocalSubstring 과 같다.
func FilterNames(query string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if query == "" || containsFold(name, query) {
			out = append(out, name)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
