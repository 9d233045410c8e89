package catalog

import (
	"net/url"

	"github.com/Nandeeswar7/chrysalis-web/models"
)

// 쿼리 파라미터 이름은 lookup service 의 필드 이름과 같다.
const (
	FieldDiet          = "diet"
	FieldFlavorProfile = "flavor_profile"
	FieldState         = "state"
)

// Selection 은 사용자가 고른 필터 조건이다. 빈 문자열은 "조건 없음"이다.
type Selection struct {
	Diet          string
	FlavorProfile string
	State         string
}

// SelectionFromValues 는 쿼리 스트링에서 diet, flavor_profile, state 를 읽는다.
// 값은 정규화하지 않는다.
func SelectionFromValues(v url.Values) Selection {
	return Selection{
		Diet:          v.Get(FieldDiet),
		FlavorProfile: v.Get(FieldFlavorProfile),
		State:         v.Get(FieldState),
	}
}

func (s Selection) IsEmpty() bool {
	return s.Diet == "" && s.FlavorProfile == "" && s.State == ""
}

// Values 는 페이지 링크를 만들 때 사용할 쿼리 값을 돌려준다. 빈 조건은 생략한다.
func (s Selection) Values() url.Values {
	v := url.Values{}
	if s.Diet != "" {
		v.Set(FieldDiet, s.Diet)
	}
	if s.FlavorProfile != "" {
		v.Set(FieldFlavorProfile, s.FlavorProfile)
	}
	if s.State != "" {
		v.Set(FieldState, s.State)
	}
	return v
}

// Matches 는 조건이 걸린 모든 필드가 정확히(대소문자 구분) 같을 때만 true 다.
func Matches(d models.Dish, s Selection) bool {
	return (s.Diet == "" || d.Diet == s.Diet) &&
		(s.FlavorProfile == "" || d.FlavorProfile == s.FlavorProfile) &&
		(s.State == "" || d.State == s.State)
}

// Filter 는 원래 순서를 유지한 채 Matches 를 만족하는 요리만 남긴다. nil 을 반환하지 않는다.
func Filter(dishes []models.Dish, s Selection) []models.Dish {
	out := make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if Matches(d, s) {
			out = append(out, d)
		}
	}
	return out
}

// FilterOptions 는 필터 select 에 노출할 값 목록이다.
type FilterOptions struct {
	Diets   []string
	Flavors []string
	States  []string
}

// Options 는 필터링 전 전체 목록에서 처음 등장한 순서대로 중복 없는 값을 모은다.
func Options(dishes []models.Dish) FilterOptions {
	return FilterOptions{
		Diets:   uniqueValues(dishes, func(d models.Dish) string { return d.Diet }),
		Flavors: uniqueValues(dishes, func(d models.Dish) string { return d.FlavorProfile }),
		States:  uniqueValues(dishes, func(d models.Dish) string { return d.State }),
	}
}

func uniqueValues(dishes []models.Dish, field func(models.Dish) string) []string {
	seen := make(map[string]struct{}, len(dishes))
	out := make([]string, 0)
	for _, d := range dishes {
		v := field(d)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
