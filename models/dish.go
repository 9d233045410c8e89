package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	DietVegetarian    = "vegetarian"
	DietNonVegetarian = "non vegetarian"
)

// Dish represents a recipe record served by the lookup service.
// 목록/단건/재료 검색 엔드포인트마다 채워지는 필드가 다르므로 비어 있는 필드를 허용한다.
type Dish struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Ingredients   Ingredients `json:"ingredients"`
	Diet          string      `json:"diet"`
	PrepTime      Minutes     `json:"prep_time"`
	CookTime      Minutes     `json:"cook_time"`
	FlavorProfile string      `json:"flavor_profile"`
	Course        string      `json:"course"`
	State         string      `json:"state"`
	Region        string      `json:"region"`
}

// IsVegetarian 은 상세 화면에서 diet 색상을 고를 때 사용한다.
func (d Dish) IsVegetarian() bool {
	return d.Diet == DietVegetarian
}

// Ingredients 는 JSON 배열과 콤마로 구분된 단일 문자열을 모두 받는다.
// GET /dishes 는 문자열, GET /dishes/{id} 와 POST /dishes-by-ingredients 는 배열로 내려준다.
type Ingredients []string

func (in *Ingredients) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*in = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = cleanIngredients(strings.Split(s, ","))
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("ingredients: expected string or array of strings: %w", err)
	}
	*in = cleanIngredients(items)
	return nil
}

// String 은 화면 표시용으로 ", " 로 이어 붙인다.
func (in Ingredients) String() string {
	return strings.Join(in, ", ")
}

func cleanIngredients(items []string) Ingredients {
	out := make(Ingredients, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Minutes 는 prep_time/cook_time 값이다. 데이터셋에 따라 숫자 또는 문자열로 내려온다.
type Minutes string

func (m *Minutes) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*m = ""
	case strings.HasPrefix(trimmed, "\""):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Minutes(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("minutes: expected number or string: %w", err)
		}
		*m = Minutes(n.String())
	}
	return nil
}
