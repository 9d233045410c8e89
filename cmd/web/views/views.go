package views

import (
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
	"github.com/Nandeeswar7/chrysalis-web/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates 는 gin 의 SetHTMLTemplate 에 넘길 전체 템플릿 집합을 파싱한다.
// 템플릿 이름은 파일 이름이다. (예: "dishes.tmpl")
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl"))
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"join":          strings.Join,
		"dishURL":       dishURL,
		"candidateURL":  candidateURL,
		"dietClass":     dietClass,
		"selectedAttr":  selectedAttr,
		"ingredientURL": ingredientURL,
	}
}

func dishURL(id string) string {
	return "/dishes/" + url.PathEscape(id)
}

// candidateURL 은 원격 검색 결과(ID 있음)는 상세 화면으로, 로컬 후보는 검색어 선택으로 연결한다.
func candidateURL(c search.Candidate) string {
	if c.ID != "" {
		return dishURL(c.ID)
	}
	return "/search?" + url.Values{"q": {c.Name}, "selected": {"1"}}.Encode()
}

func dietClass(d models.Dish) string {
	if d.IsVegetarian() {
		return "diet-veg"
	}
	return "diet-nonveg"
}

func selectedAttr(current, value string) template.HTMLAttr {
	if current == value {
		return "selected"
	}
	return ""
}

// ingredientURL 은 재료 하나를 토글한 결과 화면의 주소를 만든다.
func ingredientURL(query string, selected []string, toggle string) string {
	v := url.Values{}
	found := false
	for _, s := range selected {
		if s == toggle {
			found = true
			continue
		}
		v.Add("ingredients", s)
	}
	if !found {
		v.Add("ingredients", toggle)
	}
	if query != "" {
		v.Set("q", query)
	}
	if len(v) == 0 {
		return "/dishes-by-ingredients"
	}
	return "/dishes-by-ingredients?" + v.Encode()
}
