package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/catalog"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/cmd/web/search"
	"github.com/Nandeeswar7/chrysalis-web/models"
)

type fakeLookup struct {
	dishes      []models.Dish
	ingredients []string
	byIngr      []models.Dish

	listErr   error
	getErr    error
	ingrErr   error
	byIngrErr error

	byIngrCalls [][]string
}

func (f *fakeLookup) ListDishes(context.Context) ([]models.Dish, error) {
	return f.dishes, f.listErr
}

func (f *fakeLookup) GetDish(_ context.Context, id string) (models.Dish, error) {
	if f.getErr != nil {
		return models.Dish{}, f.getErr
	}
	for _, d := range f.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Dish{}, dishclient.ErrNotFound
}

func (f *fakeLookup) ListIngredients(context.Context) ([]string, error) {
	return f.ingredients, f.ingrErr
}

func (f *fakeLookup) DishesByIngredients(_ context.Context, ingredients []string) ([]models.Dish, error) {
	if len(ingredients) == 0 {
		return nil, dishclient.ErrValidation
	}
	f.byIngrCalls = append(f.byIngrCalls, ingredients)
	return f.byIngr, f.byIngrErr
}

func manyDishes(n int) []models.Dish {
	out := make([]models.Dish, 0, n)
	for i := 1; i <= n; i++ {
		state := "Goa"
		if i%2 == 0 {
			state = "Kerala"
		}
		out = append(out, models.Dish{ID: fmt.Sprint(i), Name: fmt.Sprintf("Dish %d", i), Diet: "vegetarian", FlavorProfile: "sweet", State: state})
	}
	return out
}

func TestDishServiceListPaginatesFilteredSet(t *testing.T) {
	svc := NewDishService(&fakeLookup{dishes: manyDishes(25)}, 10)

	view, err := svc.List(context.Background(), ListDishesInput{Page: 3})
	require.NoError(t, err)

	assert.Len(t, view.Dishes, 5)
	assert.Equal(t, 3, view.Page.TotalPages)
	assert.Equal(t, "/dishes?page=2", view.PrevURL)
	assert.Empty(t, view.NextURL)
	assert.Equal(t, []string{"Goa", "Kerala"}, view.Options.States)
	assert.False(t, view.Filtered)
}

func TestDishServiceListKeepsSelectionInLinks(t *testing.T) {
	svc := NewDishService(&fakeLookup{dishes: manyDishes(25)}, 5)

	view, err := svc.List(context.Background(), ListDishesInput{Selection: catalog.Selection{State: "Goa"}, Page: 1})
	require.NoError(t, err)

	assert.Len(t, view.Dishes, 5)
	assert.Equal(t, 13, view.Page.Total)
	assert.Equal(t, 3, view.Page.TotalPages)
	assert.Equal(t, "/dishes?page=2&state=Goa", view.NextURL)
	assert.True(t, view.Filtered)
	for _, d := range view.Dishes {
		assert.Equal(t, "Goa", d.State)
	}
	// 필터 옵션은 필터링 전 전체 목록에서 계산한다.
	assert.Equal(t, []string{"Goa", "Kerala"}, view.Options.States)
}

func TestDishServiceListClampsPage(t *testing.T) {
	svc := NewDishService(&fakeLookup{dishes: manyDishes(25)}, 10)

	view, err := svc.List(context.Background(), ListDishesInput{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Page.Page)
	assert.Len(t, view.Dishes, 5)

	view, err = svc.List(context.Background(), ListDishesInput{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page.Page)
}

func TestDishServiceListEmptyFilteredSet(t *testing.T) {
	svc := NewDishService(&fakeLookup{dishes: manyDishes(3)}, 10)

	view, err := svc.List(context.Background(), ListDishesInput{Selection: catalog.Selection{State: "Punjab"}, Page: 1})
	require.NoError(t, err)

	assert.Empty(t, view.Dishes)
	assert.Equal(t, 1, view.Page.TotalPages)
	assert.Empty(t, view.PrevURL)
	assert.Empty(t, view.NextURL)
}

func TestDishServiceListPropagatesFailure(t *testing.T) {
	svc := NewDishService(&fakeLookup{listErr: dishclient.ErrUpstream}, 10)

	_, err := svc.List(context.Background(), ListDishesInput{Page: 1})
	assert.ErrorIs(t, err, dishclient.ErrUpstream)
}

func TestIngredientServiceFinder(t *testing.T) {
	lookup := &fakeLookup{
		ingredients: []string{"Rice", "Brown rice", "Ghee", "Saffron"},
		byIngr:      []models.Dish{{ID: "1", Name: "Biryani", Ingredients: models.Ingredients{"Rice", "Ghee"}}},
	}
	svc := NewIngredientService(lookup)

	view, err := svc.Finder(context.Background(), FinderInput{Query: "rice", Selected: []string{"Ghee", " ", "Rice", "Ghee"}})
	require.NoError(t, err)

	assert.Equal(t, "rice", view.Query)
	assert.Equal(t, []string{"Ghee", "Rice"}, view.Selected)
	require.Len(t, view.Ingredients, 2)
	assert.Equal(t, "Rice", view.Ingredients[0].Name)
	assert.True(t, view.Ingredients[0].Selected)
	assert.False(t, view.Ingredients[1].Selected)

	require.Len(t, view.Dishes, 1)
	assert.Equal(t, []string{"Rice", "Ghee"}, view.Dishes[0].Ingredients)
	assert.Equal(t, [][]string{{"Ghee", "Rice"}}, lookup.byIngrCalls)
	assert.Empty(t, view.Error)
}

func TestIngredientServiceFinderWithoutSelectionSkipsLookup(t *testing.T) {
	lookup := &fakeLookup{ingredients: []string{"Rice", "Ghee"}}
	svc := NewIngredientService(lookup)

	view, err := svc.Finder(context.Background(), FinderInput{})
	require.NoError(t, err)

	assert.Len(t, view.Ingredients, 2)
	assert.Empty(t, view.Dishes)
	assert.NotNil(t, view.Dishes)
	assert.Empty(t, lookup.byIngrCalls)
}

func TestIngredientServiceFinderDishFailureBecomesMessage(t *testing.T) {
	lookup := &fakeLookup{
		ingredients: []string{"Rice"},
		byIngr:      []models.Dish{{ID: "1", Name: "Biryani"}},
		byIngrErr:   &dishclient.UpstreamError{Op: "DishesByIngredients", StatusCode: 500},
	}
	svc := NewIngredientService(lookup)

	view, err := svc.Finder(context.Background(), FinderInput{Selected: []string{"Rice"}})
	require.NoError(t, err)

	assert.Equal(t, FinderErrorMessage, view.Error)
	assert.Empty(t, view.Dishes)
}

func TestIngredientServiceFinderIngredientFailure(t *testing.T) {
	svc := NewIngredientService(&fakeLookup{ingrErr: dishclient.ErrUpstream})

	_, err := svc.Finder(context.Background(), FinderInput{})
	assert.ErrorIs(t, err, dishclient.ErrUpstream)
}

func TestIsValidation(t *testing.T) {
	svc := NewIngredientService(&fakeLookup{})
	_, err := svc.FindDishes(context.Background(), nil)

	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(errors.New("other")))
}

func TestSearchServiceHeader(t *testing.T) {
	svc := NewSearchService(search.NewLocalSubstring([]string{"Masala Dosa", "Biryani"}))

	header, err := svc.Header(context.Background(), "dosa")
	require.NoError(t, err)
	assert.Equal(t, "results_shown", header.State)
	assert.True(t, header.DropdownVisible)
	assert.Equal(t, []search.Candidate{{Name: "Masala Dosa"}}, header.Results)

	header, err = svc.Header(context.Background(), "pizza")
	require.NoError(t, err)
	assert.Equal(t, "no_results", header.State)
	assert.True(t, header.DropdownVisible)

	header, err = svc.Header(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "idle", header.State)
	assert.False(t, header.DropdownVisible)
	assert.Equal(t, IdleHeader(), header)
}

func TestSearchServiceSuggest(t *testing.T) {
	svc := NewSearchService(search.NewLocalSubstring([]string{"Masala Dosa", "Biryani"}))

	out, err := svc.Suggest(context.Background(), "BIR")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Biryani", out[0].Name)

	out, err = svc.Suggest(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "local-substring", svc.Mode())
}

func TestSearchServiceSelectedClosesDropdown(t *testing.T) {
	svc := NewSearchService(search.NewLocalSubstring([]string{"Biryani"}))

	h := svc.Selected("Biryani")
	assert.Equal(t, "Biryani", h.Query)
	assert.Equal(t, "idle", h.State)
	assert.False(t, h.DropdownVisible)
	assert.Empty(t, h.Results)
}
