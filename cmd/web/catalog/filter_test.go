package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nandeeswar7/chrysalis-web/models"
)

func sampleDishes() []models.Dish {
	return []models.Dish{
		{ID: "1", Name: "Pinaca", Diet: "vegetarian", FlavorProfile: "sweet", State: "Goa"},
		{ID: "2", Name: "Masala Dosa", Diet: "vegetarian", FlavorProfile: "spicy", State: "Karnataka"},
		{ID: "3", Name: "Rogan Josh", Diet: "non vegetarian", FlavorProfile: "spicy", State: "Jammu & Kashmir"},
		{ID: "4", Name: "Bebinca", Diet: "vegetarian", FlavorProfile: "sweet", State: "Goa"},
		{ID: "5", Name: "Fish Curry", Diet: "non vegetarian", FlavorProfile: "spicy", State: "Goa"},
	}
}

func ids(dishes []models.Dish) []string {
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, d.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name      string
		selection Selection
		wantIDs   []string
	}{
		{
			name:    "empty selection matches everything",
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:      "single field",
			selection: Selection{State: "Goa"},
			wantIDs:   []string{"1", "4", "5"},
		},
		{
			name:      "fields are combined with AND",
			selection: Selection{State: "Goa", FlavorProfile: "spicy"},
			wantIDs:   []string{"5"},
		},
		{
			name:      "all three fields",
			selection: Selection{Diet: "vegetarian", FlavorProfile: "sweet", State: "Goa"},
			wantIDs:   []string{"1", "4"},
		},
		{
			name:      "match is case sensitive",
			selection: Selection{State: "goa"},
			wantIDs:   []string{},
		},
		{
			name:      "no partial matching",
			selection: Selection{Diet: "vegetarian "},
			wantIDs:   []string{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := Filter(sampleDishes(), testCase.selection)
			assert.Equal(t, testCase.wantIDs, ids(got))
		})
	}
}

func TestFilterEquivalentToFieldwiseEquality(t *testing.T) {
	dishes := sampleDishes()
	diets := []string{"", "vegetarian", "non vegetarian"}
	flavors := []string{"", "sweet", "spicy", "bitter"}
	states := []string{"", "Goa", "Karnataka"}

	for _, diet := range diets {
		for _, flavor := range flavors {
			for _, state := range states {
				s := Selection{Diet: diet, FlavorProfile: flavor, State: state}
				var want []string
				for _, d := range dishes {
					if (diet == "" || d.Diet == diet) && (flavor == "" || d.FlavorProfile == flavor) && (state == "" || d.State == state) {
						want = append(want, d.ID)
					}
				}
				if want == nil {
					want = []string{}
				}
				assert.Equal(t, want, ids(Filter(dishes, s)), "selection %+v", s)
			}
		}
	}
}

func TestFilterNeverNil(t *testing.T) {
	assert.NotNil(t, Filter(nil, Selection{}))
}

func TestSelectionFromValues(t *testing.T) {
	v := url.Values{"diet": {"vegetarian"}, "state": {"Goa"}, "page": {"2"}}
	s := SelectionFromValues(v)

	assert.Equal(t, Selection{Diet: "vegetarian", State: "Goa"}, s)
	assert.False(t, s.IsEmpty())
	assert.True(t, Selection{}.IsEmpty())
	assert.Equal(t, "diet=vegetarian&state=Goa", s.Values().Encode())
}

func TestOptionsKeepsFirstSeenOrder(t *testing.T) {
	opts := Options(sampleDishes())

	assert.Equal(t, []string{"vegetarian", "non vegetarian"}, opts.Diets)
	assert.Equal(t, []string{"sweet", "spicy"}, opts.Flavors)
	assert.Equal(t, []string{"Goa", "Karnataka", "Jammu & Kashmir"}, opts.States)
}
