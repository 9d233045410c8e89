package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandeeswar7/chrysalis-web/cmd/web/clients/dishclient"
	"github.com/Nandeeswar7/chrysalis-web/config"
)

type fakeLookup struct {
	calls   []string
	results []dishclient.SearchResult
	err     error
}

func (f *fakeLookup) Search(_ context.Context, q string) ([]dishclient.SearchResult, error) {
	f.calls = append(f.calls, q)
	return f.results, f.err
}

var headerDishes = []string{
	"Biryani",
	"Masala Dosa",
	"Paneer Butter Masala",
	"Chicken Curry",
	"Samosa",
	"Gulab Jamun",
	"Rogan Josh",
	"Butter Chicken",
}

func names(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestLocalSubstring(t *testing.T) {
	testCases := []struct {
		name       string
		query      string
		candidates []string
		want       []string
	}{
		{
			name:       "dosa",
			query:      "dosa",
			candidates: []string{"Masala Dosa", "Biryani"},
			want:       []string{"Masala Dosa"},
		},
		{
			name:       "case insensitive and order preserving",
			query:      "BUTTER",
			candidates: headerDishes,
			want:       []string{"Paneer Butter Masala", "Butter Chicken"},
		},
		{
			name:       "substring in the middle",
			query:      "sa",
			candidates: headerDishes,
			want:       []string{"Masala Dosa", "Paneer Butter Masala", "Samosa"},
		},
		{
			name:       "no match",
			query:      "pizza",
			candidates: headerDishes,
			want:       []string{},
		},
		{
			name:       "empty query yields nothing",
			query:      "",
			candidates: headerDishes,
			want:       []string{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := NewLocalSubstring(testCase.candidates).Search(context.Background(), testCase.query)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, names(got))
		})
	}
}

func TestRemoteDelegateReturnsLookupResultsUnmodified(t *testing.T) {
	lookup := &fakeLookup{results: []dishclient.SearchResult{
		{ID: "9", Name: "Dosa"},
		{ID: "2", Name: "Masala Dosa"},
	}}
	s := NewRemoteDelegate(lookup)

	got, err := s.Search(context.Background(), " Dosa")
	require.NoError(t, err)

	assert.Equal(t, []Candidate{{ID: "9", Name: "Dosa"}, {ID: "2", Name: "Masala Dosa"}}, got)
	assert.Equal(t, []string{" Dosa"}, lookup.calls)
}

func TestRemoteDelegateEmptyQuerySkipsLookup(t *testing.T) {
	lookup := &fakeLookup{results: []dishclient.SearchResult{{ID: "1", Name: "Biryani"}}}

	got, err := NewRemoteDelegate(lookup).Search(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Empty(t, lookup.calls)
}

func TestRemoteDelegatePropagatesError(t *testing.T) {
	lookup := &fakeLookup{err: dishclient.ErrUpstream}

	_, err := NewRemoteDelegate(lookup).Search(context.Background(), "dosa")
	assert.True(t, errors.Is(err, dishclient.ErrUpstream))
}

func TestNewSelectsStrategyByMode(t *testing.T) {
	s, err := New(config.SearchModeLocalSubstring, headerDishes, nil)
	require.NoError(t, err)
	assert.IsType(t, &LocalSubstring{}, s)
	assert.Equal(t, config.SearchModeLocalSubstring, s.Mode())

	s, err = New(config.SearchModeRemoteDelegate, nil, &fakeLookup{})
	require.NoError(t, err)
	assert.IsType(t, &RemoteDelegate{}, s)
	assert.Equal(t, config.SearchModeRemoteDelegate, s.Mode())

	_, err = New(config.SearchModeRemoteDelegate, nil, nil)
	assert.Error(t, err)

	_, err = New("fuzzy", nil, nil)
	assert.ErrorContains(t, err, "unknown mode")
}

func TestFilterNames(t *testing.T) {
	all := []string{"Rice", "Brown rice", "Ghee", "Curry leaves"}

	assert.Equal(t, all, FilterNames("", all))
	assert.Equal(t, []string{"Rice", "Brown rice"}, FilterNames("RICE", all))
	assert.Equal(t, []string{}, FilterNames("saffron", all))
}
