package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedAppliesDefaults(t *testing.T) {
	params := ExpertSearchParams{}.Normalized()

	assert.Equal(t, DefaultExpertPageSize, params.Limit)
	assert.Equal(t, 0, params.Offset)
	assert.Equal(t, SortByCreatedAt, params.SortBy)
	assert.Equal(t, SortOrderDesc, params.SortOrder)

	require.NotNil(t, params.Filters.IsAvailable)
	assert.True(t, *params.Filters.IsAvailable)
}

func TestNormalizedKeepsExplicitValues(t *testing.T) {
	unavailable := false
	params := ExpertSearchParams{
		Limit:     5,
		Offset:    40,
		SortBy:    SortByHourlyRate,
		SortOrder: SortOrderAsc,
		Filters:   ExpertFilters{IsAvailable: &unavailable},
	}.Normalized()

	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, 40, params.Offset)
	assert.Equal(t, SortByHourlyRate, params.SortBy)
	assert.Equal(t, SortOrderAsc, params.SortOrder)

	require.NotNil(t, params.Filters.IsAvailable)
	assert.False(t, *params.Filters.IsAvailable)
}

func TestNormalizedRejectsUnknownSort(t *testing.T) {
	params := ExpertSearchParams{SortBy: "password_hash", SortOrder: "DROP TABLE"}.Normalized()

	assert.Equal(t, SortByCreatedAt, params.SortBy)
	assert.Equal(t, SortOrderDesc, params.SortOrder)
}

func TestNormalizedKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    *string
	}{
		{name: "trims whitespace", keyword: "  마케팅  ", want: strPtr("마케팅")},
		{name: "blank becomes nil", keyword: "   ", want: nil},
		// U+1100 U+1161 compose to the single syllable U+AC00.
		{name: "NFC normalization", keyword: "가", want: strPtr("가")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ExpertSearchParams{Filters: ExpertFilters{Keyword: &tt.keyword}}.Normalized()
			if tt.want == nil {
				assert.Nil(t, params.Filters.Keyword)
				return
			}
			require.NotNil(t, params.Filters.Keyword)
			assert.Equal(t, *tt.want, *params.Filters.Keyword)
		})
	}
}

func TestNormalizedRegionsAreASet(t *testing.T) {
	params := ExpertSearchParams{
		Filters: ExpertFilters{Regions: []string{"서울", "부산", " 서울 ", "", "경기"}},
	}.Normalized()

	assert.Equal(t, []string{"경기", "부산", "서울"}, params.Filters.Regions)
}

func TestNormalizedIsIdempotent(t *testing.T) {
	keyword := " 세무 "
	params := ExpertSearchParams{
		Filters: ExpertFilters{
			Keyword: &keyword,
			Regions: []string{"인천", "대구", "인천"},
		},
	}

	once := params.Normalized()
	twice := once.Normalized()

	assert.Equal(t, once, twice)
}

func strPtr(s string) *string { return &s }
