package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

func TestApplyExpertFiltersBasePredicate(t *testing.T) {
	where, args := applyExpertFilters(domain.ExpertFilters{})

	assert.Equal(t, "WHERE e.status = 'approved'", where)
	assert.Empty(t, args)
}

func TestApplyExpertFiltersNumbersArgsSequentially(t *testing.T) {
	available := true
	category := domain.CategoryFinance
	keyword := "세무"
	minPrice, maxPrice := 30000.0, 80000.0

	where, args := applyExpertFilters(domain.ExpertFilters{
		Category:    &category,
		Keyword:     &keyword,
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
		Regions:     []string{"서울"},
		IsAvailable: &available,
	})

	assert.Equal(t,
		"WHERE e.status = 'approved'"+
			" AND e.is_available = $1"+
			" AND e.category = $2"+
			" AND (e.business_name ILIKE $3 OR e.description ILIKE $3)"+
			" AND (e.hourly_rate >= $4 OR e.hourly_rate IS NULL)"+
			" AND e.hourly_rate <= $5"+
			" AND e.regions && $6",
		where)
	assert.Equal(t, []interface{}{true, "finance", "%세무%", 30000.0, 80000.0, []string{"서울"}}, args)
}

func TestApplyExpertFiltersKeywordUsesOnePlaceholder(t *testing.T) {
	keyword := "마케팅"
	where, args := applyExpertFilters(domain.ExpertFilters{Keyword: &keyword})

	assert.Contains(t, where, "(e.business_name ILIKE $1 OR e.description ILIKE $1)")
	assert.Equal(t, []interface{}{"%마케팅%"}, args)
}

func TestApplyExpertFiltersNullRatePassesLowerBoundOnly(t *testing.T) {
	minPrice := 10000.0
	where, _ := applyExpertFilters(domain.ExpertFilters{MinPrice: &minPrice})
	assert.Contains(t, where, "(e.hourly_rate >= $1 OR e.hourly_rate IS NULL)")

	maxPrice := 90000.0
	where, _ = applyExpertFilters(domain.ExpertFilters{MaxPrice: &maxPrice})
	assert.Contains(t, where, "e.hourly_rate <= $1")
	assert.NotContains(t, where, "IS NULL")
}

func TestApplyExpertFiltersInvertedRangeMatchesNothingButIsValidSQL(t *testing.T) {
	minPrice, maxPrice := 90000.0, 10000.0
	where, args := applyExpertFilters(domain.ExpertFilters{MinPrice: &minPrice, MaxPrice: &maxPrice})

	// Both bounds survive as conjuncts; the empty result set is the
	// database's answer, not an error.
	assert.Contains(t, where, "(e.hourly_rate >= $1 OR e.hourly_rate IS NULL)")
	assert.Contains(t, where, "e.hourly_rate <= $2")
	assert.Equal(t, []interface{}{90000.0, 10000.0}, args)
}

func TestExpertOrderClauseFeaturedAlwaysLeads(t *testing.T) {
	assert.Equal(t,
		"ORDER BY e.is_featured DESC, e.created_at DESC, e.id ASC",
		expertOrderClause(domain.SortByCreatedAt, domain.SortOrderDesc))
	assert.Equal(t,
		"ORDER BY e.is_featured DESC, e.hourly_rate ASC, e.id ASC",
		expertOrderClause(domain.SortByHourlyRate, domain.SortOrderAsc))
}
