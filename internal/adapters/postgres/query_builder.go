package postgres

import (
	"fmt"
	"strings"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

// queryBuilder collects WHERE conjuncts with numbered args. Predicates only
// ever combine with AND; the directory never needs OR across filters, so no
// expression tree is required.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder(base ...string) *queryBuilder {
	return &queryBuilder{
		argID:      1,
		conditions: base,
		args:       make([]interface{}, 0),
	}
}

// addCondition appends one conjunct. The condition template receives the
// field name and the next placeholder number.
func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// addKeyword matches the keyword as a case-insensitive substring against
// both the business name and the description, reusing one placeholder.
func (qb *queryBuilder) addKeyword(keyword string) {
	qb.conditions = append(qb.conditions,
		fmt.Sprintf("(e.business_name ILIKE $%d OR e.description ILIKE $%d)", qb.argID, qb.argID))
	qb.args = append(qb.args, "%"+keyword+"%")
	qb.argID++
}

// addPriceRange applies the hourly-rate bounds. An unset rate ("price on
// request") passes the lower bound but never the upper one.
func (qb *queryBuilder) addPriceRange(min, max *float64) {
	if min != nil {
		qb.conditions = append(qb.conditions,
			fmt.Sprintf("(e.hourly_rate >= $%d OR e.hourly_rate IS NULL)", qb.argID))
		qb.args = append(qb.args, *min)
		qb.argID++
	}
	if max != nil {
		qb.addCondition("%s <= $%d", "e.hourly_rate", *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyExpertFilters turns normalized search params into a WHERE clause.
// The base predicate pins the directory to approved profiles.
func applyExpertFilters(filters domain.ExpertFilters) (string, []interface{}) {
	qb := newQueryBuilder("e.status = 'approved'")

	if filters.IsAvailable != nil {
		qb.addCondition("%s = $%d", "e.is_available", *filters.IsAvailable)
	}
	if filters.IsFeatured != nil {
		qb.addCondition("%s = $%d", "e.is_featured", *filters.IsFeatured)
	}
	if filters.Category != nil {
		qb.addCondition("%s = $%d", "e.category", string(*filters.Category))
	}
	if filters.Keyword != nil {
		qb.addKeyword(*filters.Keyword)
	}

	qb.addPriceRange(filters.MinPrice, filters.MaxPrice)

	if len(filters.Regions) > 0 {
		// Array overlap: the expert serves at least one requested region.
		qb.addCondition("%s && $%d", "e.regions", filters.Regions)
	}

	return qb.build()
}

// expertOrderClause always ranks featured experts first; the requested sort
// is the secondary key and id breaks remaining ties. SortBy/SortOrder come
// from a whitelist (see ExpertSearchParams.Normalized), never from raw input.
func expertOrderClause(sortBy, sortOrder string) string {
	return fmt.Sprintf("ORDER BY e.is_featured DESC, e.%s %s, e.id ASC", sortBy, strings.ToUpper(sortOrder))
}
