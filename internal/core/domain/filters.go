package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ExpertFilters describes every optional filter the directory supports.
// Absent fields (nil pointers, empty slices) add no predicate.
// MinPrice > MaxPrice is not rejected here; the range simply matches nothing.
type ExpertFilters struct {
	Category    *ExpertCategory
	Keyword     *string
	MinPrice    *float64
	MaxPrice    *float64
	Regions     []string
	IsAvailable *bool
	IsFeatured  *bool
}

// Sortable columns for the directory. Anything else falls back to created_at.
const (
	SortByCreatedAt  = "created_at"
	SortByHourlyRate = "hourly_rate"
	SortByViewCount  = "view_count"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	DefaultExpertPageSize = 20
)

// ExpertSearchParams is ExpertFilters plus pagination and ordering.
type ExpertSearchParams struct {
	Filters   ExpertFilters
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// Normalized returns a copy of the params with defaults applied and the
// filter values brought to a canonical form, so that semantically equal
// parameter sets produce equal cache keys and equal queries:
//   - limit/offset/sort defaults (20, 0, created_at desc)
//   - availability defaults to true unless the caller set it explicitly
//   - keyword trimmed and NFC-normalized (Korean input arrives in mixed
//     normal forms depending on the client's platform)
//   - regions treated as a set: sorted, deduplicated, blanks dropped
func (p ExpertSearchParams) Normalized() ExpertSearchParams {
	out := p

	if out.Limit <= 0 {
		out.Limit = DefaultExpertPageSize
	}
	if out.Offset < 0 {
		out.Offset = 0
	}
	switch out.SortBy {
	case SortByCreatedAt, SortByHourlyRate, SortByViewCount:
	default:
		out.SortBy = SortByCreatedAt
	}
	if out.SortOrder != SortOrderAsc {
		out.SortOrder = SortOrderDesc
	}

	if out.Filters.IsAvailable == nil {
		available := true
		out.Filters.IsAvailable = &available
	}

	if out.Filters.Keyword != nil {
		kw := norm.NFC.String(strings.TrimSpace(*out.Filters.Keyword))
		if kw == "" {
			out.Filters.Keyword = nil
		} else {
			out.Filters.Keyword = &kw
		}
	}

	if len(out.Filters.Regions) > 0 {
		seen := make(map[string]struct{}, len(out.Filters.Regions))
		regions := make([]string, 0, len(out.Filters.Regions))
		for _, r := range out.Filters.Regions {
			r = norm.NFC.String(strings.TrimSpace(r))
			if r == "" {
				continue
			}
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			regions = append(regions, r)
		}
		sort.Strings(regions)
		out.Filters.Regions = regions
	}

	return out
}
