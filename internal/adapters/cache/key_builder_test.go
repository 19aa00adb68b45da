package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/potenlab/the-potential-backend/internal/core/domain"
)

func TestKeyIsDeterministic(t *testing.T) {
	available := true
	category := domain.CategoryMarketing
	filters := domain.ExpertFilters{
		Category:    &category,
		IsAvailable: &available,
		Regions:     []string{"서울", "부산"},
	}

	first := Key("experts", "list", filters, 20, 0)
	second := Key("experts", "list", filters, 20, 0)

	assert.Equal(t, first, second)
}

func TestKeyEqualFiltersEqualKeys(t *testing.T) {
	// Two separately constructed but semantically identical filter values
	// must collapse onto the same key.
	availableA, availableB := true, true
	keywordA, keywordB := "세무", "세무"

	a := domain.ExpertFilters{Keyword: &keywordA, IsAvailable: &availableA}
	b := domain.ExpertFilters{Keyword: &keywordB, IsAvailable: &availableB}

	assert.Equal(t, Key("experts", "list", a, 20, 0), Key("experts", "list", b, 20, 0))
}

func TestKeyDistinguishesFilterValues(t *testing.T) {
	available := true
	base := domain.ExpertFilters{IsAvailable: &available}

	withKeyword := base
	keyword := "마케팅"
	withKeyword.Keyword = &keyword

	withPrice := base
	minPrice := 50000.0
	withPrice.MinPrice = &minPrice

	keys := []string{
		Key("experts", "list", base, 20, 0),
		Key("experts", "list", withKeyword, 20, 0),
		Key("experts", "list", withPrice, 20, 0),
		Key("experts", "list", base, 20, 20),
		Key("experts", "list", base, 10, 0),
	}

	seen := make(map[string]struct{})
	for _, k := range keys {
		_, dup := seen[k]
		assert.False(t, dup, "duplicate key: %s", k)
		seen[k] = struct{}{}
	}
}

func TestKeyNilVersusZero(t *testing.T) {
	var nilPrice *float64
	zero := 0.0

	withNil := domain.ExpertFilters{MinPrice: nilPrice}
	withZero := domain.ExpertFilters{MinPrice: &zero}

	assert.NotEqual(t,
		Key("experts", "list", withNil, 20, 0),
		Key("experts", "list", withZero, 20, 0))
}

func TestKeyPrefixMatchesOwnFamilyOnly(t *testing.T) {
	prefix := KeyPrefix("experts", "list")

	listKey := Key("experts", "list", domain.ExpertFilters{}, 20, 0)
	detailKey := Key("experts", "detail", "some-id")

	assert.True(t, strings.HasPrefix(listKey, prefix))
	assert.False(t, strings.HasPrefix(detailKey, prefix))

	// The trailing separator keeps "listing" out of the "list" family.
	assert.False(t, strings.HasPrefix("experts::listing::x", prefix))
}

func TestSerializeValueShapes(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "nil"},
		{name: "string", in: "세무", want: "세무"},
		{name: "int", in: 42, want: "42"},
		{name: "bool", in: true, want: "true"},
		{name: "nil slice", in: []string(nil), want: "slice:nil"},
		{name: "slice", in: []string{"a", "b"}, want: "[a,b]"},
		{name: "map sorted", in: map[string]int{"b": 2, "a": 1}, want: "{a=1,b=2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serializeValue(tt.in))
		})
	}
}
