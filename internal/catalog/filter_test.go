package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripveda/tripveda/internal/domain"
)

func testPackages() []domain.TourPackage {
	return []domain.TourPackage{
		{ID: 1, Title: "Manali Adventure Escape", ShortDescription: "Solang valley and Rohtang pass", Region: "Himachal", Category: "Adventure", Duration: "5 Days / 4 Nights", Price: 14999},
		{ID: 2, Title: "Shimla Heritage Walk", ShortDescription: "Colonial mall road weekend", Region: "Himachal", Category: "Heritage", Duration: "2 Days", Price: 5999},
		{ID: 3, Title: "Kasol Riverside Camp", ShortDescription: "Parvati valley camping", Region: "Himachal", Category: "Adventure", Duration: "3 Days / 2 Nights", Price: 7499},
		{ID: 4, Title: "Leh Ladakh Circuit", ShortDescription: "High altitude road trip via Manali", Region: "Ladakh", Category: "Adventure", Duration: "8 Days / 7 Nights", Price: 32999},
		{ID: 5, Title: "Dharamshala Retreat", ShortDescription: "Monasteries and momos", Region: "Himachal", Category: "Leisure", Duration: "4 Days", Price: 9999},
		{ID: 6, Title: "Local Sightseeing", ShortDescription: "Full day trip around town", Region: "Himachal", Category: "Leisure", Duration: "Full Day Trip", Price: 1999},
	}
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"5 Days / 4 Nights", 5},
		{"2 Days", 2},
		{"1 day", 1},
		{"10days", 10},
		{"Full Day Trip", 1}, // no number before "day"
		{"", 1},
		{"weekend getaway", 1},
		{"0 days", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DayCount(tt.duration), "duration %q", tt.duration)
	}
}

func TestBucketMatching(t *testing.T) {
	assert.True(t, BucketShort.Matches(1))
	assert.True(t, BucketShort.Matches(2))
	assert.False(t, BucketShort.Matches(3))

	assert.True(t, BucketMedium.Matches(3))
	assert.True(t, BucketMedium.Matches(5))
	assert.False(t, BucketMedium.Matches(6))

	assert.True(t, BucketLong.Matches(5))
	assert.True(t, BucketLong.Matches(12))
	assert.False(t, BucketLong.Matches(4))

	// display classification puts a 5-day trip in "5+"
	assert.Equal(t, BucketLong, BucketFor(DayCount("5 Days / 4 Nights")))
	assert.Equal(t, BucketShort, BucketFor(DayCount("2 Days")))
	assert.Equal(t, BucketShort, BucketFor(DayCount("Full Day Trip")))
}

func TestQueryMatchesTitleRegardlessOfAllSentinels(t *testing.T) {
	got := Packages(testPackages(), Spec{Query: "manali", Region: MatchAll, Theme: MatchAll})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID) // matched via short description
}

func TestFilterIsPure(t *testing.T) {
	items := testPackages()
	spec := Spec{Region: "Himachal", Bucket: BucketMedium, Sort: SortPriceAsc}
	first := Packages(items, spec)
	second := Packages(items, spec)
	assert.Equal(t, first, second)
	// the snapshot itself is untouched
	assert.Equal(t, testPackages(), items)
}

func TestEmptyResultIsNonNil(t *testing.T) {
	got := Packages(testPackages(), Spec{Query: "goa"})
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestPriceCeilingInclusiveAndMonotonic(t *testing.T) {
	items := testPackages()

	low := 7499.0
	high := 14999.0
	atLow := Packages(items, Spec{PriceCeiling: &low})
	atHigh := Packages(items, Spec{PriceCeiling: &high})

	// inclusive bound
	assert.Contains(t, idsOf(atLow), int64(3))

	// lower ceiling yields a subset of the higher ceiling
	for _, id := range idsOf(atLow) {
		assert.Contains(t, idsOf(atHigh), id)
	}
	assert.True(t, len(atLow) <= len(atHigh))
}

func TestDurationBucketFilter(t *testing.T) {
	items := testPackages()

	short := Packages(items, Spec{Bucket: BucketShort})
	assert.Equal(t, []int64{2, 6}, idsOf(short)) // "Full Day Trip" degrades to 1 day

	long := Packages(items, Spec{Bucket: BucketLong})
	assert.Equal(t, []int64{1, 4}, idsOf(long))
}

func TestSortStability(t *testing.T) {
	items := []domain.TourPackage{
		{ID: 1, Title: "a", Price: 100, Duration: "2 Days"},
		{ID: 2, Title: "b", Price: 100, Duration: "2 Days"},
		{ID: 3, Title: "c", Price: 50, Duration: "3 Days"},
		{ID: 4, Title: "d", Price: 100, Duration: "1 Day"},
	}

	asc := Packages(items, Spec{Sort: SortPriceAsc})
	assert.Equal(t, []int64{3, 1, 2, 4}, idsOf(asc)) // ties keep snapshot order

	desc := Packages(items, Spec{Sort: SortPriceDesc})
	assert.Equal(t, []int64{1, 2, 4, 3}, idsOf(desc))

	byDuration := Packages(items, Spec{Sort: SortDurationAsc})
	assert.Equal(t, []int64{4, 1, 2, 3}, idsOf(byDuration))

	natural := Packages(items, Spec{Sort: SortNone})
	assert.Equal(t, []int64{1, 2, 3, 4}, idsOf(natural))
}

func TestCombinedPredicates(t *testing.T) {
	items := testPackages()
	ceiling := 20000.0
	got := Packages(items, Spec{
		Query:        "valley",
		Region:       "Himachal",
		Theme:        "Adventure",
		PriceCeiling: &ceiling,
		Sort:         SortPriceAsc,
	})
	assert.Equal(t, []int64{3, 1}, idsOf(got))
}

func TestDiaryQueryMatchesDestination(t *testing.T) {
	diaries := []domain.TravelDiary{
		{ID: 1, Title: "Snow and silence", Destination: "Spiti Valley", Duration: "6 Days"},
		{ID: 2, Title: "Beach days", Destination: "Gokarna", Duration: "3 Days"},
	}
	got := Diaries(diaries, Spec{Query: "spiti"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	long := Diaries(diaries, Spec{Bucket: BucketLong})
	require.Len(t, long, 1)
	assert.Equal(t, int64(1), long[0].ID)
}

func TestPostQueryMatchesTags(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: 1, Title: "Packing list", Category: "Guides", Tags: domain.StringList{"winter", "trekking"}},
		{ID: 2, Title: "Street food tour", Category: "Food", Tags: domain.StringList{"budget"}},
	}
	got := Posts(posts, Spec{Query: "trekking"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	byTheme := Posts(posts, Spec{Theme: "Food"})
	require.Len(t, byTheme, 1)
	assert.Equal(t, int64(2), byTheme[0].ID)
}

func idsOf(items []domain.TourPackage) []int64 {
	ids := make([]int64, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}
