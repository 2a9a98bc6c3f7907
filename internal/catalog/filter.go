// Package catalog implements the in-memory filtering, sorting and
// incremental-reveal pagination used by the public content listings.
// Every operation is pure: callers pass a snapshot of the collection and
// get a new ordered slice back, so it is safe to re-run on every keystroke.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tripveda/tripveda/internal/domain"
)

// MatchAll is the sentinel filter value that disables a predicate.
const MatchAll = "All"

// SortKey selects the result ordering. SortNone preserves the snapshot order.
type SortKey string

const (
	SortNone        SortKey = "none"
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortDurationAsc SortKey = "duration-asc"
)

// DurationBucket is a discrete day-count range used for filtering.
type DurationBucket string

const (
	BucketAny    DurationBucket = ""
	BucketShort  DurationBucket = "1-2"
	BucketMedium DurationBucket = "3-5"
	BucketLong   DurationBucket = "5+"
)

// Matches reports whether a trip of the given day count falls in the bucket.
// A 5-day trip matches both "3-5" and "5+".
func (b DurationBucket) Matches(days int) bool {
	switch b {
	case BucketShort:
		return days >= 1 && days <= 2
	case BucketMedium:
		return days >= 3 && days <= 5
	case BucketLong:
		return days >= 5
	default:
		return true
	}
}

// BucketFor classifies a day count for display purposes.
func BucketFor(days int) DurationBucket {
	switch {
	case days >= 5:
		return BucketLong
	case days >= 3:
		return BucketMedium
	default:
		return BucketShort
	}
}

var dayPattern = regexp.MustCompile(`(?i)(\d+)\s*days?`)

// DayCount derives a day count from a free-text duration such as
// "5 Days / 4 Nights". Strings without a number before "day(s)" degrade to 1,
// never to an error.
func DayCount(duration string) int {
	m := dayPattern.FindStringSubmatch(duration)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Spec is the set of active filter predicates. Zero values (and the "All"
// sentinel for Region/Theme) disable the corresponding predicate.
type Spec struct {
	Query        string
	Region       string
	Theme        string
	Bucket       DurationBucket
	PriceCeiling *float64 // inclusive upper bound; no lower bound
	Sort         SortKey
}

// fields is the probe result the generic engine filters and sorts on.
type fields struct {
	search   []string // free-text match targets
	region   string
	theme    string
	duration string
	price    float64
	priced   bool // price predicate/sorting applies to this content type
}

func matchQuery(query string, targets []string) bool {
	if query == "" {
		return true
	}
	for _, t := range targets {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func matchField(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, MatchAll) {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

func apply[T any](items []T, spec Spec, probe func(T) fields) []T {
	query := strings.ToLower(strings.TrimSpace(spec.Query))

	// Filtered output is always a non-nil slice so an empty result is
	// distinguishable from "no filters evaluated yet".
	out := make([]T, 0, len(items))
	meta := make([]fields, 0, len(items))
	for _, item := range items {
		f := probe(item)
		if !matchQuery(query, f.search) {
			continue
		}
		if !matchField(spec.Region, f.region) {
			continue
		}
		if !matchField(spec.Theme, f.theme) {
			continue
		}
		if spec.Bucket != BucketAny && !spec.Bucket.Matches(DayCount(f.duration)) {
			continue
		}
		if spec.PriceCeiling != nil && f.priced && f.price > *spec.PriceCeiling {
			continue
		}
		out = append(out, item)
		meta = append(meta, f)
	}

	// Stable sort: ties preserve the snapshot order.
	switch spec.Sort {
	case SortPriceAsc:
		sortStable(out, meta, func(a, b fields) bool { return a.price < b.price })
	case SortPriceDesc:
		sortStable(out, meta, func(a, b fields) bool { return a.price > b.price })
	case SortDurationAsc:
		sortStable(out, meta, func(a, b fields) bool { return DayCount(a.duration) < DayCount(b.duration) })
	}
	return out
}

func sortStable[T any](items []T, meta []fields, less func(a, b fields) bool) {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return less(meta[idx[i]], meta[idx[j]]) })
	sorted := make([]T, len(items))
	for pos, i := range idx {
		sorted[pos] = items[i]
	}
	copy(items, sorted)
}

// Packages filters and sorts a snapshot of tour packages.
func Packages(items []domain.TourPackage, spec Spec) []domain.TourPackage {
	return apply(items, spec, func(p domain.TourPackage) fields {
		return fields{
			search:   []string{p.Title, p.ShortDescription},
			region:   p.Region,
			theme:    p.Category,
			duration: p.Duration,
			price:    p.Price,
			priced:   true,
		}
	})
}

// Diaries filters and sorts a snapshot of travel diaries. The free-text query
// additionally matches the destination; diaries carry no price.
func Diaries(items []domain.TravelDiary, spec Spec) []domain.TravelDiary {
	return apply(items, spec, func(d domain.TravelDiary) fields {
		return fields{
			search:   []string{d.Title, d.Excerpt, d.Destination},
			region:   d.Destination,
			duration: d.Duration,
		}
	})
}

// Posts filters and sorts a snapshot of blog posts. The free-text query
// additionally matches tags; posts carry no price or duration.
func Posts(items []domain.BlogPost, spec Spec) []domain.BlogPost {
	return apply(items, spec, func(p domain.BlogPost) fields {
		search := []string{p.Title, p.Excerpt}
		search = append(search, p.Tags...)
		return fields{
			search: search,
			theme:  p.Category,
		}
	})
}
