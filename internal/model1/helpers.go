package model1

import (
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"
)

// SkeletonRune paints loading placeholders.
const SkeletonRune = '░'

// Skeleton returns one placeholder field per width.
func Skeleton(widths ...int) Fields {
	ff := make(Fields, len(widths))
	for i, w := range widths {
		if w <= 0 {
			continue
		}
		ff[i] = strings.Repeat(string(SkeletonRune), w)
	}
	return ff
}

// IsSkeleton returns true if s only holds placeholder runes.
func IsSkeleton(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != SkeletonRune {
			return false
		}
	}
	return true
}

// Less returns true if v1 sorts before v2 in natural order, using ids to
// break ties.
func Less(id1, id2, v1, v2 string) bool {
	if v1 == v2 {
		return sortorder.NaturalLess(id1, id2)
	}
	return sortorder.NaturalLess(v1, v2)
}

// SortNatural sorts strings in natural order, e.g. "dish2" before "dish10".
func SortNatural(ss []string) {
	sort.Sort(sortorder.Natural(ss))
}

// NA returns a placeholder for empty values.
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}
