package natsort

import "sort"

// StringSlice attaches the methods of sort.Interface to []string, ordering
// in increasing natural order as defined by [Less].
type StringSlice []string

func (p StringSlice) Len() int           { return len(p) }
func (p StringSlice) Less(i, j int) bool { return Less(p[i], p[j]) }
func (p StringSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Strings sorts a slice of strings in natural order, in place.
//
// The sort is stable: elements that compare equal, including strings that
// differ only in leading zeros such as "007" and "7", keep their relative
// input order. Stability is a property of the sort used here, not of the
// comparator; sorting [StringSlice] with an unstable sort does not provide
// it.
func Strings(s []string) {
	sort.Stable(StringSlice(s))
}

// StringsAreSorted reports whether the slice is in natural order.
func StringsAreSorted(s []string) bool {
	return sort.IsSorted(StringSlice(s))
}
