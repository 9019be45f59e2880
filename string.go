package natsort

import "sort"

// String is a string bundled with its precomputed segment sequence. Build
// one with [NewString] when the same string takes part in many comparisons,
// such as a key compared against every element of a sorted list; the
// segmentation cost is then paid once instead of once per comparison.
//
// A String is immutable once constructed and safe for concurrent use. The
// zero value behaves like NewString("").
type String struct {
	str  string
	segs []Segment
}

// NewString returns a String wrapping s, with the segmentation of s already
// computed. It always succeeds; any string is valid input.
func NewString(s string) String {
	return String{str: s, segs: Segments(s)}
}

// String returns the original string.
func (s String) String() string {
	return s.str
}

// Segments returns a copy of the cached segment sequence. The copy is the
// caller's to keep; the cached sequence itself never changes.
func (s String) Segments() []Segment {
	if s.segs == nil {
		return nil
	}
	segs := make([]Segment, len(s.segs))
	copy(segs, s.segs)
	return segs
}

// Compare returns an integer comparing s to other in natural order, with
// the same result convention as [Compare]. It returns exactly what Compare
// would return for the underlying strings, working from the cached
// sequences.
func (s String) Compare(other String) int {
	return CompareSegments(s.segs, other.segs)
}

// Less reports whether s sorts before other in natural order.
func (s String) Less(other String) bool {
	return s.Compare(other) < 0
}

// SortStrings sorts a slice of String values in natural order, in place.
// Like [Strings] the sort is stable. Each element's segmentation was
// computed at construction, so the comparisons made during the sort
// allocate nothing.
func SortStrings(s []String) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Less(s[j])
	})
}
