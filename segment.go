package natsort

// These constants classify the segments returned by [FirstSegment],
// [FirstSegmentInString], and [Segments], and reported by [Segment.Kind].
const (
	Text   = iota // A maximal run of non-digit characters.
	Number        // A maximal run of ASCII decimal digits '0'-'9'.
)

// Segment is one maximal run of either ASCII digits or non-digit characters
// within a string. Segments are produced by [Segments] and cached inside a
// [String]; they partition their source string exactly and in order, with no
// empty segment and no two adjacent segments of the same kind.
type Segment struct {
	str  string
	kind int
}

// String returns the segment's text, a verbatim substring of the source.
func (s Segment) String() string {
	return s.str
}

// Kind returns the segment's classification, [Text] or [Number].
func (s Segment) Kind() int {
	return s.kind
}

// kindOf returns the segment kind ([Text] or [Number]) of the given byte.
//
// Classification is bytewise and ASCII-only. No byte of a multi-byte UTF-8
// sequence falls in '0'-'9', so scanning bytes never splits a code point:
// Unicode digits from other scripts classify as [Text] along with letters,
// punctuation, and whitespace.
func kindOf(c byte) int {
	if c >= '0' && c <= '9' {
		return Number
	}
	return Text
}

// FirstSegment returns the first maximal run of same-kind bytes in the given
// byte slice, along with its classification, [Text] or [Number].
//
// The "rest" slice is the sub-slice of the original byte slice "b" starting
// after the last byte of the identified segment. If the length of the "rest"
// slice is 0, the entire byte slice "b" has been processed. This function can
// therefore be called continuously to extract all segments from a byte slice,
// as illustrated in the examples.
//
// Given an empty byte slice "b", the function returns nil values.
//
// This function makes no allocations; both return slices alias the input.
func FirstSegment(b []byte) (segment, rest []byte, kind int) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return
	}

	kind = kindOf(b[0])
	for i := 1; i < len(b); i++ {
		if kindOf(b[i]) != kind {
			return b[:i], b[i:], kind
		}
	}
	return b, nil, kind
}

// FirstSegmentInString is like [FirstSegment] but its input and outputs are
// strings.
func FirstSegmentInString(str string) (segment, rest string, kind int) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return
	}

	kind = kindOf(str[0])
	for i := 1; i < len(str); i++ {
		if kindOf(str[i]) != kind {
			return str[:i], str[i:], kind
		}
	}
	return str, "", kind
}

// Segments splits the given string into its ordered sequence of segments.
// Concatenating the segments' text reproduces the string exactly. An empty
// string yields a nil sequence.
//
// Segmentation is total: any string is valid input, including strings with
// no digits, all digits, or digits at either end.
//
// While more convenient than [FirstSegmentInString], this function allocates
// the returned sequence. Use it when the segments are kept around, as
// [NewString] does; for one-shot iteration the First* functions are cheaper.
func Segments(s string) []Segment {
	if len(s) == 0 {
		return nil
	}

	segs := make([]Segment, 0, SegmentCount(s))
	for len(s) > 0 {
		var seg string
		var kind int
		seg, s, kind = FirstSegmentInString(s)
		segs = append(segs, Segment{str: seg, kind: kind})
	}
	return segs
}

// SegmentCount returns the number of segments in the given string without
// allocating. An empty string contains no segments.
func SegmentCount(s string) (n int) {
	for len(s) > 0 {
		_, s, _ = FirstSegmentInString(s)
		n++
	}
	return n
}
