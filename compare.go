package natsort

import (
	"bytes"
	"strings"
)

// Compare returns an integer comparing two strings in natural order: 0 if
// they are equal under that order, -1 if a sorts before b, and +1 if a sorts
// after b.
//
// The two strings are walked segment by segment in lockstep. At each
// position, digit runs compare by magnitude, text runs compare by code
// point, and a digit run meeting a text run compares by the code points of
// their first characters. The first unequal position decides the result; if
// every shared position is equal, the string with fewer segments sorts
// first.
//
// Equal results do not imply identical strings: digit runs that differ only
// in leading zeros are magnitude-equal, so Compare("file007.txt",
// "file7.txt") returns 0.
//
// Compare makes no allocations and is safe for concurrent use.
func Compare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		var sa, sb string
		var ka, kb int
		sa, a, ka = FirstSegmentInString(a)
		sb, b, kb = FirstSegmentInString(b)
		if r := compareSegment(Segment{str: sa, kind: ka}, Segment{str: sb, kind: kb}); r != 0 {
			return r
		}
	}

	// All shared positions were equal. The side with segments remaining
	// sorts after the exhausted one.
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

// Less reports whether a sorts before b in natural order. It is shorthand
// for Compare(a, b) < 0, suitable as a callback for sort.Slice and similar.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// CompareBytes is like [Compare] but its inputs are byte slices.
func CompareBytes(a, b []byte) int {
	for len(a) > 0 && len(b) > 0 {
		var sa, sb []byte
		var ka, kb int
		sa, a, ka = FirstSegment(a)
		sb, b, kb = FirstSegment(b)

		if ka != kb {
			return compareByte(sa[0], sb[0])
		}
		var r int
		if ka == Number {
			r = compareMagnitudeBytes(sa, sb)
		} else {
			r = bytes.Compare(sa, sb)
		}
		if r != 0 {
			return r
		}
	}

	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

// CompareSegments returns an integer comparing two segment sequences, with
// the same per-position rules and the same result convention as [Compare].
// Comparing the sequences of two strings is equivalent to comparing the
// strings themselves; [String] relies on this to compare cached sequences.
func CompareSegments(a, b []Segment) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if r := compareSegment(a[i], b[i]); r != 0 {
			return r
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}
	return 0
}

// compareSegment compares two segments at the same position. Both must be
// non-empty, as produced by segmentation.
func compareSegment(x, y Segment) int {
	if x.kind != y.kind {
		// Structural mismatch: one side is digits, the other is not.
		// Code-point order of the first characters decides. This is always
		// decisive: a digit byte never equals a non-digit byte. And since
		// no non-digit byte lies between '0' and '9', magnitude-equal runs
		// like "07" and "7" fall on the same side of any text segment,
		// which keeps the order transitive.
		return compareByte(x.str[0], y.str[0])
	}
	if x.kind == Number {
		return compareMagnitude(x.str, y.str)
	}
	// UTF-8 compares bytewise exactly as it does by code point.
	return strings.Compare(x.str, y.str)
}

// compareByte compares two bytes. For a digit against the first byte of a
// non-digit character this matches code-point order: ASCII compares as
// itself, and every lead byte of a multi-byte UTF-8 sequence exceeds every
// ASCII byte.
func compareByte(x, y byte) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// compareMagnitude compares two digit runs by numeric value. Both arguments
// must be non-empty and all ASCII digits.
//
// Leading zeros are stripped rather than parsed: after stripping, a longer
// run is the larger number, and equal-length runs compare lexicographically
// exactly as they do numerically. Digit runs of any length therefore compare
// without overflow. Runs that differ only in leading zeros are equal, all-zero
// runs included.
func compareMagnitude(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}

// compareMagnitudeBytes is like compareMagnitude but for byte slices.
func compareMagnitudeBytes(x, y []byte) int {
	x = bytes.TrimLeft(x, "0")
	y = bytes.TrimLeft(y, "0")
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return bytes.Compare(x, y)
}
