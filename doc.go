/*
Package natsort implements natural ("human") ordering of strings, where runs
of decimal digits are compared by numeric magnitude rather than character by
character.

With plain lexicographic sorting, strings are compared byte by byte:

	files := []string{"file2.txt", "file11.txt", "file1.txt"}
	sort.Strings(files)
	// "file11.txt" comes before "file2.txt" because the character '1'
	// precedes '2'.
	// files is now ["file1.txt", "file11.txt", "file2.txt"]

This package compares embedded numbers by value instead, producing the order
humans expect from file listings, version-like labels, and alphanumeric
identifiers:

	files := []string{"file2.txt", "file11.txt", "file1.txt"}
	natsort.Strings(files)
	// files is now ["file1.txt", "file2.txt", "file11.txt"]

# Getting Started

For simple use cases:
  - [Compare] / [Less] - Compare two strings in natural order
  - [Strings] - Sort a slice of strings in place
  - [StringsAreSorted] - Test whether a slice is already sorted

For repeated comparisons of the same strings:
  - [NewString] - Build a [String] with its segmentation precomputed
  - [SortStrings] - Sort a slice of precomputed [String] values

For segmentation only:
  - [Segments] - Split a string into its digit and non-digit runs
  - [FirstSegment] / [FirstSegmentInString] - Iterate runs without allocating
  - [SegmentCount] - Count runs without allocating

# How Strings Are Compared

Each string is split into segments: maximal runs of ASCII decimal digits
('0'-'9') and maximal runs of everything else. The two segment sequences are
then walked in lockstep:

  - Two digit runs compare by numeric magnitude. Leading zeros do not affect
    magnitude, so "007" and "7" are equal at their position. Magnitude is
    decided on the digit text itself, so runs of any length compare correctly
    without integer overflow.
  - Two non-digit runs compare by code point, case-sensitively, with no
    locale awareness.
  - A digit run meeting a non-digit run compares by the code points of their
    first characters, the same way the raw bytes would compare. There is no
    special "numbers sort first" rule.

The first unequal position decides the result. If every shared position is
equal, the string with fewer segments sorts first, mirroring how a prefix
sorts before its extension. Two strings can therefore compare equal without
being identical: Compare("file007.txt", "file7.txt") returns 0.

The comparison is a total order: reflexive, antisymmetric, and transitive.
All functions in this package are pure and safe for concurrent use.

# Digit Classification

Only the ASCII digits '0'-'9' form number segments. Unicode digits from other
scripts, as well as signs, decimal points, and grouping separators, are
ordinary text. This is a deliberate simplification, not locale support:
"-5" sorts before "-10" under this order because the '-' belongs to a text
segment and the digit runs "5" and "10" compare 5 < 10.

# Performance

[Compare], [Less], and the First* functions make no allocations; they lend
themselves well to ad-hoc comparisons and sort callbacks. [Segments] and
[NewString] allocate the segment sequence once, which pays off when the same
strings are compared many times.
*/
package natsort
