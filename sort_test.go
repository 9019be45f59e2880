package natsort

import (
	"sort"
	"testing"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, nil},
		{"single", []string{"a"}, []string{"a"}},
		{"numbered files", []string{"file1.txt", "file11.txt", "file2.txt"},
			[]string{"file1.txt", "file2.txt", "file11.txt"}},
		{"already sorted", []string{"a", "b", "c"},
			[]string{"a", "b", "c"}},
		{"no digits", []string{"banana", "apple", "cherry"},
			[]string{"apple", "banana", "cherry"}},
		{"version labels", []string{"v1.0.10", "v1.0.2", "v1.0.9"},
			[]string{"v1.0.2", "v1.0.9", "v1.0.10"}},
		{"empty string first", []string{"b", "", "a1"},
			[]string{"", "a1", "b"}},
		{"digit widths", []string{"z11", "z2", "z1", "a"},
			[]string{"a", "z1", "z2", "z11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := append([]string(nil), tt.input...)
			Strings(s)
			if len(s) != len(tt.expected) {
				t.Fatalf("got %d elements, want %d: %v vs %v", len(s), len(tt.expected), s, tt.expected)
			}
			for i := range s {
				if s[i] != tt.expected[i] {
					t.Errorf("element %d: got %q, want %q", i, s[i], tt.expected[i])
				}
			}
		})
	}
}

// TestStringsStable checks that magnitude ties keep their input order. The
// comparator treats "007" and "7" as equal; only the stable sort makes the
// outcome deterministic.
func TestStringsStable(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"pure ties", []string{"7", "007", "07"},
			[]string{"7", "007", "07"}},
		{"ties among others", []string{"file007.txt", "file2.txt", "file7.txt"},
			[]string{"file2.txt", "file007.txt", "file7.txt"}},
		{"tie pair reversed", []string{"a07", "a7", "a2"},
			[]string{"a2", "a07", "a7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := append([]string(nil), tt.input...)
			Strings(s)
			for i := range s {
				if s[i] != tt.expected[i] {
					t.Errorf("element %d: got %q, want %q (full result %v)", i, s[i], tt.expected[i], s)
				}
			}
		})
	}
}

func TestStringsCorpus(t *testing.T) {
	s := append([]string(nil), testStrings...)
	Strings(s)
	if !StringsAreSorted(s) {
		t.Fatalf("corpus not sorted: %v", s)
	}
	for i := 1; i < len(s); i++ {
		if Compare(s[i-1], s[i]) > 0 {
			t.Errorf("elements %d and %d out of order: %q > %q", i-1, i, s[i-1], s[i])
		}
	}
}

func TestStringsAreSorted(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  bool
	}{
		{"nil", nil, true},
		{"single", []string{"x"}, true},
		{"sorted", []string{"file1.txt", "file2.txt", "file11.txt"}, true},
		{"unsorted", []string{"file11.txt", "file2.txt"}, false},
		{"adjacent ties count as sorted", []string{"007", "7", "8"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringsAreSorted(tt.input); got != tt.want {
				t.Errorf("StringsAreSorted(%v) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}

// TestStringSlice exercises the sort.Interface methods directly with the
// unstable stdlib sort.
func TestStringSlice(t *testing.T) {
	s := StringSlice{"b10", "a", "b9", "b1"}
	sort.Sort(s)
	expected := []string{"a", "b1", "b9", "b10"}
	for i := range s {
		if s[i] != expected[i] {
			t.Errorf("element %d: got %q, want %q", i, s[i], expected[i])
		}
	}
}

func BenchmarkStrings(b *testing.B) {
	base := make([]string, 0, 100)
	for i := 0; i < 25; i++ {
		base = append(base, "file"+string(rune('a'+i%4))+"-000123.txt", "file-9.txt", "archive/2024-01-02", "v2.10.1")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := append([]string(nil), base...)
		Strings(s)
	}
}
