package scoring

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		name  string
		part  int
		total int
		want  int
	}{
		{name: "three_of_five", part: 3, total: 5, want: 60},
		{name: "three_of_four", part: 3, total: 4, want: 75},
		{name: "all_correct", part: 4, total: 4, want: 100},
		{name: "none_correct", part: 0, total: 4, want: 0},
		{name: "half_rounds_up", part: 1, total: 8, want: 13},
		{name: "one_of_three", part: 1, total: 3, want: 33},
		{name: "two_of_three", part: 2, total: 3, want: 67},
		{name: "zero_total", part: 3, total: 0, want: 0},
		{name: "negative_total", part: 3, total: -1, want: 0},
		{name: "part_exceeds_total_caps", part: 7, total: 5, want: 100},
		{name: "negative_part", part: -2, total: 5, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Percent(tc.part, tc.total); got != tc.want {
				t.Fatalf("Percent(%d, %d)=%d, want %d", tc.part, tc.total, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		v    int
		lo   int
		hi   int
		want int
	}{
		{name: "below", v: 0, lo: 1, hi: 5, want: 1},
		{name: "inside", v: 3, lo: 1, hi: 5, want: 3},
		{name: "above", v: 10, lo: 1, hi: 5, want: 5},
		{name: "at_lower", v: 1, lo: 1, hi: 5, want: 1},
		{name: "at_upper", v: 5, lo: 1, hi: 5, want: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
				t.Fatalf("Clamp(%d, %d, %d)=%d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
			}
		})
	}
}
