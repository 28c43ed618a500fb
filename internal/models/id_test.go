package models

import "testing"

func TestNextID(t *testing.T) {
	cases := []struct {
		name string
		ids  []int
		want int
	}{
		{"empty", nil, 1},
		{"sequential", []int{1, 2, 3}, 4},
		{"gap below max", []int{1, 5}, 6},
		{"unsorted", []int{7, 2, 4}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextID(tc.ids); got != tc.want {
				t.Errorf("NextID(%v) = %d, want %d", tc.ids, got, tc.want)
			}
		})
	}
}

func TestStartDateKey(t *testing.T) {
	if got := (Task{Start: "2024-03-05T10:00"}).StartDateKey(); got != "2024-03-05" {
		t.Errorf("got %q", got)
	}
	if got := (Task{Start: "bad"}).StartDateKey(); got != "" {
		t.Errorf("short start should yield empty key, got %q", got)
	}
}
