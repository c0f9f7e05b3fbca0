package lcsdiff

import (
	"reflect"
	"testing"
)

func mustSolve(t *testing.T, a, b []string) *LCS {
	t.Helper()
	l, err := SolveStrings(a, b)
	if err != nil {
		t.Fatalf("SolveStrings(%v, %v) error = %v", a, b, err)
	}
	return l
}

func TestLocator_Advance(t *testing.T) {
	// pairs: (1,1) (3,3) (4,4) (5,5) (6,7)
	l := mustSolve(t,
		[]string{"a", "b", "c", "d", "e", "f"},
		[]string{"a", "X", "c", "d", "e", "Y", "f"})
	loc := NewLocator(l)

	tests := []struct {
		k          int
		wantNext   int
		wantCommon int
		wantEnd    bool
	}{
		{0, 2, 2, false},
		{2, 5, 3, false},
		{5, 7, 2, true},
		{6, 7, 1, true},
		{7, 7, 0, true},
		{-1, 7, 0, true},
		{100, 7, 0, true},
	}

	for _, tt := range tests {
		next, common, end := loc.Advance(tt.k)
		if next != tt.wantNext || common != tt.wantCommon || end != tt.wantEnd {
			t.Errorf("Advance(%d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.k, next, common, end, tt.wantNext, tt.wantCommon, tt.wantEnd)
		}
	}
}

func TestLocator_Changes(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want [][2]int
	}{
		{
			name: "identical",
			a:    []string{"a", "b"},
			b:    []string{"a", "b"},
			want: nil,
		},
		{
			name: "both empty",
			want: nil,
		},
		{
			name: "change at start",
			a:    []string{"x", "a"},
			b:    []string{"a"},
			want: [][2]int{{1, 1}},
		},
		{
			name: "change at end",
			a:    []string{"a"},
			b:    []string{"a", "x"},
			want: [][2]int{{2, 2}},
		},
		{
			name: "two changes",
			a:    []string{"a", "b", "c", "d", "e", "f"},
			b:    []string{"a", "X", "c", "d", "e", "Y", "f"},
			want: [][2]int{{2, 2}, {5, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][2]int
			for k, common := range NewLocator(mustSolve(t, tt.a, tt.b)).Changes() {
				got = append(got, [2]int{k, common})
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Changes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocator_ChangesStop(t *testing.T) {
	l := mustSolve(t, []string{"a", "b", "c"}, []string{"x", "b", "y"})
	n := 0
	for range NewLocator(l).Changes() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterations = %d, want 1", n)
	}
}
