package lcsdiff

import (
	"reflect"
	"testing"
)

func TestDiff_Empty(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []DiffOp
	}{
		{
			name: "both empty",
			a:    []string{},
			b:    []string{},
			want: nil,
		},
		{
			name: "a empty",
			a:    []string{},
			b:    []string{"x", "y"},
			want: []DiffOp{
				{Type: Insert, AStart: 0, AEnd: 0, BStart: 0, BEnd: 2},
			},
		},
		{
			name: "b empty",
			a:    []string{"x", "y"},
			b:    []string{},
			want: []DiffOp{
				{Type: Delete, AStart: 0, AEnd: 2, BStart: 0, BEnd: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Diff() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Diff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiff_Equal(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "b", "c"}

	got, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 3, BStart: 0, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_SimpleChange(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c"}

	got, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Delete, AStart: 1, AEnd: 2, BStart: 1, BEnd: 1},
		{Type: Insert, AStart: 2, AEnd: 2, BStart: 1, BEnd: 2},
		{Type: Equal, AStart: 2, AEnd: 3, BStart: 2, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_Insert(t *testing.T) {
	a := []string{"a", "c"}
	b := []string{"a", "b", "c"}

	got, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Insert, AStart: 1, AEnd: 1, BStart: 1, BEnd: 2},
		{Type: Equal, AStart: 1, AEnd: 2, BStart: 2, BEnd: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_Delete(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "c"}

	got, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	want := []DiffOp{
		{Type: Equal, AStart: 0, AEnd: 1, BStart: 0, BEnd: 1},
		{Type: Delete, AStart: 1, AEnd: 2, BStart: 1, BEnd: 1},
		{Type: Equal, AStart: 2, AEnd: 3, BStart: 1, BEnd: 2},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_ApplyProducesB(t *testing.T) {
	// Property test: applying the diff to A should produce B
	tests := []struct {
		name string
		a, b []string
	}{
		{"simple", []string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{"insert", []string{"a", "c"}, []string{"a", "b", "c"}},
		{"delete", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"replace all", []string{"a", "b"}, []string{"x", "y"}},
		{"complex", []string{"a", "b", "c", "d", "e"}, []string{"a", "x", "c", "y", "e"}},
		{"repeats", []string{"x", "x", "y", "x"}, []string{"y", "x", "x", "x", "y"}},
	}

	for _, tt := range tests {
		for _, s := range Strategies() {
			t.Run(tt.name+"/"+s.String(), func(t *testing.T) {
				ops, err := Diff(tt.a, tt.b, WithStrategy(s))
				if err != nil {
					t.Fatalf("Diff() error = %v", err)
				}
				result := applyDiff(tt.a, tt.b, ops)

				if !reflect.DeepEqual(result, tt.b) {
					t.Errorf("Applying diff to %v did not produce %v, got %v\nOps: %v",
						tt.a, tt.b, result, ops)
				}
			})
		}
	}
}

// applyDiff applies a diff to sequence a to produce b
func applyDiff(a, b []string, ops []DiffOp) []string {
	var result []string

	for _, op := range ops {
		switch op.Type {
		case Equal:
			result = append(result, a[op.AStart:op.AEnd]...)
		case Delete:
			// Don't add deleted elements
		case Insert:
			result = append(result, b[op.BStart:op.BEnd]...)
		}
	}

	return result
}

func TestOpType_String(t *testing.T) {
	tests := []struct {
		op   OpType
		want string
	}{
		{Equal, "Equal"},
		{Insert, "Insert"},
		{Delete, "Delete"},
		{OpType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OpType(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestDiff_IgnoreOptions(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		opts []Option
	}{
		{"case", []string{"Hello", "World"}, []string{"hello", "WORLD"}, []Option{WithIgnoreCase(true)}},
		{"space change", []string{"a  b", "c\t"}, []string{"a b", "c"}, []Option{WithIgnoreSpaceChange(true)}},
		{"all space", []string{"a b c"}, []string{"abc"}, []Option{WithIgnoreAllSpace(true)}},
		{"case and space", []string{"A  B"}, []string{"a b"}, []Option{WithIgnoreCase(true), WithIgnoreSpaceChange(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := Diff(tt.a, tt.b, tt.opts...)
			if err != nil {
				t.Fatalf("Diff() error = %v", err)
			}
			want := []DiffOp{{Type: Equal, AStart: 0, AEnd: len(tt.a), BStart: 0, BEnd: len(tt.b)}}
			if !reflect.DeepEqual(ops, want) {
				t.Errorf("Diff() = %v, want %v", ops, want)
			}

			plain, err := Diff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Diff() error = %v", err)
			}
			if reflect.DeepEqual(plain, want) {
				t.Errorf("inputs compare equal without options")
			}
		})
	}
}

func TestDiff_FoxExample(t *testing.T) {
	old := []string{"The", "quick", "brown", "fox", "jumps"}
	new := []string{"A", "slow", "red", "fox", "leaps"}

	ops, err := Diff(old, new)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}

	result := applyDiff(old, new, ops)
	if !reflect.DeepEqual(result, new) {
		t.Errorf("Fox example failed: got %v, want %v", result, new)
	}

	// Check that "fox" is preserved (appears in an Equal operation)
	foxPreserved := false
	for _, op := range ops {
		if op.Type == Equal {
			for i := op.AStart; i < op.AEnd; i++ {
				if old[i] == "fox" {
					foxPreserved = true
				}
			}
		}
	}

	if !foxPreserved {
		t.Error("Expected 'fox' to be preserved in an Equal operation")
	}
}

func TestDiff_PathologicalCase(t *testing.T) {
	// All elements are the same, so every pair of positions matches
	a := make([]string, 50)
	b := make([]string, 50)

	for i := 0; i < 50; i++ {
		a[i] = "x"
		b[i] = "x"
	}
	b[25] = "y"

	for _, s := range Strategies() {
		ops, err := Diff(a, b, WithStrategy(s))
		if err != nil {
			t.Fatalf("%s: Diff() error = %v", s, err)
		}
		result := applyDiff(a, b, ops)

		if !reflect.DeepEqual(result, b) {
			t.Errorf("%s: pathological case failed: got %v, want %v", s, result, b)
		}
	}
}

func TestDiff_UnknownStrategy(t *testing.T) {
	_, err := Diff([]string{"a"}, []string{"b"}, WithStrategy(Strategy(42)))
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

// Benchmark tests
func BenchmarkDiff_Small(b *testing.B) {
	a := []string{"a", "b", "c", "d", "e"}
	bSeq := []string{"a", "x", "c", "y", "e"}

	for i := 0; i < b.N; i++ {
		Diff(a, bSeq)
	}
}

func BenchmarkDiff_Large(b *testing.B) {
	a := make([]string, 1000)
	bSeq := make([]string, 1000)

	for i := 0; i < 1000; i++ {
		a[i] = string(rune('a' + (i % 26)))
		bSeq[i] = string(rune('a' + (i % 26)))
	}
	for i := 0; i < 1000; i += 37 {
		bSeq[i] = "X"
	}

	for _, s := range Strategies() {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Diff(a, bSeq, WithStrategy(s))
			}
		})
	}
}
