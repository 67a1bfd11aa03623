package renderer

import "testing"

func isStrictlyIncreasing(source []int, seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] >= seq[i] || source[seq[i-1]] >= source[seq[i]] {
			return false
		}
	}
	return true
}

func TestLISBasic(t *testing.T) {
	tests := []struct {
		name    string
		source  []int
		wantLen int
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 1},
		{"increasing", []int{1, 2, 3, 4}, 4},
		{"decreasing", []int{4, 3, 2, 1}, 1},
		{"mixed", []int{2, 1, 5, 3, 6, 4, 8, 9, 7}, 5},
		{"swap", []int{1, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := longestIncreasingSubsequence(tt.source)
			if len(seq) != tt.wantLen {
				t.Fatalf("len = %d, want %d (seq %v)", len(seq), tt.wantLen, seq)
			}
			if !isStrictlyIncreasing(tt.source, seq) {
				t.Errorf("seq %v is not strictly increasing over %v", seq, tt.source)
			}
		})
	}
}

func TestLISSkipsHoles(t *testing.T) {
	// -1 entries are holes: they mark freshly mounted children and can
	// never be part of the stable subsequence.
	source := []int{-1, 2, -1, 3, -1}
	seq := longestIncreasingSubsequence(source)

	if len(seq) != 2 {
		t.Fatalf("len = %d, want 2 (seq %v)", len(seq), seq)
	}
	for _, idx := range seq {
		if source[idx] == -1 {
			t.Errorf("seq %v includes hole at %d", seq, idx)
		}
	}
}

func TestLISZeroIsValidSource(t *testing.T) {
	// Old index 0 must be usable; only -1 is the hole sentinel.
	source := []int{0, 1, 2}
	seq := longestIncreasingSubsequence(source)
	if len(seq) != 3 {
		t.Errorf("len = %d, want 3 (seq %v)", len(seq), seq)
	}
}

func TestLISAllHoles(t *testing.T) {
	if seq := longestIncreasingSubsequence([]int{-1, -1}); seq != nil {
		t.Errorf("seq = %v, want nil", seq)
	}
}

func TestLISIndicesAreIntoSource(t *testing.T) {
	source := []int{10, 30, 20, 40}
	seq := longestIncreasingSubsequence(source)

	if len(seq) != 3 {
		t.Fatalf("len = %d, want 3 (seq %v)", len(seq), seq)
	}
	// One valid answer: indices {0,2,3} (values 10,20,40).
	want := []int{0, 2, 3}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq = %v, want %v", seq, want)
			break
		}
	}
}
