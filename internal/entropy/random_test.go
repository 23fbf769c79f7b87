package entropy

import "testing"

func TestSeededStreamsReplay(t *testing.T) {
	a := NewSource(99)
	b := NewSource(99)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestVarianceBounds(t *testing.T) {
	s := NewSource(5)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := s.Variance(2)
		if v < -2 || v > 2 {
			t.Fatalf("variance %d outside [-2, 2]", v)
		}
		seen[v] = true
	}
	for v := -2; v <= 2; v++ {
		if !seen[v] {
			t.Fatalf("variance never produced %d over 1000 draws", v)
		}
	}
	if s.Variance(0) != 0 {
		t.Fatal("zero spread must be exact")
	}
}

func TestSuffixFormat(t *testing.T) {
	s := NewSource(7)
	for i := 0; i < 20; i++ {
		suf := s.Suffix()
		if len(suf) != 4 {
			t.Fatalf("suffix %q, want four hex digits", suf)
		}
		for _, c := range suf {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				t.Fatalf("suffix %q has non-hex character %q", suf, c)
			}
		}
	}
}
