package trie

import "testing"

func BenchmarkInsert(b *testing.B) {
	keys := randomKeys(b.N)

	tr := Empty[uint8, int]()
	b.ResetTimer()
	for i, k := range keys {
		tr = tr.Insert(k, i)
	}
}

func BenchmarkLookup(b *testing.B) {
	keys := randomKeys(10000)

	tr := Empty[uint8, int]()
	for i, k := range keys {
		tr = tr.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tr.Lookup(keys[i%len(keys)])
	}
}

func BenchmarkDelete(b *testing.B) {
	keys := randomKeys(b.N)

	tr := Empty[uint8, int]()
	for i, k := range keys {
		tr = tr.Insert(k, i)
	}

	b.ResetTimer()
	for _, k := range keys {
		tr = tr.Delete(k)
	}
}

func BenchmarkMergeBy(b *testing.B) {
	keys := randomKeys(2000)
	half := len(keys) / 2

	t1 := Empty[uint8, int]()
	for i, k := range keys[:half] {
		t1 = t1.Insert(k, i)
	}
	t2 := Empty[uint8, int]()
	for i, k := range keys[half:] {
		t2 = t2.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = UnionR(t1, t2)
	}
}
