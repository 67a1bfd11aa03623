package renderer

import (
	"strconv"
	"testing"

	"github.com/reflow-ui/reflow/pkg/vdom"
)

func benchList(n int, offset int) *vdom.VNode {
	items := make([]any, n)
	for i := 0; i < n; i++ {
		key := strconv.Itoa((i + offset) % n)
		items[i] = vdom.Li(vdom.Key(key), key)
	}
	return vdom.Ul(items...)
}

func BenchmarkMountList100(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r, _, c := newTestRenderer()
		r.Render(benchList(100, 0), c)
	}
}

func BenchmarkPatchIdenticalList100(b *testing.B) {
	r, _, c := newTestRenderer()
	r.Render(benchList(100, 0), c)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Render(benchList(100, 0), c)
	}
}

func BenchmarkPatchRotatedList100(b *testing.B) {
	r, _, c := newTestRenderer()
	r.Render(benchList(100, 0), c)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.Render(benchList(100, i%100), c)
	}
}

func BenchmarkLIS(b *testing.B) {
	source := make([]int, 512)
	for i := range source {
		source[i] = (i * 7) % 512
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		longestIncreasingSubsequence(source)
	}
}
