package mdsite

import "testing"

func TestToHTMLAllocations(t *testing.T) {
	src := sampleDocument(10)
	allocs := testing.AllocsPerRun(50, func() {
		_, _ = ToHTML(src)
	})
	if allocs > 20000 {
		t.Fatalf("too many allocations per ToHTML: got %.2f", allocs)
	}
}
