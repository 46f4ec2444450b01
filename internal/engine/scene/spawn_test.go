package scene

import (
	"testing"

	"github.com/softbody-labs/morphview/pkg/math"
)

func TestSpawnRegistryOrder(t *testing.T) {
	r := NewSpawnRegistry()

	p1 := math.Vec3{X: 1, Y: 2, Z: 3}
	p2 := math.Vec3{X: -4, Y: 0, Z: 7}
	r.Record(p1)
	r.Record(p2)

	got := r.Placements()
	if len(got) != 2 {
		t.Fatalf("got %d placements, want 2", len(got))
	}
	if got[0].Position != p1 || got[1].Position != p2 {
		t.Errorf("placements = %v, want [%v, %v] in insertion order", got, p1, p2)
	}
}

func TestSpawnRegistryGrowsUnconditionally(t *testing.T) {
	r := NewSpawnRegistry()

	// Duplicates are not filtered; length after N records is exactly N.
	p := math.Vec3{X: 1, Y: 1, Z: 1}
	const n = 50
	for i := 0; i < n; i++ {
		r.Record(p)
	}

	if r.Len() != n {
		t.Errorf("registry length = %d after %d records, want %d", r.Len(), n, n)
	}
}
