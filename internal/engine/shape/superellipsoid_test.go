package shape

import (
	"math"
	"testing"
)

func TestGenerateCounts(t *testing.T) {
	cases := []struct {
		stacks, slices int
	}{
		{1, 1},
		{2, 3},
		{16, 16},
		{64, 64},
	}

	p := Params{A: 1, B: 1, C: 1, N1: 1, N2: 1}
	for _, tc := range cases {
		m := Generate(p, tc.stacks, tc.slices)

		wantVerts := (tc.stacks + 1) * (tc.slices + 1)
		if len(m.Vertices) != wantVerts {
			t.Errorf("stacks=%d slices=%d: got %d vertices, want %d",
				tc.stacks, tc.slices, len(m.Vertices), wantVerts)
		}

		wantIndices := 6 * tc.stacks * tc.slices
		if len(m.Indices) != wantIndices {
			t.Errorf("stacks=%d slices=%d: got %d indices, want %d",
				tc.stacks, tc.slices, len(m.Indices), wantIndices)
		}
		if len(m.Indices)%3 != 0 {
			t.Errorf("index count %d is not a multiple of 3", len(m.Indices))
		}
	}
}

func TestGenerateIndexBounds(t *testing.T) {
	m := Generate(Params{A: 1, B: 1, C: 1, N1: 0.5, N2: 1.7}, 8, 12)

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d at position %d out of range (%d vertices)",
				idx, i, len(m.Vertices))
		}
	}
}

func TestGenerateSphereCase(t *testing.T) {
	// With a=b=c=1 and n1=n2=1 the surface is a unit UV sphere.
	// v runs from -pi, so the v=0 meridian is column slices/2 and the
	// equator/v=0 sample must land on (1,0,0).
	const stacks, slices = 16, 16
	m := Generate(Params{A: 1, B: 1, C: 1, N1: 1, N2: 1}, stacks, slices)

	// Equator row, v=0 column.
	v := m.Vertices[(stacks/2)*(slices+1)+slices/2]
	want := [3]float32{1, 0, 0}
	for k := 0; k < 3; k++ {
		if diff := math.Abs(float64(v.Position[k] - want[k])); diff > 1e-5 {
			t.Errorf("equator vertex position[%d] = %v, want %v", k, v.Position[k], want[k])
		}
	}

	// Every vertex of a unit sphere is at distance 1 from the origin.
	for i, vert := range m.Vertices {
		p := vert.Position
		r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		if math.Abs(r-1) > 1e-5 {
			t.Fatalf("vertex %d at radius %v, want 1", i, r)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	p := Params{A: 1, B: 1, C: 1, N1: 0.37, N2: 1.93}

	m1 := Generate(p, 10, 14)
	m2 := Generate(p, 10, 14)

	if len(m1.Vertices) != len(m2.Vertices) || len(m1.Indices) != len(m2.Indices) {
		t.Fatal("repeated generation changed mesh size")
	}
	for i := range m1.Vertices {
		if m1.Vertices[i] != m2.Vertices[i] {
			t.Fatalf("vertex %d differs between runs: %v vs %v", i, m1.Vertices[i], m2.Vertices[i])
		}
	}
	for i := range m1.Indices {
		if m1.Indices[i] != m2.Indices[i] {
			t.Fatalf("index %d differs between runs", i)
		}
	}
}

func TestGenerateZeroExponents(t *testing.T) {
	// n1 = n2 = 0 collapses |base|^0 to 1 everywhere (0^0 = 1 by pow
	// convention); the mesh must still be finite and well-formed.
	m := Generate(Params{A: 1, B: 1, C: 1, N1: 0, N2: 0}, 4, 4)

	for i, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			if math.IsNaN(float64(v.Position[k])) || math.IsInf(float64(v.Position[k]), 0) {
				t.Fatalf("vertex %d has non-finite position %v", i, v.Position)
			}
		}
	}
}

func TestGenerateDegenerateGrid(t *testing.T) {
	m := Generate(Params{A: 1, B: 1, C: 1, N1: 1, N2: 1}, 1, 1)
	if len(m.Vertices) != 4 {
		t.Errorf("1x1 grid: got %d vertices, want 4", len(m.Vertices))
	}
	if len(m.Indices) != 6 {
		t.Errorf("1x1 grid: got %d indices, want 6", len(m.Indices))
	}
}

func TestGenerateNormalsFinite(t *testing.T) {
	m := Generate(Params{A: 1, B: 1, C: 1, N1: 0.2, N2: 2.0}, 32, 32)

	for i, v := range m.Vertices {
		n := v.Normal
		l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.IsNaN(l) {
			t.Fatalf("vertex %d has NaN normal %v", i, n)
		}
		if math.Abs(l-1) > 1e-4 {
			t.Fatalf("vertex %d normal not unit length: %v (len %v)", i, n, l)
		}
	}
}

func TestSignedPow(t *testing.T) {
	cases := []struct {
		base, exp float32
		want      float64
	}{
		{-2, 0.5, -math.Sqrt(2)},
		{2, 0.5, math.Sqrt(2)},
		{0, 0, 1},
		{0, 1.5, 0},
		{-1, 3, -1},
		{-0.5, 2, -0.25},
	}

	for _, tc := range cases {
		got := SignedPow(tc.base, tc.exp)
		if math.IsNaN(float64(got)) {
			t.Errorf("SignedPow(%v, %v) = NaN", tc.base, tc.exp)
			continue
		}
		if math.Abs(float64(got)-tc.want) > 1e-6 {
			t.Errorf("SignedPow(%v, %v) = %v, want %v", tc.base, tc.exp, got, tc.want)
		}
	}
}
