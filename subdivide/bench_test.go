// SPDX-License-Identifier: MIT
package subdivide_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/subdivide"
)

func BenchmarkCatmullClark_Cube3(b *testing.B) {
	cube, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Cube))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subdivide.CatmullClarkSubdivide(cube, subdivide.WithK(3)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoop_Icosahedron2(b *testing.B) {
	ico, err := builder.BuildMesh(nil, nil, builder.PlatonicSolid(builder.Icosahedron))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subdivide.LoopSubdivide(ico, subdivide.WithK(2)); err != nil {
			b.Fatal(err)
		}
	}
}
