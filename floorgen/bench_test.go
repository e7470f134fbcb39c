package floorgen_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/floorplan/floorgen"
)

func BenchmarkGenerate(b *testing.B) {
	for _, size := range []int{16, 128, 1024} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := floorgen.Generate(size, 0.5, rand.New(rand.NewSource(int64(i)))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
