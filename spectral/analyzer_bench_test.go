package spectral

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-hrv/internal/testutil"
	"github.com/cwbudde/algo-hrv/pointprocess"
)

// benchModel builds a model of the given AR order with geometrically
// decaying coefficients; the stabilizer handles any unstable estimates.
func benchModel(order int) pointprocess.Model {
	theta := make([]float64, order)
	c := 0.9
	for i := range theta {
		theta[i] = c
		c *= -0.5
	}

	return pointprocess.Model{
		Theta: theta,
		Wn:    testutil.ConstantIntervals(0.8, 128),
		K:     100,
	}
}

func BenchmarkPSD(b *testing.B) {
	orders := []int{2, 4, 8, 12}

	for _, order := range orders {
		model := benchModel(order)

		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Analyze(model); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPSD_GridSize(b *testing.B) {
	sizes := []int{512, 2048, 8192}

	for _, size := range sizes {
		model := benchModel(4)

		b.Run(fmt.Sprintf("grid=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := Analyze(model, WithGridSize(size)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
