package match

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-ncc/internal/testutil"
)

func BenchmarkProfile(b *testing.B) {
	signal := testutil.Noise(1, 1, 8192)
	for _, m := range []int{16, 64, 256, 1024} {
		template := testutil.Noise(2, 1, m)
		for _, method := range []Method{MethodDirect, MethodFFT} {
			b.Run(fmt.Sprintf("%s/m=%d", method, m), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					_, _ = Profile(signal, template, WithMethod(method))
				}
			})
		}
	}
}
