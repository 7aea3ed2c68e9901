package pipe_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pipeflow/internal/pipe"
)

var _ = Describe("Bend", func() {
	var (
		grid     *pipe.Grid
		straight *pipe.Cloud
	)

	BeforeEach(func() {
		grid = pipe.NewGrid(11, 8)
		straight = pipe.Straight(grid, 2, 30)
	})

	It("is the identity at the inlet", func() {
		bent := pipe.Bend(straight, grid.T, math.Pi/1.33)
		for i := 0; i < 8; i++ {
			Expect(bent.X.At(i, 0)).To(Equal(straight.X.At(i, 0)))
			Expect(bent.Z.At(i, 0)).To(Equal(straight.Z.At(i, 0)))
		}
	})

	It("applies the full angle at the outlet", func() {
		angle := math.Pi / 3
		bent := pipe.Bend(straight, grid.T, angle)
		for i := 0; i < 8; i++ {
			x, _, z := straight.Point(i, 10)
			Expect(bent.X.At(i, 10)).To(BeNumerically("~", x*math.Cos(angle)+z*math.Sin(angle), 1e-12))
			Expect(bent.Z.At(i, 10)).To(BeNumerically("~", -x*math.Sin(angle)+z*math.Cos(angle), 1e-12))
		}
	})

	It("turns the centerline by the local bend fraction", func() {
		angle := math.Pi / 2
		bent := pipe.Bend(straight, grid.T, angle)
		for j := 1; j <= 10; j++ {
			// rows 0..6 are evenly spaced around the circle; row 7 repeats row 0
			var cx, cz float64
			for i := 0; i < 7; i++ {
				cx += bent.X.At(i, j) / 7
				cz += bent.Z.At(i, j) / 7
			}
			Expect(math.Atan2(cx, cz)).To(BeNumerically("~", grid.T.At(0, j)*angle, 1e-9))
		}
	})

	It("does not touch its input", func() {
		before := pipe.Straight(grid, 2, 30)
		pipe.Bend(straight, grid.T, 1)
		Expect(straight.X.RawMatrix().Data).To(Equal(before.X.RawMatrix().Data))
		Expect(straight.Z.RawMatrix().Data).To(Equal(before.Z.RawMatrix().Data))
	})
})

var _ = Describe("Synthesize", func() {
	Context("with the default parameters", func() {
		var scene *pipe.Scene

		BeforeEach(func() {
			var err error
			scene, err = pipe.Synthesize(pipe.DefaultParams())
			Expect(err).NotTo(HaveOccurred())
		})

		It("shapes every array as radius points by length points", func() {
			r, c := scene.Dims()
			Expect(r).To(Equal(20))
			Expect(c).To(Equal(300))
			r, c = scene.Velocity.Dims()
			Expect([]int{r, c}).To(Equal([]int{20, 300}))
		})

		It("drops pressure from inlet to outlet", func() {
			profile := scene.PressureProfile()
			Expect(profile[0]).To(Equal(100.0))
			Expect(profile[len(profile)-1]).To(Equal(10.0))
		})

		It("peaks velocity at the center and stalls at the wall", func() {
			profile := scene.VelocityProfile()
			Expect(profile[0]).To(Equal(1.0))
			Expect(profile[len(profile)-1]).To(BeZero())
		})
	})

	It("rejects a degenerate mesh", func() {
		p := pipe.DefaultParams()
		p.LengthPoints = 1
		_, err := pipe.Synthesize(p)
		Expect(err).To(MatchError(pipe.ErrInvalidParams))
	})
})
