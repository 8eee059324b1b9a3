package shoot_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qradial/internal/integrators"
	"github.com/san-kum/qradial/internal/potentials"
	"github.com/san-kum/qradial/internal/radial"
	"github.com/san-kum/qradial/internal/shoot"
)

var _ = Describe("Scanner", func() {
	var (
		sc   shoot.Scanner
		well *potentials.SquareWell
		g    radial.Grid
	)

	BeforeEach(func() {
		sc = shoot.Scanner{Workers: 4}
		well = potentials.NewSquareWell()
		var err error
		g, err = radial.NewGrid(0, 10, 1001)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("scanning the default square well", func() {
		It("keeps every trial energy usable", func() {
			samples, err := sc.Scan(context.Background(), well, g, 0, -3.9, -0.01, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen(40))
			for _, s := range samples {
				Expect(s.Err).NotTo(HaveOccurred())
			}
		})

		It("brackets exactly one bound state", func() {
			samples, err := sc.Scan(context.Background(), well, g, 0, -3.9, -0.01, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(shoot.Brackets(samples)).To(HaveLen(1))
		})

		It("does not depend on the worker count", func() {
			single := shoot.Scanner{Workers: 1}
			many := shoot.Scanner{Workers: 8}
			a, err := single.Scan(context.Background(), well, g, 0, -3, -0.1, 50)
			Expect(err).NotTo(HaveOccurred())
			b, err := many.Scan(context.Background(), well, g, 0, -3, -0.1, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(Equal(a))
		})
	})

	Describe("refining a bracket", func() {
		It("converges to the analytic eigenvalue", func() {
			states, err := sc.FindBound(context.Background(), well, g, 0, -3.9, -0.01, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(states).To(HaveLen(1))
			Expect(states[0].K2).To(BeNumerically("~", -0.407, 0.01))
			Expect(states[0].Nodes).To(Equal(0))
			Expect(states[0].U).To(HaveLen(g.Len()))
		})

		It("honors the matching condition at the well edge", func() {
			states, err := sc.FindBound(context.Background(), well, g, 0, -3.9, -0.01, 40)
			Expect(err).NotTo(HaveOccurred())
			ki := math.Sqrt(well.Depth + states[0].K2)
			ko := math.Sqrt(-states[0].K2)
			Expect(ki/math.Tan(ki*well.Range) + ko).To(BeNumerically("~", 0, 0.01))
		})

		It("refines with the central-difference solver too", func() {
			slow := shoot.Scanner{NewSolver: func() radial.Solver { return integrators.NewCentralDiff() }}
			states, err := slow.FindBound(context.Background(), well, g, 0, -3.9, -0.01, 40)
			Expect(err).NotTo(HaveOccurred())
			Expect(states).To(HaveLen(1))
			Expect(states[0].K2).To(BeNumerically("~", -0.407, 0.05))
		})
	})

	Context("with a cancelled context", func() {
		It("abandons the scan", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := sc.Scan(ctx, well, g, 0, -3, -0.1, 100)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
