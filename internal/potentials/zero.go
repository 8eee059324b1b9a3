package potentials

// Zero is the free particle, W(r) = 0 everywhere. Useful as the reference
// for phase shifts and for exercising solvers against sin(kr).
type Zero struct{}

func NewZero() *Zero { return &Zero{} }

func (Zero) Name() string               { return "zero" }
func (Zero) Evaluate(r float64) float64 { return 0 }

func (Zero) EvaluateAll(r, w []float64) {
	for i := range w {
		w[i] = 0
	}
}
