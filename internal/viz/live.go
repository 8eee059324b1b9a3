package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qradial/internal/analysis"
	"github.com/san-kum/qradial/internal/radial"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

// Explorer is an interactive energy tuner. Every keypress that changes
// the trial energy or a potential parameter re-solves the boundary value
// problem and redraws the wavefunction, so the eigenvalue can be hunted
// by watching the tail flip sign.
type Explorer struct {
	pot    radial.Potential
	solver radial.Solver
	grid   radial.Grid
	l      int

	k2   float64
	step float64

	u        radial.Wavefunction
	solveErr error
	nodes    int
	tail     float64
	norm     float64

	tailHistory []float64

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	initialK2     float64

	canvas   *Canvas
	showHelp bool
}

// NewExplorer captures tunable potential parameters and solves once so
// the first frame already shows a wavefunction.
func NewExplorer(pot radial.Potential, solver radial.Solver, g radial.Grid, k2 float64, l int) Explorer {
	params := make(map[string]float64)
	if t, ok := pot.(radial.Tunable); ok {
		for k, v := range t.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		initialParams[k] = v
	}
	sort.Strings(keys)

	e := Explorer{
		pot:           pot,
		solver:        solver,
		grid:          g,
		l:             l,
		k2:            k2,
		step:          0.01,
		tailHistory:   make([]float64, 0, historyCapacity),
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		initialK2:     k2,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
	}
	e.resolve()
	return e
}

func (e Explorer) Init() tea.Cmd { return nil }

// Update handles key events and re-solves when the problem changed.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case "left", "h":
			e.k2 -= e.step
			e.resolve()
		case "right", "l":
			e.k2 += e.step
			e.resolve()
		case "+", "=":
			e.step *= 2
		case "-", "_":
			e.step /= 2
		case "tab":
			e.cycleParam()
		case "up", "k":
			e.adjustParam(1.05)
		case "down", "j":
			e.adjustParam(0.95)
		case "r":
			e.reset()
		case "?":
			e.showHelp = !e.showHelp
		}
	}
	return e, nil
}

func (e *Explorer) cycleParam() {
	if len(e.paramKeys) == 0 {
		return
	}
	e.selected = (e.selected + 1) % len(e.paramKeys)
}

func (e *Explorer) adjustParam(factor float64) {
	if len(e.paramKeys) == 0 {
		return
	}
	key := e.paramKeys[e.selected]
	newVal := e.params[key] * factor
	t, ok := e.pot.(radial.Tunable)
	if !ok {
		return
	}
	if err := t.SetParam(key, newVal); err != nil {
		return
	}
	e.params[key] = newVal
	e.resolve()
}

func (e *Explorer) reset() {
	e.k2 = e.initialK2
	e.step = 0.01
	if t, ok := e.pot.(radial.Tunable); ok {
		for k, v := range e.initialParams {
			t.SetParam(k, v)
			e.params[k] = v
		}
	}
	e.tailHistory = e.tailHistory[:0]
	e.resolve()
}

// resolve recomputes the wavefunction and its readouts.
func (e *Explorer) resolve() {
	u, err := e.solver.Solve(e.pot, e.grid, e.k2, e.l)
	e.u, e.solveErr = u, err
	if err != nil {
		return
	}

	e.nodes = analysis.CountNodes(u)
	e.tail = analysis.Tail(u)
	e.norm = analysis.Norm(u, e.grid.Step)

	e.tailHistory = append(e.tailHistory, math.Asinh(e.tail))
	if len(e.tailHistory) > historyCapacity {
		e.tailHistory = e.tailHistory[1:]
	}
}

// View renders the wavefunction canvas beside the readout panel.
func (e Explorer) View() string {
	e.canvas.Clear()
	if e.solveErr == nil {
		drawWavefunction(e.canvas, e.grid, e.u)
	}
	canvasView := canvasStyle.Render(e.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(e.pot.Name())) + "\n")
	if e.solveErr != nil {
		s.WriteString(unstableStyle.Render("UNSTABLE") + "\n")
		s.WriteString(valueStyle.Render(e.solveErr.Error()) + "\n\n")
	} else {
		s.WriteString(fmt.Sprintf("method: %s\n\n", e.solver.Name()))
	}

	if len(e.tailHistory) > 1 {
		chart := asciigraph.Plot(e.tailHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("asinh(tail)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("k2") + valueStyle.Render(fmt.Sprintf("%.6f", e.k2)) + "\n")
	s.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%.6f", e.step)) + "\n")
	s.WriteString(labelStyle.Render("l") + valueStyle.Render(fmt.Sprintf("%d", e.l)) + "\n")
	if e.solveErr == nil {
		s.WriteString(labelStyle.Render("nodes") + valueStyle.Render(fmt.Sprintf("%d", e.nodes)) + "\n")
		s.WriteString(labelStyle.Render("tail") + valueStyle.Render(fmt.Sprintf("%.4g", e.tail)) + "\n")
		s.WriteString(labelStyle.Render("norm") + valueStyle.Render(fmt.Sprintf("%.4g", e.norm)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(e.paramKeys) > 0 {
		for i, k := range e.paramKeys {
			line := paramBar(k, e.params[k], e.initialParams[k])
			if i == e.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nH/L:Tune k2  +/-:Step size\nTab:Param  ↑↓:Adjust  R:Reset\nQ:Quit  ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if e.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Left/H   - Lower trial energy       ║
║  Right/L  - Raise trial energy       ║
║  + / -    - Double/halve energy step ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  R        - Reset energy and params  ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func drawWavefunction(c *Canvas, g radial.Grid, u radial.Wavefunction) {
	ymin, ymax := bounds(u)
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	pad := 0.05 * (ymax - ymin)
	ymin -= pad
	ymax += pad
	c.HLine(0, ymin, ymax)
	c.DrawCurve(g.Points, u, g.Rmin(), g.Rmax(), ymin, ymax)
}

// RunExplorer starts the interactive explorer in the alternate screen.
func RunExplorer(pot radial.Potential, solver radial.Solver, g radial.Grid, k2 float64, l int) error {
	p := tea.NewProgram(NewExplorer(pot, solver, g, k2, l), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
