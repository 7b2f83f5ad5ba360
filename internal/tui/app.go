package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/cresas/fiziksim2/internal/config"
	"github.com/cresas/fiziksim2/internal/history"
	"github.com/cresas/fiziksim2/internal/sim"
	"github.com/cresas/fiziksim2/internal/viz"
)

const (
	// tickInterval is the wall-clock cadence of the simulation timer; one
	// tick advances simulated time by sim.Step, so the fall plays out in
	// real time.
	tickInterval = 100 * time.Millisecond

	canvasCols = 40
	canvasRows = 30

	sparkCapacity = 120
)

// Tick messages are stamped with the run generation that scheduled them.
// Start and reset bump the generation, so a tick already in flight when its
// run was torn down arrives with a stale stamp and is dropped instead of
// advancing (and rescheduling against) the next run.
type simTickMsg struct{ gen int }
type bounceTickMsg struct{ gen int }

// parameter indices in selector order
const (
	paramVelocity = iota
	paramHeight
	paramMass
	paramPlanet
	paramGravity
	paramCount
)

var paramNames = [paramCount]string{"velocity", "height", "mass", "planet", "gravity"}

// Model is the interactive free-fall application state. One instance owns
// the driver, the history store, both pagination cursors and the scene.
type Model struct {
	cfg    *config.Config
	driver *sim.Driver
	store  *history.Store
	scene  *viz.Scene

	ballY  float64
	bounce *sim.Bounce

	inlineCursor history.Cursor
	modalCursor  history.Cursor
	showModal    bool

	paramCursor int
	editing     bool
	editBuf     string

	// gen is the current run generation; see the tick message types.
	gen int

	heights []float64
	status  string

	width, height int
}

func NewModel(cfg *config.Config) Model {
	store := history.NewStore()
	scene := viz.NewScene(canvasCols, canvasRows)
	driver := sim.NewDriver(cfg.Params(), store)

	return Model{
		cfg:          cfg,
		driver:       driver,
		store:        store,
		scene:        scene,
		ballY:        scene.BallY(cfg.InitialHeight, cfg.InitialHeight),
		inlineCursor: history.NewCursor(),
		modalCursor:  history.NewCursor(),
		heights:      make([]float64, 0, sparkCapacity),
	}
}

// Run launches the interactive application.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}

// Init starts no timer: the simulation timer only exists while a run is
// active, so quitting from Idle leaves nothing to cancel.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) simTickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return simTickMsg{gen: gen} })
}

func (m Model) bounceTickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(sim.BounceInterval, func(time.Time) tea.Msg { return bounceTickMsg{gen: gen} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case simTickMsg:
		return m.handleSimTick(msg)
	case bounceTickMsg:
		return m.handleBounceTick(msg)
	}
	return m, nil
}

// handleSimTick advances one step. A tick from a torn-down run (stale
// generation) or one arriving after the driver stopped is dropped without
// rescheduling, which is how a repeating timer chain gets released.
func (m Model) handleSimTick(msg simTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.driver.Phase() != sim.Running {
		return m, nil
	}

	m.driver.Tick()
	st := m.driver.State()

	m.ballY = m.scene.BallY(st.Height, m.driver.Params().InitialHeight)
	m.scene.Track(m.ballY)

	if len(m.heights) >= sparkCapacity {
		m.heights = m.heights[1:]
	}
	m.heights = append(m.heights, st.Height)

	if m.driver.Phase() == sim.Stopped {
		m.bounce = sim.NewBounce()
		return m, m.bounceTickCmd()
	}
	return m, m.simTickCmd()
}

// handleBounceTick plays the post-impact frames. Reset discards m.bounce and
// bumps the generation, so a stale bounce timer dies here either way.
func (m Model) handleBounceTick(msg bounceTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.bounce == nil {
		return m, nil
	}

	off, ok := m.bounce.Next()
	if !ok {
		m.bounce = nil
		m.ballY = m.scene.RestY(0)
		return m, nil
	}

	m.ballY = m.scene.RestY(off)
	if m.bounce.Done() {
		m.bounce = nil
		return m, nil
	}
	return m, m.bounceTickCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showModal {
		return m.handleModalKey(key)
	}

	if m.editing {
		return m.handleEditKey(key)
	}

	switch key {
	case " ", "s":
		return m.start()
	case "r":
		m.reset()
	case "e":
		m.export()
	case "d":
		m.showModal = true
	case "[", "left", "pgup":
		m.inlineCursor.Prev()
	case "]", "right", "pgdown":
		m.inlineCursor.Next(m.store.TotalPages(m.cfg.PageSize))
	case "up", "k":
		if m.driver.Phase() != sim.Running && m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.driver.Phase() != sim.Running && m.paramCursor < paramCount-1 {
			m.paramCursor++
		}
	case "enter":
		if m.driver.Phase() == sim.Running {
			break
		}
		if m.paramCursor == paramPlanet {
			m.cyclePlanet()
		} else {
			m.editing = true
			m.editBuf = ""
		}
	}
	return m, nil
}

func (m Model) handleModalKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "d", "esc":
		m.showModal = false
	case "[", "left", "pgup":
		m.modalCursor.Prev()
	case "]", "right", "pgdown":
		m.modalCursor.Next(m.store.TotalPages(m.cfg.PageSize))
	}
	return m, nil
}

func (m Model) handleEditKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "enter":
		m.commitEdit()
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key == "." || key == "-") {
			m.editBuf += key
		}
	}
	return m, nil
}

// commitEdit parses the buffer, clamps at the edit boundary and applies the
// new initial conditions.
func (m *Model) commitEdit() {
	defer func() {
		m.editing = false
		m.editBuf = ""
	}()

	v, err := strconv.ParseFloat(m.editBuf, 64)
	if err != nil {
		return
	}

	switch m.paramCursor {
	case paramVelocity:
		m.cfg.InitialVelocity = v
	case paramHeight:
		m.cfg.InitialHeight = v
	case paramMass:
		m.cfg.Mass = v
	case paramGravity:
		m.cfg.Gravity = v
		m.cfg.Planet = config.CustomPlanet
	}
	m.cfg.Clamp()
	m.applyParams()
}

func (m *Model) cyclePlanet() {
	planets := config.Planets()
	next := 0
	for i, p := range planets {
		if p.Name == m.cfg.Planet {
			next = (i + 1) % len(planets)
			break
		}
	}
	m.cfg.Planet = planets[next].Name
	m.applyParams()
}

func (m *Model) applyParams() {
	m.driver.SetParams(m.cfg.Params())
	m.resetView()
}

func (m Model) start() (tea.Model, tea.Cmd) {
	// no-op while a run is active
	if !m.driver.Start() {
		return m, nil
	}
	m.resetView()
	m.status = ""
	return m, m.simTickCmd()
}

func (m *Model) reset() {
	m.driver.Reset()
	m.resetView()
	m.status = ""
}

// resetView clears everything derived from a run: trail, sparkline, bounce
// and both pagination cursors. Bumping the generation invalidates any tick
// still in flight from the previous run.
func (m *Model) resetView() {
	m.gen++
	m.scene.ResetTrail()
	m.heights = m.heights[:0]
	m.bounce = nil
	m.ballY = m.scene.BallY(m.driver.State().Height, m.driver.Params().InitialHeight)
	m.inlineCursor.Reset()
	m.modalCursor.Reset()
}

func (m *Model) export() {
	if m.store.Len() == 0 {
		m.status = "no data to export"
		return
	}
	if err := m.store.ExportFile(history.Filename); err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved %s (%d rows)", history.Filename, m.store.Len())
}

func (m Model) View() string {
	if m.showModal {
		return m.modalView()
	}

	canvasView := viz.CanvasStyle.Render(m.scene.Render(m.ballY))
	statsView := viz.StatsStyle.Render(m.statsView())
	top := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	table := renderTable(m.store, &m.inlineCursor, m.cfg.PageSize, "data log")

	return top + "\n" + table
}

func (m Model) statsView() string {
	var b strings.Builder

	b.WriteString(viz.HeaderStyle.Render("FREE FALL") + "\n")
	b.WriteString(m.statusLine() + "\n\n")

	st := m.driver.State()
	b.WriteString(viz.LabelStyle.Render("Time") + viz.ValueStyle.Render(fmt.Sprintf("%.2f s", st.Time)) + "\n")
	b.WriteString(viz.LabelStyle.Render("Height") + viz.ValueStyle.Render(fmt.Sprintf("%.2f m", st.Height)) + "\n")
	b.WriteString(viz.LabelStyle.Render("Velocity") + viz.ValueStyle.Render(fmt.Sprintf("%.2f m/s", st.Velocity)) + "\n")
	b.WriteString(viz.LabelStyle.Render("Displacement") + viz.ValueStyle.Render(fmt.Sprintf("%.2f m", st.Displacement)) + "\n")

	if len(m.heights) > 1 {
		chart := asciigraph.Plot(m.heights,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("height"),
		)
		b.WriteString("\n" + viz.GraphStyle.Render(chart) + "\n")
	}

	b.WriteString("\nPARAMETERS\n")
	b.WriteString(m.paramsView())

	if m.status != "" {
		b.WriteString("\n" + viz.StatusStopped.Render(m.status) + "\n")
	}

	b.WriteString(viz.HelpStyle.Render("SP:Start R:Reset E:Export D:Data\n[ ]:Page ↑↓:Select ⏎:Edit Q:Quit"))
	return b.String()
}

func (m Model) statusLine() string {
	switch m.driver.Phase() {
	case sim.Running:
		return viz.StatusRunning.Render("RUNNING")
	case sim.Stopped:
		if m.bounce != nil {
			return viz.StatusStopped.Render("IMPACT")
		}
		return viz.StatusStopped.Render("STOPPED")
	default:
		return viz.StatusIdle.Render("READY")
	}
}

func (m Model) paramsView() string {
	running := m.driver.Phase() == sim.Running

	values := [paramCount]string{
		fmt.Sprintf("%.2f m/s", m.cfg.InitialVelocity),
		fmt.Sprintf("%.2f m", m.cfg.InitialHeight),
		fmt.Sprintf("%.2f kg", m.cfg.Mass),
		m.cfg.Planet,
		fmt.Sprintf("%.2f m/s²", m.cfg.EffectiveGravity()),
	}

	var b strings.Builder
	for i := 0; i < paramCount; i++ {
		line := fmt.Sprintf("%-9s %s", paramNames[i], values[i])
		switch {
		case running:
			b.WriteString("  " + viz.LabelStyle.Render(line) + "\n")
		case m.editing && i == m.paramCursor:
			b.WriteString(viz.EditStyle.Render("> "+paramNames[i]+" "+m.editBuf+"_") + "\n")
		case i == m.paramCursor:
			b.WriteString(viz.ActiveStyle.Render("> "+line) + "\n")
		default:
			b.WriteString("  " + viz.LabelStyle.Render(line) + "\n")
		}
	}
	if running {
		b.WriteString(viz.PagerStyle.Render("  (locked while running)") + "\n")
	}
	return b.String()
}

func (m Model) modalView() string {
	table := renderTable(m.store, &m.modalCursor, m.cfg.PageSize, "data log (all records)")
	help := viz.HelpStyle.Render("[ ]:Page D/Esc:Close Q:Quit")
	modal := viz.ModalStyle.Render(table + "\n" + help)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return modal
}
