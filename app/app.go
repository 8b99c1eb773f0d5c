package app

import (
	"context"
	"fmt"
	"time"

	"tvfov/fov"
	"tvfov/inspect"
	"tvfov/keys"
	"tvfov/log"
	"tvfov/report"
	"tvfov/ui"
	"tvfov/ui/layout"
	"tvfov/ui/overlay"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// keyupDelay is how long a pressed key stays underlined in the menu.
	keyupDelay = 500 * time.Millisecond
	// errDelay is how long a message stays in the error box.
	errDelay = 3 * time.Second
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, setup fov.ViewingSetup) error {
	p := tea.NewProgram(
		newHome(ctx, setup),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateEdit is the state when the user is typing a value for the focused control.
	stateEdit
	// stateUnit is the state when the unit selector is displayed.
	stateUnit
	// stateHelp is the state when the guide overlay is displayed.
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateEdit:
		return "edit"
	case stateUnit:
		return "unit"
	case stateHelp:
		return "help"
	default:
		return "default"
	}
}

// control is one of the two adjustable inputs.
type control int

const (
	controlDistance control = iota
	controlDiagonal
	numControls
)

func (c control) String() string {
	if c == controlDiagonal {
		return "diagonal"
	}
	return "distance"
}

type home struct {
	ctx context.Context

	// -- State --

	state state
	focus control

	// setup is the complete calculator input. result is recomputed from it
	// after every change.
	setup  fov.ViewingSetup
	result fov.Result

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// -- UI Components --

	distanceSlider *ui.Slider
	diagonalSlider *ui.Slider
	readout        *ui.Readout
	cone           *ui.Cone
	guide          *ui.Guide
	menu           *ui.Menu
	errBox         *ui.ErrBox

	// textInputOverlay handles numeric entry for the focused control
	textInputOverlay *overlay.TextInputOverlay
	// unitOverlay picks the distance unit
	unitOverlay *overlay.UnitSelectorOverlay
	// textOverlay displays the guide
	textOverlay *overlay.TextOverlay

	// copyText writes to the system clipboard. Tests replace it.
	copyText func(string) error
}

func newHome(ctx context.Context, setup fov.ViewingSetup) *home {
	h := &home{
		ctx:            ctx,
		state:          stateDefault,
		focus:          controlDistance,
		setup:          setup,
		distanceSlider: ui.NewSlider("Viewing Distance", fov.RangeFor(setup.Unit)),
		diagonalSlider: ui.NewSlider("Screen Diagonal", fov.DiagonalRange),
		readout:        ui.NewReadout(),
		cone:           ui.NewCone(),
		guide:          ui.NewGuide(),
		menu:           ui.NewMenu(),
		errBox:         ui.NewErrBox(),
		copyText:       clipboard.WriteAll,
	}
	h.diagonalSlider.SetUnit("inches")
	h.recompute()
	return h
}

// recompute derives the result from the current inputs and pushes both into
// every component.
func (m *home) recompute() {
	m.result = fov.Compute(m.setup)

	m.distanceSlider.SetRange(fov.RangeFor(m.setup.Unit))
	m.distanceSlider.SetUnit(m.setup.Unit.Abbrev())
	m.distanceSlider.SetValue(m.setup.Distance)
	m.distanceSlider.SetFocused(m.focus == controlDistance)
	m.diagonalSlider.SetValue(m.setup.DiagonalInches)
	m.diagonalSlider.SetFocused(m.focus == controlDiagonal)

	m.readout.SetResult(m.result)
	m.cone.SetState(m.setup, m.result)
	m.guide.SetState(m.setup, m.result)

	log.InputTrace("distance=%g %s diagonal=%g -> hfov=%.3f vfov=%.3f",
		m.setup.Distance, m.setup.Unit.Abbrev(), m.setup.DiagonalInches,
		m.result.HorizontalFOV, m.result.VerticalFOV)
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height)
	m.degradation = layout.ComputeDegradation(m.constraints)
	c, d := m.constraints, m.degradation

	log.LayoutTrace("resize %dx%d mode=%s column=%d sideBySide=%v",
		msg.Width, msg.Height, c.Mode, c.ColumnWidth, c.SideBySide)

	m.distanceSlider.SetWidth(c.SliderWidth)
	m.distanceSlider.SetCompact(d.CompactSliders)
	m.diagonalSlider.SetWidth(c.SliderWidth)
	m.diagonalSlider.SetCompact(d.CompactSliders)
	m.readout.SetWidth(c.ColumnWidth)
	m.cone.SetSize(c.ColumnWidth, c.ConeHeight)
	m.guide.SetWidth(c.ColumnWidth)
	m.menu.SetSize(c.MenuWidth, c.MenuHeight)
	m.errBox.SetSize(c.ErrBoxWidth, c.ErrBoxHeight)

	m.setOverlayWidths()
}

func (m *home) setOverlayWidths() {
	if m.textInputOverlay != nil {
		m.textInputOverlay.SetWidth(layout.ComputeOverlayWidth(m.width, 40))
	}
	if m.unitOverlay != nil {
		m.unitOverlay.SetWidth(layout.ComputeOverlayWidth(m.width, 44))
	}
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(layout.ComputeOverlayWidth(m.width, layout.OverlayMaxWidth))
	}
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(msg tea.KeyMsg) tea.Cmd {
	if m.state != stateDefault {
		return nil
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil
	}
	// Up and down share the tab entry in the menu.
	if name == keys.KeyUp || name == keys.KeyDown {
		name = keys.KeyTab
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	switch m.state {
	case stateEdit:
		return m.handleEditState(msg)
	case stateUnit:
		return m.handleUnitState(msg)
	case stateHelp:
		return m.handleHelpState(msg)
	}

	highlightCmd := m.handleMenuHighlighting(msg)

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	log.InputTrace("key %q -> %d", msg.String(), name)

	var actionCmd tea.Cmd
	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyUp:
		m.moveFocus(-1)
	case keys.KeyDown, keys.KeyTab:
		m.moveFocus(1)
	case keys.KeyLeft:
		m.adjust(-1)
	case keys.KeyRight:
		m.adjust(1)
	case keys.KeyBigLeft:
		m.adjust(-10)
	case keys.KeyBigRight:
		m.adjust(10)
	case keys.KeyFeet:
		m.setUnit(fov.Feet)
	case keys.KeyCentimeters:
		m.setUnit(fov.Centimeters)
	case keys.KeyEdit:
		m.openEdit()
	case keys.KeyUnit:
		m.unitOverlay = overlay.NewUnitSelectorOverlay(m.setup.Unit)
		m.state = stateUnit
		m.menu.SetState(ui.StateOverlay)
		m.setOverlayWidths()
	case keys.KeyHelp:
		m.textOverlay = overlay.NewTextOverlay("FOV Reference Guide", helpText(m.setup, m.result))
		m.state = stateHelp
		m.menu.SetState(ui.StateOverlay)
		m.setOverlayWidths()
	case keys.KeyCopy:
		actionCmd = m.copySummary()
	}
	return m, tea.Batch(highlightCmd, actionCmd)
}

func (m *home) moveFocus(delta int) {
	m.focus = control((int(m.focus) + delta + int(numControls)) % int(numControls))
	m.distanceSlider.SetFocused(m.focus == controlDistance)
	m.diagonalSlider.SetFocused(m.focus == controlDiagonal)
}

// adjust moves the focused control by steps, clamped to its range.
func (m *home) adjust(steps int) {
	switch m.focus {
	case controlDistance:
		m.setup.Distance = fov.RangeFor(m.setup.Unit).Increment(m.setup.Distance, steps)
	case controlDiagonal:
		m.setup.DiagonalInches = fov.DiagonalRange.Increment(m.setup.DiagonalInches, steps)
	}
	m.recompute()
}

// setUnit switches the distance unit, converting with the toggle rounding.
func (m *home) setUnit(unit fov.Unit) {
	if unit == m.setup.Unit {
		return
	}
	m.setup.Distance = fov.ConvertDistance(m.setup.Distance, m.setup.Unit, unit)
	m.setup.Unit = unit
	m.recompute()
}

func (m *home) openEdit() {
	var title, value string
	var rng fov.Range
	switch m.focus {
	case controlDiagonal:
		rng = fov.DiagonalRange
		title = "Screen Diagonal (inches)"
		value = ui.FormatValue(m.setup.DiagonalInches, rng.Step)
	default:
		rng = fov.RangeFor(m.setup.Unit)
		title = fmt.Sprintf("Viewing Distance (%s)", m.setup.Unit.Abbrev())
		value = ui.FormatValue(m.setup.Distance, rng.Step)
	}

	m.textInputOverlay = overlay.NewTextInputOverlay(title, value)
	m.textInputOverlay.SetHint(fmt.Sprintf("Slider range %s – %s",
		ui.FormatValue(rng.Min, rng.Step), ui.FormatValue(rng.Max, rng.Step)))
	m.state = stateEdit
	m.menu.SetState(ui.StateEdit)
	m.setOverlayWidths()
}

func (m *home) handleEditState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.textInputOverlay.HandleKeyPress(msg) {
		return m, nil
	}

	if m.textInputOverlay.IsSubmitted() {
		// Typed values are taken as is. Zero and negatives reach the
		// calculator, which reports them as MaxFOV. The diagonal is whole inches.
		value := m.textInputOverlay.GetValue()
		switch m.focus {
		case controlDiagonal:
			m.setup.DiagonalInches = fov.ParseWholeNumber(value)
		default:
			m.setup.Distance = fov.ParseNumber(value)
		}
		m.recompute()
	}

	m.textInputOverlay = nil
	m.closeOverlay()
	if err := m.setup.Validate(); err != nil {
		return m, m.handleError(err)
	}
	return m, nil
}

func (m *home) handleUnitState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.unitOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	if m.unitOverlay.Confirmed() {
		m.setUnit(m.unitOverlay.GetSelected())
	}
	m.unitOverlay = nil
	m.closeOverlay()
	return m, nil
}

func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.textOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	m.textOverlay = nil
	m.closeOverlay()
	return m, nil
}

func (m *home) closeOverlay() {
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)
}

// copySummary puts a one-line description of the setup on the clipboard.
func (m *home) copySummary() tea.Cmd {
	summary := report.Summary(report.New(m.setup))
	if err := m.copyText(summary); err != nil {
		return m.handleError(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	log.InfoLog.Printf("copied summary: %s", summary)
	m.errBox.SetInfo("copied summary to clipboard")
	return m.hideErrAfter()
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after keyupDelay.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(keyupDelay):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// handleError handles all errors which get bubbled up to the app. It sets the
// error message and returns a command that clears it after errDelay.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter()
}

func (m *home) hideErrAfter() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(errDelay):
		}

		return hideErrMsg{}
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
	subtitleStyle = lipgloss.NewStyle().Foreground(ui.TextMuted)
	warningStyle  = lipgloss.NewStyle().Bold(true).Foreground(ui.ErrorColor)
)

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()
	defer log.GetProfiler().StartRender("View")()

	var view string
	if m.constraints.ShowMinWarning {
		view = m.minSizeWarning()
	} else {
		view = m.mainView()
		switch m.state {
		case stateEdit:
			view = overlay.PlaceOverlay(m.width, m.height, m.textInputOverlay.Render())
		case stateUnit:
			view = overlay.PlaceOverlay(m.width, m.height, m.unitOverlay.Render())
		case stateHelp:
			view = overlay.PlaceOverlay(m.width, m.height, m.textOverlay.Render())
		}
	}

	m.writeSnapshot()
	return view
}

func (m *home) minSizeWarning() string {
	msg := warningStyle.Render(fmt.Sprintf("Terminal too small (%dx%d)", m.width, m.height)) + "\n" +
		subtitleStyle.Render(fmt.Sprintf("Need at least %dx%d", layout.MinWidth, layout.MinHeight))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m *home) header() string {
	lines := []string{titleStyle.Render("TV Field of View Calculator")}
	if !m.degradation.HideSubtitle {
		lines = append(lines, subtitleStyle.Render("Find your ideal viewing distance"))
	}
	style := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	if !m.degradation.HideHeaderGap {
		style = style.PaddingBottom(1)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// controls is the card with both sliders and the screen dimensions.
func (m *home) controls() string {
	done := log.GetProfiler().StartRender("Controls")
	defer done()

	parts := []string{m.distanceSlider.String(), "", m.diagonalSlider.String()}
	if !m.degradation.HideDimensions {
		parts = append(parts, "", ui.TextStyles.Muted.Render(ui.DimensionsText(m.result)))
	}
	return m.controlsCardStyle().Width(m.constraints.ColumnWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// controlsCardStyle highlights the controls card unless an overlay has the focus.
func (m *home) controlsCardStyle() lipgloss.Style {
	if m.state == stateDefault {
		return ui.FocusedCardStyle()
	}
	return ui.CardStyle()
}

func (m *home) mainView() string {
	profiler := log.GetProfiler()

	left := []string{m.controls()}
	done := profiler.StartRender("Readout")
	left = append(left, m.readout.String())
	done()

	var right []string
	if m.degradation.ShouldShowCone() {
		done = profiler.StartRender("Cone")
		right = append(right, m.cone.String())
		done()
	}
	if m.degradation.ShouldShowGuide() {
		done = profiler.StartRender("Guide")
		right = append(right, m.guide.String())
		done()
	}

	var content string
	if m.constraints.SideBySide && len(right) > 0 {
		gap := lipgloss.NewStyle().Width(layout.ColumnGap).Render("")
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, left...),
			gap,
			lipgloss.JoinVertical(lipgloss.Left, right...),
		)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, append(left, right...)...)
	}
	content = lipgloss.Place(m.width, m.constraints.ContentHeight, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Center,
		m.header(),
		content,
		m.menu.String(),
		m.errBox.String(),
	)
}

// writeSnapshot dumps the current state when inspection is enabled.
func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

func (m *home) snapshot() *inspect.Snapshot {
	app := inspect.AppStateInfo{
		State: m.state.String(),
		Focus: m.focus.String(),
	}
	switch m.state {
	case stateEdit:
		app.HasOverlay, app.OverlayType = true, "text_input"
	case stateUnit:
		app.HasOverlay, app.OverlayType = true, "unit_selector"
	case stateHelp:
		app.HasOverlay, app.OverlayType = true, "text"
	}
	if err := m.errBox.Err(); err != nil {
		app.ErrorMessage = err.Error()
	}
	app.StatusMessage = m.errBox.Info()

	root := inspect.NewNode("App").WithSize(m.width, m.height).
		AddChild(m.distanceSlider.InspectNode().WithID("distance")).
		AddChild(m.diagonalSlider.InspectNode().WithID("diagonal")).
		AddChild(m.readout.InspectNode().WithID("readout")).
		AddChild(m.cone.InspectNode().WithID("cone").WithVisible(m.degradation.ShouldShowCone())).
		AddChild(m.guide.InspectNode().WithID("guide").WithVisible(m.degradation.ShouldShowGuide())).
		AddChild(m.menu.InspectNode().WithID("menu")).
		AddChild(m.errBox.InspectNode().WithID("errbox"))

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(app).
		WithCalculation(m.setup, m.result).
		WithLayout(m.constraints, m.degradation).
		WithComponents(root)
}
