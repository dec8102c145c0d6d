// Package tui implements the interactive material lookup form
// following the Elm architecture.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alloytools/matprop-cli/internal/core/domain"
	"github.com/alloytools/matprop-cli/internal/core/ports/driving"
)

// field identifies one focusable element of the form, in tab order.
type field int

const (
	fieldSpec field = iota
	fieldMaterial
	fieldTemper
	fieldSurface
	fieldThickness
	fieldCalculate
	fieldCount
)

// Messages produced by the service commands.
type (
	specsLoadedMsg     []string
	materialsLoadedMsg []string
	tempersLoadedMsg   []string
	resultMsg          domain.QueryResult
	errorMsg           struct{ err error }
)

// App is the lookup form model. It implements tea.Model.
type App struct {
	svc    driving.QueryService
	ctx    context.Context
	styles *Styles

	focus field

	specs     []string
	materials []string
	tempers   []string
	specIdx   int
	matIdx    int
	tmpIdx    int

	surface   domain.Surface
	thickness textinput.Model

	result *domain.QueryResult
	err    error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the lookup form bound to the query service.
func NewApp(svc driving.QueryService) (*App, error) {
	if svc == nil {
		return nil, fmt.Errorf("creating app: query service is required")
	}

	ti := textinput.New()
	ti.Placeholder = "0.040"
	ti.CharLimit = 12
	ti.Width = 16

	return &App{
		svc:       svc,
		ctx:       context.Background(),
		styles:    DefaultStyles(),
		surface:   domain.SurfaceBare,
		thickness: ti,
		width:     80,
		height:    24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init loads the spec list.
func (a *App) Init() tea.Cmd {
	return a.loadSpecs()
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case specsLoadedMsg:
		a.specs = msg
		a.specIdx = 0
		return a, a.loadMaterials()

	case materialsLoadedMsg:
		a.materials = msg
		a.matIdx = 0
		return a, a.loadTempers()

	case tempersLoadedMsg:
		a.tempers = msg
		a.tmpIdx = 0
		return a, nil

	case resultMsg:
		r := domain.QueryResult(msg)
		a.result = &r
		a.err = nil
		return a, nil

	case errorMsg:
		a.err = msg.err
		a.result = nil
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		a.setFocus((a.focus + 1) % fieldCount)
		return a, nil

	case tea.KeyShiftTab, tea.KeyUp:
		a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		return a, nil

	case tea.KeyLeft:
		return a, a.cycle(-1)

	case tea.KeyRight:
		return a, a.cycle(1)

	case tea.KeyEnter:
		if a.focus == fieldCalculate {
			return a, a.calculate()
		}
		a.setFocus((a.focus + 1) % fieldCount)
		return a, nil

	case tea.KeyCtrlR:
		a.reset()
		return a, a.loadSpecs()
	}

	// Remaining keys belong to the thickness input when focused.
	if a.focus == fieldThickness {
		var cmd tea.Cmd
		a.thickness, cmd = a.thickness.Update(msg)
		a.result = nil
		return a, cmd
	}
	if a.focus == fieldSurface && msg.String() == " " {
		return a, a.cycle(1)
	}
	return a, nil
}

// setFocus moves focus, blurring or focusing the thickness input.
func (a *App) setFocus(f field) {
	a.focus = f
	if f == fieldThickness {
		a.thickness.Focus()
	} else {
		a.thickness.Blur()
	}
}

// cycle steps the focused select field and reloads dependants.
func (a *App) cycle(delta int) tea.Cmd {
	a.result = nil

	switch a.focus {
	case fieldSpec:
		if len(a.specs) == 0 {
			return nil
		}
		a.specIdx = (a.specIdx + delta + len(a.specs)) % len(a.specs)
		return a.loadMaterials()

	case fieldMaterial:
		if len(a.materials) == 0 {
			return nil
		}
		a.matIdx = (a.matIdx + delta + len(a.materials)) % len(a.materials)
		return a.loadTempers()

	case fieldTemper:
		if len(a.tempers) == 0 {
			return nil
		}
		a.tmpIdx = (a.tmpIdx + delta + len(a.tempers)) % len(a.tempers)
		return nil

	case fieldSurface:
		if a.surface == domain.SurfaceBare {
			a.surface = domain.SurfaceClad
		} else {
			a.surface = domain.SurfaceBare
		}
		return nil
	}
	return nil
}

// reset clears all selections and the result.
func (a *App) reset() {
	a.specs = nil
	a.materials = nil
	a.tempers = nil
	a.specIdx, a.matIdx, a.tmpIdx = 0, 0, 0
	a.surface = domain.SurfaceBare
	a.thickness.SetValue("")
	a.result = nil
	a.err = nil
	a.setFocus(fieldSpec)
}

func (a *App) selected(values []string, idx int) string {
	if len(values) == 0 {
		return ""
	}
	return values[idx]
}

func (a *App) loadSpecs() tea.Cmd {
	return func() tea.Msg {
		specs, err := a.svc.Specs(a.ctx)
		if err != nil {
			return errorMsg{err}
		}
		return specsLoadedMsg(specs)
	}
}

func (a *App) loadMaterials() tea.Cmd {
	spec := a.selected(a.specs, a.specIdx)
	return func() tea.Msg {
		materials, err := a.svc.Materials(a.ctx, spec)
		if err != nil {
			return errorMsg{err}
		}
		return materialsLoadedMsg(materials)
	}
}

func (a *App) loadTempers() tea.Cmd {
	spec := a.selected(a.specs, a.specIdx)
	material := a.selected(a.materials, a.matIdx)
	return func() tea.Msg {
		tempers, err := a.svc.Tempers(a.ctx, spec, material)
		if err != nil {
			return errorMsg{err}
		}
		return tempersLoadedMsg(tempers)
	}
}

// calculate validates the thickness and issues the point query.
func (a *App) calculate() tea.Cmd {
	raw := strings.TrimSpace(a.thickness.Value())
	thickness, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		a.err = fmt.Errorf("thickness %q is not a number", raw)
		a.result = nil
		return nil
	}

	q := domain.Query{
		Spec:      a.selected(a.specs, a.specIdx),
		Material:  a.selected(a.materials, a.matIdx),
		Temper:    a.selected(a.tempers, a.tmpIdx),
		Thickness: thickness,
		Surface:   string(a.surface),
	}
	return func() tea.Msg {
		result, err := a.svc.SearchAll(a.ctx, q)
		if err != nil {
			return errorMsg{err}
		}
		return resultMsg(result)
	}
}

// View renders the form.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Material Property Lookup"))
	b.WriteString("\n")

	b.WriteString(a.selectRow(fieldSpec, "Spec", a.selected(a.specs, a.specIdx)))
	b.WriteString(a.selectRow(fieldMaterial, "Material", a.selected(a.materials, a.matIdx)))
	b.WriteString(a.selectRow(fieldTemper, "Temper", a.selected(a.tempers, a.tmpIdx)))
	b.WriteString(a.selectRow(fieldSurface, "Surface", string(a.surface)))

	label := a.styles.Label.Render("Thickness")
	if a.focus == fieldThickness {
		label = a.styles.Selected.Render(label)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", label, a.thickness.View()))

	button := "[ Calculate ]"
	if a.focus == fieldCalculate {
		button = a.styles.Selected.Render(button)
	} else {
		button = a.styles.Muted.Render(button)
	}
	b.WriteString("\n" + button + "\n")

	if a.err != nil {
		b.WriteString("\n" + a.styles.Error.Render(a.err.Error()) + "\n")
	}
	if a.result != nil {
		b.WriteString("\n" + a.styles.Box.Render(a.renderResult()) + "\n")
	}

	b.WriteString(a.styles.Help.Render("tab/↑↓ move · ←→ change · enter calculate · ctrl+r reset · esc quit"))
	return b.String()
}

// selectRow renders one cycling select field.
func (a *App) selectRow(f field, label, value string) string {
	if value == "" {
		value = "-"
	}
	rendered := a.styles.Label.Render(label)
	display := a.styles.Value.Render("  " + value)
	if a.focus == f {
		rendered = a.styles.Selected.Render(rendered)
		display = a.styles.Selected.Render("◄ " + value + " ►")
	}
	return fmt.Sprintf("%s %s\n", rendered, display)
}

func (a *App) renderResult() string {
	lines := []string{
		fmt.Sprintf("Conductivity min: %s", formatBound(a.result.CorrectedMin)),
		fmt.Sprintf("Conductivity max: %s", formatBound(a.result.CorrectedMax)),
		fmt.Sprintf("Hardness min:     %s", formatRequirement(a.result.HardnessMin)),
		fmt.Sprintf("Hardness max:     %s", formatRequirement(a.result.HardnessMax)),
	}
	return a.styles.Result.Render(strings.Join(lines, "\n"))
}

func formatBound(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %%IACS", *f)
}

func formatRequirement(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
