package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alloytools/matprop-cli/internal/core/domain"
)

// mockQueryService returns canned enumeration and lookup answers.
type mockQueryService struct {
	lastQuery domain.Query
}

func (m *mockQueryService) SearchAll(_ context.Context, q domain.Query) (domain.QueryResult, error) {
	m.lastQuery = q
	minC, maxC := 28.5, 32.0
	minH := "70 HRB"
	return domain.QueryResult{
		CorrectedMin: &minC,
		CorrectedMax: &maxC,
		HardnessMin:  &minH,
	}, nil
}

func (m *mockQueryService) Specs(_ context.Context) ([]string, error) {
	return []string{"AMS4037", "QQ-A-250/4"}, nil
}

func (m *mockQueryService) Materials(_ context.Context, _ string) ([]string, error) {
	return []string{"2024", "7075"}, nil
}

func (m *mockQueryService) Tempers(_ context.Context, _, _ string) ([]string, error) {
	return []string{"O", "T3"}, nil
}

func (m *mockQueryService) Thicknesses(_ context.Context, _, _, _, _ string) ([]float64, error) {
	return []float64{0.032, 0.125}, nil
}

// loadOptions drives the app through the option-loading message chain
// the way a running program would.
func loadOptions(app *App) {
	var msg tea.Msg = app.loadSpecs()()
	for msg != nil {
		model, cmd := app.Update(msg)
		_ = model
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(&mockQueryService{})

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, fieldSpec, app.focus)
	assert.Equal(t, domain.SurfaceBare, app.surface)
}

func TestNewApp_NilService(t *testing.T) {
	app, err := NewApp(nil)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_Init_LoadsSpecs(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})

	cmd := app.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	specs, ok := msg.(specsLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"AMS4037", "QQ-A-250/4"}, []string(specs))
}

func TestApp_OptionCascade(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})

	loadOptions(app)

	assert.Equal(t, []string{"AMS4037", "QQ-A-250/4"}, app.specs)
	assert.Equal(t, []string{"2024", "7075"}, app.materials)
	assert.Equal(t, []string{"O", "T3"}, app.tempers)
}

func TestApp_TabCyclesFocus(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})

	for _, want := range []field{fieldMaterial, fieldTemper, fieldSurface, fieldThickness, fieldCalculate, fieldSpec} {
		app.Update(key(tea.KeyTab))
		assert.Equal(t, want, app.focus)
	}
}

func TestApp_RightCyclesSpecAndReloads(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})
	loadOptions(app)

	_, cmd := app.Update(key(tea.KeyRight))

	assert.Equal(t, 1, app.specIdx)
	assert.NotNil(t, cmd, "changing spec should reload materials")
}

func TestApp_SurfaceToggle(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})
	app.setFocus(fieldSurface)

	app.Update(key(tea.KeyRight))
	assert.Equal(t, domain.SurfaceClad, app.surface)

	app.Update(key(tea.KeyRight))
	assert.Equal(t, domain.SurfaceBare, app.surface)
}

func TestApp_CalculateBadThickness(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})
	loadOptions(app)
	app.thickness.SetValue("not a number")
	app.setFocus(fieldCalculate)

	_, cmd := app.Update(key(tea.KeyEnter))

	assert.Nil(t, cmd)
	require.Error(t, app.err)
	assert.Contains(t, app.err.Error(), "not a number")
}

func TestApp_CalculateIssuesQuery(t *testing.T) {
	svc := &mockQueryService{}
	app, _ := NewApp(svc)
	loadOptions(app)
	app.thickness.SetValue("0.040")
	app.setFocus(fieldCalculate)

	_, cmd := app.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(resultMsg)
	require.True(t, ok)

	assert.Equal(t, "AMS4037", svc.lastQuery.Spec)
	assert.Equal(t, "2024", svc.lastQuery.Material)
	assert.Equal(t, "O", svc.lastQuery.Temper)
	assert.InDelta(t, 0.040, svc.lastQuery.Thickness, 1e-9)
	assert.Equal(t, "BARE", svc.lastQuery.Surface)

	app.Update(msg)
	require.NotNil(t, app.result)
	assert.InDelta(t, 28.5, *app.result.CorrectedMin, 1e-9)
	assert.Equal(t, domain.QueryResult(result), *app.result)
}

func TestApp_ResetClearsState(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})
	loadOptions(app)
	app.thickness.SetValue("0.125")
	app.surface = domain.SurfaceClad
	app.setFocus(fieldCalculate)

	_, cmd := app.Update(key(tea.KeyCtrlR))

	assert.Empty(t, app.thickness.Value())
	assert.Equal(t, domain.SurfaceBare, app.surface)
	assert.Equal(t, fieldSpec, app.focus)
	assert.NotNil(t, cmd, "reset should reload specs")
}

func TestApp_ViewRendersForm(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})
	loadOptions(app)

	out := app.View()

	assert.Contains(t, out, "Material Property Lookup")
	assert.Contains(t, out, "AMS4037")
	assert.Contains(t, out, "BARE")
	assert.Contains(t, out, "Calculate")
}

func TestApp_ViewRendersResult(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})
	minC := 30.0
	req := "72 HRB"
	app.result = &domain.QueryResult{CorrectedMin: &minC, HardnessMax: &req}

	out := app.View()

	assert.Contains(t, out, "30.00 %IACS")
	assert.Contains(t, out, "72 HRB")
}

func TestApp_EscQuits(t *testing.T) {
	app, _ := NewApp(&mockQueryService{})

	_, cmd := app.Update(key(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
