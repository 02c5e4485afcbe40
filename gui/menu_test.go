package gui_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/menukit/gui"
)

const (
	idTop    gui.ButtonID = 16
	idMiddle gui.ButtonID = 17
	idBottom gui.ButtonID = 18
	idExtra  gui.ButtonID = 19
)

// nullAssets resolves every name to nil. Setup tolerates missing assets, and
// none of these tests render, so nothing more is needed.
type nullAssets struct{}

func (nullAssets) FindMaterial(string) *ebiten.Image { return nil }
func (nullAssets) FindShader(string) *ebiten.Shader  { return nil }

// columnDef is a three-button vertical menu. The middle button starts
// inactive, the column wraps top to bottom, and nothing links left or right.
func columnDef() *gui.MenuDef {
	return &gui.MenuDef{
		CanonicalSize: dmath.Vec2{X: 640, Y: 360},
		StartingFocus: idTop,
		Buttons: []gui.ButtonDef{
			{
				ID:           idTop,
				Position:     dmath.Vec2{X: 220, Y: 120},
				Size:         dmath.Vec2{X: 200, Y: 36},
				StartsActive: true,
				NavUp:        []gui.ButtonID{idBottom},
				NavDown:      []gui.ButtonID{idMiddle, idBottom},
			},
			{
				ID:           idMiddle,
				Position:     dmath.Vec2{X: 220, Y: 164},
				Size:         dmath.Vec2{X: 200, Y: 36},
				StartsActive: false,
				NavUp:        []gui.ButtonID{idTop},
				NavDown:      []gui.ButtonID{idBottom},
			},
			{
				ID:           idBottom,
				Position:     dmath.Vec2{X: 220, Y: 208},
				Size:         dmath.Vec2{X: 200, Y: 36},
				StartsActive: true,
				NavUp:        []gui.ButtonID{idMiddle},
				NavDown:      []gui.ButtonID{idTop},
			},
		},
	}
}

func newColumnMenu(t *testing.T) *gui.Menu {
	t.Helper()
	m := gui.NewMenu()
	m.Setup(columnDef(), nullAssets{})
	return m
}

func advance(m *gui.Menu, in *gui.InputState) {
	if in == nil {
		in = &gui.InputState{}
	}
	m.AdvanceFrame(1.0/60.0, in, dmath.Vec2{X: 640, Y: 360})
}

func pressAt(x, y float64) *gui.InputState {
	return &gui.InputState{Pointers: []gui.Pointer{{
		Position:    dmath.Vec2{X: x, Y: y},
		Pressed:     true,
		JustPressed: true,
	}}}
}

func drain(m *gui.Menu) []gui.Selection {
	var out []gui.Selection
	for {
		sel := m.GetRecentSelection()
		if sel == gui.NoSelection {
			return out
		}
		out = append(out, sel)
	}
}

func TestSetupAppliesStartingFocus(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	require.True(t, m.IsConfigured())
	require.Equal(t, idTop, m.GetFocus())
	require.NotNil(t, m.FindButtonByID(idMiddle))
	require.False(t, m.FindButtonByID(idMiddle).IsActive())
	require.True(t, m.FindButtonByID(idBottom).IsActive())
}

func TestSetupNilTearsDownAndClearsQueue(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.HandleControllerInput(gui.InputSelect, 3)
	require.NotEmpty(t, drain(m))

	m.HandleControllerInput(gui.InputSelect, 3)
	m.Setup(nil, nil)

	require.False(t, m.IsConfigured())
	require.Equal(t, gui.ButtonUndefined, m.GetFocus())
	require.Nil(t, m.FindButtonByID(idTop))
	require.Equal(t, gui.NoSelection, m.GetRecentSelection())
}

func TestSetupAgainRestoresDefinitionState(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.SetFocus(idBottom)
	m.FindButtonByID(idMiddle).SetActive(true)
	m.HandleControllerInput(gui.InputSelect, 0)

	m.Setup(columnDef(), nullAssets{})

	require.Equal(t, idTop, m.GetFocus())
	require.False(t, m.FindButtonByID(idMiddle).IsActive())
	require.Equal(t, gui.NoSelection, m.GetRecentSelection())
}

func TestSelectionQueueIsFIFO(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.HandleControllerInput(gui.InputSelect|gui.InputCancel, 5)

	sels := drain(m)
	require.Equal(t, []gui.Selection{
		{ButtonID: idTop, Controller: 5},
		{ButtonID: gui.ButtonCancel, Controller: 5},
	}, sels)
	require.Equal(t, gui.NoSelection, m.GetRecentSelection())
}

func TestAdvanceFrameDiscardsUnconsumedEvents(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.HandleControllerInput(gui.InputSelect, 1)

	advance(m, nil)

	require.Equal(t, gui.NoSelection, m.GetRecentSelection())
}

func TestEmptyQueueReturnsSentinel(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	sel := m.GetRecentSelection()
	require.Equal(t, gui.ButtonUndefined, sel.ButtonID)
	require.Equal(t, gui.ControllerUndefined, sel.Controller)
}

func TestControllerInputIgnoredWhenFocusUnregistered(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.SetFocus(99)

	m.HandleControllerInput(gui.InputDown|gui.InputSelect|gui.InputCancel, 2)

	require.Equal(t, gui.ButtonID(99), m.GetFocus())
	require.Empty(t, drain(m))
}

func TestControllerInputIgnoredWhenUnconfigured(t *testing.T) {
	t.Parallel()

	m := gui.NewMenu()
	m.HandleControllerInput(gui.InputSelect|gui.InputCancel, 2)

	require.Empty(t, drain(m))
}

func TestNavigationMovesFocus(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	m.HandleControllerInput(gui.InputDown, 0)
	require.Equal(t, idMiddle, m.GetFocus())

	m.HandleControllerInput(gui.InputDown, 0)
	require.Equal(t, idBottom, m.GetFocus())

	// Wraps from the bottom back to the top.
	m.HandleControllerInput(gui.InputDown, 0)
	require.Equal(t, idTop, m.GetFocus())

	m.HandleControllerInput(gui.InputUp, 0)
	require.Equal(t, idBottom, m.GetFocus())

	require.Empty(t, drain(m))
}

func TestNavigationPrefersEarlierCandidates(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	// Top's down list is (middle, bottom); hiding middle promotes bottom.
	m.FindButtonByID(idMiddle).SetVisible(false)
	m.HandleControllerInput(gui.InputDown, 0)

	require.Equal(t, idBottom, m.GetFocus())
	require.Empty(t, drain(m))
}

func TestNavigationDeadEndQueuesInvalidInput(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	m.HandleControllerInput(gui.InputLeft, 4)

	require.Equal(t, idTop, m.GetFocus())
	require.Equal(t, []gui.Selection{
		{ButtonID: gui.ButtonInvalidInput, Controller: gui.ControllerTouch},
	}, drain(m))
}

func TestNavigationFailsWhenAllCandidatesHidden(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.FindButtonByID(idMiddle).SetVisible(false)
	m.FindButtonByID(idBottom).SetVisible(false)

	m.HandleControllerInput(gui.InputDown, 0)

	require.Equal(t, idTop, m.GetFocus())
	require.Equal(t, []gui.Selection{
		{ButtonID: gui.ButtonInvalidInput, Controller: gui.ControllerTouch},
	}, drain(m))
}

func TestUpdateFocusFirstMatchWins(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	m.UpdateFocus([]gui.ButtonID{99, idBottom, idMiddle})

	require.Equal(t, idBottom, m.GetFocus())
	require.Empty(t, drain(m))
}

func TestMultiDirectionMovesStepByStep(t *testing.T) {
	t.Parallel()

	// A four-button graph where the final focus differs depending on
	// whether up or down is applied first.
	def := &gui.MenuDef{
		CanonicalSize: dmath.Vec2{X: 640, Y: 360},
		StartingFocus: idTop,
		Buttons: []gui.ButtonDef{
			{
				ID: idTop, Position: dmath.Vec2{X: 0, Y: 0}, Size: dmath.Vec2{X: 10, Y: 10},
				StartsActive: true,
				NavUp:        []gui.ButtonID{idExtra},
				NavDown:      []gui.ButtonID{idMiddle},
			},
			{
				ID: idMiddle, Position: dmath.Vec2{X: 0, Y: 20}, Size: dmath.Vec2{X: 10, Y: 10},
				StartsActive: true,
				NavUp:        []gui.ButtonID{idTop},
			},
			{
				ID: idExtra, Position: dmath.Vec2{X: 0, Y: 40}, Size: dmath.Vec2{X: 10, Y: 10},
				StartsActive: true,
				NavDown:      []gui.ButtonID{idMiddle},
			},
		},
	}
	m := gui.NewMenu()
	m.Setup(def, nullAssets{})

	// Up runs first (top -> extra), then down reads extra's links
	// (extra -> middle). Down first would have ended back on top.
	m.HandleControllerInput(gui.InputUp|gui.InputDown, 0)

	require.Equal(t, idMiddle, m.GetFocus())
	require.Empty(t, drain(m))
}

func TestFailedDirectionInMaskStillQueuesInvalidInput(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	// Down moves first, then left dead-ends on the button it landed on.
	// The mask yields exactly one rejection event alongside the move.
	m.HandleControllerInput(gui.InputLeft|gui.InputDown, 3)

	require.Equal(t, idMiddle, m.GetFocus())
	require.Equal(t, []gui.Selection{
		{ButtonID: gui.ButtonInvalidInput, Controller: gui.ControllerTouch},
	}, drain(m))
}

func TestSelectUsesFocusAfterNavigation(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.SetFocus(idMiddle)

	// Down lands on the active bottom button, and the select in the same
	// mask fires it.
	m.HandleControllerInput(gui.InputDown|gui.InputSelect, 7)

	require.Equal(t, idBottom, m.GetFocus())
	require.Equal(t, []gui.Selection{
		{ButtonID: idBottom, Controller: 7},
	}, drain(m))
}

func TestSelectOnInactiveQueuesInvalidInput(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.SetFocus(idMiddle)

	m.HandleControllerInput(gui.InputSelect, 7)

	require.Equal(t, []gui.Selection{
		{ButtonID: gui.ButtonInvalidInput, Controller: 7},
	}, drain(m))
}

func TestCancelQueuesRegardlessOfFocus(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.SetFocus(idMiddle)

	m.HandleControllerInput(gui.InputCancel, 9)

	require.Equal(t, []gui.Selection{
		{ButtonID: gui.ButtonCancel, Controller: 9},
	}, drain(m))
}

func TestHighlightFollowsFocus(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	advance(m, nil)

	require.True(t, m.FindButtonByID(idTop).IsHighlighted())
	require.False(t, m.FindButtonByID(idMiddle).IsHighlighted())
	require.False(t, m.FindButtonByID(idBottom).IsHighlighted())

	m.HandleControllerInput(gui.InputDown, 0)
	advance(m, nil)

	require.False(t, m.FindButtonByID(idTop).IsHighlighted())
	require.True(t, m.FindButtonByID(idMiddle).IsHighlighted())
}

func TestPointerTriggerQueuesTouchEvent(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	advance(m, pressAt(230, 130))

	require.Equal(t, []gui.Selection{
		{ButtonID: idTop, Controller: gui.ControllerTouch},
	}, drain(m))
	require.True(t, m.FindButtonByID(idTop).IsPressed())
}

func TestPointerTriggerOnInactiveQueuesInvalidInput(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	advance(m, pressAt(230, 170))

	require.Equal(t, []gui.Selection{
		{ButtonID: gui.ButtonInvalidInput, Controller: gui.ControllerTouch},
	}, drain(m))
}

func TestPointerHeldWithoutJustPressedDoesNotTrigger(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	in := &gui.InputState{Pointers: []gui.Pointer{{
		Position: dmath.Vec2{X: 230, Y: 130},
		Pressed:  true,
	}}}
	advance(m, in)

	require.Empty(t, drain(m))
	require.True(t, m.FindButtonByID(idTop).IsPressed())
}

func TestPointerHitTestScalesWithWindow(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)

	// At a 720-high window everything doubles: the top button's rect
	// becomes (440,240)-(840,312), so its canonical position misses.
	m.AdvanceFrame(1.0/60.0, pressAt(230, 130), dmath.Vec2{X: 1280, Y: 720})
	require.Empty(t, drain(m))

	m.AdvanceFrame(1.0/60.0, pressAt(450, 250), dmath.Vec2{X: 1280, Y: 720})
	require.Equal(t, []gui.Selection{
		{ButtonID: idTop, Controller: gui.ControllerTouch},
	}, drain(m))
}

func TestPointerIgnoredOnInvisibleButton(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.FindButtonByID(idTop).SetVisible(false)

	advance(m, pressAt(230, 130))

	require.Empty(t, drain(m))
	require.False(t, m.FindButtonByID(idTop).IsPressed())
}

func TestSetFocusIsUnvalidated(t *testing.T) {
	t.Parallel()

	m := newColumnMenu(t)
	m.SetFocus(99)

	require.Equal(t, gui.ButtonID(99), m.GetFocus())
}

func TestRenderSafeWhenUnconfigured(t *testing.T) {
	t.Parallel()

	m := gui.NewMenu()
	dst := ebiten.NewImage(64, 64)

	require.NotPanics(t, func() {
		m.Render(dst)
		advance(m, pressAt(10, 10))
	})
	require.Empty(t, drain(m))
}
