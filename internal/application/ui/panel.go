// Package ui declares the editor's immediate-mode control bar.
//
// Widgets are re-declared every frame from State; button presses are
// delivered through Actions during Update.
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitengine/debugui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/leveleditor/internal/infrastructure/config"
)

// State is the data the control bar edits
type State struct {
	ShowDemoWindow    bool
	ShowAnotherWindow bool
	GravityY          float64
	GravityMin        float64
	GravityMax        float64
	ClearColor        [3]float64 // RGB, each 0..1
	EntityCount       int
}

// NewState returns the initial UI state from settings
func NewState(cfg config.UIConfig) State {
	return State{
		ShowDemoWindow:    cfg.ShowDemoWindow,
		ShowAnotherWindow: cfg.ShowAnotherWindow,
		GravityMin:        cfg.GravityMin,
		GravityMax:        cfg.GravityMax,
		ClearColor:        cfg.ClearColor,
	}
}

// ClearRGBA converts the edited clear color to 8-bit channels, opaque.
func (s State) ClearRGBA() color.RGBA {
	return color.RGBA{
		R: channel(s.ClearColor[0]),
		G: channel(s.ClearColor[1]),
		B: channel(s.ClearColor[2]),
		A: 255,
	}
}

// ClampGravity keeps the slider value inside its range
func (s *State) ClampGravity() {
	s.GravityY = min(max(s.GravityY, s.GravityMin), s.GravityMax)
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// Actions are invoked when the matching button is pressed
type Actions struct {
	LoadBox       func()
	LoadEdge      func()
	ClearEntities func()
}

// Panel is the control bar window
type Panel struct {
	debugui debugui.DebugUI
	bounds  image.Rectangle
}

// NewPanel creates a control bar anchored at the top-left of a screenW x screenH view
func NewPanel(screenW, screenH int) *Panel {
	w := min(320, screenW)
	h := min(360, screenH)
	return &Panel{bounds: image.Rect(0, 0, w, h)}
}

// Update declares this frame's widgets. Button callbacks run before it returns.
func (p *Panel) Update(st *State, act Actions) error {
	_, err := p.debugui.Update(func(ctx *debugui.Context) error {
		ctx.Window("Control bar", p.bounds, func(layout debugui.ContainerLayout) {
			ctx.Text("Adjust ...here!")
			ctx.Checkbox(&st.ShowDemoWindow, "Demo Window")
			ctx.Checkbox(&st.ShowAnotherWindow, "Another Window")

			ctx.Text("gravity.y")
			ctx.SliderF(&st.GravityY, st.GravityMin, st.GravityMax, 0.1, 1)

			ctx.Text("clear color")
			ctx.SetGridLayout([]int{-1, -1, -1}, nil)
			ctx.SliderF(&st.ClearColor[0], 0, 1, 0.01, 2)
			ctx.SliderF(&st.ClearColor[1], 0, 1, 0.01, 2)
			ctx.SliderF(&st.ClearColor[2], 0, 1, 0.01, 2)

			ctx.SetGridLayout([]int{-1, -1}, nil)
			ctx.Button("load box").On(act.LoadBox)
			ctx.Button("load Edge").On(act.LoadEdge)

			ctx.SetGridLayout(nil, nil)
			ctx.Text(fmt.Sprintf("counter = %d", st.EntityCount))
			ctx.Button("clear Entities").On(act.ClearEntities)

			fps := ebiten.ActualFPS()
			if fps > 0 {
				ctx.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", 1000/fps, fps))
			}
		})

		if st.ShowDemoWindow {
			ctx.Window("Demo Window", p.bounds.Add(image.Pt(p.bounds.Dx()+10, 0)), func(layout debugui.ContainerLayout) {
				ctx.Text(fmt.Sprintf("TPS: %.2f", ebiten.ActualTPS()))
				ctx.Text(fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()))
			})
		}
		if st.ShowAnotherWindow {
			ctx.Window("Another Window", image.Rect(0, 0, 220, 90).Add(image.Pt(0, p.bounds.Dy()+10)), func(layout debugui.ContainerLayout) {
				ctx.Text("Hello from another window!")
				ctx.Button("Close Me").On(func() {
					st.ShowAnotherWindow = false
				})
			})
		}
		return nil
	})
	st.ClampGravity()
	return err
}

// Draw renders the widgets declared by the last Update
func (p *Panel) Draw(screen *ebiten.Image) {
	p.debugui.Draw(screen)
}
