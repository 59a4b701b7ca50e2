package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput traduz mouse e teclado em eventos do estado.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	mouse := rl.GetMousePosition()
	overButton := rl.CheckCollisionPointRec(mouse, a.popButtonRect())

	// Qualquer clique na janela conta como clique na cena, inclusive sobre o botão
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.state.PointerDown()
		a.buttonArmed = overButton
		a.dragging = !overButton
	}

	if a.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			_, h := a.state.Viewport()
			a.state.Camera.Rotate(delta.X, delta.Y, h)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if a.buttonArmed && overButton {
			a.state.ButtonClick()
		}
		a.buttonArmed = false
		a.dragging = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.state.Camera.Zoom(wheel)
	}
}
