package app

import (
	"fmt"

	"VoxelCake/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	popButtonW      = 110
	popButtonH      = 44
	popButtonMargin = 20

	frameHistory = 128
)

// draw apresenta o frame já renderizado e a interface.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.renderer.Present()
	a.drawButton(a.popButtonRect(), "POP!", rl.NewColor(0, 200, 200, 255))
	a.drawHUD()

	rl.EndDrawing()
}

// popButtonRect fica no canto inferior esquerdo.
func (a *App) popButtonRect() rl.Rectangle {
	_, h := a.state.Viewport()
	return rl.NewRectangle(popButtonMargin, float32(h-popButtonH-popButtonMargin), popButtonW, popButtonH)
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(200)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	st := a.state
	w, h := a.renderer.Size()
	rl.DrawText(fmt.Sprintf("Diamantes: %s", util.FormatCount(st.Diamonds.Len())), x+10, y+45, 16, rl.SkyBlue)
	rl.DrawText(fmt.Sprintf("Ticks: %s", util.FormatCount(int(st.Ticks()))), x+10, y+65, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Malhas: %s | Render: %dx%d", util.FormatCount(a.renderer.DrawCalls), w, h), x+10, y+82, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Bolo: %.1f°", st.CakeYaw()*rl.Rad2deg), x+10, y+99, 14, rl.LightGray)

	rl.DrawLine(x+10, y+118, x+width-10, y+118, rl.NewColor(100, 100, 100, 100))
	a.drawFrameGraph(x+10, y+124, width-20, 40)

	rl.DrawText("Clique: 5 diamantes | Arraste: girar | Scroll: zoom", x+10, y+180, 10, rl.Gray)
}

// drawFrameGraph desenha uma barra por frame recente; a linha marca 16,7ms (60 FPS).
func (a *App) drawFrameGraph(x, y, w, h int32) {
	const budget = 1.0 / 60.0

	rl.DrawRectangle(x, y, w, h, rl.NewColor(20, 20, 20, 200))
	n := a.frameTimes.Cap()
	barW := w / int32(n)
	if barW < 1 {
		barW = 1
	}

	var sum float32
	a.frameTimes.Each(func(i int, dt float32) {
		sum += dt
		bh := int32(dt / (2 * budget) * float32(h))
		if bh > h {
			bh = h
		}
		c := rl.Green
		if dt > budget*1.5 {
			c = rl.Red
		}
		rl.DrawRectangle(x+int32(i)*barW, y+h-bh, barW, bh, c)
	})
	rl.DrawLine(x, y+h/2, x+w, y+h/2, rl.NewColor(200, 200, 200, 120))

	if count := a.frameTimes.Len(); count > 0 {
		avg := sum / float32(count) * 1000
		rl.DrawText(fmt.Sprintf("%.1f ms", avg), x+w-60, y+2, 10, rl.LightGray)
	}
}

// drawButton desenha um botão com destaque quando o mouse está por cima.
func (a *App) drawButton(rect rl.Rectangle, text string, color rl.Color) {
	isHover := rl.CheckCollisionPointRec(rl.GetMousePosition(), rect)

	drawColor := color
	fill := rl.NewColor(50, 50, 50, 255)
	if isHover {
		drawColor.R += 30
		drawColor.G += 30
		drawColor.B += 30
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
		if a.buttonArmed {
			fill = rl.NewColor(80, 80, 80, 255)
		}
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}

	x, y := int32(rect.X), int32(rect.Y)
	w, h := int32(rect.Width), int32(rect.Height)
	rl.DrawRectangle(x, y, w, h, fill)
	rl.DrawRectangleLines(x, y, w, h, drawColor)

	textWidth := rl.MeasureText(text, 20)
	rl.DrawText(text, x+(w-textWidth)/2, y+(h-20)/2, 20, rl.White)
}
