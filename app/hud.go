package app

import (
	"fmt"
	"image/color"

	"segview/core/geom"
	"segview/core/scene"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	hudFont = &freemono.Regular9pt7b

	colorHUDBG  = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}
	colorHUDFG  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorHUDDim = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorHUDSel = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

const (
	hudX     = 8
	hudWidth = 1160
)

// hudLines formats the panel: one row per field group, the read-only
// projection, and the selected field.
func hudLines(title string, fields []scene.Field, sel int, res scene.Result) []string {
	lines := []string{title}
	for i := 0; i+2 < len(fields); i += 3 {
		mark := " "
		if sel >= i && sel < i+3 {
			mark = ">"
		}
		lines = append(lines, fmt.Sprintf("%s%-15s %8.3f %8.3f %8.3f",
			mark, fields[i].Group, *fields[i].Value, *fields[i+1].Value, *fields[i+2].Value))
	}
	lines = append(lines, fmt.Sprintf(" %-15s %8.3f %8.3f %8.3f", "Project", res.Projection.X, res.Projection.Y, res.Projection.Z))
	if sel >= 0 && sel < len(fields) {
		f := fields[sel]
		lines = append(lines, fmt.Sprintf("edit %s.%s step %g", f.Group, f.Axis, f.Step))
	}
	return lines
}

const hudHelp = "up/down field  left/right drag  shift x10  tab group  R reset  F1 hud  F2 spheres  esc quit"

func (a *app) drawHUD(res scene.Result) {
	d := fbDisplay{t: a.target}
	lines := hudLines(a.title, a.fields, a.editor.sel, res)

	lineH := int(hudFont.GetYAdvance())
	if lineH <= 0 {
		lineH = 18
	}
	d.fillRect(0, 0, hudWidth, lineH*(len(lines)+1)+lineH/2, colorHUDBG)

	y := lineH
	for i, line := range lines {
		c := colorHUDFG
		switch {
		case i == 0 || i == len(lines)-1:
			c = colorHUDDim
		case len(line) > 0 && line[0] == '>':
			c = colorHUDSel
		}
		tinyfont.WriteLine(d, hudFont, hudX, int16(y), line, c)
		y += lineH
	}
	tinyfont.WriteLine(d, hudFont, hudX, int16(y), hudHelp, colorHUDDim)
}

// fmtVec is used in log fields.
func fmtVec(v geom.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
