package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ctlab/internal/analysis"
	"github.com/san-kum/ctlab/internal/rlocus"
)

const (
	planeWidth  = 60
	planeHeight = 20
)

var (
	planeTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	planeAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// bounds finds a symmetric-ish view window around the given points with
// a margin, always including the origin so the axes stay visible.
func bounds(points []complex128) (reMin, reMax, imMin, imMax float64) {
	reMin, reMax, imMin, imMax = 0, 0, 0, 0
	for _, p := range points {
		reMin = math.Min(reMin, real(p))
		reMax = math.Max(reMax, real(p))
		imMin = math.Min(imMin, imag(p))
		imMax = math.Max(imMax, imag(p))
	}
	padRe := (reMax - reMin) * 0.15
	padIm := (imMax - imMin) * 0.15
	if padRe == 0 {
		padRe = 1
	}
	if padIm == 0 {
		padIm = 1
	}
	return reMin - padRe, reMax + padRe, imMin - padIm, imMax + padIm
}

type planeView struct {
	canvas       *Canvas
	reMin, reMax float64
	imMin, imMax float64
}

func newPlaneView(points []complex128) *planeView {
	v := &planeView{canvas: NewCanvas(planeWidth, planeHeight)}
	v.reMin, v.reMax, v.imMin, v.imMax = bounds(points)
	v.drawAxes()
	return v
}

// cell maps an s-plane point to canvas cell coordinates.
func (v *planeView) cell(p complex128) (col, row int) {
	col = int((real(p) - v.reMin) / (v.reMax - v.reMin) * float64(planeWidth-1))
	row = int((v.imMax - imag(p)) / (v.imMax - v.imMin) * float64(planeHeight-1))
	return col, row
}

// dot maps an s-plane point to sub-pixel coordinates.
func (v *planeView) dot(p complex128) (x, y int) {
	x = int((real(p) - v.reMin) / (v.reMax - v.reMin) * float64(planeWidth*2-1))
	y = int((v.imMax - imag(p)) / (v.imMax - v.imMin) * float64(planeHeight*4-1))
	return x, y
}

func (v *planeView) drawAxes() {
	// Imaginary axis at Re=0, real axis at Im=0.
	x0, _ := v.dot(complex(0, 0))
	v.canvas.DrawLine(x0, 0, x0, planeHeight*4-1)
	_, y0 := v.dot(complex(0, 0))
	v.canvas.DrawLine(0, y0, planeWidth*2-1, y0)
}

func (v *planeView) render(title string) string {
	var b strings.Builder
	b.WriteString(planeTitleStyle.Render(title) + "\n")
	b.WriteString(v.canvas.String())
	b.WriteString(planeAxisStyle.Render(fmt.Sprintf("re: [%.2f, %.2f]  im: [%.2f, %.2f]",
		v.reMin, v.reMax, v.imMin, v.imMax)))
	return b.String()
}

// PoleZeroMap renders the s-plane with poles as x and zeros as o.
func PoleZeroMap(set analysis.PoleZeroSet) string {
	points := make([]complex128, 0, len(set.Poles)+len(set.Zeros))
	for _, p := range set.Poles {
		points = append(points, p.S)
	}
	for _, z := range set.Zeros {
		points = append(points, z.S)
	}
	v := newPlaneView(points)
	for _, p := range set.Poles {
		col, row := v.cell(p.S)
		v.canvas.Mark(col, row, 'x')
	}
	for _, z := range set.Zeros {
		col, row := v.cell(z.S)
		v.canvas.Mark(col, row, 'o')
	}
	return v.render("pole-zero map")
}

// LocusPlot renders every branch of the locus as a dot trail, marking
// each branch start with x.
func LocusPlot(loc rlocus.Locus) string {
	var points []complex128
	for _, br := range loc.Branches {
		points = append(points, br.Points...)
	}
	v := newPlaneView(points)
	for _, br := range loc.Branches {
		for _, p := range br.Points {
			x, y := v.dot(p)
			v.canvas.Set(x, y)
		}
	}
	for _, br := range loc.Branches {
		if len(br.Points) == 0 {
			continue
		}
		col, row := v.cell(br.Points[0])
		v.canvas.Mark(col, row, 'x')
	}
	return v.render("root locus")
}
