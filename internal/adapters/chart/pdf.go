// Package chart draws frequency series as bar charts in a PDF document.
package chart

import (
	"io"
	"math"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

const (
	titleFontSize = 14
	axisFontSize  = 8
	labelAngle    = -45
	yTicks        = 5

	// XLabel and YLabel name the chart axes.
	XLabel = "Tokens"
	YLabel = "Frequency"
)

// Config holds PDF page settings.
type Config struct {
	Orientation string
	PageSize    string
	FontFamily  string
	// MaxLabels is the largest series that still gets a label under every bar.
	MaxLabels int
	BarColor  [3]int
}

// DefaultConfig returns landscape A4 pages with labelled bars up to 60 tokens.
func DefaultConfig() Config {
	return Config{
		Orientation: "L",
		PageSize:    "A4",
		FontFamily:  "Helvetica",
		MaxLabels:   60,
		BarColor:    [3]int{31, 119, 180},
	}
}

// PDFRenderer renders series as one PDF page each.
type PDFRenderer struct {
	config Config
}

// NewPDFRenderer creates a chart renderer.
func NewPDFRenderer(cfg Config) *PDFRenderer {
	return &PDFRenderer{config: cfg}
}

// Render writes a PDF with one bar chart page per series to w.
func (r *PDFRenderer) Render(w io.Writer, series []domain.Series) error {
	pdf := gofpdf.New(r.config.Orientation, "mm", r.config.PageSize, "")
	pdf.SetTitle("Word frequency", true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if len(series) == 0 {
		pdf.AddPage()
	}
	for _, s := range series {
		r.drawPage(pdf, tr, s)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "write chart pdf")
	}
	return nil
}

type plotArea struct {
	left, top, width, height float64
}

func (p plotArea) bottom() float64 { return p.top + p.height }

func (r *PDFRenderer) drawPage(pdf *gofpdf.Fpdf, tr func(string) string, s domain.Series) {
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()

	pdf.SetFont(r.config.FontFamily, "B", titleFontSize)
	pdf.SetXY(left, top)
	pdf.CellFormat(pageW-left-right, 10, tr(s.Title), "", 1, "C", false, 0, "")

	area := plotArea{
		left:   left + 15,
		top:    top + 18,
		width:  pageW - left - right - 20,
		height: pageH - top - 18 - 50,
	}

	maxHeight := scaledMax(s)
	r.drawAxes(pdf, area, maxHeight, s.LogScale)
	r.drawBars(pdf, tr, area, maxHeight, s)

	pdf.SetFont(r.config.FontFamily, "", axisFontSize)
	pdf.SetXY(area.left, pageH-15)
	pdf.CellFormat(area.width, 5, XLabel, "", 0, "C", false, 0, "")

	pdf.TransformBegin()
	pdf.TransformRotate(90, left, area.top+area.height/2)
	pdf.Text(left-pdf.GetStringWidth(YLabel)/2, area.top+area.height/2+2, YLabel)
	pdf.TransformEnd()
}

func (r *PDFRenderer) drawAxes(pdf *gofpdf.Fpdf, area plotArea, maxHeight float64, logScale bool) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(area.left, area.top, area.left, area.bottom())
	pdf.Line(area.left, area.bottom(), area.left+area.width, area.bottom())

	if maxHeight <= 0 {
		return
	}

	pdf.SetFont(r.config.FontFamily, "", axisFontSize)
	for _, tick := range ticks(maxHeight, logScale) {
		y := area.bottom() - tick.height/maxHeight*area.height
		pdf.Line(area.left-1.5, y, area.left, y)
		pdf.Text(area.left-2.5-pdf.GetStringWidth(tick.label), y+1, tick.label)
	}
}

func (r *PDFRenderer) drawBars(pdf *gofpdf.Fpdf, tr func(string) string, area plotArea, maxHeight float64, s domain.Series) {
	n := s.Len()
	if n == 0 || maxHeight <= 0 {
		return
	}

	slot := area.width / float64(n)
	barW := slot * 0.8
	showLabels := n <= r.config.MaxLabels

	pdf.SetFillColor(r.config.BarColor[0], r.config.BarColor[1], r.config.BarColor[2])
	pdf.SetFont(r.config.FontFamily, "", axisFontSize)
	for i, v := range s.Values {
		h := barHeight(v, s.LogScale) / maxHeight * area.height
		x := area.left + float64(i)*slot + (slot-barW)/2
		if h > 0 {
			pdf.Rect(x, area.bottom()-h, barW, h, "F")
		}
		if showLabels {
			cx := x + barW/2
			pdf.TransformBegin()
			pdf.TransformRotate(labelAngle, cx, area.bottom()+3)
			pdf.Text(cx, area.bottom()+3, tr(s.Labels[i]))
			pdf.TransformEnd()
		}
	}
}

// barHeight maps a count to bar units. Log-scaled bars are offset by one decade
// so a count of 1 stays visible.
func barHeight(v int, logScale bool) float64 {
	if v <= 0 {
		return 0
	}
	if logScale {
		return math.Log10(float64(v)) + 1
	}
	return float64(v)
}

func scaledMax(s domain.Series) float64 {
	var m float64
	for _, v := range s.Values {
		m = math.Max(m, barHeight(v, s.LogScale))
	}
	return m
}

type tick struct {
	height float64
	label  string
}

func ticks(maxHeight float64, logScale bool) []tick {
	var out []tick
	if logScale {
		for decade := 1; barHeight(decade, true) <= maxHeight; decade *= 10 {
			out = append(out, tick{height: barHeight(decade, true), label: strconv.Itoa(decade)})
		}
		return out
	}

	step := math.Max(1, math.Ceil(maxHeight/yTicks))
	for v := 0.0; v <= maxHeight; v += step {
		out = append(out, tick{height: v, label: strconv.Itoa(int(v))})
	}
	return out
}
