// Package chart dibuja los gráficos del dashboard como SVG usando go-chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData la serie está vacía; go-chart no puede dibujar sin valores.
var ErrNoData = errors.New("chart: sin datos para graficar")

const (
	defaultWidth  = 800
	defaultHeight = 400
	headroom      = 1.1 // margen superior del eje Y
)

// TimePoint un punto de una serie temporal.
type TimePoint struct {
	Time  time.Time
	Value float64
}

// Slice una categoría con su valor (barra o porción de torta).
type Slice struct {
	Label string
	Value float64
}

// SVGRenderer dibuja gráficos de línea, barras y torta en SVG con un tamaño fijo.
type SVGRenderer struct {
	width  int
	height int
}

// NewSVGRenderer construye el renderer. Dimensiones <= 0 usan 800×400.
func NewSVGRenderer(width, height int) *SVGRenderer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &SVGRenderer{width: width, height: height}
}

func (r *SVGRenderer) Width() int  { return r.width }
func (r *SVGRenderer) Height() int { return r.height }

func seriesStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// Line gráfico de línea con eje X temporal (etiquetas "2006-01").
func (r *SVGRenderer) Line(w io.Writer, title string, points []TimePoint) error {
	if len(points) == 0 {
		return ErrNoData
	}

	xs := make([]time.Time, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	for _, p := range points {
		xs = append(xs, p.Time)
		ys = append(ys, p.Value)
	}
	// Un solo punto: go-chart exige rango X no nulo; se extiende un día.
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[0])
	}

	graph := gochart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: gochart.XAxis{
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: gochart.YAxis{
			Range:          yRange(ys),
			ValueFormatter: amountTick,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
				Style:   seriesStyle(gochart.ColorBlue),
			},
		},
	}
	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("chart: línea %q: %w", title, err)
	}
	return nil
}

// Bar gráfico de barras, una barra por Slice en el orden recibido.
func (r *SVGRenderer) Bar(w io.Writer, title string, slices []Slice) error {
	if len(slices) == 0 {
		return ErrNoData
	}

	bars := make([]gochart.Value, 0, len(slices))
	ys := make([]float64, 0, len(slices))
	for _, s := range slices {
		bars = append(bars, gochart.Value{Label: s.Label, Value: s.Value})
		ys = append(ys, s.Value)
	}

	// Repartir el ancho útil: 2/3 barra, 1/3 espacio.
	slot := (r.width - 120) / len(bars)
	if slot < 3 {
		slot = 3
	}

	graph := gochart.BarChart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		BarWidth:   slot * 2 / 3,
		BarSpacing: slot / 3,
		XAxis:      gochart.Style{FontSize: 8},
		YAxis: gochart.YAxis{
			Range:          yRange(ys),
			ValueFormatter: amountTick,
		},
		Bars: bars,
	}
	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("chart: barras %q: %w", title, err)
	}
	return nil
}

// Pie gráfico de torta; cada Slice es una porción etiquetada.
func (r *SVGRenderer) Pie(w io.Writer, title string, slices []Slice) error {
	if len(slices) == 0 {
		return ErrNoData
	}

	values := make([]gochart.Value, 0, len(slices))
	for _, s := range slices {
		values = append(values, gochart.Value{Label: s.Label, Value: s.Value})
	}

	graph := gochart.PieChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}
	if err := graph.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("chart: torta %q: %w", title, err)
	}
	return nil
}

// Placeholder SVG del mismo tamaño con el título y "(no data)", para vistas vacías.
func (r *SVGRenderer) Placeholder(w io.Writer, title string) error {
	canvas, err := gochart.SVG(r.width, r.height)
	if err != nil {
		return fmt.Errorf("chart: placeholder: %w", err)
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("chart: fuente: %w", err)
	}

	canvas.SetFont(font)
	canvas.SetFontColor(gochart.ColorAlternateGray)
	canvas.SetFontSize(14)
	msg := title + " (no data)"
	box := canvas.MeasureText(msg)
	canvas.Text(msg, (r.width-box.Width())/2, r.height/2)
	return canvas.Save(w)
}

// yRange eje Y desde 0 hasta el máximo con margen; evita el rango nulo que go-chart rechaza.
func yRange(ys []float64) *gochart.ContinuousRange {
	maxY := 0.0
	for _, y := range ys {
		if y > maxY {
			maxY = y
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: maxY * headroom}
}

func amountTick(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
