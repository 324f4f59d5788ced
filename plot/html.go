package plot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/btracey/descent/common"
)

const (
	chartWidthPx  = 1000
	chartHeightPx = 640
)

// HTML writes each figure as an interactive echarts page named after the
// figure title into Dir.
type HTML struct {
	Dir string
}

func (h HTML) Render(ctx context.Context, fig Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return fmt.Errorf("plot: %w: %v", common.ErrResourceUnavailable, err)
	}
	path := filepath.Join(h.Dir, FileName(fig.Title)+".html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w: %v", common.ErrResourceUnavailable, err)
	}
	if err := WriteHTML(f, fig); err != nil {
		f.Close()
		return fmt.Errorf("plot: writing %s: %w", path, err)
	}
	return f.Close()
}

// WriteHTML renders fig as a single echarts page.
func WriteHTML(w io.Writer, fig Figure) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fig.Title,
			Width:     fmt.Sprintf("%dpx", chartWidthPx),
			Height:    fmt.Sprintf("%dpx", chartHeightPx),
		}),
		charts.WithTitleOpts(opts.Title{Title: fig.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			Name:      fig.XLabel,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Name:      fig.YLabel,
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)
	for _, s := range fig.Scatter {
		data := make([]opts.ScatterData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.ScatterData{Value: []interface{}{p.X, p.Y}, SymbolSize: 8}
		}
		scatter.AddSeries(s.Name, data)
	}
	if len(fig.Lines) > 0 {
		line := charts.NewLine()
		for _, s := range fig.Lines {
			data := make([]opts.LineData, len(s.Points))
			for i, p := range s.Points {
				data[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
			}
			line.AddSeries(s.Name, data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
		}
		scatter.Overlap(line)
	}
	return scatter.Render(w)
}

// FileName turns a title into a file name without extension.
func FileName(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		return "figure"
	}
	return name
}
