package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/julianstephens/ghpulse/internal/activity"
	"github.com/julianstephens/ghpulse/internal/calendar"
	"github.com/julianstephens/ghpulse/internal/constants"
	"github.com/julianstephens/ghpulse/internal/models"
)

// SVGOptions configures the SVG heatmap
type SVGOptions struct {
	CellSize    int    // size of each day cell (px)
	CellPadding int    // padding between cells (px)
	FontSize    int    // font size for labels (px)
	FontFamily  string // font family for labels
	Background  string // canvas color, empty for transparent
	Title       string // optional heading above the grid
}

func DefaultSVGOptions() *SVGOptions {
	return &SVGOptions{
		CellSize:    11,
		CellPadding: 3,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Background:  "#0d1117",
	}
}

// SVG renders the grid as a GitHub-like contribution heatmap.
// Placeholder cells are not drawn.
func SVG(grid models.CalendarGrid, opts *SVGOptions) string {
	if opts == nil {
		opts = DefaultSVGOptions()
	}

	weeks := len(grid.Weeks)
	step := opts.CellSize + opts.CellPadding

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8
	}
	gridTop := opts.CellPadding + opts.FontSize + 4 + titleHeight
	width := weeks*step + opts.CellPadding
	height := gridTop + constants.DaysPerWeek*step

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	fmt.Fprintf(&sb, `  <style>.label{font-family:%s;font-size:%dpx;fill:#8b949e}.title{font-family:%s;font-size:%dpx;fill:#e6edf3;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize)

	if opts.Background != "" {
		fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)
	}

	if opts.Title != "" {
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title))
	}

	monthLabelY := opts.FontSize + titleHeight
	for _, label := range calendar.MonthLabels(grid) {
		x := opts.CellPadding + label.Week*step
		fmt.Fprintf(&sb, `  <text x="%d" y="%d" class="label">%s</text>`+"\n", x, monthLabelY, label.Label)
	}

	for w, week := range grid.Weeks {
		for i, cell := range week {
			if cell.IsPlaceholder() {
				continue
			}
			x := opts.CellPadding + w*step
			y := gridTop + i*step
			day := cell.Date.Format(constants.DateFormat)

			fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s" data-date="%s" data-count="%d" data-level="%d">`+"\n",
				x, y, opts.CellSize, opts.CellSize, activity.Color(*cell.Bucket), day, *cell.Count, *cell.Bucket)
			fmt.Fprintf(&sb, `    <title>%s on %s</title>`+"\n", contributionLabel(*cell.Count), cell.Date.Format("Mon, Jan 2, 2006"))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

func contributionLabel(count int) string {
	switch count {
	case 0:
		return "No contributions"
	case 1:
		return "1 contribution"
	default:
		return Number(count) + " contributions"
	}
}
