// Package chart renders the risk-reward scatter as text. Points are passed
// in explicitly; there is no ambient data source.
package chart

import (
	"fmt"
	"math"
	"strings"

	"pretrade/internal/model"
)

// Fixed axis titles, matching the journal's risk-reward analysis view.
const (
	XAxisTitle = "Risk-Reward Ratio"
	YAxisTitle = "Profit ($)"
)

const brailleBase = 0x2800

// Dot bit per braille sub-cell, indexed [y%4][x%2].
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Scatter plots points into a width x height character grid using braille
// dots (2x4 sub-cells per character). An empty series renders axes only.
func Scatter(points []model.PlotPoint, width, height int) string {
	if width < 24 {
		width = 24
	}
	if height < 4 {
		height = 4
	}
	const gutter = 9 // y-axis labels + axis rule
	plotW := width - gutter
	plotH := height

	minX, maxX, minY, maxY := bounds(points)

	cells := make([][]rune, plotH)
	for i := range cells {
		cells[i] = make([]rune, plotW)
	}
	for _, p := range points {
		px := int(math.Round((p.RRR - minX) / (maxX - minX) * float64(plotW*2-1)))
		py := int(math.Round((p.Profit - minY) / (maxY - minY) * float64(plotH*4-1)))
		ry := plotH*4 - 1 - py // larger profit renders higher
		cells[ry/4][px/2] |= brailleBits[ry%4][px%2]
	}

	var b strings.Builder
	b.WriteString(YAxisTitle + "\n")
	for row := 0; row < plotH; row++ {
		label := ""
		switch row {
		case 0:
			label = fmt.Sprintf("%.0f", maxY)
		case plotH - 1:
			label = fmt.Sprintf("%.0f", minY)
		}
		fmt.Fprintf(&b, "%*s │", gutter-2, label)
		for _, r := range cells[row] {
			if r == 0 {
				b.WriteRune(' ')
			} else {
				b.WriteRune(brailleBase | r)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", gutter-1) + "└" + strings.Repeat("─", plotW) + "\n")

	lo := fmt.Sprintf("%.1f", minX)
	hi := fmt.Sprintf("%.1f", maxX)
	pad := plotW - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", gutter) + lo + strings.Repeat(" ", pad) + hi + "\n")

	center := gutter + (plotW-len(XAxisTitle))/2
	if center < 0 {
		center = 0
	}
	b.WriteString(strings.Repeat(" ", center) + XAxisTitle)
	return b.String()
}

func bounds(points []model.PlotPoint) (minX, maxX, minY, maxY float64) {
	if len(points) == 0 {
		return 0, 1, 0, 1
	}
	minX, maxX = points[0].RRR, points[0].RRR
	minY, maxY = points[0].Profit, points[0].Profit
	for _, p := range points[1:] {
		minX = math.Min(minX, p.RRR)
		maxX = math.Max(maxX, p.RRR)
		minY = math.Min(minY, p.Profit)
		maxY = math.Max(maxY, p.Profit)
	}
	// Degenerate ranges would divide by zero when scaling.
	if minX == maxX {
		maxX = minX + 1
	}
	if minY == maxY {
		maxY = minY + 1
	}
	return minX, maxX, minY, maxY
}
