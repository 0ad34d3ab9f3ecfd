package statement

import (
	"sort"
	"strings"

	"github.com/dslipak/pdf"
)

// Geometry tolerances for rebuilding the statement table from positioned
// glyphs. Statement PDFs keep one baseline per visual row; columns are
// separated by whitespace an order of magnitude wider than a word gap.
const (
	rowTolerance = 2.0 // max Y drift inside one visual row
	wordGap      = 1.0 // min X gap that means a missing space glyph
	cellGap      = 7.0 // min X gap that means a column boundary
	maxLineGap   = 16.0
	colSlack     = 5.0
)

// textRow is one visual line of a page: glyph runs ordered left to right.
type textRow struct {
	y     float64
	texts []pdf.Text
}

// groupRows buckets positioned glyphs into visual rows, top to bottom.
func groupRows(texts []pdf.Text) []textRow {
	if len(texts) == 0 {
		return nil
	}

	sorted := append([]pdf.Text(nil), texts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		// PDF Y grows upward, so higher Y means earlier on the page.
		return sorted[i].Y > sorted[j].Y
	})

	var rows []textRow
	for _, t := range sorted {
		if n := len(rows); n > 0 && rows[n-1].y-t.Y <= rowTolerance {
			rows[n-1].texts = append(rows[n-1].texts, t)
			continue
		}
		rows = append(rows, textRow{y: t.Y, texts: []pdf.Text{t}})
	}

	for i := range rows {
		texts := rows[i].texts
		sort.SliceStable(texts, func(a, b int) bool {
			return texts[a].X < texts[b].X
		})
	}
	return rows
}

// cell is one reconstructed table cell.
type cell struct {
	x    float64
	text string
}

// splitCells merges a row's glyph runs into cells. A gap wider than
// cellGap starts a new cell; a narrower visible gap gets a space, which
// recovers word boundaries whether or not the document draws space glyphs.
func (r textRow) splitCells() []cell {
	var cells []cell
	var b strings.Builder
	var startX, endX float64

	flush := func() {
		if text := strings.TrimSpace(b.String()); text != "" {
			cells = append(cells, cell{x: startX, text: text})
		}
		b.Reset()
	}

	for _, t := range r.texts {
		if b.Len() > 0 {
			switch gap := t.X - endX; {
			case gap > cellGap:
				flush()
			case gap > wordGap:
				b.WriteByte(' ')
			}
		}
		if b.Len() == 0 {
			startX = t.X
		}
		b.WriteString(t.S)
		if end := t.X + t.W; end > endX {
			endX = end
		}
	}
	flush()
	return cells
}

// joinCells flattens a span of cells back into one text, for columns the
// clustering may have over-split.
func joinCells(cells []cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.text
	}
	return strings.Join(parts, " ")
}
