// Package statement extracts typed transactions from bank card-statement
// PDFs. Pages are reduced to positioned glyphs, glyphs to visual rows,
// rows to (date, sum, description, details) cells, and cells to
// model.Transaction values. One malformed row never fails a document; one
// unreadable document never fails a batch.
package statement

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"

	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

const dateLayout = "02.01.2006"

// Parser extracts transactions from statement PDFs. It holds no state, so
// one Parser may serve any number of goroutines.
type Parser struct{}

// NewParser creates a statement parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads a statement PDF from disk and parses it.
func (p *Parser) ParseFile(path string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewParseError(filepath.Base(path), err)
	}
	txns, err := p.parse(data)
	if err != nil {
		return nil, common.NewParseError(filepath.Base(path), err)
	}
	return txns, nil
}

// Parse extracts transactions from raw PDF bytes, in document order. A
// document with no transaction rows yields an empty result, not an error.
func (p *Parser) Parse(data []byte) ([]model.Transaction, error) {
	txns, err := p.parse(data)
	if err != nil {
		return nil, common.NewParseError("", err)
	}
	return txns, nil
}

func (p *Parser) parse(data []byte) (txns []model.Transaction, err error) {
	// The pdf library panics on structurally damaged documents; contain
	// that so a bad file reports an error instead of killing the batch.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("damaged document: %v", r)
		}
	}()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, common.ErrNotPDF
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	var raws []rawRow
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		raws = append(raws, p.scanPage(page, pageNum)...)
	}

	for _, raw := range raws {
		if t, ok := p.buildTransaction(raw); ok {
			txns = append(txns, t)
		}
	}
	return txns, nil
}

// rawRow is one table row as laid out in the document, before any value
// parsing. Geometry is kept so wrapped detail lines can be re-attached.
type rawRow struct {
	date        string
	sum         string
	description string
	details     string
	page        int
	detailsX    float64
	lastY       float64
}

// scanPage walks a page's visual rows and collects transaction rows,
// folding wrapped detail lines back into the row they belong to.
func (p *Parser) scanPage(page pdf.Page, pageNum int) []rawRow {
	rows := groupRows(page.Content().Text)

	var raws []rawRow
	pending := -1

	for _, row := range rows {
		cells := row.splitCells()
		if len(cells) == 0 {
			continue
		}

		if isDataRow(cells) {
			raw := rawRow{
				date:        cells[0].text,
				sum:         cells[1].text,
				description: cells[2].text,
				page:        pageNum,
				lastY:       row.y,
			}
			if len(cells) > 3 {
				raw.details = joinCells(cells[3:])
				raw.detailsX = cells[3].x
			}
			raws = append(raws, raw)
			pending = len(raws) - 1
			continue
		}

		if pending >= 0 && isContinuation(&raws[pending], row, cells) {
			raws[pending].details += " " + joinCells(cells)
			raws[pending].lastY = row.y
			continue
		}

		pending = -1
		slog.Debug("Skipping non-data row",
			"page", pageNum,
			"text", rowPreview(cells))
	}
	return raws
}

// isDataRow reports whether reconstructed cells form a transaction row:
// date, sum and description present, the first two in statement format.
// The details column may legitimately be empty.
func isDataRow(cells []cell) bool {
	if len(cells) < 3 {
		return false
	}
	return datePattern.MatchString(cells[0].text) && sumPattern.MatchString(cells[1].text)
}

// isContinuation reports whether a non-data row is a wrapped tail of the
// previous row's details: it must start inside the details column and sit
// directly under the line above. Headers, titles and page furniture start
// further left or further away and are rejected.
func isContinuation(raw *rawRow, row textRow, cells []cell) bool {
	if raw.detailsX == 0 {
		return false
	}
	if cells[0].x < raw.detailsX-colSlack {
		return false
	}
	drop := raw.lastY - row.y
	return drop > 0 && drop <= maxLineGap
}

// buildTransaction turns a raw row into a Transaction. Rows whose date or
// amount fail to parse are dropped with a diagnostic; a dropped row never
// aborts the document and no partial Transaction is ever emitted.
func (p *Parser) buildTransaction(raw rawRow) (model.Transaction, bool) {
	date, err := time.Parse(dateLayout, raw.date)
	if err != nil {
		slog.Debug("Dropping row with unparseable date",
			"page", raw.page,
			"date", raw.date,
			"error", err)
		return model.Transaction{}, false
	}

	amount, err := parseAmount(raw.sum)
	if err != nil {
		slog.Debug("Dropping row with unparseable amount",
			"page", raw.page,
			"sum", raw.sum,
			"error", err)
		return model.Transaction{}, false
	}

	description := strings.TrimSpace(raw.description)
	details, mcc := parseDetails(cleanDetails(raw.details))

	return model.Transaction{
		Date:        date,
		Description: description,
		MCC:         mcc,
		Kind:        classifyKind(description),
		Details:     details,
		Amount:      amount,
	}, true
}

func rowPreview(cells []cell) string {
	text := joinCells(cells)
	if runes := []rune(text); len(runes) > 40 {
		return string(runes[:40]) + "…"
	}
	return text
}
