// Package testutil generates card statement PDF fixtures for tests.
// The generated documents are uncompressed PDF 1.4 with the same layout a
// real statement export uses: a title line, a bold header row repeated on
// every page, and one table row per transaction with the details column
// wrapped at a fixed width.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Row is one statement line fed to the fixture builder.
type Row struct {
	Date        string
	Sum         string
	Description string
	Details     string
}

const statementTitle = "Card account statement for period 01.01.2026 - 31.01.2026"

// Page geometry in PostScript points. Column positions mirror a statement
// table with 15mm side margins and 22/30/38mm column widths.
const (
	pageWidth  = 595.28
	pageHeight = 841.89

	marginLeft   = 42.5
	bottomMargin = 60.0

	colDateX    = 46.5
	colSumX     = 108.9
	colDescX    = 193.9
	colDetailsX = 301.6

	detailsWrapWidth = 200.0

	titleY         = 790.0
	titleFontSize  = 12.0
	headerFontSize = 9.0
	bodyFontSize   = 8.0

	rowLeading     = 16.0
	wrapLeading    = 10.0
	gapAfterTitle  = 24.0
	gapAfterHeader = 18.0
)

const (
	fontBody = "F1"
	fontBold = "F2"
)

// StatementPDF renders rows into a complete statement document. Pages break
// automatically when the table runs past the bottom margin, and each new
// page starts with a fresh header row.
func StatementPDF(rows []Row) []byte {
	pages := layout(rows)

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		pagesObject(len(pages)),
		fontObject("Helvetica"),
		fontObject("Helvetica-Bold"),
	}
	for i, stream := range pages {
		objects = append(objects, pageObject(6+2*i), streamObject(stream))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	start := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, start)
	return buf.Bytes()
}

// WriteStatement renders rows to a statement PDF under dir and returns the path.
func WriteStatement(t *testing.T, dir, name string, rows []Row) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, StatementPDF(rows), 0o644); err != nil {
		t.Fatalf("failed to write statement fixture %s: %v", name, err)
	}
	return path
}

type page struct {
	ops strings.Builder
}

func (p *page) text(font string, size, x, y float64, s string) {
	fmt.Fprintf(&p.ops, "BT /%s %.1f Tf 1 0 0 1 %.2f %.2f Tm (%s) Tj ET\n", font, size, x, y, escapeText(s))
}

func (p *page) headerBand(y float64) {
	fmt.Fprintf(&p.ops, "0.267 0.447 0.769 rg %.2f %.2f %.2f %.2f re f 0 0 0 rg\n",
		marginLeft, y-3.5, pageWidth-2*marginLeft, 13.0)
}

func layout(rows []Row) []string {
	var pages []string
	p := &page{}

	startPage := func(withTitle bool) float64 {
		p = &page{}
		y := titleY
		if withTitle {
			p.text(fontBold, titleFontSize, marginLeft, y, statementTitle)
			y -= gapAfterTitle
		}
		p.headerBand(y)
		p.text(fontBold, headerFontSize, colDateX, y, "Date")
		p.text(fontBold, headerFontSize, colSumX, y, "Sum")
		p.text(fontBold, headerFontSize, colDescX, y, "Description")
		p.text(fontBold, headerFontSize, colDetailsX, y, "Details")
		return y - gapAfterHeader
	}

	y := startPage(true)
	for _, row := range rows {
		lines := wrap(row.Details, bodyFontSize, detailsWrapWidth)
		height := rowLeading
		if len(lines) > 1 {
			height += wrapLeading * float64(len(lines)-1)
		}
		if y-height < bottomMargin {
			pages = append(pages, p.ops.String())
			y = startPage(false)
		}
		p.text(fontBody, bodyFontSize, colDateX, y, row.Date)
		p.text(fontBody, bodyFontSize, colSumX, y, row.Sum)
		p.text(fontBody, bodyFontSize, colDescX, y, row.Description)
		for i, line := range lines {
			p.text(fontBody, bodyFontSize, colDetailsX, y-wrapLeading*float64(i), line)
		}
		y -= height
	}
	pages = append(pages, p.ops.String())
	return pages
}

// wrap splits s into lines no wider than width points, breaking on spaces.
// A single word longer than width stays on its own line.
func wrap(s string, size, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 1)
	line := words[0]
	for _, word := range words[1:] {
		if textWidth(line+" "+word, size) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

func textWidth(s string, size float64) float64 {
	units := 0
	for _, r := range s {
		units += glyphWidth(r)
	}
	return float64(units) * size / 1000
}

func glyphWidth(r rune) int {
	if r < 32 || r > 126 {
		return 556
	}
	return helveticaWidths[r-32]
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var textEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

func pagesObject(count int) string {
	kids := make([]string, count)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 5+2*i)
	}
	return fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), count)
}

func pageObject(contents int) string {
	return fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] "+
		"/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
		pageWidth, pageHeight, contents)
}

func streamObject(content string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content)
}

func fontObject(base string) string {
	widths := make([]string, len(helveticaWidths))
	for i, w := range helveticaWidths {
		widths[i] = strconv.Itoa(w)
	}
	return fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /%s "+
		"/Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>",
		base, strings.Join(widths, " "))
}

// helveticaWidths holds the standard Helvetica advance widths for character
// codes 32 through 126, in 1/1000 em units.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, // space ! " # $ % & '
	333, 333, 389, 584, 278, 333, 278, 278, // ( ) * + , - . /
	556, 556, 556, 556, 556, 556, 556, 556, // 0 1 2 3 4 5 6 7
	556, 556, 278, 278, 584, 584, 584, 556, // 8 9 : ; < = > ?
	1015, 667, 667, 722, 722, 667, 611, 778, // @ A B C D E F G
	722, 278, 500, 667, 556, 833, 722, 778, // H I J K L M N O
	667, 778, 722, 667, 611, 722, 667, 944, // P Q R S T U V W
	667, 667, 611, 278, 278, 278, 469, 556, // X Y Z [ \ ] ^ _
	333, 556, 556, 500, 556, 556, 278, 556, // ` a b c d e f g
	556, 222, 222, 500, 222, 833, 556, 556, // h i j k l m n o
	556, 556, 333, 500, 278, 556, 500, 722, // p q r s t u v w
	500, 500, 500, 334, 260, 334, 584, // x y z { | } ~
}
