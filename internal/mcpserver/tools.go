package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/serikbay/budged/internal/aggregate"
	"github.com/serikbay/budged/internal/catalog"
	"github.com/serikbay/budged/internal/config"
	"github.com/serikbay/budged/internal/model"
	"github.com/serikbay/budged/internal/render"
	"github.com/serikbay/budged/internal/report"
	"github.com/serikbay/budged/internal/statement"
)

const dateLayout = "02.01.2006"

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("list_statements",
		mcp.WithDescription("List available PDF statement files in a directory."),
		mcp.WithString("directory",
			mcp.Description("Path to the folder containing PDF statements. Defaults to ./statements."),
			mcp.DefaultString(defaultStatementsDir),
		),
	), s.handleListStatements)

	s.mcp.AddTool(mcp.NewTool("parse_invoice",
		mcp.WithDescription("Parse a ForteBank PDF statement and return structured transaction data. "+
			"Each transaction includes date, amount (KZT), description, merchant, "+
			"MCC code, bank, and payment method where available."),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Absolute or relative path to the PDF file."),
		),
	), s.handleParseInvoice)

	s.mcp.AddTool(mcp.NewTool("spending_summary",
		mcp.WithDescription("Get a categorized spending summary from a ForteBank PDF statement."),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Path to the PDF statement file."),
		),
		mcp.WithString("group_by",
			mcp.Description("How to group spending: \"group\" for broad categories (Food & Dining, "+
				"Transport, etc.) or \"mcc\" for individual MCC merchant codes."),
			mcp.DefaultString("group"),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort order: \"sum\" or \"name\"."),
			mcp.DefaultString("sum"),
		),
		mcp.WithString("output_format",
			mcp.Description("\"json\" for structured data, \"ascii\" for a formatted table, "+
				"\"simple\" for plain text."),
			mcp.DefaultString("json"),
		),
	), s.handleSpendingSummary)

	s.mcp.AddTool(mcp.NewTool("raw_transactions_report",
		mcp.WithDescription("Get a formatted list of all transactions from a ForteBank PDF statement."),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Path to the PDF statement file."),
		),
		mcp.WithString("sort_by",
			mcp.Description("Sort order: \"sum\", \"name\", or \"date\"."),
			mcp.DefaultString("sum"),
		),
		mcp.WithString("output_format",
			mcp.Description("\"ascii\" for a box-drawing table, \"simple\" for plain text."),
			mcp.DefaultString("ascii"),
		),
	), s.handleRawTransactionsReport)

	s.mcp.AddTool(mcp.NewTool("get_categories",
		mcp.WithDescription("Return the MCC code mappings and spending category groups used for classification."),
	), s.handleGetCategories)

	s.mcp.AddTool(mcp.NewTool("parse_statement_raw",
		mcp.WithDescription("Parse a ForteBank PDF statement and return raw transactions as markdown. "+
			"Formatted for pasting or uploading into local chatbot apps: one block of "+
			"markdown-style text with a simple table of date, amount, description, and details."),
		mcp.WithString("pdf_path",
			mcp.Required(),
			mcp.Description("Absolute or relative path to the ForteBank PDF file."),
		),
	), s.handleParseStatementRaw)
}

type statementFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleListStatements(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir := resolvePath(req.GetString("directory", defaultStatementsDir))

	paths, err := statement.FindStatements(dir)
	if err != nil {
		return mcp.NewToolResultError("Directory not found: " + dir), nil
	}

	files := make([]statementFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, statementFile{Name: filepath.Base(p), Path: p})
	}
	return jsonResult(struct {
		Directory string          `json:"directory"`
		Files     []statementFile `json:"files"`
		Count     int             `json:"count"`
	}{Directory: dir, Files: files, Count: len(files)})
}

func (s *Server) handleParseInvoice(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	txns, file, errResult := s.loadTransactions(path)
	if errResult != nil {
		return errResult, nil
	}

	return jsonResult(struct {
		File             string                     `json:"file"`
		TransactionCount int                        `json:"transaction_count"`
		Transactions     []report.TransactionRecord `json:"transactions"`
		Totals           report.TotalsRecord        `json:"totals"`
	}{
		File:             file,
		TransactionCount: len(txns),
		Transactions:     report.Records(txns),
		Totals:           report.TotalsFor(txns),
	})
}

func (s *Server) handleSpendingSummary(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	groupBy := "group"
	key := aggregate.KeyGroup
	typ := report.TypeGroup
	if req.GetString("group_by", "group") == "mcc" {
		groupBy = "mcc"
		key = aggregate.KeyMCC
		typ = report.TypeMCC
	}
	sortKey := normalizeSort(req.GetString("sort_by", "sum"), false)

	txns, file, errResult := s.loadTransactions(path)
	if errResult != nil {
		return errResult, nil
	}

	switch format := req.GetString("output_format", "json"); format {
	case string(render.FormatASCII), string(render.FormatSimple):
		table, err := report.Assemble(typ, txns, sortKey)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := render.Render(table, render.Format(format))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	default:
		categories, err := report.CategoryTotals(txns, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(struct {
			File       string              `json:"file"`
			GroupBy    string              `json:"group_by"`
			Categories map[string]float64  `json:"categories"`
			Totals     report.TotalsRecord `json:"totals"`
		}{
			File:       file,
			GroupBy:    groupBy,
			Categories: categories,
			Totals:     report.TotalsFor(txns),
		})
	}
}

func (s *Server) handleRawTransactionsReport(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sortKey := normalizeSort(req.GetString("sort_by", "sum"), true)
	format := render.Format(req.GetString("output_format", "ascii"))
	if format != render.FormatASCII && format != render.FormatSimple {
		format = render.FormatASCII
	}

	txns, _, errResult := s.loadTransactions(path)
	if errResult != nil {
		return errResult, nil
	}

	table, err := report.Assemble(report.TypeRaw, txns, sortKey)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := render.Render(table, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleGetCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(struct {
		MCCCodes       map[string]string   `json:"mcc_codes"`
		CategoryGroups map[string][]string `json:"category_groups"`
	}{
		MCCCodes:       catalog.MCCNames(),
		CategoryGroups: catalog.Groups(),
	})
}

func (s *Server) handleParseStatementRaw(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdf_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	txns, file, errResult := s.loadTransactions(path)
	if errResult != nil {
		return errResult, nil
	}

	if len(txns) == 0 {
		return mcp.NewToolResultText(
			fmt.Sprintf("# ForteBank statement: %s\n\nNo transactions found in PDF.", file)), nil
	}

	lines := []string{
		"# ForteBank statement: " + file,
		fmt.Sprintf("Transactions: %d", len(txns)),
		"",
		"| Date | Sum | Description | Details |",
		"|------|-----|--------------|----------|",
	}
	for _, tx := range txns {
		lines = append(lines, fmt.Sprintf("| %s | %s KZT | %s | %s |",
			tx.Date.Format(dateLayout),
			tx.Amount.StringFixed(2),
			escapeTableCell(tx.Description),
			truncateDetails(escapeTableCell(tx.Details.Raw)),
		))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// loadTransactions resolves and parses a statement path. A missing or
// unreadable file comes back as a tool error result, never a transport
// error, so the client sees a regular tool response.
func (s *Server) loadTransactions(path string) ([]model.Transaction, string, *mcp.CallToolResult) {
	resolved := resolvePath(path)
	if _, err := os.Stat(resolved); err != nil {
		return nil, "", mcp.NewToolResultError("File not found: " + resolved)
	}
	txns, err := s.parser.ParseFile(resolved)
	if err != nil {
		return nil, "", mcp.NewToolResultError(err.Error())
	}
	return txns, filepath.Base(resolved), nil
}

// normalizeSort applies the lenient tool contract: anything outside the
// supported set falls back to sum instead of erroring, and date ordering
// only counts for raw listings.
func normalizeSort(s string, allowDate bool) aggregate.Sort {
	key, err := aggregate.ParseSort(s)
	switch {
	case err != nil, key == aggregate.SortNone:
		return aggregate.SortSum
	case key == aggregate.SortDate && !allowDate:
		return aggregate.SortSum
	default:
		return key
	}
}

func resolvePath(path string) string {
	resolved := config.ExpandPath(path)
	if abs, err := filepath.Abs(resolved); err == nil {
		resolved = abs
	}
	return resolved
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

var tableCellEscaper = strings.NewReplacer("|", "\\|", "\n", " ")

func escapeTableCell(s string) string {
	return strings.TrimSpace(tableCellEscaper.Replace(s))
}

// truncateDetails keeps markdown rows readable in a chat window.
func truncateDetails(s string) string {
	runes := []rune(s)
	if len(runes) <= 80 {
		return s
	}
	return string(runes[:77]) + "..."
}
