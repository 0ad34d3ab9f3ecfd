// Package mcpserver exposes statement parsing and spending analytics over
// the Model Context Protocol, so MCP-capable chat clients can browse,
// parse and summarize card statements through stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/serikbay/budged/internal/statement"
)

const defaultStatementsDir = "./statements"

const serverInstructions = "This server parses ForteBank (Kazakhstan) PDF card statements " +
	"and provides spending analytics. Use list_statements to discover " +
	"available PDF files, parse_invoice to extract transactions, " +
	"spending_summary to get categorized breakdowns, and " +
	"parse_statement_raw to get plain-text/markdown output suitable " +
	"for uploading or pasting into local chatbot apps."

// Server wires the statement parser into an MCP stdio server.
type Server struct {
	parser *statement.Parser
	mcp    *server.MCPServer
}

// New builds the server with every tool registered. version shows up in
// the MCP handshake.
func New(version string) *Server {
	s := &Server{parser: statement.NewParser()}
	s.mcp = server.NewMCPServer(
		"Budged – ForteBank Statement Analyzer",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)
	s.registerTools()
	return s
}

// ServeStdio answers MCP requests over stdin/stdout until the stream
// closes. Diagnostics must go to stderr; a stray write to stdout would
// corrupt the JSON-RPC stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
