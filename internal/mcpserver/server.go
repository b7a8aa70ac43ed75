// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the three dispatch verbs (help, get, do) as tools over stdio
// JSON-RPC. It wraps an internal/command.Dispatcher; all command semantics,
// scope, and error handling live there, not in this package.
package mcpserver

import (
	"context"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/config"
)

// Server holds the MCP server state and configuration.
type Server struct {
	dispatcher *command.Dispatcher
}

// NewServer creates an MCP server backed by the given dispatcher.
func NewServer(dispatcher *command.Dispatcher) *Server {
	return &Server{dispatcher: dispatcher}
}

// Run starts the MCP stdio server. It blocks until stdin is closed or the
// listener fails; it runs under context.Background, so nothing cancels it.
func Run(dispatcher *command.Dispatcher) error {
	s := NewServer(dispatcher)

	mcpServer := server.NewMCPServer(
		"harnessd",
		config.Version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTools(
		server.ServerTool{Tool: helpTool(), Handler: s.handleHelp},
		server.ServerTool{Tool: getTool(), Handler: s.handleGet},
		server.ServerTool{Tool: doTool(), Handler: s.handleDo},
	)

	stdio := server.NewStdioServer(mcpServer)
	stdio.SetErrorLogger(log.New(os.Stderr, "[mcp] ", log.LstdFlags))

	return stdio.Listen(context.Background(), os.Stdin, os.Stdout)
}
