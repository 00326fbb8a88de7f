// Package server exposes the inspector over the Model Context Protocol so
// agents can query hierarchy dumps without shell overhead.
package server

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rafiki270/XCUIDebug/internal/host"
	"github.com/rafiki270/XCUIDebug/internal/inspect"
	"github.com/rafiki270/XCUIDebug/internal/model"
	"github.com/rafiki270/XCUIDebug/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the host provider and dump cache.
type Server struct {
	cache     *DumpCache
	inspector *inspect.Inspector
	log       *zap.Logger
	mcp       *mcpserver.MCPServer
}

// New creates and configures an MCP server with the tree, path, and types
// tools.
func New(p *host.Provider, cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		cache: NewDumpCache(p.Source, cfg.CacheTTL),
		log:   log,
	}
	s.inspector = inspect.New(&host.Provider{Source: s.cache, Prober: p.Prober}, log)

	s.mcp = mcpserver.NewMCPServer("xcuidump", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.log.Info("starting MCP server",
		zap.String("transport", cfg.Transport),
		zap.Duration("cache_ttl", cfg.CacheTTL))

	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Render the UI element tree from the current hierarchy dump. Optionally filter by accessibility identifier and/or element type; matches keep their full ancestor chain."),
			mcp.WithString("identifier", mcp.Description("Accessibility identifier to filter by")),
			mcp.WithString("type", mcp.Description("Raw element-type token to filter by (e.g. 'Button')")),
		),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("path",
			mcp.WithDescription("Render the root-to-leaf ancestor path of the element with the given accessibility identifier."),
			mcp.WithString("identifier", mcp.Description("Accessibility identifier of the target element"), mcp.Required()),
		),
		s.handlePath,
	)

	s.mcp.AddTool(
		mcp.NewTool("types",
			mcp.WithDescription("List the element-type code table, or resolve a single code to its human-readable name."),
			mcp.WithNumber("code", mcp.Description("Resolve this element-type code only")),
		),
		s.handleTypes,
	)
}

func (s *Server) handleTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	f := model.Filter{
		Identifier: stringParam(params, "identifier", ""),
		Type:       stringParam(params, "type", ""),
	}

	text, err := s.inspector.TreeReport(ctx, f)
	if err != nil {
		s.log.Warn("tree tool failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handlePath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	identifier := stringParam(params, "identifier", "")
	if identifier == "" {
		return mcp.NewToolResultError("identifier is required"), nil
	}

	text, err := s.inspector.PathReport(ctx, identifier)
	if err != nil {
		s.log.Warn("path tool failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleTypes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	type typeEntry struct {
		Code int    `yaml:"code"`
		Name string `yaml:"name"`
	}

	if code := intParam(params, "code", -1); code >= 0 {
		name, ok := model.TypeNames[code]
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown element-type code: %d", code)), nil
		}
		b, _ := yaml.Marshal(typeEntry{Code: code, Name: name})
		return mcp.NewToolResultText(string(b)), nil
	}

	codes := make([]int, 0, len(model.TypeNames))
	for code := range model.TypeNames {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	entries := make([]typeEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, typeEntry{Code: code, Name: model.TypeNames[code]})
	}
	b, _ := yaml.Marshal(entries)
	return mcp.NewToolResultText(string(b)), nil
}

// stringParam extracts a string parameter from MCP tool arguments.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// intParam extracts a numeric parameter from MCP tool arguments. MCP numbers
// arrive as float64.
func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}
