// Package mcpserver exposes a capability registry as Model Context Protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"capdemo/internal/capability"
	"capdemo/internal/output"
	"capdemo/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName = "capdemo"

	toolList   = "capability_list"
	toolInvoke = "capability_invoke"
)

// Server serves registry tools to MCP clients.
type Server struct {
	registry *capability.Registry
	mcp      *server.MCPServer
}

// New creates a server for registry. version is reported to clients.
func New(registry *capability.Registry, version string) *Server {
	s := &Server{
		registry: registry,
		mcp: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(true),
		),
	}

	s.mcp.AddTool(listTool(), s.handleList)
	s.mcp.AddTool(invokeTool(), s.handleInvoke)

	return s
}

// Tools returns the tool definitions served.
func Tools() []mcp.Tool {
	return []mcp.Tool{listTool(), invokeTool()}
}

func listTool() mcp.Tool {
	return mcp.NewTool(toolList,
		mcp.WithDescription("List every capability with its description and variant IDs"),
	)
}

func invokeTool() mcp.Tool {
	return mcp.NewTool(toolInvoke,
		mcp.WithDescription("Invoke one variant of a capability and return the lines it emitted"),
		mcp.WithString("capability",
			mcp.Required(),
			mcp.Description("Capability name, e.g. supplyPower"),
		),
		mcp.WithString("variant",
			mcp.Required(),
			mcp.Description("Variant ID within the capability, e.g. grid"),
		),
		mcp.WithArray("args",
			mcp.Description("Optional string arguments passed to the variant"),
			mcp.Items(map[string]interface{}{"type": "string"}),
		),
	)
}

// Serve runs the server on in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("MCPServer", "Serving %d tools over stdio", len(Tools()))
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// handleList handles the capability_list MCP tool
func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries := s.registry.Capabilities()
	if len(summaries) == 0 {
		return mcp.NewToolResultText("No capabilities registered"), nil
	}

	jsonData, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format capabilities: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleInvoke handles the capability_invoke MCP tool
func (s *Server) handleInvoke(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	capName, err := request.RequireString("capability")
	if err != nil {
		return mcp.NewToolResultError("capability parameter is required"), nil
	}
	variantID, err := request.RequireString("variant")
	if err != nil {
		return mcp.NewToolResultError("variant parameter is required"), nil
	}

	args, err := stringArgs(request.GetArguments()["args"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec := output.NewRecorder()
	if err := s.registry.InvokeTo(ctx, rec, capName, variantID, args...); err != nil {
		logging.Debug("MCPServer", "Invocation %s/%s failed: %v", capName, variantID, err)
		msg := err.Error()
		if lines := rec.String(); lines != "" {
			msg = lines + "\n" + msg
		}
		return mcp.NewToolResultError(msg), nil
	}

	return mcp.NewToolResultText(rec.String()), nil
}

func stringArgs(raw interface{}) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("args must be an array of strings")
	}
	args := make([]string, 0, len(items))
	for i, item := range items {
		str, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("args[%d] must be a string", i)
		}
		args = append(args, str)
	}
	return args, nil
}
