package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/runraisenext/internal/config"
	"github.com/mj1618/runraisenext/internal/model"
	"github.com/mj1618/runraisenext/internal/mru"
	"github.com/mj1618/runraisenext/internal/platform"
	"github.com/mj1618/runraisenext/internal/version"
)

// mcpServer wraps the MCP server with the platform provider.
type mcpServer struct {
	provider *platform.Provider
	cfg      MCPConfig
	// Serializes runs: each raise reads and rewrites the MRU snapshot,
	// and concurrent tool calls must not interleave on it.
	runMu sync.Mutex
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport   string
	Port        int
	AliasesFile string
	StateFile   string
}

// newMCPServer creates and configures an MCP server with all
// runraisenext tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		provider: provider,
		cfg:      cfg,
	}

	s.mcp = mcpserver.NewMCPServer(
		"runraisenext",
		version.Version,
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
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

func (s *mcpServer) registerTools() {
	// raise
	s.mcp.AddTool(
		mcp.NewTool("raise",
			mcp.WithDescription("Launch an app, focus its most recently used window, or cycle to its next window, depending on what is open and focused. Target an alias from the aliases file and/or explicit window spec attributes."),
			mcp.WithString("alias", mcp.Description("Alias from the aliases file (case-insensitive)")),
			mcp.WithString("id", mcp.Description("Window ID to look for, e.g. 0x0180000b")),
			mcp.WithString("desktop", mcp.Description("Desktop to look for windows on, e.g. 1")),
			mcp.WithString("pid", mcp.Description("PID to look for")),
			mcp.WithString("wm-class", mcp.Description("WM_CLASS substring to look for, e.g. .Firefox")),
			mcp.WithString("machine", mcp.Description("Client machine name to look for")),
			mcp.WithString("title", mcp.Description("Window title substring to look for")),
			mcp.WithString("command", mcp.Description("Command that launches the app when no window matches")),
		),
		s.handleRaise,
	)

	// list
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List open windows in most-recently-used order, with id, desktop, pid, wm_class, machine and title for writing window specs"),
			mcp.WithBoolean("live", mcp.Description("Show the window manager's own ordering instead of the MRU order")),
		),
		s.handleList,
	)

	// aliases
	s.mcp.AddTool(
		mcp.NewTool("aliases",
			mcp.WithDescription("List the aliases defined in the aliases file with their window specs"),
		),
		s.handleAliases,
	)
}

func (s *mcpServer) handleRaise(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	overlay := model.WindowSpec{
		ID:      stringParam(params, "id", ""),
		Desktop: stringParam(params, "desktop", ""),
		PID:     stringParam(params, "pid", ""),
		WMClass: stringParam(params, "wm-class", ""),
		Machine: stringParam(params, "machine", ""),
		Title:   stringParam(params, "title", ""),
		Command: stringParam(params, "command", ""),
	}

	var spec model.WindowSpec
	if alias := stringParam(params, "alias", ""); alias != "" {
		var err error
		spec, err = config.Resolve(alias, s.cfg.AliasesFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	spec = spec.Merge(overlay)

	s.runMu.Lock()
	defer s.runMu.Unlock()

	result, err := newRunner(s.provider, s.cfg.StateFile).Run(spec)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(result)
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	live := boolParam(params, "live", false)

	s.runMu.Lock()
	defer s.runMu.Unlock()

	windows, err := s.provider.Querier.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !live {
		store := mru.NewStore(config.ExpandHome(s.cfg.StateFile))
		windows = mru.Reconcile(store.Load(), windows)
	}

	focused, _ := s.provider.Querier.FocusedWindow()
	entries := make([]listEntry, len(windows))
	for i, w := range windows {
		entries[i] = listEntry{Window: w, Focused: focused != nil && focused.Same(w)}
	}
	return yamlResult(entries)
}

func (s *mcpServer) handleAliases(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	specs, err := config.Load(s.cfg.AliasesFile)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries := make([]aliasEntry, 0, len(specs))
	for _, name := range config.Names(specs) {
		entries = append(entries, aliasEntry{Alias: name, Spec: specs[name]})
	}
	return yamlResult(entries)
}

// yamlResult serializes v to YAML for an MCP text response.
func yamlResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
