// Package mcp provides the stdio MCP server exposing split, rebuild and
// suggest tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/seedsplit/internal/buildinfo"
	"github.com/go-ports/seedsplit/internal/config"
	"github.com/go-ports/seedsplit/internal/models"
	"github.com/go-ports/seedsplit/internal/service"
)

const splitDescription = `
Split a BIP39 seed phrase (12-24 words) into two shares of the same length. Either share alone reveals nothing about the phrase; both shares together rebuild it exactly with seedsplit_rebuild.

Returns one or more independent (a, b) pairs. Keep exactly one pair and store its two shares in separate places. Never store both shares of a pair together.

Warnings (repeated words, missing BIP39 checksum) are advisory and do not stop the split.`

const rebuildDescription = `Rebuild a seed phrase from its two shares. Both shares must contain only wordlist words and have the same number of words. Share order does not matter.` //nolint:lll

const suggestDescription = `Check whether a word is in the wordlist and return the closest wordlist entry by edit distance. Use this to correct typos before calling seedsplit_split or seedsplit_rebuild.` //nolint:lll

// NewServer creates and registers all tools on a new MCP server.
// It is intentionally separate from Serve so that tests and other callers can
// obtain a fully configured server without committing to the stdio transport.
func NewServer(svc *service.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("seedsplit", buildinfo.Version)
	registerTools(s, svc)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, home, wordlistPath string) error {
	svc, err := service.New(home, wordlistPath)
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}
	return mcpserver.ServeStdio(NewServer(svc))
}

// registerTools wires all three MCP tools into the server.
func registerTools(s *mcpserver.MCPServer, svc *service.Service) {
	s.AddTool(mcp.NewTool("seedsplit_split",
		mcp.WithDescription(splitDescription),
		mcp.WithString("phrase",
			mcp.Description("The seed phrase, words separated by spaces."),
			mcp.Required(),
		),
		mcp.WithNumber("sets",
			mcp.Description(fmt.Sprintf("Number of independent share pairs (default from config, max %d).", config.MaxShareSets)),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSplit(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("seedsplit_rebuild",
		mcp.WithDescription(rebuildDescription),
		mcp.WithString("share_a",
			mcp.Description("Share A, words separated by spaces."),
			mcp.Required(),
		),
		mcp.WithString("share_b",
			mcp.Description("Share B, words separated by spaces."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRebuild(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("seedsplit_suggest",
		mcp.WithDescription(suggestDescription),
		mcp.WithString("word",
			mcp.Description("The word to look up."),
			mcp.Required(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSuggest(svc, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleSplit(ctx context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phrase := req.GetString("phrase", "")
	sets := req.GetInt("sets", 0)
	if sets < 0 {
		sets = 0
	}

	result, err := svc.Split(ctx, []string{phrase}, sets)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"pairs":    sharePairs(result.Pairs),
		"warnings": warningMessages(result.Warnings),
	})
}

func handleRebuild(ctx context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := req.GetString("share_a", "")
	b := req.GetString("share_b", "")

	result, err := svc.Rebuild(ctx, []string{a}, []string{b})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"phrase":   models.Join(result.Phrase),
		"words":    len(result.Phrase),
		"warnings": warningMessages(result.Warnings),
	})
}

func handleSuggest(svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word := req.GetString("word", "")
	if word == "" {
		return mcp.NewToolResultError("word is required"), nil
	}
	return jsonResult(svc.Suggest(word))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// sharePairs flattens each pair into space-separated strings, the form a
// user writes down.
func sharePairs(pairs []models.SharePair) []map[string]string {
	out := make([]map[string]string, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, map[string]string{
			"a": models.Join(p.A),
			"b": models.Join(p.B),
		})
	}
	return out
}

func warningMessages(ws []models.Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Message)
	}
	return out
}
