package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wordnet/internal/application/commands"
)

// RegisterAdminTools adds the taxonomy maintenance tools to the MCP server.
func RegisterAdminTools(s *server.MCPServer, tx *Taxonomy) {
	s.AddTool(validateTool(), validateHandler(tx))
	s.AddTool(syncTool(), syncHandler(tx))
}

// --- validate ---

func validateTool() mcp.Tool {
	return mcp.NewTool("validate",
		mcp.WithDescription("Report the size of the taxonomy and whether its hypernym graph is a rooted DAG."),
	)
}

func validateHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewValidateCommand(tx.WordNet()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "synsets: %d\nnouns: %d\nhypernyms: %d\nacyclic: %t\n",
			result.Synsets, result.Nouns, result.Edges, result.Acyclic)
		if result.RootLabel != "" {
			fmt.Fprintf(&sb, "root: %s [%d]\n", result.RootLabel, result.Roots[0])
		}
		if result.Problem != nil {
			fmt.Fprintf(&sb, "problem: %v\n", result.Problem)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Re-read the taxonomy files, rebuild the cache and start serving the new data."),
	)
}

func syncHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := tx.Reload(ctx)
		if err != nil {
			return toolError(err)
		}

		wn := result.WordNet
		msg := fmt.Sprintf("loaded %d synsets and %d nouns in %s",
			wn.SynsetCount(), wn.NounCount(), result.Duration.Round(time.Microsecond))
		if result.Stats != nil {
			msg += fmt.Sprintf("; cache rebuilt with %d hypernym links", result.Stats.HypernymsStored)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
