package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"wordnet/internal/application/commands"
)

// RegisterQueryTools adds all read-only taxonomy tools to the MCP server.
func RegisterQueryTools(s *server.MCPServer, tx *Taxonomy) {
	s.AddTool(isNounTool(), isNounHandler(tx))
	s.AddTool(scaTool(), scaHandler(tx))
	s.AddTool(distanceTool(), distanceHandler(tx))
	s.AddTool(pathTool(), pathHandler(tx))
	s.AddTool(outcastTool(), outcastHandler(tx))
	s.AddTool(searchTool(), searchHandler(tx))
	s.AddTool(synsetsTool(), synsetsHandler(tx))
}

func nounPairTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("noun1",
			mcp.Description("First noun, WordNet spelling with underscores (e.g. edible_fruit)"),
			mcp.Required(),
		),
		mcp.WithString("noun2",
			mcp.Description("Second noun"),
			mcp.Required(),
		),
	)
}

// --- is_noun ---

func isNounTool() mcp.Tool {
	return mcp.NewTool("is_noun",
		mcp.WithDescription("Check whether a word is a WordNet noun."),
		mcp.WithString("word",
			mcp.Description("Word to look up"),
			mcp.Required(),
		),
	)
}

func isNounHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		word := req.GetString("word", "")
		return mcp.NewToolResultText(fmt.Sprint(tx.WordNet().IsNoun(word))), nil
	}
}

// --- sca ---

func scaTool() mcp.Tool {
	return nounPairTool("sca",
		"Find the shortest common ancestor of two nouns in the hypernym hierarchy. Returns the ancestor synset as space-separated nouns.")
}

func scaHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSCACommand(tx.WordNet(), req.GetString("noun1", ""), req.GetString("noun2", ""))
		sca, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sca), nil
	}
}

// --- distance ---

func distanceTool() mcp.Tool {
	return nounPairTool("distance",
		"Compute the shortest ancestral distance between two nouns: the fewest hypernym edges from any sense of each noun to a common ancestor.")
}

func distanceHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDistanceCommand(tx.WordNet(), req.GetString("noun1", ""), req.GetString("noun2", ""))
		d, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprint(d)), nil
	}
}

// --- path ---

func pathTool() mcp.Tool {
	return nounPairTool("path",
		"Describe the shortest ancestral path between two nouns: the ancestor with its gloss, the distance, and the sense of each noun the path starts from.")
}

func pathHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wn := tx.WordNet()
		p, err := commands.NewPathCommand(wn, req.GetString("noun1", ""), req.GetString("noun2", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		gloss, _ := wn.Gloss(p.Ancestor)
		from, _ := wn.Label(p.From)
		to, _ := wn.Label(p.To)

		var sb strings.Builder
		fmt.Fprintf(&sb, "ancestor: %s [%d]\n", p.AncestorLabel, p.Ancestor)
		if gloss != "" {
			fmt.Fprintf(&sb, "gloss: %s\n", gloss)
		}
		fmt.Fprintf(&sb, "distance: %d\n", p.Length)
		fmt.Fprintf(&sb, "from: %s [%d]\n", from, p.From)
		fmt.Fprintf(&sb, "to: %s [%d]\n", to, p.To)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- outcast ---

func outcastTool() mcp.Tool {
	return mcp.NewTool("outcast",
		mcp.WithDescription("Given a group of nouns, find the one least related to the others (largest summed distance)."),
		mcp.WithString("nouns",
			mcp.Description("At least two nouns separated by spaces or commas"),
			mcp.Required(),
		),
	)
}

func outcastHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nouns := strings.FieldsFunc(req.GetString("nouns", ""), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})

		result, err := commands.NewOutcastCommand(tx.WordNet(), nouns).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "outcast: %s\n", result.Outcast)
		for i, noun := range result.Nouns {
			fmt.Fprintf(&sb, "%s  %d\n", noun, result.Sums[i])
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search WordNet nouns by fuzzy match. Use it to find the exact spelling before other tools."),
		mcp.WithString("query",
			mcp.Description("Search query (at least two characters)"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
}

func searchHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(tx.WordNet(), query, req.GetInt("limit", 20)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %v\n", r.Noun, r.Synsets)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- synsets ---

func synsetsTool() mcp.Tool {
	return mcp.NewTool("synsets",
		mcp.WithDescription("List the senses (synsets) of a noun with their nouns and glosses."),
		mcp.WithString("noun",
			mcp.Description("Noun to look up"),
			mcp.Required(),
		),
	)
}

func synsetsHandler(tx *Taxonomy) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		wn := tx.WordNet()
		ids, err := wn.Synsets(req.GetString("noun", ""))
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, id := range ids {
			label, _ := wn.Label(id)
			gloss, _ := wn.Gloss(id)
			fmt.Fprintf(&sb, "[%d] %s: %s\n", id, label, gloss)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
