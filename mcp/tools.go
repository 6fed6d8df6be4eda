package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/grue-labs/lantern/game"

	gomcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// handlePlayAction executes one game command. The observation is decorated
// with a score footer, a reward banner when the action scored points, and a
// GAME OVER marker when the game ended.
func handlePlayAction(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		action := req.GetString("action", "")
		if strings.TrimSpace(action) == "" {
			return gomcp.NewToolResultError("missing required parameter: action"), nil
		}
		Log("tool call: play_action %q", action)
		prev := state.Last()
		result := state.TakeAction(action)
		cur := state.Last()

		footer := fmt.Sprintf("\n\n[Score: %d | Moves: %d]", cur.Score, cur.Moves)
		if reward := cur.Score - prev.Score; reward > 0 {
			footer = fmt.Sprintf("\n\n+%d points! (Total: %d)", reward, cur.Score)
		}
		if cur.Done {
			footer += "\n\nGAME OVER"
		}
		return gomcp.NewToolResultText(result + footer), nil
	}
}

func handleMemory(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: memory")
		return gomcp.NewToolResultText(state.Memory()), nil
	}
}

func handleMap(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: game_map")
		return gomcp.NewToolResultText(state.Map()), nil
	}
}

func handleInventory(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: inventory")
		return gomcp.NewToolResultText(state.Inventory()), nil
	}
}

func handleValidActions(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: valid_actions")
		return gomcp.NewToolResultText(state.ValidActions()), nil
	}
}

func handleCheckVocabulary(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		word := req.GetString("word", "")
		if strings.TrimSpace(word) == "" {
			return gomcp.NewToolResultError("missing required parameter: word"), nil
		}
		Log("tool call: check_vocabulary %q", word)
		return gomcp.NewToolResultText(state.CheckVocabulary(word)), nil
	}
}

func handleSaveState(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		label := req.GetString("label", "")
		if label == "" {
			return gomcp.NewToolResultError("missing required parameter: label"), nil
		}
		Log("tool call: save_state %q", label)
		state.Save(label)
		return gomcp.NewToolResultText("Game state saved as \"" + label + "\"."), nil
	}
}

func handleRestoreState(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		label := req.GetString("label", "")
		if label == "" {
			return gomcp.NewToolResultError("missing required parameter: label"), nil
		}
		Log("tool call: restore_state %q", label)
		if err := state.RestoreSave(label); err != nil {
			return gomcp.NewToolResultError(err.Error()), nil
		}
		return gomcp.NewToolResultText("Game state \"" + label + "\" restored.\n\n" + state.Memory()), nil
	}
}

func handleResetGame(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: reset_game")
		return gomcp.NewToolResultText(state.Reset()), nil
	}
}

func handleListGames() mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: list_games")
		return gomcp.NewToolResultText("Available games: " + strings.Join(game.List(), ", ")), nil
	}
}

func handleSwitchGame(state *GameState) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		name := req.GetString("game", "")
		if name == "" {
			return gomcp.NewToolResultError("missing required parameter: game"), nil
		}
		Log("tool call: switch_game %q", name)
		obs, err := state.SwitchGame(name)
		if err != nil {
			return gomcp.NewToolResultError(err.Error()), nil
		}
		return gomcp.NewToolResultText(obs), nil
	}
}
