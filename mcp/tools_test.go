package mcp

import (
	"context"
	"strings"
	"testing"

	gomcp "github.com/mark3labs/mcp-go/mcp"
)

// resultText extracts the text string from a CallToolResult.
// It assumes the result contains exactly one TextContent item.
func resultText(t *testing.T, result *gomcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := gomcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("result content[0] is not TextContent: %T", result.Content[0])
	}
	return tc.Text
}

func newTestState(t *testing.T, gameName string) *GameState {
	t.Helper()
	state, err := NewGameState(gameName, 0)
	if err != nil {
		t.Fatalf("failed to create game state: %v", err)
	}
	return state
}

func callTool(t *testing.T, handler func(context.Context, gomcp.CallToolRequest) (*gomcp.CallToolResult, error), args map[string]any) *gomcp.CallToolResult {
	t.Helper()
	req := gomcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return result
}

func TestHandlePlayAction(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		wantErr  bool
		contains string
	}{
		{
			name:     "executes a movement command",
			args:     map[string]any{"action": "down"},
			contains: "Bottom of Hole",
		},
		{
			name:    "missing action is a tool error",
			args:    map[string]any{},
			wantErr: true,
		},
		{
			name:    "blank action is a tool error",
			args:    map[string]any{"action": "   "},
			wantErr: true,
		},
		{
			name:     "unknown verb gets an in-game rebuff",
			args:     map[string]any{"action": "teleport"},
			contains: `I don't know the word "teleport".`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState(t, "lostpig")
			result := callTool(t, handlePlayAction(state), tt.args)

			if tt.wantErr != result.IsError {
				t.Fatalf("IsError = %v, want %v", result.IsError, tt.wantErr)
			}
			if tt.contains != "" {
				text := resultText(t, result)
				if !strings.Contains(text, tt.contains) {
					t.Errorf("result %q does not contain %q", text, tt.contains)
				}
			}
		})
	}
}

func TestPlayActionScoreFooter(t *testing.T) {
	state := newTestState(t, "lostpig")

	result := callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	if text := resultText(t, result); !strings.Contains(text, "[Score: 0 | Moves: 1]") {
		t.Errorf("result missing score footer: %q", text)
	}

	result = callTool(t, handlePlayAction(state), map[string]any{"action": "take torch"})
	if text := resultText(t, result); !strings.Contains(text, "+5 points! (Total: 5)") {
		t.Errorf("result missing reward banner: %q", text)
	}

	result = callTool(t, handlePlayAction(state), map[string]any{"action": "quit"})
	if text := resultText(t, result); !strings.Contains(text, "GAME OVER") {
		t.Errorf("result missing game-over marker: %q", text)
	}
}

func TestHandleValidActions(t *testing.T) {
	state := newTestState(t, "lostpig")

	result := callTool(t, handleValidActions(state), nil)
	text := resultText(t, result)
	for _, want := range []string{
		"Valid Actions:",
		"  - down",
		"  - look",
		"  - inventory",
		"  - quit",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("valid_actions output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "take torch") {
		t.Errorf("valid_actions lists the torch before reaching it:\n%s", text)
	}

	callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	text = resultText(t, callTool(t, handleValidActions(state), nil))
	for _, want := range []string{"  - up", "  - north", "  - take torch", "  - examine torch"} {
		if !strings.Contains(text, want) {
			t.Errorf("valid_actions at the bottom of the hole missing %q:\n%s", want, text)
		}
	}

	callTool(t, handlePlayAction(state), map[string]any{"action": "take torch"})
	text = resultText(t, callTool(t, handleValidActions(state), nil))
	if !strings.Contains(text, "  - drop torch") {
		t.Errorf("valid_actions missing drop for a carried item:\n%s", text)
	}
}

func TestHandleCheckVocabulary(t *testing.T) {
	state := newTestState(t, "lostpig")

	tests := []struct {
		name     string
		args     map[string]any
		wantErr  bool
		contains string
	}{
		{
			name:     "known verb",
			args:     map[string]any{"word": "take"},
			contains: `Yes, the game understands "take".`,
		},
		{
			name:     "known item",
			args:     map[string]any{"word": "Torch"},
			contains: `Yes, the game understands "torch".`,
		},
		{
			name:     "unknown word",
			args:     map[string]any{"word": "teleport"},
			contains: "does NOT understand",
		},
		{
			name:    "missing word is a tool error",
			args:    map[string]any{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, handleCheckVocabulary(state), tt.args)
			if tt.wantErr != result.IsError {
				t.Fatalf("IsError = %v, want %v", result.IsError, tt.wantErr)
			}
			if tt.contains != "" {
				if text := resultText(t, result); !strings.Contains(text, tt.contains) {
					t.Errorf("result %q does not contain %q", text, tt.contains)
				}
			}
		})
	}
}

func TestHandleMemory(t *testing.T) {
	state := newTestState(t, "lostpig")

	callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	callTool(t, handlePlayAction(state), map[string]any{"action": "take torch"})

	result := callTool(t, handleMemory(state), nil)
	text := resultText(t, result)

	for _, want := range []string{
		"Location: Bottom of Hole",
		"Score: 5 points",
		"Moves: 2",
		"Game: lostpig",
		"> take torch ->",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("memory output missing %q:\n%s", want, text)
		}
	}
}

func TestHandleMemoryHistoryCapped(t *testing.T) {
	state, err := NewGameState("lostpig", 3)
	if err != nil {
		t.Fatalf("failed to create game state: %v", err)
	}
	for i := 0; i < 10; i++ {
		state.TakeAction("look")
	}
	if len(state.history) != 3 {
		t.Errorf("history length = %d, want 3", len(state.history))
	}
}

func TestHandleMap(t *testing.T) {
	state := newTestState(t, "lostpig")

	result := callTool(t, handleMap(state), nil)
	if text := resultText(t, result); !strings.Contains(text, "No locations explored yet") {
		t.Errorf("empty map output = %q", text)
	}

	callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	callTool(t, handlePlayAction(state), map[string]any{"action": "north"})

	result = callTool(t, handleMap(state), nil)
	text := resultText(t, result)
	for _, want := range []string{
		"* Pasture",
		"-> down -> Bottom of Hole",
		"* Bottom of Hole",
		"-> north -> Echoing Cave",
		"[Current] Echoing Cave",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("map output missing %q:\n%s", want, text)
		}
	}
}

func TestHandleInventory(t *testing.T) {
	state := newTestState(t, "lostpig")

	result := callTool(t, handleInventory(state), nil)
	if text := resultText(t, result); !strings.Contains(text, "empty-handed") {
		t.Errorf("inventory output = %q", text)
	}

	callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	callTool(t, handlePlayAction(state), map[string]any{"action": "take torch"})

	result = callTool(t, handleInventory(state), nil)
	if text := resultText(t, result); !strings.Contains(text, "torch") {
		t.Errorf("inventory output = %q", text)
	}
}

func TestSaveAndRestore(t *testing.T) {
	state := newTestState(t, "lostpig")

	callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	callTool(t, handlePlayAction(state), map[string]any{"action": "take torch"})

	result := callTool(t, handleSaveState(state), map[string]any{"label": "with-torch"})
	if result.IsError {
		t.Fatalf("save_state failed: %s", resultText(t, result))
	}

	callTool(t, handlePlayAction(state), map[string]any{"action": "drop torch"})

	result = callTool(t, handleRestoreState(state), map[string]any{"label": "with-torch"})
	if result.IsError {
		t.Fatalf("restore_state failed: %s", resultText(t, result))
	}
	if text := resultText(t, result); !strings.Contains(text, "restored") {
		t.Errorf("restore output = %q", text)
	}

	inv := resultText(t, callTool(t, handleInventory(state), nil))
	if !strings.Contains(inv, "torch") {
		t.Errorf("restore did not bring the torch back: %q", inv)
	}
}

func TestRestoreUnknownLabel(t *testing.T) {
	state := newTestState(t, "lostpig")
	result := callTool(t, handleRestoreState(state), map[string]any{"label": "nope"})
	if !result.IsError {
		t.Fatal("expected IsError=true for unknown save label")
	}
}

func TestHandleResetGame(t *testing.T) {
	state := newTestState(t, "lostpig")

	callTool(t, handlePlayAction(state), map[string]any{"action": "down"})
	callTool(t, handlePlayAction(state), map[string]any{"action": "take torch"})

	result := callTool(t, handleResetGame(state), nil)
	if text := resultText(t, result); !strings.Contains(text, "Grunk") {
		t.Errorf("reset output = %q", text)
	}
	if got := state.Last(); got.Score != 0 || got.Moves != 0 {
		t.Errorf("after reset score=%d moves=%d, want 0/0", got.Score, got.Moves)
	}
}

func TestHandleListGames(t *testing.T) {
	result := callTool(t, handleListGames(), nil)
	text := resultText(t, result)
	for _, want := range []string{"advent", "detective", "lostpig", "zork1"} {
		if !strings.Contains(text, want) {
			t.Errorf("list_games output missing %q: %s", want, text)
		}
	}
}

func TestHandleSwitchGame(t *testing.T) {
	state := newTestState(t, "lostpig")

	result := callTool(t, handleSwitchGame(state), map[string]any{"game": "zork1"})
	if result.IsError {
		t.Fatalf("switch_game failed: %s", resultText(t, result))
	}
	if got := state.GameName(); got != "zork1" {
		t.Errorf("GameName() = %q, want zork1", got)
	}

	result = callTool(t, handleSwitchGame(state), map[string]any{"game": "no-such-game"})
	if !result.IsError {
		t.Fatal("expected IsError=true for unknown game")
	}
}
