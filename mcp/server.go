package mcp

import (
	gomcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverInstructions = "You are playing a text adventure game. " +
	"Use play_action to send game commands like 'north', 'take lamp', or 'open mailbox'. " +
	"Call memory to see your location, score, and recent actions, and game_map to see " +
	"explored locations and exits. valid_actions lists what you can do right now and " +
	"check_vocabulary tests whether the game understands a word. Use save_state before trying something risky and " +
	"restore_state to undo it. The goal is to maximize your score before the move limit."

// GameMCPServer exposes one text adventure environment as MCP tools.
type GameMCPServer struct {
	server *mcpserver.MCPServer
	state  *GameState
}

// NewGameMCPServer creates an MCP server around the named game.
func NewGameMCPServer(gameName string, historyLimit int) (*GameMCPServer, error) {
	state, err := NewGameState(gameName, historyLimit)
	if err != nil {
		return nil, err
	}

	s := mcpserver.NewMCPServer(
		"lantern",
		"1.0.0",
		mcpserver.WithInstructions(serverInstructions),
	)

	g := &GameMCPServer{server: s, state: state}
	g.registerTools()

	Log("server created: game=%s", gameName)
	return g, nil
}

func (g *GameMCPServer) registerTools() {
	playAction := gomcp.NewTool("play_action",
		gomcp.WithDescription(
			"Execute one game command and return the result. Commands are plain "+
				"text like 'north', 'take lamp', 'open mailbox', 'inventory'.",
		),
		gomcp.WithString("action",
			gomcp.Required(),
			gomcp.Description("The game command to execute."),
		),
	)
	g.server.AddTool(playAction, handlePlayAction(g.state))

	memory := gomcp.NewTool("memory",
		gomcp.WithDescription(
			"Summarize the current game state: location, score, move count, "+
				"recent actions, and the latest observation.",
		),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	g.server.AddTool(memory, handleMemory(g.state))

	gameMap := gomcp.NewTool("game_map",
		gomcp.WithDescription(
			"Show all explored locations and the exits discovered between them.",
		),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	g.server.AddTool(gameMap, handleMap(g.state))

	inventory := gomcp.NewTool("inventory",
		gomcp.WithDescription("List the items you are carrying."),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	g.server.AddTool(inventory, handleInventory(g.state))

	validActions := gomcp.NewTool("valid_actions",
		gomcp.WithDescription(
			"List the actions available in the current game state: exits, "+
				"item interactions, and always-valid commands.",
		),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	g.server.AddTool(validActions, handleValidActions(g.state))

	checkVocabulary := gomcp.NewTool("check_vocabulary",
		gomcp.WithDescription(
			"Check whether the game understands a word. Use this before trying "+
				"unusual verbs or interacting with odd objects.",
		),
		gomcp.WithString("word",
			gomcp.Required(),
			gomcp.Description("The word to check."),
		),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	g.server.AddTool(checkVocabulary, handleCheckVocabulary(g.state))

	saveState := gomcp.NewTool("save_state",
		gomcp.WithDescription(
			"Save the full game state under a label so it can be restored later. "+
				"Use this before trying something that might lose the game.",
		),
		gomcp.WithString("label",
			gomcp.Required(),
			gomcp.Description("Name for the save slot."),
		),
	)
	g.server.AddTool(saveState, handleSaveState(g.state))

	restoreState := gomcp.NewTool("restore_state",
		gomcp.WithDescription("Restore a previously saved game state by label."),
		gomcp.WithString("label",
			gomcp.Required(),
			gomcp.Description("Name of the save slot to restore."),
		),
	)
	g.server.AddTool(restoreState, handleRestoreState(g.state))

	resetGame := gomcp.NewTool("reset_game",
		gomcp.WithDescription("Restart the current game from the beginning."),
	)
	g.server.AddTool(resetGame, handleResetGame(g.state))

	listGames := gomcp.NewTool("list_games",
		gomcp.WithDescription("List the available games."),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	g.server.AddTool(listGames, handleListGames())

	switchGame := gomcp.NewTool("switch_game",
		gomcp.WithDescription("Load a different game, discarding all current progress."),
		gomcp.WithString("game",
			gomcp.Required(),
			gomcp.Description("Name of the game to load."),
		),
	)
	g.server.AddTool(switchGame, handleSwitchGame(g.state))
}

// Serve starts the MCP server using stdio transport.
func (g *GameMCPServer) Serve() error {
	return mcpserver.ServeStdio(g.server)
}

// Underlying returns the wrapped mcp-go server, for in-process clients.
func (g *GameMCPServer) Underlying() *mcpserver.MCPServer {
	return g.server
}

// State returns the tracked game state.
func (g *GameMCPServer) State() *GameState {
	return g.state
}
