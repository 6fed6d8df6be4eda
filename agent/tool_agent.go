package agent

import (
	"context"
	"fmt"
	"time"

	lanternmcp "github.com/grue-labs/lantern/mcp"

	"github.com/mark3labs/mcp-go/client"
	gomcp "github.com/mark3labs/mcp-go/mcp"
)

// ToolAgent plays a game through the MCP tool surface instead of stepping the
// environment directly, exercising exactly what external submissions see. The
// action policy is delegated to an inner agent.
type ToolAgent struct {
	policy Agent
	srv    *lanternmcp.GameMCPServer
	client *client.Client
}

// NewToolAgent connects an in-process MCP client to the given game server.
func NewToolAgent(ctx context.Context, srv *lanternmcp.GameMCPServer, policy Agent) (*ToolAgent, error) {
	c, err := client.NewInProcessClient(srv.Underlying())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-process client: %w", err)
	}

	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	initRequest := gomcp.InitializeRequest{
		Params: gomcp.InitializeParams{
			ProtocolVersion: gomcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    gomcp.ClientCapabilities{},
			ClientInfo: gomcp.Implementation{
				Name:    "lantern-tool-agent",
				Version: "1.0.0",
			},
		},
	}
	if _, err := c.Initialize(ctx, initRequest); err != nil {
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	return &ToolAgent{policy: policy, srv: srv, client: c}, nil
}

func (a *ToolAgent) Name() string {
	return "mcp-" + a.policy.Name()
}

// Close shuts down the MCP client.
func (a *ToolAgent) Close() error {
	return a.client.Close()
}

func (a *ToolAgent) callTool(ctx context.Context, name string, args map[string]any) (string, error) {
	req := gomcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := a.client.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tool %s failed: %w", name, err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("tool %s returned no content", name)
	}
	tc, ok := gomcp.AsTextContent(result.Content[0])
	if !ok {
		return "", fmt.Errorf("tool %s returned non-text content", name)
	}
	if result.IsError {
		return "", fmt.Errorf("tool %s: %s", name, tc.Text)
	}
	return tc.Text, nil
}

// Run resets the game and plays until it finishes or maxMoves is reached.
// Every move goes through the play_action tool.
func (a *ToolAgent) Run(ctx context.Context, maxMoves int) (Result, error) {
	start := time.Now()

	state := a.srv.State()
	result := Result{
		Game:     state.GameName(),
		Agent:    a.Name(),
		MaxScore: state.MaxScore(),
	}

	opening, err := a.callTool(ctx, "reset_game", nil)
	if err != nil {
		return result, err
	}
	result.Opening = opening

	last := state.Last()
	for !last.Done && last.Moves < maxMoves {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		action, err := a.policy.NextAction(ctx, last)
		if err != nil {
			return result, fmt.Errorf("policy %s failed on move %d: %w", a.policy.Name(), last.Moves+1, err)
		}

		obs, err := a.callTool(ctx, "play_action", map[string]any{"action": action})
		if err != nil {
			return result, err
		}

		result.Transcript = append(result.Transcript, Exchange{Action: action, Observation: obs})
		last = state.Last()
	}

	result.Score = last.Score
	result.Moves = last.Moves
	result.Victory = last.Victory
	result.Duration = time.Since(start)
	return result, nil
}
