package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MegaCode111REAL/mancala-web/game/engine"
	"github.com/MegaCode111REAL/mancala-web/relay"
)

// Client is a thin MCP server that proxies to the REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates an MCP client that calls the REST API at baseURL.
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// GetMCPServer returns the underlying MCP server for stdio or HTTP serving.
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// initMCPServer initializes the MCP server with all tools.
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Mancala Web",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mancala Web - MCP Interface

This is a read-only view over a mancala matchmaking relay. Games are played
over WebSocket by the web and terminal clients; these tools let you observe
the lobby and reason about the rules.

AVAILABLE TOOLS:
- list_games: List the open rooms and who is in them
- server_status: Check relay liveness and room count
- game_rules: The sowing rule and board layout
- preview_sow: Apply the sowing rule to a given board without any server`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools.
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List the rooms currently open on the relay",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "server_status",
		Description: "Report relay liveness and the size of the room registry",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleServerStatus)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Explain the board layout and the sowing rule",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "preview_sow",
		Description: "Apply the sowing rule to a board and report the result",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"board": map[string]interface{}{
					"type":        "array",
					"description": "16 pit counts: south houses 0-6, south store 7, north houses 8-14, north store 15",
				},
				"turn": map[string]interface{}{
					"type":        "string",
					"description": "side to move: south or north",
				},
				"pit": map[string]interface{}{
					"type":        "number",
					"description": "pit index to sow from",
				},
			},
			Required: []string{"pit"},
		},
	}, c.handlePreviewSow)
}

// apiCall performs a GET against the REST API and decodes the JSON reply.
func (c *Client) apiCall(path string, result interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count int                 `json:"count"`
		Rooms []relay.GameSummary `json:"rooms"`
	}

	if err := c.apiCall("/api/rooms", &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No open games."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Open Games (%d):\n\n", response.Count)
	for _, room := range response.Rooms {
		fmt.Fprintf(&b, "- %s %q hosted by %s, %d player(s)\n",
			room.Room, room.Name, room.HostName, len(room.Players))
		for _, p := range room.Players {
			fmt.Fprintf(&b, "    %s (%s)\n", p.Name, p.ID)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleServerStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Status string `json:"status"`
		Rooms  int    `json:"rooms"`
	}

	if err := c.apiCall("/api/health", &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Status: %s\nOpen rooms: %d\n", response.Status, response.Rooms)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(`BOARD:
16 slots. South's houses are indices 0-6 with the south store at 7; north's
houses are 8-14 with the north store at 15. Every house starts with 7 seeds,
stores start empty. South moves first.

SOWING:
Pick one of your houses that holds seeds. Empty it, then drop its seeds one
per slot counter-clockwise (increasing index, wrapping at 16). No slot is
skipped, stores included. The turn then passes to the other side. There are
no captures or extra turns.

MULTIPLAYER:
One player hosts a room; the other requests to join and waits to be
accepted. Whoever moves applies the rule locally and sends the resulting
board; the opponent adopts it verbatim.`), nil
}

func (c *Client) handlePreviewSow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	pitArg, ok := args["pit"].(float64)
	if !ok {
		return mcp.NewToolResultError("pit is required"), nil
	}
	pit := int(pitArg)

	state := engine.NewGameState(nil)
	if turn, ok := args["turn"].(string); ok && turn != "" {
		side := engine.Side(turn)
		if !side.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown side %q", turn)), nil
		}
		state.Turn = side
	}
	if boardArg, ok := args["board"].([]interface{}); ok {
		board := make([]int, len(boardArg))
		for i, v := range boardArg {
			n, ok := v.(float64)
			if !ok {
				return mcp.NewToolResultError("board must be an array of numbers"), nil
			}
			board[i] = int(n)
		}
		if len(board) != len(state.Board) {
			return mcp.NewToolResultError(fmt.Sprintf("board must have %d slots", len(state.Board))), nil
		}
		state.Board = board
	}

	before := state.Clone()
	if err := state.Sow(pit); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Before: %v (turn: %s)\nAfter:  %v (turn: %s)\n",
		before.Board, before.Turn, state.Board, state.Turn)
	return mcp.NewToolResultText(result), nil
}
