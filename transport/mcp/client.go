package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/roversim/plateau/rover/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
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

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Plateau Rover Mission Simulator",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Plateau Rover Mission Simulator - MCP Interface

This is a thin client that proxies all requests to the REST API server.

MISSION MODEL:
Rovers land on a rectangular plateau and execute command programs. Commands
are L (turn left), R (turn right), M (move one cell forward). A move that
would leave the plateau is silently skipped. Rovers run sequentially from the
mission's point of view; the final report lists "x y D" per rover in input
order.

MISSION TEXT FORMAT:
  5 5          <- plateau upper-right corner (lower-left is always 0 0)
  1 2 N        <- rover start: x y direction (N/E/S/W)
  LMLMLMLMM    <- rover command program
  3 3 E        <- more rovers follow as position/program pairs
  MMRMMRMRRM

AVAILABLE TOOLS:
- create_session: Create a session from a library mission or inline text
- list_sessions: List all active sessions
- get_session: Get session details
- run_mission: Execute every rover and get the full result
- mission_report: Get only the final positions (plain text)
- rover_trace: Inspect one rover's step-by-step trace
- list_missions: List the mission library
- parse_mission: Validate mission text without creating a session`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new mission session from a library mission or inline mission text",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"mission_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of a library mission to load (optional, defaults to 'demo')",
				},
				"mission_text": map[string]interface{}{
					"type":        "string",
					"description": "Inline mission text; takes precedence over mission_name (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active mission sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Mission execution
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "run_mission",
		Description: "Execute every rover in the session and return the full run result",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"rerun": map[string]interface{}{
					"type":        "boolean",
					"description": "Force re-execution even if the session already ran",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRunMission)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "mission_report",
		Description: "Get only the final rover positions as plain text, one 'x y D' line per rover in input order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMissionReport)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "rover_trace",
		Description: "Get one rover's step-by-step execution trace, including rejected boundary moves",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"rover": map[string]interface{}{
					"type":        "integer",
					"description": "Rover index (1-based, input order)",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Steps per page",
				},
			},
			Required: []string{"session_id", "rover"},
		},
	}, c.handleRoverTrace)

	// Mission library
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_missions",
		Description: "List the available mission library",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListMissions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "parse_mission",
		Description: "Validate mission text without creating a session; reports the first error for invalid input",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Mission text to validate",
				},
			},
			Required: []string{"text"},
		},
	}, c.handleParseMission)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// apiCallText performs a GET and returns the raw response body as text.
func (c *Client) apiCallText(path string) (string, error) {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		if json.Unmarshal(data, &errResp) == nil {
			if msg, ok := errResp["error"]; ok {
				return "", fmt.Errorf("%s", msg)
			}
		}
		return "", fmt.Errorf("API error: %d", resp.StatusCode)
	}

	return string(data), nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	missionName, _ := args["mission_name"].(string)
	missionText, _ := args["mission_text"].(string)

	body := map[string]string{}
	if missionName != "" {
		body["mission_name"] = missionName
	}
	if missionText != "" {
		body["mission_text"] = missionText
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nMission: %s\nPlateau: %dx%d\nRovers: %d\n",
		session.ID, session.MissionName,
		session.Plateau.MaxX, session.Plateau.MaxY, session.RoverCount)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		ran := "not run"
		if s.Ran {
			ran = "ran"
		}
		result += fmt.Sprintf("- %s (Mission: %s, Rovers: %d, %s, Created: %s)\n",
			s.ID, s.MissionName, s.RoverCount, ran, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRunMission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	rerun, _ := args["rerun"].(bool)

	body := map[string]interface{}{
		"rerun": rerun,
	}

	var result service.RunResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/run", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatRunResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleMissionReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	report, err := c.apiCallText(fmt.Sprintf("/api/sessions/%s/report", sessionID))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(strings.TrimRight(report, "\n")), nil
}

func (c *Client) handleRoverTrace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	roverRaw, ok := args["rover"].(float64)
	if !ok {
		return mcp.NewToolResultError("rover index is required"), nil
	}
	rover := int(roverRaw)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var trace service.TraceResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/rovers/%d/trace%s", sessionID, rover, params), nil, &trace)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatTrace(&trace)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListMissions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var missions []service.MissionInfo
	err := c.apiCall("GET", "/api/missions", nil, &missions)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Missions:\n\n"
	for _, m := range missions {
		result += fmt.Sprintf("• %s\n  Plateau: %dx%d, Rovers: %d, Commands: %d\n\n",
			m.MissionID, m.PlateauMaxX, m.PlateauMaxY, m.RoverCount, m.TotalCommands)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleParseMission(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	text, _ := args["text"].(string)

	var response struct {
		Valid         bool   `json:"valid"`
		Error         string `json:"error"`
		RoverCount    int    `json:"rover_count"`
		TotalCommands int    `json:"total_commands"`
	}

	err := c.apiCall("POST", "/api/parse", map[string]string{"text": text}, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !response.Valid {
		return mcp.NewToolResultText(fmt.Sprintf("Invalid mission: %s", response.Error)), nil
	}

	result := fmt.Sprintf("Valid mission: %d rover(s), %d command(s)",
		response.RoverCount, response.TotalCommands)
	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	ran := "not run yet"
	if session.Ran {
		ran = "ran"
	}
	result := fmt.Sprintf("Session: %s\nMission: %s\nPlateau: %dx%d\nRovers: %d\nCommands: %d\nStatus: %s\nCreated: %s\n",
		session.ID, session.MissionName,
		session.Plateau.MaxX, session.Plateau.MaxY,
		session.RoverCount, session.TotalCommands, ran,
		session.CreatedAt.Format("2006-01-02 15:04:05"))

	if session.MissionText != "" {
		result += "\nMission text:\n" + session.MissionText + "\n"
	}

	return result
}

func formatRunResult(result *service.RunResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Session: %s • Mission: %s • Plateau: %dx%d\n",
		result.SessionID, result.MissionName, result.Plateau.MaxX, result.Plateau.MaxY))
	b.WriteString(fmt.Sprintf("Executed %d command(s) across %d rover(s)",
		result.TotalCommands, len(result.Rovers)))
	if result.RejectedMoves > 0 {
		b.WriteString(fmt.Sprintf(", %d move(s) rejected at the boundary", result.RejectedMoves))
	}
	b.WriteString("\n\nRovers:\n")

	for _, r := range result.Rovers {
		b.WriteString(fmt.Sprintf("%d. %d %d %s -> %d %d %s (commands: %s",
			r.Index,
			r.Start.Position.X, r.Start.Position.Y, r.Start.Direction,
			r.Final.Position.X, r.Final.Position.Y, r.Final.Direction,
			r.Commands))
		if r.RejectedMoves > 0 {
			b.WriteString(fmt.Sprintf(", rejected: %d", r.RejectedMoves))
		}
		b.WriteString(")\n")
	}

	b.WriteString("\nReport:\n")
	b.WriteString(result.Report)
	return b.String()
}

func formatTrace(trace *service.TraceResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Rover %d trace (Page %d/%d) - Total steps: %d\n\n",
		trace.RoverIndex, trace.Page, trace.TotalPages, trace.TotalSteps))

	if len(trace.Steps) == 0 {
		b.WriteString("(no steps on this page)")
		return b.String()
	}

	for _, s := range trace.Steps {
		status := ""
		switch {
		case s.Rejected:
			status = " [rejected: out of bounds]"
		case s.Moved:
			status = " [moved]"
		}
		b.WriteString(fmt.Sprintf("%d. %c (%d,%d %s) -> (%d,%d %s)%s\n",
			s.Idx, s.Command.Letter(),
			s.From.Position.X, s.From.Position.Y, s.From.Direction,
			s.To.Position.X, s.To.Position.Y, s.To.Direction,
			status))
	}

	if trace.HasNext {
		b.WriteString("\n(more steps on the next page)")
	}

	return b.String()
}
