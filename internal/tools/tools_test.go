package tools

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/franciscosanchezn/fbb-mcp/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	method string
	path   string
	args   map[string]string
}

// fakeAPI answers with canned JSON bodies keyed by path.
type fakeAPI struct {
	mu        sync.Mutex
	responses map[string]string
	calls     []apiCall
}

func newFakeAPI(responses map[string]string) *fakeAPI {
	return &fakeAPI{responses: responses}
}

func (f *fakeAPI) Get(ctx context.Context, path string, params map[string]string, out any) error {
	return f.answer("GET", path, params, out)
}

func (f *fakeAPI) Post(ctx context.Context, path string, body map[string]string, out any) error {
	return f.answer("POST", path, body, out)
}

func (f *fakeAPI) answer(method, path string, args map[string]string, out any) error {
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{method: method, path: path, args: args})
	body, ok := f.responses[path]
	f.mu.Unlock()
	if !ok {
		return &services.APIError{Status: 503, StatusText: "Service Unavailable", Body: "backend down"}
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeAPI) lastCall() apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func structured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	m, ok := result.StructuredContent.(map[string]any)
	require.True(t, ok, "expected structured content map")
	return m
}

func TestRosterFormatsPlayers(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/roster": `{"players":[
			{"name":"Shohei Ohtani","position":"Util","eligible_positions":["Util","SP"],"intel":{"statcast":{"quality_tier":"elite"},"trends":{"hot_cold":"hot"}}},
			{"name":"Mike Trout","eligible_positions":["OF"],"status":"IL10","intel":{"trends":{"hot_cold":"neutral"}}}
		]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.roster(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	expected := "Current Roster:\n" +
		"  Util Shohei Ohtani             Util,SP {elite} [hot]\n" +
		"  ?    Mike Trout                OF [IL10]"
	assert.Equal(t, expected, resultText(t, result))

	sc := structured(t, result)
	assert.Equal(t, "roster", sc["type"])
	assert.Len(t, sc["players"], 2)
}

func TestFreeAgentsDefaultsAndParams(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/free-agents": `{"pos_type":"P","players":[
			{"name":"Reliever One","positions":["RP"],"percent_owned":7,"player_id":"mlb.p.1"},
			{"name":"Reliever Two","player_id":42}
		]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.freeAgents(context.Background(), callRequest(map[string]any{"pos_type": "P", "count": float64(2)}))
	require.NoError(t, err)

	expected := "Top 2 Free Agent Pitchers:\n" +
		"  Reliever One              RP             7% owned  (id:mlb.p.1)\n" +
		"  Reliever Two              ?              0% owned  (id:42)"
	assert.Equal(t, expected, resultText(t, result))
	assert.Equal(t, map[string]string{"pos_type": "P", "count": "2"}, api.lastCall().args)

	_, err = ts.freeAgents(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"pos_type": "B", "count": "20"}, api.lastCall().args)
}

func TestSearchWithoutResults(t *testing.T) {
	api := newFakeAPI(map[string]string{"/api/search": `{"query":"nobody","results":[]}`})
	ts := &toolset{api: api}

	result, err := ts.search(context.Background(), callRequest(map[string]any{"player_name": "nobody"}))
	require.NoError(t, err)
	assert.Equal(t, "No free agents found matching: nobody", resultText(t, result))
	assert.Equal(t, "search", structured(t, result)["type"])
	assert.Equal(t, map[string]string{"name": "nobody"}, api.lastCall().args)
}

func TestSearchRequiresPlayerName(t *testing.T) {
	ts := &toolset{api: newFakeAPI(nil)}

	result, err := ts.search(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "_error", structured(t, result)["type"])
}

func TestWhoOwns(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"team", `{"ownership_type":"team","owner":"Bombers"}`, "Player 123 is owned by: Bombers"},
		{"free agent", `{"ownership_type":"freeagents"}`, "Player 123 is a free agent"},
		{"waivers", `{"ownership_type":"waivers"}`, "Player 123 is on waivers"},
		{"other", `{"ownership_type":"keeper"}`, "Player 123 ownership: keeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := &toolset{api: newFakeAPI(map[string]string{"/api/who-owns": tt.body})}
			result, err := ts.whoOwns(context.Background(), callRequest(map[string]any{"player_id": "123"}))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resultText(t, result))
		})
	}
}

func TestBrowserStatus(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{"/api/browser-login-status": `{"valid":false}`})}
	result, err := ts.browserStatus(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Browser session not valid: unknown. Run './yf browser-login' to set up.", resultText(t, result))

	ts = &toolset{api: newFakeAPI(map[string]string{"/api/browser-login-status": `{"valid":true,"cookie_count":4}`})}
	result, err = ts.browserStatus(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Browser session is valid (4 Yahoo cookies)", resultText(t, result))
}

func TestActionPostsArgumentsAndFallsBack(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/waiver-claim": `{"success":true,"message":"Claim submitted"}`,
		"/api/drop":         `{"success":false}`,
	})
	ts := &toolset{api: api}

	claim := ts.action("/api/waiver-claim", "waiver-claim", "Waiver claim result: ", "player_id")
	result, err := claim(context.Background(), callRequest(map[string]any{"player_id": "9", "faab": float64(12)}))
	require.NoError(t, err)
	assert.Equal(t, "Claim submitted", resultText(t, result))
	assert.Equal(t, apiCall{method: "POST", path: "/api/waiver-claim", args: map[string]string{"player_id": "9", "faab": "12"}}, api.lastCall())

	drop := ts.action("/api/drop", "drop", "Drop result: ", "player_id")
	result, err = drop(context.Background(), callRequest(map[string]any{"player_id": "9"}))
	require.NoError(t, err)
	assert.Equal(t, `Drop result: {"success":false}`, resultText(t, result))
	assert.Equal(t, "drop", structured(t, result)["type"])
}

func TestBackendErrorBecomesToolError(t *testing.T) {
	ts := &toolset{api: newFakeAPI(nil)}

	result, err := ts.standings(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: API error: 503 Service Unavailable - backend down", resultText(t, result))
	assert.Equal(t, map[string]any{
		"type":    "_error",
		"message": "API error: 503 Service Unavailable - backend down",
	}, structured(t, result))
}

func TestStandingsAndMatchups(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/standings": `{"standings":[{"rank":1,"name":"Bombers","wins":10,"losses":2,"points_for":88.5},{"rank":12,"name":"Cellar","wins":1,"losses":11}]}`,
		"/api/matchups":  `{"week":"3","matchups":[{"team1":"Bombers","team2":"Cellar","status":"postevent"}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.standings(context.Background(), callRequest(nil))
	require.NoError(t, err)
	expected := "League Standings:\n" +
		"   1. Bombers                        10-2 (88.5 pts)\n" +
		"  12. Cellar                         1-11"
	assert.Equal(t, expected, resultText(t, result))

	result, err = ts.matchups(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Matchups (week current):\n  Bombers                      vs  Cellar  (postevent)", resultText(t, result))
	assert.Empty(t, api.lastCall().args["week"])
}

func TestMyMatchup(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{
		"/api/matchup-detail": `{"week":5,"my_team":"Bombers","opponent":"Cellar","score":{"wins":6,"losses":3,"ties":1},
			"categories":[{"name":"HR","my_value":12,"opp_value":"8","result":"win"},{"name":"ERA","my_value":"3.10","opp_value":"2.95","result":"loss"},{"name":"SV","my_value":2,"opp_value":2,"result":"tie"}]}`,
	})}

	result, err := ts.myMatchup(context.Background(), callRequest(nil))
	require.NoError(t, err)
	expected := "Week 5 Matchup: Bombers vs Cellar\n" +
		"Score: 6-3-1\n" +
		"  W HR               12 vs        8\n" +
		"  L ERA            3.10 vs     2.95\n" +
		"  T SV                2 vs        2"
	assert.Equal(t, expected, resultText(t, result))
}

func TestTransactionsSendsTypeParam(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/transactions": `{"transactions":[{"type":"add","player":"Joe Prospect","team":"Bombers"},{"type":"drop","player":"Old Vet"}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.transactions(context.Background(), callRequest(map[string]any{"trans_type": "add"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"type": "add", "count": "25"}, api.lastCall().args)
	expected := "Recent transactions (add):\n" +
		"  add      Joe Prospect              -> Bombers\n" +
		"  drop     Old Vet                  "
	assert.Equal(t, expected, resultText(t, result))
}

func TestMlbStatsSortsKeys(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/mlb/stats": `{"season":"2024","stats":{"hr":44,"avg":".310","rbi":130}}`,
	})
	ts := &toolset{api: api}

	result, err := ts.mlbStats(context.Background(), callRequest(map[string]any{"player_id": "660271", "season": "2024"}))
	require.NoError(t, err)
	assert.Equal(t, "Stats for 2024:\n  avg: .310\n  hr: 44\n  rbi: 130", resultText(t, result))

	_, err = ts.mlbStats(context.Background(), callRequest(map[string]any{"player_id": "660271"}))
	require.NoError(t, err)
	assert.Equal(t, "2025", api.lastCall().args["season"])
}

func TestMlbStandingsAndInjuries(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{
		"/api/mlb/standings": `{"divisions":[{"name":"AL East","teams":[{"name":"Yankees","wins":94,"losses":68,"games_back":"-"}]}]}`,
		"/api/mlb/injuries":  `{"injuries":[]}`,
	})}

	result, err := ts.mlbStandings(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "\nAL East:\n  Yankees                   94-68 (- GB)", resultText(t, result))

	result, err = ts.mlbInjuries(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "No injuries reported (may be offseason)", resultText(t, result))
}

func TestStructuredPayloadKeepsBackendType(t *testing.T) {
	result := structuredResult("roster", "x", map[string]any{"type": "custom", "n": 1.0})
	assert.Equal(t, map[string]any{"type": "custom", "n": 1.0}, result.StructuredContent)
}

func TestInstrumentRecordsToolCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	ts := &toolset{api: newFakeAPI(nil), metrics: metrics.New(reg)}

	handler := ts.instrument("yahoo_standings", ts.standings)
	_, err := handler(context.Background(), callRequest(nil))
	require.NoError(t, err)

	expected := `
# HELP fbb_mcp_tool_calls_total MCP tool invocations by tool and outcome.
# TYPE fbb_mcp_tool_calls_total counter
fbb_mcp_tool_calls_total{outcome="failure",tool="yahoo_standings"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "fbb_mcp_tool_calls_total"))
}

func TestAppViewReadsBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roster.html"), []byte("<html>roster</html>"), 0o644))

	contents, err := appViews[0].handler(dir)(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, RosterURI, text.URI)
	assert.Equal(t, AppMIMEType, text.MIMEType)
	assert.Equal(t, "<html>roster</html>", text.Text)

	_, err = appViews[1].handler(dir)(context.Background(), mcp.ReadResourceRequest{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func listTools(t *testing.T, writes bool) map[string]map[string]any {
	t.Helper()
	s := NewServer(newFakeAPI(nil), Options{UIDir: t.TempDir(), WritesEnabled: writes})

	init := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1"}}}`
	s.HandleMessage(context.Background(), json.RawMessage(init))

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Tools []map[string]any `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	byName := make(map[string]map[string]any, len(decoded.Result.Tools))
	for _, tool := range decoded.Result.Tools {
		byName[tool["name"].(string)] = tool
	}
	return byName
}

func TestNewServerRegistersTools(t *testing.T) {
	tools := listTools(t, false)

	assert.Contains(t, tools, "yahoo_roster")
	assert.Contains(t, tools, "yahoo_standings")
	assert.Contains(t, tools, "mlb_schedule")
	assert.NotContains(t, tools, "yahoo_add")
	assert.Len(t, tools, 40)

	meta, ok := tools["mlb_teams"]["_meta"].(map[string]any)
	require.True(t, ok, "tool should carry _meta")
	assert.Equal(t, map[string]any{"resourceUri": MLBURI}, meta["ui"])

	for name, uri := range map[string]string{
		"yahoo_rankings":        ValuationsURI,
		"yahoo_best_available":  DraftURI,
		"yahoo_past_matchup":    HistoryURI,
		"fantasy_player_report": IntelURI,
	} {
		meta, ok := tools[name]["_meta"].(map[string]any)
		require.True(t, ok, name)
		assert.Equal(t, map[string]any{"resourceUri": uri}, meta["ui"], name)
	}
}

func TestNewServerWriteTools(t *testing.T) {
	tools := listTools(t, true)

	for _, name := range []string{"yahoo_add", "yahoo_drop", "yahoo_swap", "yahoo_waiver_claim", "yahoo_waiver_claim_swap"} {
		assert.Contains(t, tools, name)
	}
	assert.Len(t, tools, 45)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "", str(nil))
	assert.Equal(t, "3", str(float64(3)))
	assert.Equal(t, "0.25", str(0.25))
	assert.Equal(t, "1B,OF", str([]any{"1B", "OF"}))
	assert.Equal(t, "ab  ", padEnd("ab", 4))
	assert.Equal(t, "abcdef", padEnd("abcdef", 4))
	assert.Equal(t, "  7", padStart("7", 3))
	assert.Equal(t, 0, orZero(""))
	assert.Equal(t, "x", orDefault("", "x"))
}

func TestEveryToolViewIsRegistered(t *testing.T) {
	uris := make(map[string]bool, len(appViews))
	for _, v := range appViews {
		uris[v.uri] = true
	}
	assert.Len(t, uris, 7)

	for name, tool := range listTools(t, true) {
		meta, ok := tool["_meta"].(map[string]any)
		require.True(t, ok, name)
		ui, ok := meta["ui"].(map[string]any)
		require.True(t, ok, name)
		assert.True(t, uris[ui["resourceUri"].(string)], name)
	}
}
