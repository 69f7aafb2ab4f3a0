package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueHistory(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{
		"/api/league-history": `{"seasons":[
			{"year":2024,"champion":"Bombers","your_finish":"2nd","your_record":"90-40-10"},
			{"year":2023,"champion":"Cellar"}
		]}`,
	})}

	result, err := ts.leagueHistory(context.Background(), callRequest(nil))
	require.NoError(t, err)
	expected := "League History:\n" +
		"  2024: Champion: Bombers | You: 2nd (90-40-10)\n" +
		"  2023: Champion: Cellar"
	assert.Equal(t, expected, resultText(t, result))
}

func TestRecordBook(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{
		"/api/record-book": `{
			"champions":[{"year":2024,"team_name":"Bombers","manager":"Ann","record":"90-40-10"}],
			"careers":[{"manager":"Ann","wins":500,"losses":400,"ties":20,"win_pct":55.2,"seasons":8,"best_finish":1,"best_year":2024}],
			"first_picks":[{"year":2024,"player":"Shohei Ohtani"}]
		}`,
	})}

	result, err := ts.recordBook(context.Background(), callRequest(nil))
	require.NoError(t, err)
	expected := "Record Book:\n" +
		"\nChampions:\n" +
		"  2024: Bombers                   Ann             90-40-10\n" +
		"\nCareer Leaders:\n" +
		"  Ann             500-400-20 (55.2%)  8 seasons  Best: #1 (2024)\n" +
		"\n#1 Draft Picks:\n" +
		"  2024: Shohei Ohtani"
	assert.Equal(t, expected, resultText(t, result))
}

func TestPastStandingsCarriesYear(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/past-standings": `{"standings":[{"rank":1,"team_name":"Bombers","manager":"Ann","record":"80-50-5"}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.pastStandings(context.Background(), callRequest(map[string]any{"year": float64(2019)}))
	require.NoError(t, err)
	assert.Equal(t, "Standings for 2019:\n   1. Bombers                   Ann             80-50-5", resultText(t, result))
	assert.Equal(t, map[string]string{"year": "2019"}, api.lastCall().args)

	sc := structured(t, result)
	assert.Equal(t, "past-standings", sc["type"])
	assert.Equal(t, 2019, sc["year"])
}

func TestPastToolsRequireYear(t *testing.T) {
	ts := &toolset{api: newFakeAPI(nil)}

	for name, handler := range map[string]server.ToolHandlerFunc{
		"standings": ts.pastStandings,
		"draft":     ts.pastDraft,
		"teams":     ts.pastTeams,
		"trades":    ts.pastTrades,
		"matchup":   ts.pastMatchup,
	} {
		t.Run(name, func(t *testing.T) {
			result, err := handler(context.Background(), callRequest(nil))
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestPastDraftAndTeams(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/past-draft": `{"year":2021,"picks":[{"round":1,"pick":3,"player_name":"Ronald Acuna Jr.","team_name":"Bombers"}]}`,
		"/api/past-teams": `{"year":2021,"teams":[{"name":"Bombers","manager":"Ann","moves":31,"trades":2}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.pastDraft(context.Background(), callRequest(map[string]any{"year": float64(2021)}))
	require.NoError(t, err)
	assert.Equal(t, "Draft 2021:\n  Rd  1 Pick  3: Ronald Acuna Jr.          -> Bombers", resultText(t, result))
	assert.Equal(t, map[string]string{"year": "2021", "count": "25"}, api.lastCall().args)

	result, err = ts.pastTeams(context.Background(), callRequest(map[string]any{"year": float64(2021)}))
	require.NoError(t, err)
	assert.Equal(t, "Teams for 2021:\n  Bombers                   Ann             31 moves, 2 trades", resultText(t, result))
}

func TestPastTrades(t *testing.T) {
	api := newFakeAPI(map[string]string{"/api/past-trades": `{"trades":[]}`})
	ts := &toolset{api: api}

	result, err := ts.pastTrades(context.Background(), callRequest(map[string]any{"year": float64(2020)}))
	require.NoError(t, err)
	assert.Equal(t, "Trades for 2020:\n  No trades this season.", resultText(t, result))
	assert.Equal(t, map[string]string{"year": "2020", "count": "10"}, api.lastCall().args)

	api.responses["/api/past-trades"] = `{"trades":[{"trader_team":"Bombers","tradee_team":"Cellar","players":[{"name":"Pete Alonso","from":"Cellar","to":"Bombers"}]}]}`
	result, err = ts.pastTrades(context.Background(), callRequest(map[string]any{"year": float64(2021), "count": float64(1)}))
	require.NoError(t, err)
	assert.Equal(t, "Trades for 2021:\n  Bombers <-> Cellar\n    Pete Alonso: Cellar -> Bombers\n", resultText(t, result))
}

func TestPastMatchup(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/past-matchup": `{"matchups":[{"team1":"Bombers","team2":"Cellar","score":"7-3","status":"postevent"}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.pastMatchup(context.Background(), callRequest(map[string]any{"year": float64(2022), "week": float64(3)}))
	require.NoError(t, err)
	assert.Equal(t, "Matchups 2022 Week 3:\n  Bombers                   7-3        Cellar", resultText(t, result))
	assert.Equal(t, map[string]string{"year": "2022", "week": "3"}, api.lastCall().args)

	result, err = ts.pastMatchup(context.Background(), callRequest(map[string]any{"year": float64(2022)}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
