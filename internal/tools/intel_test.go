package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerReport(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/intel/player": `{"name":"Juan Soto",
			"statcast":{"quality_tier":"elite","xwoba":0.421,"xwoba_pct_rank":99,"avg_exit_velo":93.1,"ev_pct_rank":0,"hard_hit_rate":55},
			"trends":{"hot_cold":"hot","last_14_days":{"hr":5,"avg":".340"}},
			"context":{"reddit_mentions":12,"reddit_sentiment":"positive"},
			"discipline":{"bb_rate":"18.9%"}}`,
	})
	ts := &toolset{api: api}

	result, err := ts.playerReport(context.Background(), callRequest(map[string]any{"player_name": "Juan Soto"}))
	require.NoError(t, err)

	expected := "Player Intelligence: Juan Soto\n" +
		"\n" +
		"Statcast: ELITE\n" +
		"  xwOBA: 0.421 (99th pct)\n" +
		"  Exit Velo: 93.1 (?th pct)\n" +
		"  Hard Hit: 55% (?th pct)\n" +
		"\n" +
		"Trend: HOT\n" +
		"  14-Day: hr=5, avg=.340\n" +
		"\n" +
		"Reddit: 12 mentions (positive)\n" +
		"\n" +
		"Plate Discipline:\n" +
		"  BB%: 18.9%"
	assert.Equal(t, expected, resultText(t, result))
	assert.Equal(t, map[string]string{"name": "Juan Soto"}, api.lastCall().args)
	assert.Equal(t, "intel-player", structured(t, result)["type"])
}

func TestPlayerReportWithoutSections(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{
		"/api/intel/player": `{"name":"Nobody","statcast":{},"context":{"reddit_mentions":0}}`,
	})}

	result, err := ts.playerReport(context.Background(), callRequest(map[string]any{"player_name": "Nobody"}))
	require.NoError(t, err)
	assert.Equal(t, "Player Intelligence: Nobody\n\nStatcast: UNKNOWN", resultText(t, result))
}

func TestBreakoutAndBustCandidates(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/intel/breakouts": `{"candidates":[{"name":"Riser","woba":0.3,"xwoba":0.355,"diff":0.055,"pa":210}]}`,
		"/api/intel/busts":     `{"candidates":[{"name":"Faller","woba":0.39,"xwoba":0.35,"diff":0.04,"pa":88}]}`,
	})
	ts := &toolset{api: api}
	header := "  Player                      wOBA  xwOBA   Diff   PA\n" +
		"  -------------------------------------------------------\n"

	breakouts := ts.candidates("/api/intel/breakouts", "intel-breakouts", "Breakout Candidates", "xwOBA exceeds actual wOBA", "+")
	result, err := breakouts(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Breakout Candidates (Hitters) - xwOBA exceeds actual wOBA:\n"+header+
		"  Riser                      0.300    0.355  + 0.055  210", resultText(t, result))
	assert.Equal(t, map[string]string{"pos_type": "B", "count": "15"}, api.lastCall().args)
	assert.Equal(t, "intel-breakouts", structured(t, result)["type"])

	busts := ts.candidates("/api/intel/busts", "intel-busts", "Bust Candidates", "actual wOBA exceeds xwOBA", "")
	result, err = busts(context.Background(), callRequest(map[string]any{"pos_type": "P"}))
	require.NoError(t, err)
	assert.Equal(t, "Bust Candidates (Pitchers) - actual wOBA exceeds xwOBA:\n"+header+
		"  Faller                     0.390    0.350    0.040   88", resultText(t, result))
}

func TestRedditBuzzAndTrending(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{
		"/api/intel/reddit": `{"posts":[
			{"title":"Waiver gems","score":120,"num_comments":45,"flair":"Discussion"},
			{"title":"Help","score":3,"num_comments":1}
		]}`,
		"/api/intel/trending": `{"posts":[]}`,
	})}

	result, err := ts.redditBuzz(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Reddit Fantasy Baseball Buzz:\n"+
		"  [Discussion] Waiver gems (score:120, comments:45)\n"+
		"  Help (score:3, comments:1)", resultText(t, result))

	result, err = ts.trendingPlayers(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Trending Players:\n  No trending player posts found.", resultText(t, result))
}

func TestProspectWatchAndTransactions(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/intel/prospects":    `{"transactions":[]}`,
		"/api/intel/transactions": `{"transactions":[{"player":"Jackson Holliday","type":"Recalled","team":"BAL","description":"from AAA"}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.prospectWatch(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "Prospect Watch - Recent Call-ups & Moves:\n  No recent prospect moves found.", resultText(t, result))

	result, err = ts.intelTransactions(context.Background(), callRequest(map[string]any{"days": float64(3)}))
	require.NoError(t, err)
	assert.Equal(t, "MLB Transactions (last 3 days):\n  Recalled     Jackson Holliday          BAL - from AAA", resultText(t, result))
	assert.Equal(t, map[string]string{"days": "3"}, api.lastCall().args)

	api.responses["/api/intel/transactions"] = `{"transactions":[]}`
	result, err = ts.intelTransactions(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "MLB Transactions (last 7 days):\n  No transactions found.", resultText(t, result))
}
