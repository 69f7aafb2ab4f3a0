package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingsShowsTiers(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/rankings": `{"pos_type":"B","source":"fangraphs","players":[
			{"rank":1,"name":"Aaron Judge","pos":"OF","z_score":8.456,"intel":{"statcast":{"quality_tier":"elite"}}},
			{"rank":2,"name":"Juan Soto","pos":"OF","z_score":7.1}
		]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.rankings(context.Background(), callRequest(map[string]any{"count": float64(2)}))
	require.NoError(t, err)

	expected := "Top 2 Hitter Rankings (z-score, source: fangraphs):\n" +
		"    1. Aaron Judge               OF       z=8.46 {elite}\n" +
		"    2. Juan Soto                 OF       z=7.10"
	assert.Equal(t, expected, resultText(t, result))
	assert.Equal(t, map[string]string{"pos_type": "B", "count": "2"}, api.lastCall().args)
	assert.Equal(t, "rankings", structured(t, result)["type"])
}

func TestCompareKeepsCategoryOrder(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/compare": `{"player1":{"name":"Judge"},"player2":{"name":"Soto"},"z_scores":{
			"HR":{"player1":2.5,"player2":1},
			"Final":{"player1":8,"player2":7.25},
			"AVG":{"player1":0.1,"player2":1.5}
		}}`,
	})
	ts := &toolset{api: api}

	result, err := ts.compare(context.Background(), callRequest(map[string]any{"player1": "Judge", "player2": "Soto"}))
	require.NoError(t, err)

	expected := "Player Comparison:\n" +
		"  Judge (z=8.00)  vs  Soto (z=7.25)\n" +
		"\n" +
		"  HR              2.50  vs      1.00\n" +
		"  AVG             0.10  vs      1.50"
	assert.Equal(t, expected, resultText(t, result))

	sc := structured(t, result)
	assert.Equal(t, "compare", sc["type"])
	assert.Equal(t, map[string]any{
		"name":       "Judge",
		"z_score":    8.0,
		"categories": map[string]float64{"HR": 2.5, "AVG": 0.1},
	}, sc["player1"])
}

func TestCompareRequiresBothPlayers(t *testing.T) {
	ts := &toolset{api: newFakeAPI(nil)}

	result, err := ts.compare(context.Background(), callRequest(map[string]any{"player1": "Judge"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestValueBreakdown(t *testing.T) {
	api := newFakeAPI(map[string]string{
		"/api/value": `{"players":[{"name":"Judge","type":"B","team":"NYY","pos":"OF","raw_stats":{"HR":58},
			"z_scores":{"HR":3.2,"SB":-0.5,"Final":6}}]}`,
	})
	ts := &toolset{api: api}

	result, err := ts.value(context.Background(), callRequest(map[string]any{"player_name": "Judge"}))
	require.NoError(t, err)

	expected := "Value Breakdown: Judge (OF, NYY, z=6.00)\n" +
		"  HR           z=3.20  (58)\n" +
		"  SB           z=-0.50"
	assert.Equal(t, expected, resultText(t, result))
	assert.Equal(t, map[string]string{"player_name": "Judge"}, api.lastCall().args)

	sc := structured(t, result)
	assert.Equal(t, 6.0, sc["z_final"])
	assert.Equal(t, []categoryValue{
		{Category: "HR", ZScore: 3.2, RawStat: float64(58)},
		{Category: "SB", ZScore: -0.5},
	}, sc["categories"])
}

func TestValuePlayerNotFound(t *testing.T) {
	ts := &toolset{api: newFakeAPI(map[string]string{"/api/value": `{"players":[]}`})}

	result, err := ts.value(context.Background(), callRequest(map[string]any{"player_name": "Nobody"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Player not found", resultText(t, result))

	sc := structured(t, result)
	assert.Equal(t, "Unknown", sc["name"])
	assert.Equal(t, 0, sc["z_final"])
	assert.Empty(t, sc["categories"])
}

func TestFixedOrNA(t *testing.T) {
	z := 1.234
	assert.Equal(t, "1.23", fixedOrNA(&z, 2))
	assert.Equal(t, "N/A", fixedOrNA(nil, 2))
	assert.Equal(t, "", tierSuffix(nil))
}
