package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/splt/internal/games/splt/engine"
)

func TestReset_Observation(t *testing.T) {
	e := New(2, 2)
	obs := e.Reset()

	require.Equal(t, 5, obs.Rows)
	require.Equal(t, 5, obs.Cols)
	assert.Len(t, obs.Data, 25)

	assert.Equal(t, uint8(1), obs.At(0, 0), "horizontal parity")
	assert.Equal(t, uint8(1), obs.At(2, 0), "top border")
	assert.Equal(t, uint8(1), obs.At(0, 2), "left border")
	assert.Equal(t, uint8(0), obs.At(1, 1), "empty cell")
	assert.Equal(t, uint8(0), obs.At(2, 2), "interior gap")
}

func TestStep_SplitsCoveringRectangle(t *testing.T) {
	e := New(2, 2)

	res, err := e.Step(3) // x=1, y=1
	require.NoError(t, err)
	assert.True(t, res.Moved)
	assert.Equal(t, 1.0, res.Reward)
	assert.False(t, res.Done)
	assert.Equal(t, uint8(0), res.Observation.At(0, 0), "vertical parity")
	assert.Equal(t, uint8(1), res.Observation.At(2, 2), "new horizontal border")

	res, err = e.Step(0)
	require.NoError(t, err)
	assert.True(t, res.Moved)
	assert.True(t, res.Done)
	assert.Equal(t, 2, e.Score())
}

func TestStep_ImpossibleMovePenalty(t *testing.T) {
	e := New(2, 2)
	_, err := e.Step(0)
	require.NoError(t, err)
	_, err = e.Step(0)
	require.NoError(t, err)
	require.Equal(t, 2, e.Score())
	before := e.Board().Digest()

	res, err := e.Step(1)
	require.NoError(t, err)
	assert.False(t, res.Moved)
	assert.Equal(t, -1.0, res.Reward)
	assert.Equal(t, 2, e.Score(), "board score is never reduced")
	assert.Equal(t, before, e.Board().Digest())
}

func TestStep_AfterGameOver(t *testing.T) {
	e := New(1, 2)
	res, err := e.Step(0)
	require.NoError(t, err)
	require.True(t, res.Moved)

	// Nothing in a 1x1 pair can split vertically
	res, err = e.Step(1)
	require.NoError(t, err)
	assert.False(t, res.Moved)
	assert.True(t, res.Done)
}

func TestStep_OutOfRange(t *testing.T) {
	e := New(4, 4)
	_, err := e.Step(16)
	assert.Error(t, err)
	_, err = e.Step(-1)
	assert.Error(t, err)
}

func TestActionMask(t *testing.T) {
	e := New(2, 4)
	assert.Equal(t, []bool{true, true, true, true, true, true, true, true}, e.ActionMask())

	_, err := e.Step(0)
	require.NoError(t, err)
	_, err = e.Step(0)
	require.NoError(t, err)

	// Horizontal turn: both 1x2 columns and the 2x2 bottom half are splittable
	assert.Equal(t, 3, len(e.LegalActions()))
	for _, m := range e.ActionMask() {
		assert.True(t, m)
	}
}

func TestLegalActions_MatchBoard(t *testing.T) {
	e := New(8, 16)
	for !e.Done() {
		actions := e.LegalActions()
		require.Len(t, actions, len(e.Board().LegalMoves()))
		res, err := e.Step(actions[len(actions)-1])
		require.NoError(t, err)
		require.True(t, res.Moved)
		assert.Greater(t, res.Reward, 0.0)
		if e.Board().Moves() > 300 {
			break
		}
	}
	assert.NoError(t, e.Board().Validate())
	assert.Equal(t, engine.Horizontal == e.Board().Orientation(), e.Observation().At(0, 0) == 1)
}
