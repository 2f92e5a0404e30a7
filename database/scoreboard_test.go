package database_test

import (
	"testing"

	"github.com/ratel-online/landlord/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboard(t *testing.T) {
	board := database.NewScoreboard([]int64{3, 1, 2})
	require.Equal(t, []int64{0, 0, 0}, board.Scores())

	assert.Equal(t, int64(4), board.Add(3, 4))
	assert.Equal(t, int64(-2), board.Add(1, -2))
	assert.Equal(t, int64(-2), board.Add(2, -2))
	assert.Equal(t, int64(2), board.Add(3, -2))
	assert.Equal(t, int64(0), board.Add(9, 5))

	require.Equal(t, []int64{2, -2, -2}, board.Scores())
	require.Equal(t, int64(-2), board.Get(1))
	require.Equal(t, int64(0), board.Get(9))
	require.ElementsMatch(t, []int64{1, 2}, board.Negative())

	board.Reset()
	require.Equal(t, []int64{0, 0, 0}, board.Scores())
	require.Empty(t, board.Negative())
}
