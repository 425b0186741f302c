package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jethrobull/touchboard/db"
	"github.com/jethrobull/touchboard/model"
)

func TestConnectToMemoryDB(t *testing.T) {
	t.Run("should insert and gather correctly", func(t *testing.T) {
		storage, err := db.ConnectDB(":memory:")

		require.NoError(t, err)
		defer storage.Close()

		items, err := storage.GatherAll()

		assert.NoError(t, err)
		assert.Empty(t, items)

		stroke := model.KeyStroke{Code: model.CodeQ, Label: "q"}
		for range 10 {
			require.NoError(t, storage.Store(&stroke))
		}

		stroke = model.KeyStroke{Code: model.CodeSpace, Label: "Space"}
		for range 3 {
			require.NoError(t, storage.Store(&stroke))
		}

		items, err = storage.GatherAll()

		assert.NoError(t, err)
		assert.Equal(t, []model.KeyCount{
			{Code: model.CodeQ, Label: "q", Count: 10},
			{Code: model.CodeSpace, Label: "Space", Count: 3},
		}, items)
	})

	t.Run("should not count repeats", func(t *testing.T) {
		storage, err := db.ConnectDB(":memory:")

		require.NoError(t, err)
		defer storage.Close()

		require.NoError(t, storage.Store(&model.KeyStroke{Code: model.CodeA, Label: "a"}))
		require.NoError(t, storage.Store(&model.KeyStroke{Code: model.CodeA, Label: "a", Repeat: true}))
		require.NoError(t, storage.Store(&model.KeyStroke{Code: model.CodeA, Label: "a", Repeat: true}))

		items, err := storage.GatherAll()

		assert.NoError(t, err)
		assert.Equal(t, []model.KeyCount{{Code: model.CodeA, Label: "a", Count: 1}}, items)
	})
}

func TestScanUsage(t *testing.T) {
	storage, err := db.ConnectDB(":memory:")

	require.NoError(t, err)
	defer storage.Close()

	strokes := []model.KeyStroke{
		{Code: model.CodeQ, Label: "q"},
		{Code: model.CodeQ, Label: "Q", Shift: true},
		{Code: model.CodeC, Label: "c", Ctrl: true},
		{Code: model.CodeC, Label: "c", Ctrl: true, Alt: true},
		{Code: model.CodeQ, Label: "q", Repeat: true},
	}

	for i := range strokes {
		require.NoError(t, storage.Store(&strokes[i]))
	}

	usage, err := storage.ScanUsage()

	require.NoError(t, err)
	assert.Equal(t, db.Usage{Total: 5, Shifted: 1, Chorded: 2, Repeated: 1}, usage)
}

func TestMerge(t *testing.T) {
	first, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer first.Close()

	second, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer second.Close()

	output, err := db.ConnectDB(":memory:")
	require.NoError(t, err)

	defer output.Close()

	require.NoError(t, first.Store(&model.KeyStroke{Code: model.CodeQ, Label: "q"}))
	require.NoError(t, first.Store(&model.KeyStroke{Code: model.CodeQ, Label: "q"}))
	require.NoError(t, second.Store(&model.KeyStroke{Code: model.CodeW, Label: "w"}))

	require.NoError(t, db.Merge([]*db.SQLiteStorage{first, second}, output))

	items, err := output.GatherAll()

	require.NoError(t, err)
	assert.Equal(t, []model.KeyCount{
		{Code: model.CodeQ, Label: "q", Count: 2},
		{Code: model.CodeW, Label: "w", Count: 1},
	}, items)
}
