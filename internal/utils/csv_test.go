package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equityPaperBot/internal/domain"
)

func TestBarsCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.csv")

	bars := []domain.PriceBar{
		{
			Time:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Open:   100.5,
			High:   102.25,
			Low:    99.75,
			Close:  101,
			Volume: 123456,
		},
		{
			Time:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			Open:   101,
			High:   103,
			Low:    100.5,
			Close:  102.5,
			Volume: 98765,
		},
	}

	require.NoError(t, WriteBarsToCSV(bars, path))

	got, err := ReadBarsFromCSV(path)
	require.NoError(t, err)
	require.Len(t, got, len(bars))
	for i := range bars {
		assert.True(t, got[i].Time.Equal(bars[i].Time))
		assert.Equal(t, bars[i].Open, got[i].Open)
		assert.Equal(t, bars[i].High, got[i].High)
		assert.Equal(t, bars[i].Low, got[i].Low)
		assert.Equal(t, bars[i].Close, got[i].Close)
		assert.Equal(t, bars[i].Volume, got[i].Volume)
	}
}

func TestReadBarsFromCSV_MissingFile(t *testing.T) {
	_, err := ReadBarsFromCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadBarsFromCSV_BadRows(t *testing.T) {
	dir := t.TempDir()

	t.Run("unparseable time", func(t *testing.T) {
		path := filepath.Join(dir, "badtime.csv")
		data := "time,open,high,low,close,volume\nnot-a-time,1,2,0.5,1.5,100\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := ReadBarsFromCSV(path)
		assert.ErrorContains(t, err, "row 2")
	})

	t.Run("unparseable number", func(t *testing.T) {
		path := filepath.Join(dir, "badnum.csv")
		data := "time,open,high,low,close,volume\n2025-06-02T00:00:00Z,1,2,0.5,oops,100\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		_, err := ReadBarsFromCSV(path)
		assert.ErrorContains(t, err, "close")
	})
}

func TestReadBarsFromCSV_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteBarsToCSV(nil, path))

	got, err := ReadBarsFromCSV(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}
