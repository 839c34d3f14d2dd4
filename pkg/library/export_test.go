package library

import (
	"bytes"
	"testing"

	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportStatsXLSX(t *testing.T) {
	stats := &models.LibraryStats{
		TotalBooks: 3,
		TotalPages: 150,
		Monthly: []models.PeriodBucket{
			{Period: "2026-01", Count: 1, Pages: 100},
			{Period: "2026-02", Count: 2, Pages: 50},
		},
	}

	data, err := ExportStatsXLSX(stats)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Statistiche")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Mese", "Libri", "Pagine"},
		{"2026-01", "1", "100"},
		{"2026-02", "2", "50"},
		{"Totale", "3", "150"},
	}, rows)
}

func TestExportStatsXLSX_EmptyStats(t *testing.T) {
	data, err := ExportStatsXLSX(&models.LibraryStats{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Statistiche")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Mese", "Libri", "Pagine"},
		{"Totale", "0", "0"},
	}, rows)
}
