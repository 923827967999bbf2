package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataqa/adapters/csvfile"
	"dataqa/adapters/excel"
	"dataqa/internal"
	"dataqa/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		OutPrefix:     filepath.Join(t.TempDir(), "quality_report"),
		MaxColumns:    30,
		IQRMultiplier: 1.5,
		HistogramBins: 30,
		PlotWorkers:   1,
		NoPlots:       true,
		LogLevel:      internal.LogError,
	}
}

func TestReaderForDispatch(t *testing.T) {
	assert.IsType(t, &excel.Reader{}, ReaderFor("data.xlsx"))
	assert.IsType(t, &excel.Reader{}, ReaderFor("DATA.XLSM"))
	assert.IsType(t, &csvfile.Reader{}, ReaderFor("data.csv"))
	assert.IsType(t, &csvfile.Reader{}, ReaderFor("data.txt"))
}

func TestRunEndToEnd(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.csv")
	content := "id,amount,tag\n1,1,x\n2,2,y\n3,2,x\n4,3,y\n5,100,x\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	cfg := testConfig(t)
	log := internal.NewLogger(cfg.LogLevel)
	dir, err := NewWriter(cfg, log).Run(context.Background(), input)
	require.NoError(t, err)

	workbook := filepath.Join(dir, "data_quality_report.xlsx")
	if _, err := os.Stat(workbook); err != nil {
		t.Fatalf("workbook missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "plots")); err != nil {
		t.Fatalf("plots dir missing: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, input, m.Source)
	assert.Equal(t, 5, m.Rows)
	assert.Equal(t, 3, m.Cols)
	assert.Equal(t, workbook, m.Workbook)
	assert.Empty(t, m.Charts)
	assert.NotEmpty(t, m.RunID)
}

func TestRunManifestStrongCorrelations(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.csv")
	content := "up,down\n1,5\n2,4\n3,3\n4,2\n5,1\n"
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	cfg := testConfig(t)
	log := internal.NewLogger(cfg.LogLevel)
	dir, err := NewWriter(cfg, log).Run(context.Background(), input)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	require.Len(t, m.Strong, 1)
	assert.Equal(t, "up", m.Strong[0].A.String())
	assert.Equal(t, "down", m.Strong[0].B.String())
	assert.InDelta(t, -1.0, m.Strong[0].R, 1e-9)
}

func TestRunMissingInputFatal(t *testing.T) {
	cfg := testConfig(t)
	log := internal.NewLogger(cfg.LogLevel)
	_, err := NewWriter(cfg, log).Run(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestRunDirectoryNaming(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(input, []byte("v\n1\n2\n"), 0o644))

	cfg := testConfig(t)
	log := internal.NewLogger(cfg.LogLevel)
	dir, err := NewWriter(cfg, log).Run(context.Background(), input)
	require.NoError(t, err)

	base := filepath.Base(dir)
	// quality_report_YYYYMMDD_HHMMSS
	assert.Regexp(t, `^quality_report_\d{8}_\d{6}$`, base)
}
