package report_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcenter-healthcheck/internal/model"
	"vcenter-healthcheck/internal/report"
)

func TestRender_ContainsRankedMachines(t *testing.T) {
	records := []model.VMRecord{
		{Name: "Web01", CPULatencyPct: 50, MemorySizeMB: 4096},
		{Name: "DB01", CPULatencyPct: 10, MemorySizeMB: 8192},
	}
	tables, err := report.Rank(context.Background(), records, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = report.Render(&buf, report.Report{
		Host:        "vc01.example.com",
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		MatchedVMs:  2,
		Tables:      tables,
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "vc01.example.com")
	assert.Contains(t, html, "2 powered-on machines matched")
	assert.Contains(t, html, "Web01")
	assert.Contains(t, html, "DB01")
	for _, m := range model.Metrics() {
		assert.Contains(t, html, m.Label())
	}
	assert.NotContains(t, html, "—", "report text uses plain separators")
}

func TestRender_EscapesMachineNames(t *testing.T) {
	records := []model.VMRecord{{Name: `<script>alert("x")</script>`}}
	tables, err := report.Rank(context.Background(), records, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = report.Render(&buf, report.Report{Host: "vc", GeneratedAt: time.Now(), MatchedVMs: 1, Tables: tables})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>alert")
}

func TestRender_EmptyTables(t *testing.T) {
	tables, err := report.Rank(context.Background(), nil, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = report.Render(&buf, report.Report{Host: "vc", GeneratedAt: time.Now(), Tables: tables})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "0 powered-on machines matched")
	assert.Equal(t, len(model.Metrics()), strings.Count(html, "no machines matched"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	tables, err := report.Rank(context.Background(), []model.VMRecord{{Name: "Web01"}}, 10)
	require.NoError(t, err)

	err = report.WriteFile(path, report.Report{Host: "vc", GeneratedAt: time.Now(), MatchedVMs: 1, Tables: tables})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Web01")
}

func TestWriteFile_BadPath(t *testing.T) {
	err := report.WriteFile(filepath.Join(t.TempDir(), "missing", "report.html"), report.Report{})
	require.Error(t, err)
}
