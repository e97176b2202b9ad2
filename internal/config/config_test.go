package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDuration(t *testing.T) {
	v := NewEmptyViper()
	cfg := NewFromViper(v)

	// Default timeout is zero (no limit)
	d, err := cfg.GetDuration("sort.timeout")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	v.Set("sort.timeout", "2m")
	d, err = cfg.GetDuration("sort.timeout")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)

	v.Set("sort.timeout", "soon")
	_, err = cfg.GetDuration("sort.timeout")
	assert.Error(t, err)
}

func TestGetSortRunDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	run := cfg.GetSortRun()
	assert.Equal(t, "sort_report.json", run.ReportName)
	assert.Equal(t, ".md", run.Extension)
	assert.Equal(t, 4, run.Workers)
	assert.NotEmpty(t, run.ConfigPath)
}

func TestGetHistoryDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	hc := cfg.GetHistory()
	assert.True(t, hc.Enabled)
	assert.Equal(t, "memory", hc.Type)
	assert.Equal(t, 20, hc.Limit)
}
