package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-calc/internal/api"
	"travel-calc/internal/domain"
)

func sampleCalculation(t *testing.T, req api.CalculationRequest) *api.Calculation {
	t.Helper()
	calc, err := api.New().Calculate(context.Background(), req)
	require.NoError(t, err)
	return calc
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []string{"", "table", "JSON", "yaml", "csv"} {
		r, err := NewRenderer(format, false)
		assert.NoError(t, err, format)
		assert.NotNil(t, r, format)
	}

	_, err := NewRenderer("xml", false)
	assert.Error(t, err)
}

func TestTableRenderer_RenderCalculation(t *testing.T) {
	calc := sampleCalculation(t, api.CalculationRequest{ExtraWorkMinutes: domain.MinutesOf(400)})
	r, err := NewRenderer("table", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderCalculation(&buf, calc))
	out := buf.String()

	assert.Contains(t, out, "Outbound:    08:00 - 09:30")
	assert.Contains(t, out, "Extra work:  180 min")
	assert.Contains(t, out, "KRT    7,5t     +4,5t work on site")
	assert.Contains(t, out, "                -0,5t lunch")
	assert.Contains(t, out, "INT    0t       +1t excess travel time")
	assert.Contains(t, out, "(1t extra work moved to KRT)")
	assert.Contains(t, out, "Notes:\n  - 1t extra work exceeds what travel time can cover and was not credited")
	assert.Contains(t, out, "Adjusted input:\n  - extra_work_minutes adjusted from 400 to 180")
	assert.NotContains(t, out, "Details:")
}

func TestTableRenderer_RoundingOff(t *testing.T) {
	off := false
	calc := sampleCalculation(t, api.CalculationRequest{RoundToQuarter: &off})
	r, _ := NewRenderer("table", true)

	var buf bytes.Buffer
	require.NoError(t, r.RenderCalculation(&buf, calc))

	assert.Contains(t, buf.String(), "Rounding:    off")
	assert.Contains(t, buf.String(), "KRT before rounding:")
	assert.Regexp(t, `Billable total:\s+6,5t`, buf.String())
}

func TestCSVRenderer_RenderCalculation(t *testing.T) {
	calc := sampleCalculation(t, api.CalculationRequest{ExtraWorkMinutes: domain.MinutesOf(30)})
	r, _ := NewRenderer("csv", false)

	var buf bytes.Buffer
	require.NoError(t, r.RenderCalculation(&buf, calc))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Code", "Hours", "Formatted", "Basis", "Notes"}, records[0])
	assert.Equal(t, "KRT", records[1][0])
	assert.Equal(t, "6.00", records[1][1])
	assert.Equal(t, "6t", records[1][2])
	assert.True(t, strings.HasPrefix(records[1][3], "+4,5t work on site; -0,5t lunch"))
	assert.Equal(t, "INT", records[2][0])
	assert.Equal(t, "0,5t", records[2][2])
	assert.Equal(t, "(0,5t extra work moved to KRT)", records[2][4])
}

func TestRenderDefaults(t *testing.T) {
	defaults := api.New().Defaults()

	t.Run("csv", func(t *testing.T) {
		r, _ := NewRenderer("csv", false)
		var buf bytes.Buffer
		require.NoError(t, r.RenderDefaults(&buf, defaults))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 8)
		assert.Equal(t, []string{"Field", "Value"}, records[0])
		assert.Equal(t, []string{"return_start_time", "14:30"}, records[3])
		assert.Equal(t, []string{"extra_work_minutes", "0"}, records[6])
	})

	t.Run("json", func(t *testing.T) {
		r, _ := NewRenderer("json", false)
		var buf bytes.Buffer
		require.NoError(t, r.RenderDefaults(&buf, defaults))
		assert.Contains(t, buf.String(), `"start_time": "08:00"`)
	})
}
