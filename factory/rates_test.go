package factory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

const weekRatesJSON = `{
  "plans": [
    {"from": "SA", "to": "SU", "bands": [
      {"start": "00:01", "end": "00:00", "rate": "32.5"}
    ]},
    {"from": "MO", "to": "FR", "bands": [
      {"start": "12:01", "end": "00:00", "rate": 20},
      {"start": "00:01", "end": "12:00", "rate": 15}
    ]}
  ]
}`

const weekRatesYAML = `
currency: EUR
plans:
  - name: weekdays
    from: MO
    to: FR
    bands:
      - {start: "00:01", end: "12:00", rate: 15}
      - {start: "12:01", end: "00:00", rate: 20}
  - name: weekend
    from: SA
    to: SU
    bands:
      - {start: "00:00", end: "00:00", rate: 32.5}
`

func TestParseRates_JSON(t *testing.T) {
	f := factory.NewRateFactory()

	table, err := f.ParseRates(weekRatesJSON)
	require.NoError(t, err)

	assert.Equal(t, factory.DefaultCurrency, table.Currency)
	require.Len(t, table.Plans, 2)

	ledger, err := table.NewLedger()
	require.NoError(t, err)

	weekend, ok := ledger.PlanFor(payroll.Sunday)
	require.True(t, ok)
	assert.Equal(t, "32.5", weekend.Bands()[0].Rate.String())
}

func TestParseRatesYAML(t *testing.T) {
	table, err := factory.NewRateFactory().ParseRatesYAML([]byte(weekRatesYAML))
	require.NoError(t, err)

	assert.Equal(t, "EUR", table.Currency)
	require.Len(t, table.Plans, 2)
	assert.Equal(t, "SA-SU", table.Plans[1].Days().String())
	assert.Equal(t, "32.5", table.Plans[1].Bands()[0].Rate.String())
}

func TestParseRates_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{
			name: "unknown weekday",
			json: `{"plans": [{"from": "XX", "to": "SU", "bands": [{"start": "00:00", "end": "00:00", "rate": 1}]}]}`,
			want: payroll.ErrInvalidRange,
		},
		{
			name: "negative rate",
			json: `{"plans": [{"from": "MO", "to": "SU", "bands": [{"start": "00:00", "end": "00:00", "rate": -1}]}]}`,
			want: payroll.ErrInvalidRange,
		},
		{
			name: "hour gap",
			json: `{"plans": [{"from": "MO", "to": "SU", "bands": [
				{"start": "00:00", "end": "08:00", "rate": 1},
				{"start": "09:00", "end": "00:00", "rate": 1}]}]}`,
			want: payroll.ErrCoverage,
		},
		{
			name: "weekend missing",
			json: `{"plans": [{"from": "MO", "to": "FR", "bands": [{"start": "00:00", "end": "00:00", "rate": 1}]}]}`,
			want: payroll.ErrCoverage,
		},
		{
			name: "plans overlap",
			json: `{"plans": [
				{"from": "MO", "to": "FR", "bands": [{"start": "00:00", "end": "00:00", "rate": 1}]},
				{"from": "FR", "to": "SU", "bands": [{"start": "00:00", "end": "00:00", "rate": 1}]}]}`,
			want: payroll.ErrOverlap,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := factory.NewRateFactory().ParseRates(tt.json)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseRates_ErrorNamesPlanAndBand(t *testing.T) {
	_, err := factory.NewRateFactory().ParseRates(`{"plans": [
		{"name": "weekdays", "from": "MO", "to": "SU", "bands": [{"start": "12:00", "end": "08:00", "rate": 1}]}]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan 0 (weekdays)")
	assert.Contains(t, err.Error(), "band 0")
}

func TestParseRates_MalformedJSON(t *testing.T) {
	_, err := factory.NewRateFactory().ParseRates(`{"plans": [`)
	assert.Error(t, err)
}

func TestToJSON_RoundTrip(t *testing.T) {
	f := factory.NewRateFactory()
	table, err := f.ParseRates(weekRatesJSON)
	require.NoError(t, err)

	rj := f.ToJSON(table)
	require.Len(t, rj.Plans, 2)
	assert.Equal(t, "MO", rj.Plans[0].From)
	assert.Equal(t, "00:00", rj.Plans[0].Bands[0].Start, "sorted and normalized")

	again, err := f.FromJSON(rj)
	require.NoError(t, err)
	assert.Len(t, again.Plans, 2)
}

func TestLoadRatesFile(t *testing.T) {
	dir := t.TempDir()
	f := factory.NewRateFactory()

	jsonPath := filepath.Join(dir, "rates.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(weekRatesJSON), 0o644))
	_, err := f.LoadRatesFile(jsonPath)
	assert.NoError(t, err)

	yamlPath := filepath.Join(dir, "rates.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(weekRatesYAML), 0o644))
	table, err := f.LoadRatesFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "EUR", table.Currency)

	txtPath := filepath.Join(dir, "rates.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte(weekRatesJSON), 0o644))
	_, err = f.LoadRatesFile(txtPath)
	assert.Error(t, err)

	_, err = f.LoadRatesFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
