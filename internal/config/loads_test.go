package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminghao/godcps/internal/load"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write loads file: %v", err)
	}
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "loads.yaml", `loads:
  - name: "Control, protection and relays"
    power_kw: 10
    usage_factor: 0.6
    frequent: true
    initial: true
    half_hour: true
    one_hour: true
    two_hour: true
  - name: "Breaker tripping"
    power_kw: 3.6
    usage_factor: 0.6
    initial: true
`)

	set, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	loads := set.Loads()
	assert.Equal(t, "Control, protection and relays", loads[0].Name)
	assert.InDelta(t, 27.27, loads[0].Current, 0.01)
	assert.True(t, loads[0].Stages.Frequent)
	assert.False(t, loads[1].Stages.Frequent)

	totals := set.Totals()
	assert.InDelta(t, 27.27, totals.Frequent, 0.01)
	assert.InDelta(t, 27.27+9.82, totals.Initial, 0.01)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "loads.json", `{
  "loads": [
    {"name": "UPS supply", "power_kw": 15, "usage_factor": 0.6, "initial": true}
  ]
}`)

	set, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.InDelta(t, 40.91, set.Loads()[0].Current, 0.01)
}

func TestLoadFileInvalidRowRejectsFile(t *testing.T) {
	path := writeFile(t, "loads.yaml", `loads:
  - name: "ok"
    power_kw: 10
    usage_factor: 0.6
  - name: ""
    power_kw: 5
    usage_factor: 0.5
`)

	set, err := LoadFile(path)
	assert.Nil(t, set)
	assert.ErrorIs(t, err, load.ErrMissingName)
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "loads.toml", `loads = []`)
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeFile(t, "loads.yaml", `loads: []`)
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestExampleLoads(t *testing.T) {
	set := ExampleLoads()
	require.Equal(t, 7, set.Len())

	totals := set.Totals()
	assert.InDelta(t, 27.27, totals.Frequent, 0.01)
	// Two 1.8 kW breaker operations at factor 1.
	assert.InDelta(t, 2*1.8*1000/220, totals.Random, 0.01)
	// The example table is intentionally non-monotonic (I1 > I2).
	assert.False(t, totals.Monotonic())
}
