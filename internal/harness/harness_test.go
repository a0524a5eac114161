package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/quaylabs/chbridge/internal/value"
	"github.com/quaylabs/chbridge/internal/wire"
)

func TestScenarioGoldens(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			RunGolden(t, path)
		})
	}
}

func TestLoadScenarioRequiresName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table: t\nsteps: []\n"), 0o600))

	_, err := LoadScenario(path)
	require.Error(t, err)
}

func TestRowFromNodePreservesOrder(t *testing.T) {
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("{z: 1, a: two, m: null}"), &node))

	row, err := rowFromNode(*node.Content[0])
	require.NoError(t, err)

	pairs := row.Pairs()
	require.Len(t, pairs, 3)
	assert.Equal(t, "z", pairs[0].Column)
	assert.Equal(t, value.Int(1), pairs[0].Cell)
	assert.Equal(t, "a", pairs[1].Column)
	assert.Equal(t, value.String("two"), pairs[1].Cell)
	assert.Equal(t, "m", pairs[2].Column)
	assert.Equal(t, value.Null{}, pairs[2].Cell)
}

func TestWireScalarCoercions(t *testing.T) {
	v, err := wireScalar(wire.TypeUInt8, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	v, err = wireScalar(wire.TypeInt64, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = wireScalar(wire.TypeFloat64, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(2), v)

	// Unknown wire types pass values through so scenarios can exercise
	// the unsupported-type path.
	v, err = wireScalar("DateTime", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", v)

	_, err = wireScalar(wire.TypeInt64, "nope")
	require.Error(t, err)
}
