package harness

import (
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// RunGolden loads a scenario, runs it, and compares the trace against
// testdata/<name>.golden. Regenerate golden files with -update.
func RunGolden(t *testing.T, path string) {
	t.Helper()

	s, err := LoadScenario(path)
	require.NoError(t, err)

	trace, err := s.Run(context.Background())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, s.Name, []byte(strings.Join(trace, "\n")+"\n"))
}
