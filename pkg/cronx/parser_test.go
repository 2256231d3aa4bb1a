package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardParser(t *testing.T) {
	t.Parallel()

	sched, err := StandardParser().Parse("0 */30 * * * *")
	require.NoError(t, err)

	from := time.Date(2026, 1, 1, 10, 5, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC), sched.Next(from))

	_, err = StandardParser().Parse("@every 10m")
	assert.NoError(t, err)

	_, err = StandardParser().Parse("*/5 * * * *")
	assert.Error(t, err)
}
