package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origCommit, origBuilt := Commit, BuildTime
	t.Cleanup(func() { Commit, BuildTime = origCommit, origBuilt })

	Commit = "0123456789abcdef"
	BuildTime = "2024-05-01"
	assert.Equal(t, "transparency dev (commit: 0123456, built: 2024-05-01)", String())

	Commit = "abc"
	assert.Contains(t, String(), "commit: abc,")
}
