package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Use(t *testing.T) {
	assert.Equal(t, "show <name>", showCmd.Use)
}

func TestShowCmd_ExactMatch(t *testing.T) {
	cleanup := setupCommands(testRoster(), nil)
	defer cleanup()

	out, err := execute(t, "show", "Borghild Alland")

	require.NoError(t, err)
	requireContainsAll(t, out, "Borghild Alland", "90002", "esi-skills.read_skills.v1")
}

func TestShowCmd_PrefixFallback(t *testing.T) {
	cleanup := setupCommands(testRoster(), nil)
	defer cleanup()

	out, err := execute(t, "show", "Jan")

	require.NoError(t, err)
	assert.Contains(t, out, "January Hakomairos")
}

func TestShowCmd_TruncatesRefreshToken(t *testing.T) {
	cleanup := setupCommands(testRoster(), nil)
	defer cleanup()

	out, err := execute(t, "show", "Jan")

	require.NoError(t, err)
	assert.NotContains(t, out, "rt-jan-very-long-token-value")
	assert.Contains(t, out, "...")
}

func TestShowCmd_NotFoundIsNotAnError(t *testing.T) {
	cleanup := setupCommands(testRoster(), nil)
	defer cleanup()

	out, err := execute(t, "show", "Nobody")

	require.NoError(t, err)
	assert.Contains(t, out, `No character "Nobody" found`)
}
