package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/postforge/cmd/postforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformsCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	}

	cmd := &main.PlatformsCmd{}

	err := cmd.Run(deps)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "twitter")
	assert.Contains(t, output, "Twitter (X)")
	assert.Contains(t, output, "280")
	assert.Contains(t, output, "LinkedIn")
	assert.Contains(t, output, "3000")
	assert.Contains(t, output, "Facebook")
	assert.Contains(t, output, "63206")
	assert.Contains(t, output, "Instagram")
	assert.Contains(t, output, "2200")
}
