package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/postforge/cmd/postforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
	})

	t.Run("platforms command lists the registry", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"platforms"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Twitter (X)")
		assert.Contains(t, stdout.String(), "Instagram")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)

		require.Error(t, err)
	})
}

func TestMain_Run_GenerateWithoutAPIKey(t *testing.T) {
	t.Setenv("FIRECRAWL_API_KEY", "")

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"generate", "https://example.com"}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIRECRAWL_API_KEY")
	assert.Contains(t, stderr.String(), "docs.firecrawl.dev")
}
