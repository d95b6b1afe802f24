package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Run("Should register serve with transport flags", func(t *testing.T) {
		root := newRootCmd()

		serve, _, err := root.Find([]string{"serve"})

		require.NoError(t, err)
		assert.Equal(t, "serve", serve.Name())
		assert.Equal(t, transportStdio, serve.Flags().Lookup("transport").DefValue)
		assert.Equal(t, "/mcp", serve.Flags().Lookup("mount").DefValue)
		assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
		assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
	})

	t.Run("Should reject unknown transport", func(t *testing.T) {
		root := newRootCmd()
		root.SetArgs([]string{"serve", "--transport", "websocket", "--env-file", t.TempDir() + "/none.env"})

		err := root.Execute()

		assert.ErrorContains(t, err, "unknown transport")
	})
}
