package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Help(t *testing.T) {
	originalExitFunc := exitFunc
	exitCalled := false
	exitFunc = func(code int) { exitCalled = true }
	defer func() { exitFunc = originalExitFunc }()

	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	Execute()
	assert.False(t, exitCalled, "help should not exit with an error")
}

func TestExecute_ErrorPath(t *testing.T) {
	originalExitFunc := exitFunc
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }
	defer func() { exitFunc = originalExitFunc }()

	rootCmd.SetArgs([]string{"--invalid-flag-that-does-not-exist"})
	defer rootCmd.SetArgs(nil)

	Execute()
	assert.Equal(t, 1, exitCode)
}

func TestRootCmdFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"root", "quiet", "verbose", "format", "output", "policy", "db", "log-file"} {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, flags.Lookup(name), "missing persistent flag %s", name)
		})
	}
	assert.Equal(t, "reject", flags.Lookup("policy").DefValue)
	assert.Equal(t, "console", flags.Lookup("format").DefValue)
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		cmd *cobra.Command
		use string
	}{
		{listCmd, "list"},
		{showCmd, "show <id>"},
		{scoreCmd, "score [paths...]"},
		{validateCmd, "validate [paths...]"},
		{profileCmd, "profile [paths...]"},
		{recommendCmd, "recommend [paths...]"},
		{historyCmd, "history <patient>"},
		{summaryCmd, "summary <patient> <type>"},
		{fmtCmd, "fmt [paths...]"},
		{initCmd, "init"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.NotEmpty(t, tt.cmd.Long)
			assert.NotNil(t, tt.cmd.Run)
			assert.True(t, tt.cmd.HasParent(), "%s is not registered", tt.use)
		})
	}
}

func TestScoreCmdFlags(t *testing.T) {
	for _, name := range []string{"save", "patient", "type", "baseline", "create-baseline", "baseline-path", "staged", "changed"} {
		require.NotNil(t, scoreCmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, DefaultBaselinePath, scoreCmd.Flags().Lookup("baseline-path").DefValue)
}
