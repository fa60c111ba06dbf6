// ABOUTME: Tests for root CLI command and global flags
// ABOUTME: Verifies command structure, subcommands, and flag handling

package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// isolate points the CLI at a fresh data root with no credential or overrides
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "BOOKCHUNK_LLM_BASE_URL", "BOOKCHUNK_LLM_MODEL",
		"BOOKCHUNK_LLM_TEMPERATURE", "BOOKCHUNK_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	root := t.TempDir()
	t.Setenv("BOOKCHUNK_DATA_DIR", root)
	return root
}

// run executes the root command with args, returning stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "bookchunk" {
		t.Errorf("Use = %q, want %q", cmd.Use, "bookchunk")
	}

	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if !strings.Contains(cmd.Long, "BOOKCHUNK_DATA_DIR") {
		t.Error("Long description should name the data directory variable")
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		flagName  string
		shorthand string
		defValue  string
	}{
		{"verbose", "v", "false"},
		{"quiet", "q", "false"},
		{"format", "", "table"},
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flagName)
			if flag == nil {
				t.Fatalf("--%s flag not found", tt.flagName)
			}

			if tt.shorthand != "" && flag.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.flagName, flag.Shorthand, tt.shorthand)
			}

			if flag.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.flagName, flag.DefValue, tt.defValue)
			}
		})
	}
}

func TestRootCmd_MutuallyExclusiveFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"verbose only", []string{"--verbose", "version"}, false},
		{"quiet only", []string{"--quiet", "version"}, false},
		{"verbose and quiet", []string{"--verbose", "--quiet", "version"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)

			if tt.expectError && err == nil {
				t.Error("Expected error for mutually exclusive flags, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "--format", "xml", "list")
	if err == nil || !strings.Contains(err.Error(), "--format") {
		t.Errorf("Execute() error = %v, want --format error", err)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, subCmdName := range []string{"chunk", "analyze", "list", "mcp", "version"} {
		t.Run(subCmdName, func(t *testing.T) {
			found := false
			for _, sub := range cmd.Commands() {
				if sub.Use == subCmdName || strings.HasPrefix(sub.Use, subCmdName+" ") {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Subcommand %q not found", subCmdName)
			}
		})
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	outputStr, _, _ := run(t, "--help")

	for _, want := range []string{"Usage:", "Available Commands:", "Flags:"} {
		if !strings.Contains(outputStr, want) {
			t.Errorf("Help output should contain %q", want)
		}
	}
}

func TestRootCmd_SilenceUsage(t *testing.T) {
	cmd := NewRootCmd()

	if !cmd.SilenceUsage {
		t.Error("SilenceUsage should be true to prevent usage on errors")
	}
}
