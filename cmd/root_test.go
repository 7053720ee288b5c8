package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/markprompt/markprompt/internal/document"
)

func TestRootRunsPlayForFileArg(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.md")})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	// The argument must reach the teleprompter's load path rather than
	// fail command resolution with "unknown command".
	var le *document.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want a document load error", err)
	}
}

func TestRootWithoutArgsShowsHelp(t *testing.T) {
	viper.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("Usage:")) {
		t.Fatalf("help output missing usage section: %q", out.String())
	}
}
