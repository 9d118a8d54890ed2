package cli

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with the given arguments, capturing
// stdout and stderr. Flag variables are reset to their defaults first so
// tests do not leak state into each other.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfgFile = ""
	extractFormat = "json"
	extractOutput = ""
	extractPages = nil
	extractExcludeRepeats = false
	extractVerbose = false
	genaiFormat = "json"
	genaiOutput = ""

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmdHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"extract", "genai", "version"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "1.2.3"
	defer func() { version = originalVersion }()

	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "toccata version 1.2.3") {
		t.Errorf("output = %q, want it to contain %q", out, "toccata version 1.2.3")
	}
}
