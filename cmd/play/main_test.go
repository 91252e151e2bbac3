package main

import (
	"strings"
	"testing"
)

func TestFlagsSkipPrompts(t *testing.T) {
	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetIn(strings.NewReader("quit\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--rows", "3", "--cols", "4", "--hazards", "2", "--seed", "9"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.Contains(out.String(), "Enter the number") {
		t.Fatalf("flags did not skip prompts:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "    1   2   3   4\nA | - | - | - | - |") {
		t.Fatalf("board missing:\n%s", out.String())
	}
}

func TestInvalidFlagsFail(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&strings.Builder{})
	cmd.SetArgs([]string{"--rows", "2", "--cols", "2", "--hazards", "4"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a board without safe cells")
	}
}

func TestOrDefault(t *testing.T) {
	if orDefault(0, 9) != 9 || orDefault(4, 9) != 4 {
		t.Fatalf("orDefault picked the wrong value")
	}
}

func TestVerboseAttachesLogger(t *testing.T) {
	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetIn(strings.NewReader("quit\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--rows", "2", "--cols", "2", "--hazards", "1", "--verbose"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Goodbye.\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
