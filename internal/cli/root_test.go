package cli

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := execute(cmd)
	return stdout.String(), stderr.String(), err
}

func TestRootConvertsStdin(t *testing.T) {
	input := "WEBVTT\r\n\r\n1\r\n00:00:20.672 --> 00:00:24.972\r\nSome text\r\n\r\n"

	stdout, stderr, err := runCLI(t, input)
	if err != nil {
		t.Fatalf("expected success, got %v (stderr %q)", err, stderr)
	}
	want := "id,start,end,text\n1,20672,24972,Some text\n"
	if stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
	if stderr != "" {
		t.Errorf("expected empty stderr, got %q", stderr)
	}
}

func TestRootReportsErrorChain(t *testing.T) {
	input := "WEBVTT\r\n\r\n1\r\n00:00:01.000 -> 00:00:02.000\r\ntext\r\n\r\n"

	stdout, stderr, err := runCLI(t, input)
	if err == nil {
		t.Fatal("expected error")
	}
	if stdout != "id,start,end,text\n" {
		t.Errorf("expected only the header row, got %q", stdout)
	}
	for _, want := range []string{
		"Error: an error occurred on the line",
		"0: invalid line start-end format",
		"1: cannot split by arrow",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected stderr to contain %q, got %q", want, stderr)
		}
	}
}

func TestRootRejectsMissingHeader(t *testing.T) {
	stdout, stderr, err := runCLI(t, "1\r\n00:00:01.000 --> 00:00:02.000\r\ntext\r\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
	if stderr != "Error: not a valid WebVTT file\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, _, err := runCLI(t, "", "captions.vtt")
	if err == nil {
		t.Error("expected error for positional argument")
	}
}
