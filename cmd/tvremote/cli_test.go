package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TVREMOTE_LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	base := []string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--env-file", filepath.Join(dir, "missing.env"),
	}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	out, err := run(t, "", "resolve", "farðu upp þrisvar", "byrja upp á nýtt")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := "REMOTE;UP;MUL;3\nSTARTOVER\n"
	if out != want {
		t.Fatalf("output=%q want=%q", out, want)
	}
}

func TestResolveCmdNotUnderstood(t *testing.T) {
	out, err := run(t, "", "resolve", "veðrið á morgun")
	if !errors.Is(err, errUnresolved) {
		t.Fatalf("expected errUnresolved, got %v", err)
	}
	if out != "E_QUERY_NOT_UNDERSTOOD\n" {
		t.Fatalf("output=%q", out)
	}
}

func TestResolveCmdJSON(t *testing.T) {
	out, err := run(t, "", "--json", "resolve", "lækkaðu um tuttugu")
	if err != nil {
		t.Fatal(err)
	}
	var got outcomeJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if got.Status != "success" || got.Command != "VOLUME_REL;-20" {
		t.Fatalf("unexpected outcome %+v", got)
	}
	if got.Payload == nil || got.Payload.Kind != "VOLUME_REL" || len(got.Payload.Args) != 1 || got.Payload.Args[0] != "-20" {
		t.Fatalf("unexpected payload %+v", got.Payload)
	}
}

func TestReplCmd(t *testing.T) {
	out, err := run(t, "stöð 2 sport 2\n\nspila Kastljós frá í gær\n", "repl")
	if err != nil {
		t.Fatal(err)
	}
	want := "CHANNEL;22759656\nTIMETRAVEL;kastljós;yesterday\n"
	if out != want {
		t.Fatalf("output=%q want=%q", out, want)
	}
}

func TestChannelsCmd(t *testing.T) {
	out, err := run(t, "", "channels")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "22759656") || !strings.Contains(out, "Hringbraut") {
		t.Fatalf("channel listing missing entries:\n%s", out)
	}
}

func TestEnvFileIsLoaded(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("TVREMOTE_LOG_FORMAT=xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("TVREMOTE_LOG_FORMAT") })
	_, err := run(t, "", "--env-file", envFile, "resolve", "upp")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected the env file's invalid log format to be reported, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "tvremote dev") {
		t.Fatalf("version output=%q", out)
	}
}
