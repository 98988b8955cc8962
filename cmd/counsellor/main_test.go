package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kailas-cloud/counsellor/internal/config"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "chat", "ask", "version"} {
		if _, _, err := root.Find([]string{name}); err != nil {
			t.Errorf("subcommand %q not registered: %v", name, err)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "counsellor version ") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"ask"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error without a question")
	}
}

func TestAskOptions(t *testing.T) {
	cfg := config.Config{}
	cfg.Assistant.Organization = "ACME"
	cfg.OpenAI.APIKey = "k"
	cfg.Database.Addrs = []string{"localhost:6379"}
	cfg.ApplyDefaults()

	opts := askOptions(cfg)
	if opts.Organization != "ACME" {
		t.Errorf("Organization = %q", opts.Organization)
	}
	if opts.TopKPerNamespace != 5 || opts.MaxMatches != 20 {
		t.Errorf("unexpected limits: %+v", opts)
	}
	if opts.RouterTemperature != 0 || opts.AnswerTemperature != 0.2 {
		t.Errorf("unexpected temperatures: router=%g answer=%g", opts.RouterTemperature, opts.AnswerTemperature)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	f := &rootFlags{configPath: "does-not-exist.yaml"}
	if _, _, err := f.load(); err == nil {
		t.Fatal("expected error for missing config")
	}
}
