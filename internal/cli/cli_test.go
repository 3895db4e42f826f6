package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resumegen/internal/cli"
	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/render"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

const fixture = "../../pkg/testsupport/testdata/ada.yaml"

type fakePrompter struct {
	pick     func(options []string) (int, error)
	decline  bool
	messages []string
	options  []string
	def      int
}

func (f *fakePrompter) Select(_ context.Context, cfg cli.SelectConfig) (int, error) {
	f.messages = append(f.messages, cfg.Message)
	f.options = cfg.Options
	f.def = cfg.DefaultIndex
	return f.pick(cfg.Options)
}

func (f *fakePrompter) Confirm(_ context.Context, message string, _ bool) (bool, error) {
	f.messages = append(f.messages, message)
	return !f.decline, nil
}

func chooseContaining(label string) func([]string) (int, error) {
	return func(options []string) (int, error) {
		for i, option := range options {
			if strings.Contains(option, label) {
				return i, nil
			}
		}
		return -1, errors.New("option not offered: " + label)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resumegen.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func run(t *testing.T, args []string, options ...cli.Option) (string, string, error) {
	t.Helper()
	cfg := writeConfig(t, "output:\n  format: terminal\n  width: 96\n")
	cmd := cli.NewRootCommand(options...)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg, "--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRender_TerminalFromFile(t *testing.T) {
	out, _, err := run(t, []string{"render", fixture})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "Principal Engineer", "EXPERIENCE", "Engineer · Acme", "• Built X", "Go (expert), SQL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Secret Robot") {
		t.Fatalf("hidden section rendered:\n%s", out)
	}
}

func TestRender_HTMLFromStdin(t *testing.T) {
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	out, _, err := run(t, []string{"render", "-", "--format", "html", "--template", "modern"}, cli.WithStdin(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", `data-template="modern"`, "<title>Ada Lovelace</title>", "--accent-color: #0f766e;"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in page:\n%s", want, out)
		}
	}
}

func TestRender_JSONHonoursOrderAndHide(t *testing.T) {
	out, _, err := run(t, []string{"render", fixture, "-f", "json", "--order", "skills,work", "--hide", "summary"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var decoded render.Output
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode layout: %v\n%s", err, out)
	}
	if decoded.TemplateID != "classic" || decoded.Family != render.FamilySingle {
		t.Fatalf("unexpected dispatch: %s/%s", decoded.TemplateID, decoded.Family)
	}
	want := []document.SectionType{document.SectionSkills, document.SectionExperience}
	if diff := cmp.Diff(want, decoded.SectionTypes()); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(decoded.Text(), "analytical engines") {
		t.Fatalf("hidden summary rendered")
	}
}

func TestRender_VariantSelectsDensity(t *testing.T) {
	tests := []struct {
		variant string
		want    theme.Density
	}{
		{variant: "", want: theme.DensityComfortable},
		{variant: "compact", want: theme.DensityCompact},
		{variant: "spacious", want: theme.DensitySpacious},
		{variant: "unknown", want: theme.DensityComfortable},
	}
	for _, tc := range tests {
		t.Run("variant "+tc.variant, func(t *testing.T) {
			out, _, err := run(t, []string{"render", fixture, "-f", "json", "--variant", tc.variant})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			var decoded render.Output
			if err := json.Unmarshal([]byte(out), &decoded); err != nil {
				t.Fatalf("decode layout: %v", err)
			}
			if decoded.Theme.Density != tc.want {
				t.Fatalf("expected density %q, got %q", tc.want, decoded.Theme.Density)
			}
			if decoded.Theme.Name != "classic" {
				t.Fatalf("expected the classic theme, got %q", decoded.Theme.Name)
			}
		})
	}
}

func TestRender_UnknownTemplateFails(t *testing.T) {
	out, _, err := run(t, []string{"render", fixture, "--template", "does-not-exist"})
	if !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestRender_WritesOutFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "ada.html")
	out, _, err := run(t, []string{"render", fixture, "--format", "html", "--out", target})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should be empty, got %q", out)
	}
	page, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(page), `data-template="classic"`) {
		t.Fatalf("unexpected page:\n%s", page)
	}
}

func TestRender_OutFileErrors(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing-dir", "ada.html")
	_, _, err := run(t, []string{"render", fixture, "--format", "html", "--out", target})
	if err == nil || !strings.Contains(err.Error(), "create output") {
		t.Fatalf("expected create error, got %v", err)
	}

	partial := filepath.Join(t.TempDir(), "ada.txt")
	if _, _, err := run(t, []string{"render", fixture, "--template", "nope", "--out", partial}); !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound through the file path, got %v", err)
	}
}

func TestRender_MissingFile(t *testing.T) {
	_, _, err := run(t, []string{"render", filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil || !strings.Contains(err.Error(), "read document") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestTemplatesList(t *testing.T) {
	out, _, err := run(t, []string{"templates", "list", "--premium"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"executive", "creative", "milestone", "compact-pro", "scholar"} {
		if !strings.Contains(out, id) {
			t.Fatalf("expected %q in listing:\n%s", id, out)
		}
	}
	if strings.Contains(out, "classic") {
		t.Fatalf("free template listed with --premium:\n%s", out)
	}

	out, _, err = run(t, []string{"templates", "list", "--category", "academic", "--free"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "academic") || strings.Contains(out, "scholar") {
		t.Fatalf("unexpected academic listing:\n%s", out)
	}

	if _, _, err := run(t, []string{"templates", "list", "--premium", "--free"}); err == nil {
		t.Fatalf("expected conflicting filters to fail")
	}
}

func TestTemplatesShow(t *testing.T) {
	out, _, err := run(t, []string{"templates", "show", "modern"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var got catalog.Descriptor
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode descriptor: %v\n%s", err, out)
	}
	if got.ID != "modern" || got.Layout != catalog.LayoutTwoColumn {
		t.Fatalf("unexpected descriptor: %+v", got)
	}

	if _, _, err := run(t, []string{"templates", "show", "nope"}); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestPick_PrintsChoice(t *testing.T) {
	prompter := &fakePrompter{pick: chooseContaining("Chronicle")}
	out, _, err := run(t, []string{"pick"}, cli.WithPrompter(prompter))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if strings.TrimSpace(out) != "chronicle" {
		t.Fatalf("unexpected choice output %q", out)
	}
	if prompter.def != 0 || !strings.HasPrefix(prompter.options[0], "Classic") {
		t.Fatalf("expected the configured default first, got %d %q", prompter.def, prompter.options[0])
	}
}

func TestPick_RendersDocument(t *testing.T) {
	prompter := &fakePrompter{pick: chooseContaining("Chronicle")}
	out, _, err := run(t, []string{"pick", fixture}, cli.WithPrompter(prompter))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !strings.Contains(out, "● Engineer · Acme") {
		t.Fatalf("expected timeline markers:\n%s", out)
	}
}

func TestPick_Aborted(t *testing.T) {
	prompter := &fakePrompter{pick: func([]string) (int, error) { return 0, cli.ErrAborted }}
	_, _, err := run(t, []string{"pick"}, cli.WithPrompter(prompter))
	if !errors.Is(err, cli.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestPick_PremiumNeedsConfirmation(t *testing.T) {
	prompter := &fakePrompter{pick: chooseContaining("Scholar")}
	out, _, err := run(t, []string{"pick"}, cli.WithPrompter(prompter))
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if strings.TrimSpace(out) != "scholar" {
		t.Fatalf("unexpected choice output %q", out)
	}
	want := []string{"Template", "Scholar is a premium template. Use it?"}
	if diff := cmp.Diff(want, prompter.messages); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}

	declined := &fakePrompter{pick: chooseContaining("Scholar"), decline: true}
	if _, _, err := run(t, []string{"pick"}, cli.WithPrompter(declined)); !errors.Is(err, cli.ErrAborted) {
		t.Fatalf("expected ErrAborted after declining, got %v", err)
	}
}

func TestPick_CategoryLimitsChoices(t *testing.T) {
	prompter := &fakePrompter{pick: chooseContaining("Scholar")}
	if _, _, err := run(t, []string{"pick", "--category", "academic"}, cli.WithPrompter(prompter)); err != nil {
		t.Fatalf("pick: %v", err)
	}
	if len(prompter.options) != 2 {
		t.Fatalf("expected two academic choices, got %v", prompter.options)
	}
}

func TestNewDocument(t *testing.T) {
	out, _, err := run(t, []string{"new", "executive"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var doc document.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode document: %v\n%s", err, out)
	}
	if doc.TemplateID != "executive" || !doc.IsPremium || doc.ID == "" {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(doc.Sections) == 0 || doc.Sections[0].Type != document.SectionPersonal {
		t.Fatalf("unexpected structure: %+v", doc.Sections)
	}

	out, _, err = run(t, []string{"new", "-f", "yaml"})
	if err != nil {
		t.Fatalf("new yaml: %v", err)
	}
	if !strings.Contains(out, "templateId: classic") {
		t.Fatalf("expected the configured default template:\n%s", out)
	}
}

func TestConfig_CustomCatalog(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	body := "templates:\n  - id: plain\n    name: Plain\n    category: simple\n    layout: single-column\n"
	if err := os.WriteFile(catalogPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	t.Setenv("RESUMEGEN_CATALOG_PATH", catalogPath)

	out, _, err := run(t, []string{"templates", "list"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "plain") || strings.Contains(out, "classic") {
		t.Fatalf("expected only the custom catalog:\n%s", out)
	}
}

func TestConfig_InvalidFormat(t *testing.T) {
	t.Setenv("RESUMEGEN_OUTPUT_FORMAT", "pdf")
	if _, _, err := run(t, []string{"templates", "list"}); err == nil {
		t.Fatalf("expected config validation error")
	}
}
