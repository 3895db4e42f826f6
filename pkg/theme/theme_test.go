package theme_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/catalog"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/theme"
)

func TestResolve_Precedence(t *testing.T) {
	defaults := theme.Defaults{AccentColor: "#222"}

	got := theme.Resolve(document.Metadata{AccentColor: "#111"}, defaults, theme.Mode{})
	if got.AccentColor != "#111" {
		t.Fatalf("document override should win, got %q", got.AccentColor)
	}

	got = theme.Resolve(document.Metadata{}, defaults, theme.Mode{})
	if got.AccentColor != "#222" {
		t.Fatalf("template default should apply, got %q", got.AccentColor)
	}

	got = theme.Resolve(document.Metadata{}, theme.Defaults{}, theme.Mode{})
	want := theme.Resolved{
		AccentColor: theme.DefaultAccentColor,
		FontKey:     theme.DefaultFontKey,
		FontStack:   theme.FontStack(theme.DefaultFontKey),
		Density:     theme.DensityComfortable,
		PhotoMode:   theme.PhotoConditional,
		Shape:       theme.ShapeRound,
		LineHeight:  theme.DefaultLineHeight,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("engine defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_UnrecognisedValuesDefer(t *testing.T) {
	meta := document.Metadata{Density: "roomy", PhotoMode: "sometimes", LineHeight: 1.2}
	defaults := theme.Defaults{Density: "compact", PhotoMode: "hidden", LineHeight: 1.8}

	got := theme.Resolve(meta, defaults, theme.Mode{})
	if got.Density != theme.DensityCompact {
		t.Fatalf("expected template density, got %q", got.Density)
	}
	if got.PhotoMode != theme.PhotoHidden {
		t.Fatalf("expected template photo mode, got %q", got.PhotoMode)
	}
	if got.LineHeight != 1.2 {
		t.Fatalf("expected document line height, got %v", got.LineHeight)
	}
}

func TestFontStack(t *testing.T) {
	if got := theme.FontStack("Open Sans"); !strings.Contains(got, `"Open Sans"`) {
		t.Fatalf("unexpected open sans stack %q", got)
	}
	if got := theme.FontStack("comic-sans"); got != theme.FontStack(theme.DefaultFontKey) {
		t.Fatalf("unknown font should fall back to default, got %q", got)
	}
	custom := `"Custom", serif`
	if got := theme.FontStack(custom); got != custom {
		t.Fatalf("explicit stack should be used verbatim, got %q", got)
	}
	for _, key := range theme.FontKeys() {
		if !theme.KnownFont(key) {
			t.Fatalf("font key %q missing from table", key)
		}
	}

	resolved := theme.Resolve(document.Metadata{FontFamily: "Fira_Code"}, theme.Defaults{}, theme.Mode{})
	if resolved.FontKey != "fira-code" || !strings.Contains(resolved.FontStack, "Fira Code") {
		t.Fatalf("unexpected font resolution: %+v", resolved)
	}
}

func TestSpacing_DensityMultipliers(t *testing.T) {
	cases := []struct {
		density     string
		sensitivity theme.Sensitivity
		want        float64
	}{
		{"compact", theme.SensitivityLow, 8.5},
		{"comfortable", theme.SensitivityLow, 10},
		{"spacious", theme.SensitivityLow, 12},
		{"compact", theme.SensitivityHigh, 7},
		{"comfortable", theme.SensitivityHigh, 10},
		{"spacious", theme.SensitivityHigh, 13},
	}
	for _, tc := range cases {
		resolved := theme.Resolve(document.Metadata{Density: tc.density}, theme.Defaults{}, theme.Mode{})
		if got := resolved.Spacing(10, tc.sensitivity); got != tc.want {
			t.Fatalf("%s/%d: got %v want %v", tc.density, tc.sensitivity, got, tc.want)
		}
	}
}

func TestPhoto(t *testing.T) {
	url := "https://example.com/me.png"

	hidden := theme.Resolve(document.Metadata{PhotoMode: "hidden"}, theme.Defaults{}, theme.Mode{})
	if hidden.ShowPhoto(url) {
		t.Fatalf("hidden mode must suppress the photo")
	}

	for _, mode := range []string{"visible", "conditional", "square"} {
		resolved := theme.Resolve(document.Metadata{PhotoMode: mode}, theme.Defaults{}, theme.Mode{})
		if !resolved.ShowPhoto(url) {
			t.Fatalf("%s mode should show a present photo", mode)
		}
		if resolved.ShowPhoto("  ") {
			t.Fatalf("%s mode must not show an empty photo", mode)
		}
	}

	square := theme.Resolve(document.Metadata{PhotoMode: "square"}, theme.Defaults{}, theme.Mode{})
	if square.PhotoShape() != theme.ShapeSquare {
		t.Fatalf("square mode should crop square")
	}
	shaped := theme.Resolve(document.Metadata{PhotoShape: "Square"}, theme.Defaults{}, theme.Mode{})
	if shaped.PhotoShape() != theme.ShapeSquare || shaped.PhotoMode != theme.PhotoConditional {
		t.Fatalf("explicit shape should crop square without changing mode: %+v", shaped)
	}
}

func TestMode_PreviewTruncation(t *testing.T) {
	long := strings.Repeat("résumé ", 40)

	if got := (theme.Mode{}).Truncate(long); got != long {
		t.Fatalf("non-preview mode must not truncate")
	}

	preview := theme.Mode{Preview: true}
	got := preview.Truncate(long)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n > theme.DefaultTruncateAt+1 {
		t.Fatalf("truncated to %d runes, want <= %d", n, theme.DefaultTruncateAt+1)
	}

	custom := theme.Mode{Preview: true, TruncateAt: 10}
	if got := custom.Truncate("Built the billing platform"); got != "Built the…" {
		t.Fatalf("unexpected custom truncation %q", got)
	}
	if got := custom.Truncate("short"); got != "short" {
		t.Fatalf("short text must pass through, got %q", got)
	}

	if preview.FontScale() != theme.DefaultPreviewScale {
		t.Fatalf("expected default preview scale")
	}
	if (theme.Mode{Preview: true, Scale: 0.3}).FontScale() != 0.3 {
		t.Fatalf("expected explicit preview scale")
	}
	if (theme.Mode{Scale: 0.3}).FontScale() != 1 {
		t.Fatalf("scale must not apply outside preview")
	}
}

func TestRendererConfig(t *testing.T) {
	resolved := theme.Resolve(document.Metadata{AccentColor: "#123456"}, theme.Defaults{Name: "classic", Variant: "compact"}, theme.Mode{})
	cfg := theme.RendererConfig(resolved)

	if cfg.Theme != "classic" || cfg.Variant != "compact" {
		t.Fatalf("unexpected selection on config: %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Tokens[theme.TokenAccentColor] != "#123456" {
		t.Fatalf("accent token missing")
	}
	if cfg.CSSVars["--"+theme.TokenAccentColor] != "#123456" {
		t.Fatalf("css vars not derived from tokens")
	}
	if cfg.CSSVars["--"+theme.TokenLineHeight] != "1.5" {
		t.Fatalf("unexpected line height var %q", cfg.CSSVars["--"+theme.TokenLineHeight])
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected asset resolver")
	}
}

func TestSelector_OverCatalog(t *testing.T) {
	cat := catalog.MustNew(
		catalog.Descriptor{ID: "alpha", Name: "Alpha", Category: "x", Layout: catalog.LayoutSingleColumn, DefaultColor: "#222", DefaultFont: "lato"},
		catalog.Descriptor{ID: "beta", Name: "Beta", Category: "x", Layout: catalog.LayoutTimeline, DefaultDensity: "spacious"},
	)
	selector := theme.NewCatalogSelector(cat)

	selection, err := selector.Select("alpha", "compact")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	defaults := theme.DefaultsFromSelection(selection)
	want := theme.Defaults{Name: "alpha", Variant: "compact", AccentColor: "#222", FontFamily: "lato", Density: "compact"}
	if diff := cmp.Diff(want, defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	selection, err = selector.Select("beta", "no-such-variant")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Variant != "" || theme.DefaultsFromSelection(selection).Density != "spacious" {
		t.Fatalf("unknown variant should fall back to base tokens: %+v", selection)
	}

	selection, err = selector.Select("", "")
	if err != nil || selection.Theme != "alpha" {
		t.Fatalf("empty name should select the first manifest: %v %+v", err, selection)
	}

	if _, err := selector.Select("missing", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}

func TestDefaultsFromDescriptor(t *testing.T) {
	descriptor := catalog.Descriptor{ID: "classic", DefaultColor: "#1f2937", DefaultFont: "georgia", DefaultPhotoMode: "hidden"}
	got := theme.DefaultsFromDescriptor(descriptor)
	want := theme.Defaults{Name: "classic", AccentColor: "#1f2937", FontFamily: "georgia", PhotoMode: "hidden"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaults_Merge(t *testing.T) {
	layer := theme.Defaults{AccentColor: "#123456", Density: "tiny", PhotoMode: "hidden"}
	got := layer.Merge(theme.EngineDefaults())

	want := theme.EngineDefaults()
	want.AccentColor = "#123456"
	want.PhotoMode = "hidden"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged defaults mismatch (-want +got):\n%s", diff)
	}
}
