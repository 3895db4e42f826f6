package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/internal/config"
	"github.com/goliatone/go-resumegen/pkg/document"
	"github.com/goliatone/go-resumegen/pkg/engine"
	"github.com/goliatone/go-resumegen/pkg/output/terminal"
)

type renderFlags struct {
	template string
	format   string
	out      string
	preview  bool
	order    []string
	hide     []string
	variant  string
}

func newRenderCommand(a *app) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a résumé document",
		Long:  "Render a JSON or YAML résumé document. Without a file, or with \"-\", the document is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := a.readDocument(path)
			if err != nil {
				return err
			}
			return a.render(cmd, doc, flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.template, "template", "t", "", "template id (default: the document's template)")
	f.StringVarP(&flags.format, "format", "f", "", "output format: html, terminal or json")
	f.StringVarP(&flags.out, "out", "o", "", "write output to a file instead of stdout")
	f.BoolVar(&flags.preview, "preview", false, "render with preview constraints")
	f.StringSliceVar(&flags.order, "order", nil, "section order, e.g. experience,education,skills")
	f.StringSliceVar(&flags.hide, "hide", nil, "section types to hide")
	f.StringVar(&flags.variant, "variant", "", "theme variant")
	return cmd
}

func (a *app) readDocument(path string) (document.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return document.Document{}, fmt.Errorf("read document: %w", err)
	}
	return document.Parse(data)
}

func (a *app) request(doc document.Document, flags renderFlags) engine.Request {
	templateID := strings.TrimSpace(flags.template)
	if templateID == "" && strings.TrimSpace(doc.TemplateID) == "" {
		templateID = a.cfg.Template.Default
	}
	req := engine.Request{
		Document:     doc,
		TemplateID:   templateID,
		ThemeVariant: flags.variant,
		Mode:         a.cfg.Preview.Mode(flags.preview),
		SectionOrder: sectionTypes(flags.order),
	}
	if len(flags.hide) > 0 {
		req.VisibleSections = make(map[document.SectionType]bool, len(flags.hide))
		for _, sectionType := range sectionTypes(flags.hide) {
			req.VisibleSections[sectionType] = false
		}
	}
	return req
}

func (a *app) render(cmd *cobra.Command, doc document.Document, flags renderFlags) error {
	format := strings.ToLower(strings.TrimSpace(flags.format))
	if format == "" {
		format = a.cfg.Output.Format
	}

	if flags.out == "" {
		return a.write(cmd, cmd.OutOrStdout(), doc, format, flags)
	}
	file, err := os.Create(flags.out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := a.write(cmd, file, doc, format, flags); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func (a *app) write(cmd *cobra.Command, w io.Writer, doc document.Document, format string, flags renderFlags) error {
	ctx := cmd.Context()
	req := a.request(doc, flags)
	switch format {
	case config.FormatHTML:
		page, err := a.engine.RenderHTML(ctx, req)
		if err != nil {
			return err
		}
		_, err = w.Write(page)
		return err
	case config.FormatTerminal:
		return a.engine.RenderTerminal(ctx, req, w, terminal.WithWidth(a.cfg.Output.Width))
	case config.FormatJSON:
		out, err := a.engine.Render(ctx, req)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// sectionTypes parses flag values, dropping blanks. Aliases such as "work"
// map onto the closed set.
func sectionTypes(values []string) []document.SectionType {
	var out []document.SectionType
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		out = append(out, document.ParseSectionType(value))
	}
	return out
}
