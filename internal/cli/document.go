package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDocumentCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "new [template]",
		Short: "Print an empty document shaped by a template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID := a.cfg.Template.Default
			if len(args) == 1 {
				templateID = args[0]
			}
			doc := a.engine.NewDocument(templateID)
			w := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("encode document: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown document format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "document format: json or yaml")
	return cmd
}
