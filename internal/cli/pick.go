package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resumegen/pkg/catalog"
)

func newPickCommand(a *app) *cobra.Command {
	var (
		category string
		flags    renderFlags
	)
	cmd := &cobra.Command{
		Use:   "pick [file|-]",
		Short: "Choose a template interactively",
		Long:  "Choose a template from the catalog. With a document argument the document is rendered with the chosen template; otherwise the template id is printed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := a.engine.Catalog().ListByCategory(category)
			if len(descriptors) == 0 {
				return fmt.Errorf("no templates in category %q", category)
			}
			chosen, err := a.pickTemplate(cmd, descriptors)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), chosen.ID)
				return nil
			}
			doc, err := a.readDocument(args[0])
			if err != nil {
				return err
			}
			flags.template = chosen.ID
			return a.render(cmd, doc, flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&category, "category", "c", catalog.CategoryAll, "limit choices to a category")
	f.StringVarP(&flags.format, "format", "f", "", "output format: html, terminal or json")
	f.StringVarP(&flags.out, "out", "o", "", "write output to a file instead of stdout")
	f.BoolVar(&flags.preview, "preview", false, "render with preview constraints")
	return cmd
}

func (a *app) pickTemplate(cmd *cobra.Command, descriptors []catalog.Descriptor) (catalog.Descriptor, error) {
	options := make([]string, len(descriptors))
	defaultIndex := 0
	for i, d := range descriptors {
		options[i] = choiceLabel(d)
		if d.ID == a.cfg.Template.Default {
			defaultIndex = i
		}
	}
	index, err := a.prompter.Select(cmd.Context(), SelectConfig{
		Message:      "Template",
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         "Templates only change presentation; the document content is kept.",
		PageSize:     12,
	})
	if err != nil {
		return catalog.Descriptor{}, err
	}
	if index < 0 || index >= len(descriptors) {
		return catalog.Descriptor{}, fmt.Errorf("invalid template choice %d", index)
	}
	chosen := descriptors[index]
	if chosen.IsPremium {
		ok, err := a.prompter.Confirm(cmd.Context(), fmt.Sprintf("%s is a premium template. Use it?", chosen.Name), true)
		if err != nil {
			return catalog.Descriptor{}, err
		}
		if !ok {
			return catalog.Descriptor{}, ErrAborted
		}
	}
	a.logger.Debug("template picked", "template", chosen.ID, "premium", chosen.IsPremium)
	return chosen, nil
}

func choiceLabel(d catalog.Descriptor) string {
	label := fmt.Sprintf("%s (%s, %s)", d.Name, d.Category, d.Layout)
	if d.IsPremium {
		label += " ★"
	}
	return label
}
