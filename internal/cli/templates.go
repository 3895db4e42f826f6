package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resumegen/pkg/catalog"
)

func newTemplatesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"tpl"},
		Short:   "Browse the template catalog",
	}
	cmd.AddCommand(newTemplatesListCommand(a), newTemplatesShowCommand(a))
	return cmd
}

func newTemplatesListCommand(a *app) *cobra.Command {
	var (
		category string
		premium  bool
		free     bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if premium && free {
				return errors.New("--premium and --free are mutually exclusive")
			}
			cat := a.engine.Catalog()
			switch {
			case premium:
				cat = cat.Premium()
			case free:
				cat = cat.Free()
			}
			descriptors := cat.ListByCategory(category)
			if len(descriptors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no templates match")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), templateTable(newStyles(cmd.OutOrStdout()), descriptors))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&category, "category", "c", catalog.CategoryAll, "filter by category")
	f.BoolVar(&premium, "premium", false, "only premium templates")
	f.BoolVar(&free, "free", false, "only free templates")
	return cmd
}

func templateTable(st styles, descriptors []catalog.Descriptor) string {
	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		tier := "free"
		if d.IsPremium {
			tier = "premium"
		}
		rows = append(rows, []string{d.ID, d.Name, d.Category, string(d.Layout), d.DefaultFont, d.DefaultColor, tier})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.muted).
		Headers("ID", "NAME", "CATEGORY", "LAYOUT", "FONT", "COLOR", "TIER").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.label.Padding(0, 1)
			case col == 6 && rows[row][col] == "premium":
				return st.premium.Padding(0, 1)
			default:
				return st.value.Padding(0, 1)
			}
		}).
		Render()
}

func newTemplatesShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a template descriptor as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			descriptor, ok := a.engine.Catalog().Lookup(id)
			if !ok {
				return fmt.Errorf("template %q not found (known: %s)", id, strings.Join(a.engine.Catalog().IDs(), ", "))
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(descriptor); err != nil {
				return fmt.Errorf("encode descriptor: %w", err)
			}
			return enc.Close()
		},
	}
}
