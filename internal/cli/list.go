package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/errors"
)

// Output formats for the list command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatPlain = "plain"
)

var listFormats = []string{formatTable, formatJSON, formatYAML, formatPlain}

// listCommand prints the dependency records without starting the browser.
func (c *CLI) listCommand(opts *loadOpts) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the direct dependencies",
		Long: `Print the direct dependencies of the root package.

Formats:
  table  aligned table with colored kinds (default)
  plain  one compact line per dependency
  json   full records including features
  yaml   full records including features`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			list, err := c.load(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), list, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: "+strings.Join(listFormats, ", "))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(listFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func checkFormat(format string) error {
	for _, f := range listFormats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of %s)", format, strings.Join(listFormats, ", "))
}

// writeList renders list to w in the given format.
func writeList(w io.Writer, list []deps.Dependency, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	case formatPlain:
		for _, d := range list {
			if _, err := fmt.Fprintln(w, d.CompactLine().String()); err != nil {
				return err
			}
		}
		return nil
	case formatTable:
		if len(list) == 0 {
			printWarning(w, "no direct dependencies")
			return nil
		}
		_, err := fmt.Fprintln(w, dependencyTable(list).Render())
		return err
	default:
		return checkFormat(format)
	}
}

func dependencyTable(list []deps.Dependency) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(list))
	for i, d := range list {
		rows[i] = []string{d.Name, d.VersionText(), string(d.Kind), featureSummary(d)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Version", "Kind", "Features").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			d := list[row]
			switch col {
			case 1:
				if d.HasUpgrade() {
					return cell.Inherit(roleStyle(deps.RoleUpgrade))
				}
			case 2:
				return cell.Inherit(roleStyle(d.KindRole()))
			case 3:
				return cell.Inherit(roleStyle(deps.RoleMuted))
			}
			return cell
		})
}

// featureSummary lists enabled features, or "-" when none are.
func featureSummary(d deps.Dependency) string {
	if len(d.EnabledFeatures) == 0 {
		return "-"
	}
	return strings.Join(d.EnabledFeatures, ", ")
}
