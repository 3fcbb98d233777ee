package commands

import (
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/treelint/treelint/internal/cli/output"
	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/project"
	_ "github.com/treelint/treelint/pkg/lint/project/rules" // register batch rules
	_ "github.com/treelint/treelint/pkg/lint/rules"         // register per-file rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List all registered rules with their groups, default severities
and the configuration keys they accept.`,
		Example: `  # List all rules
  treelint rules

  # List rules in the naming group
  treelint rules --group naming

  # Output as JSON
  treelint rules --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))

	infos := ruleInfos(opts.Group)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Type", "Group", "Severity", "Config Keys", "Description"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.ID,
			info.Type,
			info.Group,
			info.DefaultSeverity.String(),
			strings.Join(info.ConfigKeys, ", "),
			info.Description,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// ruleInfos merges the per-file and batch registries, sorted by id.
// A non-empty group restricts the listing to that group.
func ruleInfos(group string) []lint.RuleInfo {
	fileRules := lint.GetAll()
	batchRules := project.GetAll()
	if group != "" {
		fileRules = lint.GetByGroup(group)
		batchRules = project.GetByGroup(group)
	}

	var infos []lint.RuleInfo
	for _, rule := range fileRules {
		infos = append(infos, lint.RuleInfo{
			ID:              rule.ID,
			Name:            rule.Name,
			Group:           rule.Group,
			Description:     rule.Description,
			DefaultSeverity: rule.Severity,
			ConfigKeys:      rule.ConfigKeys,
			Type:            "file",
		})
	}
	for _, rule := range batchRules {
		infos = append(infos, lint.RuleInfo{
			ID:              rule.ID,
			Name:            rule.Name,
			Group:           rule.Group,
			Description:     rule.Description,
			DefaultSeverity: rule.Severity,
			ConfigKeys:      rule.ConfigKeys,
			Type:            "batch",
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
