package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/willowsc/willow/internal/rules"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formats",
		Short:         "List the playing formats in the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormats(cmd, rootOpts)
		},
	}
	return cmd
}

func runFormats(cmd *cobra.Command, opts *RootOptions) error {
	out := formatter(cmd, opts)

	catalog, err := rules.LoadCatalog()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load format catalog", err)
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	if opts.Format == "json" {
		ordered := make([]rules.Format, 0, len(names))
		for _, name := range names {
			ordered = append(ordered, catalog[name])
		}
		return out.Success(ordered)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FORMAT\tOVERS\tPER BOWLER\tSEC/OVER\tDAYS\t")
	for _, name := range names {
		f := catalog[name]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n",
			f.Name, f.Overs, f.OversPerBowler, f.SecondsPerOver, f.Days)
	}
	return tw.Flush()
}
