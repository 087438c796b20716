package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/CivicDraft/internal/domain/authority"
)

func newResolveCmd(opts *Options) *cobra.Command {
	var (
		category string
		state    string
		district string
		area     string
		rti      bool
		hints    []string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Find the authority responsible for an issue category",
		Long:  "Resolves an issue category and location to the government authorities a\ndocument should be addressed to.  With --rti the Public Information\nOfficer path is used; otherwise complaint routing applies.",
		Example: `  civicdraft resolve --category electricity --state rajasthan --rti
  civicdraft resolve --category water --state kerala --district Ernakulam
  civicdraft resolve --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := authority.NewResolver(nil)

			if list {
				inventory := struct {
					Categories []string              `json:"categories"`
					States     []authority.StateInfo `json:"states"`
				}{resolver.Categories(), resolver.States()}
				if opts.Output == "json" {
					return printJSON(cmd.OutOrStdout(), inventory)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Categories: %s\n", strings.Join(inventory.Categories, ", "))
				fmt.Fprintln(out, "States:")
				for _, s := range inventory.States {
					fmt.Fprintf(out, "  %-20s %s (capital: %s)\n", s.Name, s.Code, s.Capital)
				}
				return nil
			}

			if category == "" {
				return fmt.Errorf("--category is required (or use --list)")
			}

			res := resolver.Resolve(authority.Request{
				Category: category,
				State:    state,
				District: district,
				Area:     area,
				IsRTI:    rti,
				Hints:    hints,
			})

			if opts.Output == "json" {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printResolutionText(cmd, res)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&category, "category", "", "issue category (e.g. electricity, water, roads)")
	f.StringVar(&state, "state", "", "state name")
	f.StringVar(&district, "district", "", "district name")
	f.StringVar(&area, "area", "", "locality or ward")
	f.BoolVar(&rti, "rti", false, "resolve the RTI (Public Information Officer) path")
	f.StringSliceVar(&hints, "hints", nil, "escalation hints, e.g. \"no response\"")
	f.BoolVar(&list, "list", false, "list supported categories and states")

	return cmd
}

func printResolutionText(cmd *cobra.Command, res authority.Resolution) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Category:   %s\n", res.Category)
	fmt.Fprintf(out, "Department: %s\n", res.Department)
	if res.RequiresStateSelection {
		fmt.Fprintln(out, "Note:       specify --state for an exact office address")
	}
	fmt.Fprintln(out, "Authorities:")
	for _, m := range res.Matches {
		marker := " "
		if m.Primary {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %s, %s (%s)\n", marker, m.Authority.Designation, m.Authority.Department, m.Authority.Level)
		fmt.Fprintf(out, "     reason: %s (confidence %.2f)\n", m.Reason, m.Confidence)
		if m.Authority.AddressTemplate != "" {
			fmt.Fprintf(out, "     address: %s\n", m.Authority.AddressTemplate)
		}
	}
	for _, s := range res.Suggestions {
		fmt.Fprintf(out, "Suggestion: %s\n", s)
	}
}
