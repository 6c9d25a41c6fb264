package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/henrybloomingdale/dailymed-cli/internal/dailymed"
	"github.com/henrybloomingdale/dailymed-cli/internal/output"
)

// newListCommand builds the subcommand for a paginated endpoint. Flags are
// registered straight from the resource table, so the flag surface and the
// wire format cannot drift apart.
func newListCommand(res dailymed.Resource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   res.Command,
		Short: res.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			size, _ := cmd.Flags().GetInt("pagesize")

			q := dailymed.ListQuery{
				Page:     page,
				PageSize: size,
				Filters:  collectFilters(cmd, res),
			}

			resp, err := newClient().List(cmd.Context(), res, q)
			if err != nil {
				return fmt.Errorf("%s failed: %w", res.Command, err)
			}
			return output.FormatResponse(os.Stdout, resp, outputCfg(res.Columns))
		},
	}

	cmd.Flags().Int("page", 1, "Page number of results")
	cmd.Flags().Int("pagesize", res.DefaultPageSize, "Results per page (max 100)")
	for _, f := range res.Filters {
		switch f.Kind {
		case dailymed.FilterBool:
			cmd.Flags().Bool(f.Name, false, f.Usage)
		default:
			cmd.Flags().String(f.Name, "", f.Usage)
		}
	}

	return cmd
}

// newSetIDCommand builds the subcommand for a per-label endpoint addressed
// by an SPL set id.
func newSetIDCommand(res dailymed.SetIDResource) *cobra.Command {
	return &cobra.Command{
		Use:   res.Command + " <set_id>",
		Short: res.Short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().GetBySetID(cmd.Context(), res, args[0])
			if err != nil {
				return fmt.Errorf("%s failed: %w", res.Command, err)
			}
			return output.FormatResponse(os.Stdout, resp, outputCfg(nil))
		},
	}
}

// collectFilters gathers the filter flags the user actually set. Untouched
// flags are omitted entirely; an explicitly supplied falsy value (for
// example --boxed_warning=false) is still sent.
func collectFilters(cmd *cobra.Command, res dailymed.Resource) url.Values {
	filters := url.Values{}
	for _, f := range res.Filters {
		if !cmd.Flags().Changed(f.Name) {
			continue
		}
		switch f.Kind {
		case dailymed.FilterBool:
			v, _ := cmd.Flags().GetBool(f.Name)
			filters.Set(f.Name, strconv.FormatBool(v))
		default:
			v, _ := cmd.Flags().GetString(f.Name)
			filters.Set(f.Name, v)
		}
	}
	return filters
}
