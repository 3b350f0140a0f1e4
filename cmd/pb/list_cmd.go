package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/pb/internal/branch"
	"github.com/raphi011/pb/internal/git"
	"github.com/raphi011/pb/internal/log"
	"github.com/raphi011/pb/internal/output"
	"github.com/raphi011/pb/internal/plan"
	"github.com/raphi011/pb/internal/ui/static"
)

// planListing is one row of pb list's JSON output.
type planListing struct {
	plan.Plan
	Branch   string `json:"branch"`
	Branched bool   `json:"branched"`
}

func newListCmd() *cobra.Command {
	var (
		plansDir string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans and their branch status",
		Long: `List the plans in the search root with their derived branch names.

When run inside a git repository, plans whose feature branch already
exists are marked as branched.`,
		Example: `  pb list                  # Table of plans
  pb list --json           # JSON for scripting
  pb list -d ~/work/plans  # Explicit search root`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			p := output.FromContext(ctx)

			root := resolvePlansDir(plansDir)
			plans, err := plan.List(root)
			if err != nil {
				return err
			}
			l.Debug("listing plans", "root", root, "count", len(plans))

			inRepo := git.IsInsideRepo(ctx, "")

			listings := make([]planListing, len(plans))
			for i, pl := range plans {
				name := branch.Name(cfg.BranchPrefix, pl.ID, pl.Dir)
				listings[i] = planListing{
					Plan:     pl,
					Branch:   name,
					Branched: inRepo && git.BranchExists(ctx, "", name),
				}
			}

			if jsonOut {
				return p.JSON(listings)
			}

			if len(listings) == 0 {
				l.Printf("No plans found in %s\n", root)
				return nil
			}

			rows := make([][]string, len(listings))
			for i, li := range listings {
				rows[i] = static.PlanTableRow(li.Plan, li.Branch, li.Branched)
			}
			p.Print(static.RenderTable(static.PlanTableHeaders, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&plansDir, "plans-dir", "d", "", "Plan search root (flag > config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}
