package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/pb/internal/log"
	"github.com/raphi011/pb/internal/plan"
	"github.com/raphi011/pb/internal/ui/prompt"
	"github.com/raphi011/pb/internal/ui/styles"
	"github.com/raphi011/pb/internal/workflow"
)

func newBranchCmd() *cobra.Command {
	var (
		plansDir    string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "branch [plan]",
		Short:   "Create the feature branch for a plan",
		Aliases: []string{"br"},
		Args:    cobra.MaximumNArgs(1),
		Long: `Create and switch to the feature branch for a plan.

The plan is given as a numeric id, a path to a plan directory, or a
name fragment. The branch is named feature/<id>--<name> and is only
cut from a trunk branch (main or master) on a clean working tree.
Re-running for the same plan reuses the existing branch.`,
		Example: `  pb branch 58                  # By plan id
  pb branch plans/58--update-docs  # By plan directory
  pb branch update-docs         # By name fragment
  pb branch -i                  # Pick a plan interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var identifier string
			if len(args) > 0 {
				identifier = args[0]
			}

			root := resolvePlansDir(plansDir)

			if identifier == "" && interactive {
				picked, err := pickPlan(root)
				if err != nil {
					return err
				}
				identifier = picked
			}

			return runBranch(ctx, branchOptions{
				identifier: identifier,
				plansDir:   root,
			})
		},
	}

	cmd.Flags().StringVarP(&plansDir, "plans-dir", "d", "", "Plan search root (flag > config)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the plan from a list")

	return cmd
}

// branchOptions carries the branch command's resolved inputs, separate
// from cobra so tests can call runBranch directly.
type branchOptions struct {
	identifier string
	plansDir   string
	repoDir    string // empty means the working directory
}

func runBranch(ctx context.Context, opts branchOptions) error {
	l := log.FromContext(ctx)

	res, err := workflow.Run(ctx, workflow.Options{
		Identifier:    opts.identifier,
		PlansDir:      opts.plansDir,
		BranchPrefix:  cfg.BranchPrefix,
		TrunkBranches: cfg.TrunkBranches,
		Repo:          workflow.GitRepo{Dir: opts.repoDir},
		Resolve:       plan.Resolve,
	})
	if err != nil {
		return err
	}

	switch res.Outcome {
	case workflow.Created:
		l.Printf("%s Created and switched to branch %s\n",
			styles.Success("✓"), styles.Bold(res.Branch))
	case workflow.Reused:
		l.Printf("%s Branch %s already exists, reusing it\n",
			styles.Warn("→"), styles.Bold(res.Branch))
	case workflow.SkippedNotTrunk:
		l.Printf("%s Not on a trunk branch (currently on %s), skipping branch creation\n",
			styles.Warn("→"), styles.Bold(res.CurrentBranch))
	}

	return nil
}

// pickPlan prompts for a plan and returns its directory as the
// identifier.
func pickPlan(root string) (string, error) {
	plans, err := plan.List(root)
	if err != nil {
		return "", err
	}
	if len(plans) == 0 {
		return "", fmt.Errorf("no plans found in %s", root)
	}

	options := make([]string, len(plans))
	for i, p := range plans {
		options[i] = p.ID + "--" + p.Name
	}

	idx, err := prompt.Select("Pick a plan", options)
	if err != nil {
		return "", err
	}
	return plans[idx].Dir, nil
}
