package static

import (
	"github.com/raphi011/pb/internal/plan"
	"github.com/raphi011/pb/internal/ui/styles"
)

// PlanTableHeaders are the columns of the plan listing.
var PlanTableHeaders = []string{"ID", "PLAN", "BRANCH", "STATUS"}

// PlanTableRow formats one plan for the listing table. branchName is
// the derived feature branch; exists reports whether that branch is
// already present in the repository.
func PlanTableRow(p plan.Plan, branchName string, exists bool) []string {
	status := styles.Muted("-")
	if exists {
		status = styles.Success("branched")
	}
	return []string{p.ID, p.Name, branchName, status}
}
