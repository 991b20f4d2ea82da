package estimate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/buildcost-estimates/internal/model"
)

// Calculate assembles a complete baseline estimate: derives geometry once,
// dispatches to the per-type quantity formulas, sums line totals and applies
// the waste buffer. Pure and synchronous; it returns an error only for an
// unknown project type, which is a contract violation by the caller.
func Calculate(input model.ProjectInput) (*model.EstimateResult, error) {
	if _, ok := model.ParseProjectType(string(input.ProjectType)); !ok {
		return nil, fmt.Errorf("unknown project type: %q", input.ProjectType)
	}

	geometry := deriveGeometry(input.Length, input.Width, input.Height)
	materials := MaterialsFor(input, geometry)

	result := &model.EstimateResult{
		ProjectID:             newProjectID(),
		Materials:             materials,
		WasteBufferPercentage: WastePercentage(input.ProjectType),
		ProjectDetails:        input,
		GeneratedAt:           time.Now().UTC(),
	}
	result.RecomputeTotals()
	return result, nil
}

// newProjectID builds an identifier unique with overwhelming probability:
// a sortable time prefix plus a random suffix.
func newProjectID() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("EST-%s-%s", time.Now().UTC().Format("20060102150405"), suffix)
}
