package catalog

import "errors"

var (
	// ErrPlanInUse is returned when deleting a plan that is still
	// referenced by pricing rows, feature limits, or sections.
	ErrPlanInUse = errors.New("plan is referenced and cannot be deleted")

	// ErrDuplicatePricing is returned when a (plan, cycle) pricing pair
	// already exists.
	ErrDuplicatePricing = errors.New("pricing already exists for this plan and billing cycle")

	// ErrCycleInUse is returned when deleting a billing cycle that still
	// has pricing rows.
	ErrCycleInUse = errors.New("billing cycle is referenced and cannot be deleted")
)
