package constants

// Role permissions carried in JWT claims
const (
	// Internal roles
	PermAdminFull    = "catering-ops.admin.full-permit"
	PermOperatorFull = "catering-ops.operator.full-permit"

	// External collaborator roles
	PermVendorSelf    = "catering-ops.vendor.self-permit"
	PermPartTimerSelf = "catering-ops.part-timer.self-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	InternalPermissions = []string{
		PermAdminFull,
		PermOperatorFull,
	}

	CollaboratorPermissions = []string{
		PermVendorSelf,
		PermPartTimerSelf,
	}
)
