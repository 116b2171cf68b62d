// Package rbac holds the static role → permitted-rights tables consulted
// before any service logic runs. Tables are versioned configuration data:
// the set in force is chosen once at startup and never mutated afterwards,
// so concurrent reads need no locking.
package rbac

// Right names, matching the route gates they protect
const (
	RightGetJobs           = "getJobs"
	RightManageJobs        = "manageJobs"
	RightApplyJob          = "applyJob"
	RightGetApplications   = "getApplications"
	RightGetApplication    = "getApplication"
	RightReviewApplication = "reviewApplication"
	RightGetUsers          = "getUsers"
	RightManageUsers       = "manageUsers"
)

// DefaultVersion is the canonical rights set. The legacy "2024-01" snapshot
// (recruiters additionally held getUsers) is retained as data for
// deployments that still depend on it.
const DefaultVersion = "2024-06"

var versions = map[string]map[string][]string{
	"2024-01": {
		"CANDIDATE": {RightGetJobs, RightApplyJob, RightGetApplications, RightGetApplication},
		"RECRUITER": {RightGetJobs, RightManageJobs, RightReviewApplication, RightGetApplications, RightGetApplication, RightGetUsers},
		"ADMIN":     {RightGetJobs, RightGetApplications, RightGetApplication, RightGetUsers, RightManageUsers},
	},
	"2024-06": {
		"CANDIDATE": {RightGetJobs, RightApplyJob, RightGetApplications, RightGetApplication},
		"RECRUITER": {RightGetJobs, RightManageJobs, RightReviewApplication, RightGetApplications, RightGetApplication},
		"ADMIN":     {RightGetJobs, RightGetApplications, RightGetApplication, RightGetUsers, RightManageUsers},
	},
}

// Table is an immutable role → rights mapping built once at startup
type Table struct {
	version string
	rights  map[string]map[string]bool
}

// Load builds the table for the given version. An empty version selects
// DefaultVersion; an unknown version yields an empty table that denies
// everything (fails closed).
func Load(version string) *Table {
	if version == "" {
		version = DefaultVersion
	}
	t := &Table{
		version: version,
		rights:  make(map[string]map[string]bool),
	}
	for role, rights := range versions[version] {
		set := make(map[string]bool, len(rights))
		for _, r := range rights {
			set[r] = true
		}
		t.rights[role] = set
	}
	return t
}

// Version returns the version the table was loaded from
func (t *Table) Version() string {
	return t.version
}

// Allows reports whether the role holds the named right. Unknown roles and
// unknown rights are denied.
func (t *Table) Allows(role, right string) bool {
	return t.rights[role][right]
}
