package analytics

import (
	"errors"

	"talentflow/internal/domain"
)

var ErrReportingCycle = errors.New("manager assignment creates a reporting cycle")

// BuildOrganizationalHierarchy partitions records by role. Employees are
// grouped under their manager when that manager is a manager-role profile in
// the snapshot. Employees with no manager, or one missing from the snapshot,
// are unassigned; those reporting to any other role go to OtherReports.
// Input order is preserved.
func BuildOrganizationalHierarchy(records []ProfileRecord) Hierarchy {
	h := Hierarchy{
		Admins:     []ProfileRecord{},
		HR:         []ProfileRecord{},
		Managers:   []ManagerGroup{},
		Unassigned: []ProfileRecord{},

		OtherReports: []ProfileRecord{},
	}

	present := make(map[string]bool, len(records))
	groupIndex := make(map[string]int)
	for _, r := range records {
		present[r.ID] = true
		if r.Role == domain.RoleManager {
			groupIndex[r.ID] = len(h.Managers)
			h.Managers = append(h.Managers, ManagerGroup{Manager: r, Members: []ProfileRecord{}})
		}
	}

	for _, r := range records {
		switch r.Role {
		case domain.RoleAdmin:
			h.Admins = append(h.Admins, r)
		case domain.RoleHR:
			h.HR = append(h.HR, r)
		case domain.RoleEmployee:
			if r.Manager == nil {
				h.Unassigned = append(h.Unassigned, r)
				continue
			}
			if idx, ok := groupIndex[r.Manager.ID]; ok {
				h.Managers[idx].Members = append(h.Managers[idx].Members, r)
				continue
			}
			if present[r.Manager.ID] {
				h.OtherReports = append(h.OtherReports, r)
				continue
			}
			h.Unassigned = append(h.Unassigned, r)
		}
	}
	return h
}

// DetectReportingCycle reports ErrReportingCycle when making managerID the
// manager of profileID would close a loop in the manager chain.
func DetectReportingCycle(records []ProfileRecord, profileID, managerID string) error {
	if managerID == "" {
		return nil
	}
	if managerID == profileID {
		return ErrReportingCycle
	}

	managerOf := make(map[string]string, len(records))
	for _, r := range records {
		if r.Manager != nil {
			managerOf[r.ID] = r.Manager.ID
		}
	}
	managerOf[profileID] = managerID

	visited := map[string]bool{profileID: true}
	current := managerID
	for current != "" {
		if visited[current] {
			return ErrReportingCycle
		}
		visited[current] = true
		current = managerOf[current]
	}
	return nil
}
