package domain

// Module is a named dashboard section subject to independent permissions.
type Module string

const (
	ModuleOverview       Module = "overview"
	ModuleEmployees      Module = "employees"
	ModuleAttendance     Module = "attendance"
	ModuleLeave          Module = "leave"
	ModulePerformance    Module = "performance"
	ModulePayroll        Module = "payroll"
	ModuleAnnouncements  Module = "announcements"
	ModuleSettings       Module = "settings"
	ModuleUserManagement Module = "user-management"
	ModuleSystemLogs     Module = "system-logs"
	ModuleReports        Module = "reports"
	ModuleDepartments    Module = "departments"
	ModulePolicies       Module = "policies"
	ModuleBackup         Module = "backup"
)

// Action is a verb a role may perform on a module.
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionExport  Action = "export"
	ActionRestore Action = "restore"
)

// Permission grants a set of actions on one module.
type Permission struct {
	Module  Module   `json:"module"`
	Actions []Action `json:"actions"`
}

// PermissionsFor returns the static permission table for a role. The switch is
// exhaustive over the known roles; an unknown role gets nothing.
func PermissionsFor(role Role) []Permission {
	switch role {
	case RoleAdmin:
		return []Permission{
			{ModuleOverview, []Action{ActionRead}},
			{ModuleEmployees, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModuleAttendance, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModuleLeave, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionApprove, ActionReject}},
			{ModulePerformance, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModulePayroll, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModuleAnnouncements, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModuleSettings, []Action{ActionRead, ActionUpdate}},
			{ModuleUserManagement, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModuleSystemLogs, []Action{ActionRead, ActionExport}},
			{ModuleReports, []Action{ActionRead, ActionCreate, ActionExport}},
			{ModuleDepartments, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModulePolicies, []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}},
			{ModuleBackup, []Action{ActionRead, ActionCreate, ActionRestore}},
		}
	case RoleHR:
		return []Permission{
			{ModuleOverview, []Action{ActionRead}},
			{ModuleEmployees, []Action{ActionRead, ActionCreate, ActionUpdate}},
			{ModuleAttendance, []Action{ActionRead, ActionUpdate}},
			{ModuleLeave, []Action{ActionRead, ActionCreate, ActionUpdate, ActionApprove, ActionReject}},
			{ModulePerformance, []Action{ActionRead, ActionCreate, ActionUpdate}},
			{ModulePayroll, []Action{ActionRead}},
			{ModuleAnnouncements, []Action{ActionRead, ActionCreate, ActionUpdate}},
			{ModuleSettings, []Action{ActionRead}},
			{ModuleReports, []Action{ActionRead}},
		}
	case RoleEmployee:
		return []Permission{
			{ModuleOverview, []Action{ActionRead}},
			{ModuleEmployees, []Action{ActionRead}},
			{ModuleAttendance, []Action{ActionRead}},
			{ModuleLeave, []Action{ActionRead, ActionCreate}},
			{ModulePerformance, []Action{ActionRead}},
			{ModuleAnnouncements, []Action{ActionRead}},
		}
	}
	return nil
}

// HasPermission reports whether a role may perform action on module.
func HasPermission(role Role, module Module, action Action) bool {
	for _, p := range PermissionsFor(role) {
		if p.Module != module {
			continue
		}
		for _, a := range p.Actions {
			if a == action {
				return true
			}
		}
		return false
	}
	return false
}

// ModulesFor returns the modules a role may see in navigation. Visibility is
// driven by the read action: modules without it are hidden, not merely blocked.
func ModulesFor(role Role) []Module {
	perms := PermissionsFor(role)
	modules := make([]Module, 0, len(perms))
	for _, p := range perms {
		for _, a := range p.Actions {
			if a == ActionRead {
				modules = append(modules, p.Module)
				break
			}
		}
	}
	return modules
}
