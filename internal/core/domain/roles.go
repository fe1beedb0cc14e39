package domain

import "strings"

// Role is a closed enumeration of the permission groups in the cooperative.
type Role string

const (
	RoleMember      Role = "Member"
	RoleChairperson Role = "Chairperson"
	RoleTreasurer   Role = "Treasurer"
	RoleSecretary   Role = "Secretary"
	RoleRentManager Role = "Rent Manager"
)

// Roles lists every valid role, in seed order.
var Roles = []Role{
	RoleMember,
	RoleChairperson,
	RoleTreasurer,
	RoleSecretary,
	RoleRentManager,
}

// RoleFromName resolves a role by name, case-insensitively.
// Registration input is matched against this table.
func RoleFromName(name string) (Role, bool) {
	for _, r := range Roles {
		if strings.EqualFold(string(r), name) {
			return r, true
		}
	}
	return "", false
}

// Permission identifies a protected operation.
type Permission string

const (
	PermContributionSubmit  Permission = "contribution.submit"
	PermContributionViewAll Permission = "contribution.view_all"
	PermLoanRequest         Permission = "loan.request"
	PermLoanReview          Permission = "loan.review"
	PermMeetingCreate       Permission = "meeting.create"
	PermMeetingView         Permission = "meeting.view"
	PermMinuteWrite         Permission = "minute.write"
	PermRentManage          Permission = "rent.manage"
	PermMaintenanceManage   Permission = "maintenance.manage"
	PermReportView          Permission = "report.view"
	PermReportMember        Permission = "report.member"
	PermReportIncome        Permission = "report.income"
	PermUserManage          Permission = "user.manage"
	PermUserRoleAssign      Permission = "user.role.assign"
	PermNotificationRead    Permission = "notification.read"
)

// permissionRoles is the capability table: operation -> roles allowed to
// invoke it. Every protected route is gated through this table, never
// through ad hoc role lists in handlers.
var permissionRoles = map[Permission][]Role{
	PermContributionSubmit:  {RoleMember, RoleChairperson},
	PermContributionViewAll: {RoleChairperson, RoleTreasurer},
	PermLoanRequest:         {RoleMember, RoleChairperson},
	PermLoanReview:          {RoleChairperson, RoleTreasurer},
	PermMeetingCreate:       {RoleSecretary, RoleChairperson},
	PermMeetingView:         {RoleMember, RoleChairperson, RoleTreasurer, RoleSecretary},
	PermMinuteWrite:         {RoleSecretary},
	PermRentManage:          {RoleChairperson, RoleRentManager},
	PermMaintenanceManage:   {RoleChairperson, RoleRentManager},
	PermReportView:          {RoleChairperson, RoleTreasurer, RoleSecretary},
	PermReportMember:        {RoleMember, RoleChairperson, RoleTreasurer, RoleSecretary},
	PermReportIncome:        {RoleChairperson, RoleTreasurer},
	PermUserManage:          {RoleChairperson, RoleSecretary, RoleTreasurer},
	PermUserRoleAssign:      {RoleChairperson},
	PermNotificationRead:    {RoleMember, RoleChairperson, RoleTreasurer, RoleSecretary, RoleRentManager},
}

// Can reports whether the role is permitted to invoke the operation.
func (r Role) Can(p Permission) bool {
	for _, allowed := range permissionRoles[p] {
		if allowed == r {
			return true
		}
	}
	return false
}
