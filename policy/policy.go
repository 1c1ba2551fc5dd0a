// Package policy holds the role-gating rules as a pure predicate so the
// same table serves middleware, services and tests.
package policy

import "github.com/linskybing/reservation-go/models"

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionReturn  Action = "return"
	ActionManage  Action = "manage"
)

// StageRole returns the role that owns the stage a request in the given
// status is waiting on, or "" when no stage is pending.
func StageRole(status models.RequestStatus) models.UserRole {
	switch status {
	case models.RequestStatusPending:
		return models.UserRoleAdmin
	case models.RequestStatusAdminApproved:
		return models.UserRoleSupervisor
	default:
		return ""
	}
}

// CanAct decides whether a role may perform an action on a request in
// the given status. Submission only makes sense before the request
// exists, so status is ignored for ActionSubmit.
func CanAct(role models.UserRole, status models.RequestStatus, action Action) bool {
	switch action {
	case ActionSubmit:
		return role == models.UserRoleTeacher
	case ActionApprove, ActionReject:
		stage := StageRole(status)
		return stage != "" && role == stage
	case ActionReturn:
		return (role == models.UserRoleAdmin || role == models.UserRoleSupervisor) &&
			status == models.RequestStatusApproved
	case ActionManage:
		return role == models.UserRoleAdmin || role == models.UserRoleSupervisor
	default:
		return false
	}
}

// NextStatus maps (status, approve-or-reject) to the resulting status.
// The second return is false when the transition does not exist; callers
// must have already checked CanAct for the acting role.
func NextStatus(status models.RequestStatus, action Action) (models.RequestStatus, bool) {
	switch action {
	case ActionApprove:
		switch status {
		case models.RequestStatusPending:
			return models.RequestStatusAdminApproved, true
		case models.RequestStatusAdminApproved:
			return models.RequestStatusApproved, true
		}
	case ActionReject:
		switch status {
		case models.RequestStatusPending, models.RequestStatusAdminApproved:
			return models.RequestStatusRejected, true
		}
	case ActionReturn:
		if status == models.RequestStatusApproved {
			return models.RequestStatusReturned, true
		}
	}
	return status, false
}
