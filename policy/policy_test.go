package policy

import (
	"testing"

	"github.com/linskybing/reservation-go/models"
	"github.com/stretchr/testify/assert"
)

func TestStageRole(t *testing.T) {
	assert.Equal(t, models.UserRoleAdmin, StageRole(models.RequestStatusPending))
	assert.Equal(t, models.UserRoleSupervisor, StageRole(models.RequestStatusAdminApproved))
	assert.Equal(t, models.UserRole(""), StageRole(models.RequestStatusApproved))
	assert.Equal(t, models.UserRole(""), StageRole(models.RequestStatusRejected))
	assert.Equal(t, models.UserRole(""), StageRole(models.RequestStatusReturned))
}

func TestCanAct_Submit(t *testing.T) {
	assert.True(t, CanAct(models.UserRoleTeacher, "", ActionSubmit))
	assert.False(t, CanAct(models.UserRoleAdmin, "", ActionSubmit))
	assert.False(t, CanAct(models.UserRoleSupervisor, "", ActionSubmit))
}

func TestCanAct_ApproveAndReject(t *testing.T) {
	cases := []struct {
		name   string
		role   models.UserRole
		status models.RequestStatus
		want   bool
	}{
		{"admin on pending", models.UserRoleAdmin, models.RequestStatusPending, true},
		{"supervisor on admin_approved", models.UserRoleSupervisor, models.RequestStatusAdminApproved, true},
		{"supervisor on pending", models.UserRoleSupervisor, models.RequestStatusPending, false},
		{"admin on admin_approved", models.UserRoleAdmin, models.RequestStatusAdminApproved, false},
		{"teacher on pending", models.UserRoleTeacher, models.RequestStatusPending, false},
		{"admin on approved", models.UserRoleAdmin, models.RequestStatusApproved, false},
		{"supervisor on rejected", models.UserRoleSupervisor, models.RequestStatusRejected, false},
		{"admin on returned", models.UserRoleAdmin, models.RequestStatusReturned, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanAct(tc.role, tc.status, ActionApprove))
			assert.Equal(t, tc.want, CanAct(tc.role, tc.status, ActionReject))
		})
	}
}

func TestCanAct_Return(t *testing.T) {
	assert.True(t, CanAct(models.UserRoleAdmin, models.RequestStatusApproved, ActionReturn))
	assert.True(t, CanAct(models.UserRoleSupervisor, models.RequestStatusApproved, ActionReturn))
	assert.False(t, CanAct(models.UserRoleTeacher, models.RequestStatusApproved, ActionReturn))
	assert.False(t, CanAct(models.UserRoleAdmin, models.RequestStatusPending, ActionReturn))
	assert.False(t, CanAct(models.UserRoleAdmin, models.RequestStatusReturned, ActionReturn))
}

func TestCanAct_Manage(t *testing.T) {
	assert.True(t, CanAct(models.UserRoleAdmin, "", ActionManage))
	assert.True(t, CanAct(models.UserRoleSupervisor, "", ActionManage))
	assert.False(t, CanAct(models.UserRoleTeacher, "", ActionManage))
}

func TestNextStatus(t *testing.T) {
	next, ok := NextStatus(models.RequestStatusPending, ActionApprove)
	assert.True(t, ok)
	assert.Equal(t, models.RequestStatusAdminApproved, next)

	next, ok = NextStatus(models.RequestStatusAdminApproved, ActionApprove)
	assert.True(t, ok)
	assert.Equal(t, models.RequestStatusApproved, next)

	next, ok = NextStatus(models.RequestStatusPending, ActionReject)
	assert.True(t, ok)
	assert.Equal(t, models.RequestStatusRejected, next)

	next, ok = NextStatus(models.RequestStatusAdminApproved, ActionReject)
	assert.True(t, ok)
	assert.Equal(t, models.RequestStatusRejected, next)

	next, ok = NextStatus(models.RequestStatusApproved, ActionReturn)
	assert.True(t, ok)
	assert.Equal(t, models.RequestStatusReturned, next)
}

// Terminal statuses and already-decided stages have no outgoing edges.
func TestNextStatus_NoBackwardEdges(t *testing.T) {
	terminal := []models.RequestStatus{
		models.RequestStatusApproved,
		models.RequestStatusRejected,
		models.RequestStatusReturned,
	}
	for _, st := range terminal {
		for _, action := range []Action{ActionApprove, ActionReject} {
			_, ok := NextStatus(st, action)
			assert.False(t, ok, "expected no %s edge out of %s", action, st)
		}
	}

	_, ok := NextStatus(models.RequestStatusPending, ActionReturn)
	assert.False(t, ok)
	_, ok = NextStatus(models.RequestStatusRejected, ActionReturn)
	assert.False(t, ok)
}
