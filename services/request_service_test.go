package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"github.com/linskybing/reservation-go/repositories/mock_repositories"
	"github.com/linskybing/reservation-go/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

type requestServiceMocks struct {
	request   *mock_repositories.MockRequestRepo
	equipment *mock_repositories.MockEquipmentRepo
	class     *mock_repositories.MockClassRepo
	room      *mock_repositories.MockRoomRepo
}

func setupRequestServiceMocks(t *testing.T) (*RequestService, requestServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := requestServiceMocks{
		request:   mock_repositories.NewMockRequestRepo(ctrl),
		equipment: mock_repositories.NewMockEquipmentRepo(ctrl),
		class:     mock_repositories.NewMockClassRepo(ctrl),
		room:      mock_repositories.NewMockRoomRepo(ctrl),
	}
	repos := &repositories.Repos{
		Request:   m.request,
		Equipment: m.equipment,
		Class:     m.class,
		Room:      m.room,
	}
	svc := NewRequestService(repos, NewEquipmentService(repos))
	return svc, m
}

var (
	teacher    = types.Actor{UserID: 10, UserName: "Ms. Chen", Role: models.UserRoleTeacher}
	admin      = types.Actor{UserID: 20, UserName: "Admin Wu", Role: models.UserRoleAdmin}
	supervisor = types.Actor{UserID: 30, UserName: "Supervisor Lin", Role: models.UserRoleSupervisor}
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validRoomInput() dto.CreateRequestDTO {
	return dto.CreateRequestDTO{
		Type:      "room",
		ClassID:   3,
		Date:      futureDate(),
		Signature: json.RawMessage(`{"points":[[1,2],[3,4]]}`),
		RoomID:    ptrUint(7),
	}
}

func validEquipmentInput(quantity int) dto.CreateRequestDTO {
	return dto.CreateRequestDTO{
		Type:        "equipment",
		ClassID:     3,
		Date:        futureDate(),
		Signature:   json.RawMessage(`{"points":[[1,2]]}`),
		EquipmentID: ptrUint(4),
		Quantity:    ptrInt(quantity),
	}
}

// --------------------- Submit ---------------------

func TestSubmit_RoomSuccess(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)
	m.room.EXPECT().GetByID(uint(7)).Return(models.Room{RoomID: 7, Name: "Lab 1", Available: true}, nil)
	m.request.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Submit(teacher, validRoomInput())
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.NotEmpty(t, req.RefNo)
	assert.Equal(t, teacher.UserID, req.UserID)
	assert.Equal(t, "3-A", req.ClassName)
	assert.Equal(t, "Lab 1", *req.RoomName)
	assert.False(t, req.AdminApproval.Present())
	assert.False(t, req.SupervisorApproval.Present())
}

// A request dated today is not in the past, whatever zone the server
// runs in. Dates are parsed in the local zone so the midnight boundary
// matches the one today() is computed against.
func TestSubmit_TodayAccepted(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)
	m.room.EXPECT().GetByID(uint(7)).Return(models.Room{RoomID: 7, Name: "Lab 1", Available: true}, nil)
	m.request.EXPECT().Create(gomock.Any()).Return(nil)

	input := validRoomInput()
	input.Date = time.Now().Format("2006-01-02")

	req, err := svc.Submit(teacher, input)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, req.Status)
}

func TestSubmit_NonTeacherForbidden(t *testing.T) {
	svc, _ := setupRequestServiceMocks(t)

	_, err := svc.Submit(admin, validRoomInput())

	var forbidden *apperrors.ForbiddenError
	assert.ErrorAs(t, err, &forbidden)
}

func TestSubmit_CollectsAllFieldErrors(t *testing.T) {
	svc, _ := setupRequestServiceMocks(t)

	input := dto.CreateRequestDTO{
		Type: "room",
		Date: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
	}

	_, err := svc.Submit(teacher, input)

	var v *apperrors.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "date")
	assert.Contains(t, v.Fields, "signature")
	assert.Contains(t, v.Fields, "class_id")
	assert.Contains(t, v.Fields, "room_id")
}

func TestSubmit_MalformedDate(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)
	m.room.EXPECT().GetByID(uint(7)).Return(models.Room{RoomID: 7, Name: "Lab 1", Available: true}, nil)

	input := validRoomInput()
	input.Date = "07/12/2026"

	_, err := svc.Submit(teacher, input)

	var v *apperrors.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "date")
}

func TestSubmit_RoomClosedForReservation(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)
	m.room.EXPECT().GetByID(uint(7)).Return(models.Room{RoomID: 7, Name: "Lab 1", Available: false}, nil)

	_, err := svc.Submit(teacher, validRoomInput())

	var v *apperrors.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "room_id")
}

func TestSubmit_EquipmentQuantityExceedsStock(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)
	m.equipment.EXPECT().GetByID(uint(4)).Return(models.Equipment{EID: 4, Name: "Projector", TotalQuantity: 10, AvailableQuantity: 3}, nil)

	_, err := svc.Submit(teacher, validEquipmentInput(5))

	var v *apperrors.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "quantity")
}

func TestSubmit_EquipmentSuccess(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)
	m.equipment.EXPECT().GetByID(uint(4)).Return(models.Equipment{EID: 4, Name: "Projector", TotalQuantity: 10, AvailableQuantity: 10}, nil)
	m.request.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Submit(teacher, validEquipmentInput(5))
	assert.NoError(t, err)
	assert.Equal(t, "Projector", *req.EquipmentName)
	assert.Equal(t, 5, *req.Quantity)
}

func TestSubmit_PrintingMissingFields(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.class.EXPECT().GetByID(uint(3)).Return(models.Class{CID: 3, Name: "3-A"}, nil)

	input := dto.CreateRequestDTO{
		Type:      "printing",
		ClassID:   3,
		Date:      futureDate(),
		Signature: json.RawMessage(`{"points":[]}`),
		Pages:     ptrInt(0),
	}

	_, err := svc.Submit(teacher, input)

	var v *apperrors.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "document_name")
	assert.Contains(t, v.Fields, "pages")
	assert.Contains(t, v.Fields, "copies")
}

// --------------------- Approve ---------------------

func pendingRoomRequest() models.Request {
	return models.Request{
		RID:    1,
		Type:   models.RequestTypeRoom,
		Status: models.RequestStatusPending,
		RoomID: ptrUint(7),
	}
}

func adminApprovedEquipmentRequest(quantity int) models.Request {
	return models.Request{
		RID:         2,
		Type:        models.RequestTypeEquipment,
		Status:      models.RequestStatusAdminApproved,
		EquipmentID: ptrUint(4),
		Quantity:    ptrInt(quantity),
		Version:     1,
	}
}

func TestApprove_AdminFirstStage(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(1)).Return(pendingRoomRequest(), nil)
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusPending, uint(0)).Return(true, nil)

	req, err := svc.Approve(1, admin, "ok for that day")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAdminApproved, req.Status)
	assert.True(t, req.AdminApproval.Present())
	assert.Equal(t, admin.UserID, req.AdminApproval.UserID)
	assert.Equal(t, "ok for that day", req.AdminApproval.Notes)
	assert.False(t, req.SupervisorApproval.Present())
}

func TestApprove_SupervisorFinalStageReservesStock(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(2)).Return(adminApprovedEquipmentRequest(5), nil)
	m.equipment.EXPECT().Reserve(uint(4), 5).Return(true, nil)
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusAdminApproved, uint(1)).Return(true, nil)

	req, err := svc.Approve(2, supervisor, "")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, req.Status)
	assert.True(t, req.SupervisorApproval.Present())
	assert.Equal(t, supervisor.UserID, req.SupervisorApproval.UserID)
}

func TestApprove_FirstStageNeverTouchesStock(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	pending := adminApprovedEquipmentRequest(5)
	pending.Status = models.RequestStatusPending
	pending.Version = 0

	m.request.EXPECT().GetByID(uint(2)).Return(pending, nil)
	// no Reserve expectation: a call would fail the controller
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusPending, uint(0)).Return(true, nil)

	req, err := svc.Approve(2, admin, "")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAdminApproved, req.Status)
}

func TestApprove_InsufficientStock(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(2)).Return(adminApprovedEquipmentRequest(5), nil)
	m.equipment.EXPECT().Reserve(uint(4), 5).Return(false, nil)
	m.equipment.EXPECT().GetByID(uint(4)).Return(models.Equipment{EID: 4, AvailableQuantity: 2}, nil)

	_, err := svc.Approve(2, supervisor, "")

	var stock *apperrors.InsufficientStockError
	assert.ErrorAs(t, err, &stock)
	assert.Equal(t, uint(4), stock.EquipmentID)
	assert.Equal(t, 5, stock.Requested)
	assert.Equal(t, 2, stock.Available)
}

func TestApprove_LostRaceReleasesReservation(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(2)).Return(adminApprovedEquipmentRequest(5), nil)
	m.equipment.EXPECT().Reserve(uint(4), 5).Return(true, nil)
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusAdminApproved, uint(1)).Return(false, nil)
	m.equipment.EXPECT().Release(uint(4), 5).Return(nil)

	_, err := svc.Approve(2, supervisor, "")

	var conflict *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestApprove_SupervisorOnPending(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(1)).Return(pendingRoomRequest(), nil)

	_, err := svc.Approve(1, supervisor, "")

	var unauthorized *apperrors.UnauthorizedTransitionError
	assert.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, string(models.UserRoleSupervisor), unauthorized.Role)
	assert.Equal(t, string(models.RequestStatusPending), unauthorized.Status)
}

func TestApprove_AdminOnAdminApproved(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(2)).Return(adminApprovedEquipmentRequest(5), nil)

	_, err := svc.Approve(2, admin, "")

	var unauthorized *apperrors.UnauthorizedTransitionError
	assert.ErrorAs(t, err, &unauthorized)
}

func TestApprove_TerminalStatus(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	rejected := pendingRoomRequest()
	rejected.Status = models.RequestStatusRejected

	m.request.EXPECT().GetByID(uint(1)).Return(rejected, nil)

	_, err := svc.Approve(1, admin, "")

	var unauthorized *apperrors.UnauthorizedTransitionError
	assert.ErrorAs(t, err, &unauthorized)
}

func TestApprove_RequestNotFound(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(99)).Return(models.Request{}, gorm.ErrRecordNotFound)

	_, err := svc.Approve(99, admin, "")

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

// --------------------- Reject ---------------------

func TestReject_RequiresNotes(t *testing.T) {
	svc, _ := setupRequestServiceMocks(t)

	_, err := svc.Reject(1, admin, "")

	var v *apperrors.ValidationError
	assert.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, "notes")
}

func TestReject_AdminFirstStage(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(1)).Return(pendingRoomRequest(), nil)
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusPending, uint(0)).Return(true, nil)

	req, err := svc.Reject(1, admin, "room is under renovation")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, req.Status)
	assert.True(t, req.AdminApproval.Present())
	assert.Equal(t, "room is under renovation", req.AdminApproval.Notes)
}

func TestReject_SupervisorSecondStageNeverTouchesStock(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(2)).Return(adminApprovedEquipmentRequest(5), nil)
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusAdminApproved, uint(1)).Return(true, nil)

	req, err := svc.Reject(2, supervisor, "event was cancelled")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, req.Status)
	assert.True(t, req.SupervisorApproval.Present())
}

func TestReject_OnApproved(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	approved := pendingRoomRequest()
	approved.Status = models.RequestStatusApproved

	m.request.EXPECT().GetByID(uint(1)).Return(approved, nil)

	_, err := svc.Reject(1, supervisor, "too late")

	var unauthorized *apperrors.UnauthorizedTransitionError
	assert.ErrorAs(t, err, &unauthorized)
}

// --------------------- Return ---------------------

func TestReturn_ReleasesStock(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	approved := adminApprovedEquipmentRequest(5)
	approved.Status = models.RequestStatusApproved
	approved.Version = 2

	m.request.EXPECT().GetByID(uint(2)).Return(approved, nil)
	m.request.EXPECT().Transition(gomock.Any(), models.RequestStatusApproved, uint(2)).Return(true, nil)
	m.equipment.EXPECT().Release(uint(4), 5).Return(nil)

	req, err := svc.Return(2, admin)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusReturned, req.Status)
}

func TestReturn_RoomRequestRefused(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	approved := pendingRoomRequest()
	approved.Status = models.RequestStatusApproved

	m.request.EXPECT().GetByID(uint(1)).Return(approved, nil)

	_, err := svc.Return(1, admin)

	var unauthorized *apperrors.UnauthorizedTransitionError
	assert.ErrorAs(t, err, &unauthorized)
}

func TestReturn_BeforeFinalApproval(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().GetByID(uint(2)).Return(adminApprovedEquipmentRequest(5), nil)

	_, err := svc.Return(2, admin)

	var unauthorized *apperrors.UnauthorizedTransitionError
	assert.ErrorAs(t, err, &unauthorized)
}

// --------------------- Queues and stats ---------------------

func TestQueues(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().ListByStatus(models.RequestStatusPending).Return([]models.Request{{RID: 1}}, nil)
	m.request.EXPECT().ListByStatus(models.RequestStatusAdminApproved).Return([]models.Request{{RID: 2}, {RID: 3}}, nil)

	adminQueue, err := svc.AdminQueue()
	assert.NoError(t, err)
	assert.Len(t, adminQueue, 1)

	supervisorQueue, err := svc.SupervisorQueue()
	assert.NoError(t, err)
	assert.Len(t, supervisorQueue, 2)
}

func TestStats_ZeroFillsAllBuckets(t *testing.T) {
	svc, m := setupRequestServiceMocks(t)

	m.request.EXPECT().CountByStatus().Return(map[models.RequestStatus]int64{
		models.RequestStatusPending:  4,
		models.RequestStatusApproved: 2,
	}, nil)

	stats, err := svc.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats[models.RequestStatusPending])
	assert.Equal(t, int64(2), stats[models.RequestStatusApproved])
	assert.Equal(t, int64(0), stats[models.RequestStatusAdminApproved])
	assert.Equal(t, int64(0), stats[models.RequestStatusRejected])
	assert.Equal(t, int64(0), stats[models.RequestStatusReturned])
}

// --------------------- Helpers ---------------------

func ptrUint(v uint) *uint       { return &v }
func ptrInt(v int) *int          { return &v }
func ptrString(v string) *string { return &v }
