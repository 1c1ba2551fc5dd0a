package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/policy"
	"github.com/linskybing/reservation-go/repositories"
	"github.com/linskybing/reservation-go/types"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// RequestService owns the approval state machine:
//
//	pending -> admin_approved -> approved (-> returned, equipment only)
//	pending/admin_approved -> rejected
//
// Every transition is written with a compare-and-swap on (status,
// version), so concurrent decisions against the same request resolve to
// exactly one winner.
type RequestService struct {
	Repos     *repositories.Repos
	equipment *EquipmentService
}

func NewRequestService(repos *repositories.Repos, equipment *EquipmentService) *RequestService {
	return &RequestService{Repos: repos, equipment: equipment}
}

// Submit validates the payload for the request type and creates the
// request in pending status. All field problems are collected into one
// ValidationError; nothing is persisted on failure.
func (s *RequestService) Submit(actor types.Actor, input dto.CreateRequestDTO) (models.Request, error) {
	if !policy.CanAct(actor.Role, "", policy.ActionSubmit) {
		return models.Request{}, &apperrors.ForbiddenError{Role: string(actor.Role), Action: "submit a request"}
	}

	v := apperrors.NewValidation()

	date, err := time.ParseInLocation(dateLayout, input.Date, time.Local)
	if err != nil {
		v.Add("date", "must be in YYYY-MM-DD format")
	} else if date.Before(today()) {
		v.Add("date", "must not be in the past")
	}

	if len(input.Signature) == 0 {
		v.Add("signature", "signature is required")
	}

	var class models.Class
	if input.ClassID == 0 {
		v.Add("class_id", "class is required")
	} else {
		class, err = s.Repos.Class.GetByID(input.ClassID)
		if err != nil {
			v.Add("class_id", "unknown class")
		}
	}

	req := models.Request{
		RefNo:     uuid.NewString(),
		Type:      models.RequestType(input.Type),
		Status:    models.RequestStatusPending,
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		ClassID:   input.ClassID,
		ClassName: class.Name,
		Date:      date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Notes:     input.Notes,
		Signature: []byte(input.Signature),
	}

	switch models.RequestType(input.Type) {
	case models.RequestTypeRoom:
		s.validateRoom(input, &req, v)
	case models.RequestTypeEquipment:
		s.validateEquipment(input, &req, v)
	case models.RequestTypePrinting:
		s.validatePrinting(input, &req, v)
	}

	if v.HasErrors() {
		return models.Request{}, v
	}

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if err := s.Repos.Request.Create(&req); err != nil {
		return models.Request{}, err
	}
	return req, nil
}

func (s *RequestService) validateRoom(input dto.CreateRequestDTO, req *models.Request, v *apperrors.ValidationError) {
	if input.RoomID == nil || *input.RoomID == 0 {
		v.Add("room_id", "room is required")
		return
	}
	room, err := s.Repos.Room.GetByID(*input.RoomID)
	if err != nil {
		v.Add("room_id", "unknown room")
		return
	}
	if !room.Available {
		v.Add("room_id", "room is not open for reservation")
		return
	}
	req.RoomID = &room.RoomID
	req.RoomName = &room.Name
}

func (s *RequestService) validateEquipment(input dto.CreateRequestDTO, req *models.Request, v *apperrors.ValidationError) {
	if input.EquipmentID == nil || *input.EquipmentID == 0 {
		v.Add("equipment_id", "equipment is required")
		return
	}
	if input.Quantity == nil || *input.Quantity < 1 {
		v.Add("quantity", "quantity must be at least 1")
		return
	}
	item, err := s.Repos.Equipment.GetByID(*input.EquipmentID)
	if err != nil {
		v.Add("equipment_id", "unknown equipment")
		return
	}
	if *input.Quantity > item.AvailableQuantity {
		v.Add("quantity", "quantity exceeds current availability")
		return
	}
	req.EquipmentID = &item.EID
	req.EquipmentName = &item.Name
	req.Quantity = input.Quantity
}

func (s *RequestService) validatePrinting(input dto.CreateRequestDTO, req *models.Request, v *apperrors.ValidationError) {
	if input.DocumentName == nil || *input.DocumentName == "" {
		v.Add("document_name", "document name is required")
	}
	if input.Pages == nil || *input.Pages < 1 {
		v.Add("pages", "page count must be at least 1")
	}
	if input.Copies == nil || *input.Copies < 1 {
		v.Add("copies", "copy count must be at least 1")
	}
	req.DocumentName = input.DocumentName
	req.DocumentKey = input.DocumentKey
	req.Pages = input.Pages
	req.Copies = input.Copies
	req.Color = input.Color
	req.Duplex = input.Duplex
}

// Approve advances the request one stage. Admins act on pending,
// supervisors on admin_approved; anything else is an unauthorized
// transition. Equipment stock is reserved only when the request reaches
// its final approved status, re-checked atomically at that moment.
func (s *RequestService) Approve(requestID uint, actor types.Actor, notes string) (models.Request, error) {
	req, err := s.getRequest(requestID)
	if err != nil {
		return models.Request{}, err
	}

	if !policy.CanAct(actor.Role, req.Status, policy.ActionApprove) {
		return models.Request{}, &apperrors.UnauthorizedTransitionError{
			Role:   string(actor.Role),
			Status: string(req.Status),
			Action: "approve",
		}
	}

	fromStatus, fromVersion := req.Status, req.Version
	next, _ := policy.NextStatus(req.Status, policy.ActionApprove)
	s.attachDecision(&req, notes, actor)
	req.Status = next

	reserved := false
	if req.Type == models.RequestTypeEquipment && next == models.RequestStatusApproved {
		ok, err := s.equipment.Reserve(*req.EquipmentID, *req.Quantity)
		if err != nil {
			return models.Request{}, err
		}
		if !ok {
			item, getErr := s.Repos.Equipment.GetByID(*req.EquipmentID)
			available := 0
			if getErr == nil {
				available = item.AvailableQuantity
			}
			return models.Request{}, &apperrors.InsufficientStockError{
				EquipmentID: *req.EquipmentID,
				Requested:   *req.Quantity,
				Available:   available,
			}
		}
		reserved = true
	}

	ok, err := s.Repos.Request.Transition(&req, fromStatus, fromVersion)
	if err != nil || !ok {
		if reserved {
			// undo the reservation so a lost race never leaks stock
			_ = s.equipment.Release(*req.EquipmentID, *req.Quantity)
		}
		if err != nil {
			return models.Request{}, err
		}
		return models.Request{}, &apperrors.ConflictError{Resource: "request", ID: requestID}
	}
	return req, nil
}

// Reject terminates the request at the current stage. A reason is
// mandatory. Stock is never touched here: equipment is only reserved at
// final approval, so there is nothing to give back.
func (s *RequestService) Reject(requestID uint, actor types.Actor, notes string) (models.Request, error) {
	if notes == "" {
		v := apperrors.NewValidation()
		v.Add("notes", "a rejection reason is required")
		return models.Request{}, v
	}

	req, err := s.getRequest(requestID)
	if err != nil {
		return models.Request{}, err
	}

	if !policy.CanAct(actor.Role, req.Status, policy.ActionReject) {
		return models.Request{}, &apperrors.UnauthorizedTransitionError{
			Role:   string(actor.Role),
			Status: string(req.Status),
			Action: "reject",
		}
	}

	fromStatus, fromVersion := req.Status, req.Version
	next, _ := policy.NextStatus(req.Status, policy.ActionReject)
	s.attachDecision(&req, notes, actor)
	req.Status = next

	ok, err := s.Repos.Request.Transition(&req, fromStatus, fromVersion)
	if err != nil {
		return models.Request{}, err
	}
	if !ok {
		return models.Request{}, &apperrors.ConflictError{Resource: "request", ID: requestID}
	}
	return req, nil
}

// Return checks approved equipment back in and releases its stock.
func (s *RequestService) Return(requestID uint, actor types.Actor) (models.Request, error) {
	req, err := s.getRequest(requestID)
	if err != nil {
		return models.Request{}, err
	}

	if req.Type != models.RequestTypeEquipment || !policy.CanAct(actor.Role, req.Status, policy.ActionReturn) {
		return models.Request{}, &apperrors.UnauthorizedTransitionError{
			Role:   string(actor.Role),
			Status: string(req.Status),
			Action: "return",
		}
	}

	fromStatus, fromVersion := req.Status, req.Version
	req.Status = models.RequestStatusReturned

	ok, err := s.Repos.Request.Transition(&req, fromStatus, fromVersion)
	if err != nil {
		return models.Request{}, err
	}
	if !ok {
		return models.Request{}, &apperrors.ConflictError{Resource: "request", ID: requestID}
	}

	if err := s.equipment.Release(*req.EquipmentID, *req.Quantity); err != nil {
		return req, err
	}
	return req, nil
}

func (s *RequestService) Get(requestID uint) (models.Request, error) {
	return s.getRequest(requestID)
}

func (s *RequestService) ListByStatus(status models.RequestStatus) ([]models.Request, error) {
	return s.Repos.Request.ListByStatus(status)
}

func (s *RequestService) ListByUser(userID uint) ([]models.Request, error) {
	return s.Repos.Request.ListByUser(userID)
}

func (s *RequestService) ListAll() ([]models.Request, error) {
	return s.Repos.Request.ListAll()
}

// AdminQueue lists requests waiting on the first approval stage.
func (s *RequestService) AdminQueue() ([]models.Request, error) {
	return s.Repos.Request.ListByStatus(models.RequestStatusPending)
}

// SupervisorQueue lists requests waiting on the second stage.
func (s *RequestService) SupervisorQueue() ([]models.Request, error) {
	return s.Repos.Request.ListByStatus(models.RequestStatusAdminApproved)
}

// Stats returns request counts per status, zero-filled so chart
// consumers always see every bucket.
func (s *RequestService) Stats() (map[models.RequestStatus]int64, error) {
	counts, err := s.Repos.Request.CountByStatus()
	if err != nil {
		return nil, err
	}
	for _, st := range []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusAdminApproved,
		models.RequestStatusApproved,
		models.RequestStatusRejected,
		models.RequestStatusReturned,
	} {
		if _, ok := counts[st]; !ok {
			counts[st] = 0
		}
	}
	return counts, nil
}

func (s *RequestService) getRequest(requestID uint) (models.Request, error) {
	req, err := s.Repos.Request.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Request{}, &apperrors.NotFoundError{Resource: "request", ID: requestID}
		}
		return models.Request{}, err
	}
	return req, nil
}

// attachDecision writes the stage record owned by the stage the request
// is currently waiting on. Each record is written exactly once because
// the status guard rejects revisits of a stage.
func (s *RequestService) attachDecision(req *models.Request, notes string, actor types.Actor) {
	now := time.Now()
	record := models.Approval{
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Timestamp: &now,
		Notes:     notes,
	}
	switch policy.StageRole(req.Status) {
	case models.UserRoleAdmin:
		req.AdminApproval = record
	case models.UserRoleSupervisor:
		req.SupervisorApproval = record
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
