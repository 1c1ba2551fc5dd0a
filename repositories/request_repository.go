package repositories

import (
	"time"

	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
)

type RequestRepo interface {
	Create(req *models.Request) error
	GetByID(id uint) (models.Request, error)
	ListByStatus(status models.RequestStatus) ([]models.Request, error)
	ListByUser(userID uint) ([]models.Request, error)
	ListAll() ([]models.Request, error)
	CountByStatus() (map[models.RequestStatus]int64, error)
	// Transition writes the new status and approval records guarded by
	// (status, version) so a concurrent approval loses instead of
	// landing twice. Returns false when zero rows matched.
	Transition(req *models.Request, fromStatus models.RequestStatus, fromVersion uint) (bool, error)
}

type DBRequestRepo struct{}

func (r *DBRequestRepo) Create(req *models.Request) error {
	return db.DB.Create(req).Error
}

func (r *DBRequestRepo) GetByID(id uint) (models.Request, error) {
	var req models.Request
	err := db.DB.First(&req, "r_id = ?", id).Error
	return req, err
}

func (r *DBRequestRepo) ListByStatus(status models.RequestStatus) ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.Where("status = ?", status).Order("created_at ASC").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListByUser(userID uint) ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) ListAll() ([]models.Request, error) {
	var reqs []models.Request
	err := db.DB.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

func (r *DBRequestRepo) CountByStatus() (map[models.RequestStatus]int64, error) {
	type row struct {
		Status models.RequestStatus
		Count  int64
	}
	var rows []row
	err := db.DB.Model(&models.Request{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.RequestStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *DBRequestRepo) Transition(req *models.Request, fromStatus models.RequestStatus, fromVersion uint) (bool, error) {
	updates := map[string]interface{}{
		"status":     req.Status,
		"version":    fromVersion + 1,
		"updated_at": time.Now(),

		"admin_user_id":   req.AdminApproval.UserID,
		"admin_user_name": req.AdminApproval.UserName,
		"admin_timestamp": req.AdminApproval.Timestamp,
		"admin_notes":     req.AdminApproval.Notes,

		"supervisor_user_id":   req.SupervisorApproval.UserID,
		"supervisor_user_name": req.SupervisorApproval.UserName,
		"supervisor_timestamp": req.SupervisorApproval.Timestamp,
		"supervisor_notes":     req.SupervisorApproval.Notes,
	}

	res := db.DB.Model(&models.Request{}).
		Where("r_id = ? AND status = ? AND version = ?", req.RID, fromStatus, fromVersion).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	req.Version = fromVersion + 1
	return true, nil
}
