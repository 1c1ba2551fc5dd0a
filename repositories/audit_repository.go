package repositories

import (
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
)

type AuditRepo interface {
	CreateAuditLog(entry *models.AuditLog) error
	ListAuditLogs(limit, offset int) ([]models.AuditLog, error)
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) CreateAuditLog(entry *models.AuditLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBAuditRepo) ListAuditLogs(limit, offset int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	err := db.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, err
}
