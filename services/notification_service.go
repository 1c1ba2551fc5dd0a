package services

import "time"

type Notification struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationService is a stub: delivery is handled by an external
// system, so the inbox always reads empty here.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (s *NotificationService) ListForUser(_ uint) ([]Notification, error) {
	return []Notification{}, nil
}
