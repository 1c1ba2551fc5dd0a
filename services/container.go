package services

import "github.com/linskybing/reservation-go/repositories"

type Services struct {
	User         *UserService
	Request      *RequestService
	Room         *RoomService
	Equipment    *EquipmentService
	Department   *DepartmentService
	Class        *ClassService
	Notification *NotificationService
}

func New(repos *repositories.Repos) *Services {
	equipment := NewEquipmentService(repos)
	return &Services{
		User:         NewUserService(repos),
		Request:      NewRequestService(repos, equipment),
		Room:         NewRoomService(repos),
		Equipment:    equipment,
		Department:   NewDepartmentService(repos),
		Class:        NewClassService(repos),
		Notification: NewNotificationService(),
	}
}
