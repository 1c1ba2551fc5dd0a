package repositories

type Repos struct {
	User       UserRepo
	Request    RequestRepo
	Room       RoomRepo
	Equipment  EquipmentRepo
	Department DepartmentRepo
	Class      ClassRepo
	Audit      AuditRepo
}

func New() *Repos {
	return &Repos{
		User:       &DBUserRepo{},
		Request:    &DBRequestRepo{},
		Room:       &DBRoomRepo{},
		Equipment:  &DBEquipmentRepo{},
		Department: &DBDepartmentRepo{},
		Class:      &DBClassRepo{},
		Audit:      &DBAuditRepo{},
	}
}
