package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/middleware"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"github.com/linskybing/reservation-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{User: mockUser}
	return NewUserService(repos), mockUser
}

// --------------------- RegisterUser ---------------------

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.UserRoleTeacher, u.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")))
		return nil
	})

	err := svc.RegisterUser(dto.CreateUserInput{
		Username: "alice",
		Password: "123456",
		FullName: "Alice Chen",
	})
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("admin").Return(models.User{UID: 1}, nil)

	err := svc.RegisterUser(dto.CreateUserInput{Username: "admin", Password: "123456", FullName: "Admin"})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestRegisterUser_ExplicitRole(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("sup").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, models.UserRoleSupervisor, u.Role)
		return nil
	})

	err := svc.RegisterUser(dto.CreateUserInput{
		Username: "sup",
		Password: "123456",
		FullName: "Head Supervisor",
		Role:     ptrString("supervisor"),
	})
	assert.NoError(t, err)
}

// --------------------- LoginUser ---------------------

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Password: string(hashed), Role: models.UserRoleTeacher}

	mockUser.EXPECT().GetByUsername("bob").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u models.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByUsername("bob").Return(models.User{UID: 1, Username: "bob", Password: string(hashed)}, nil)

	_, _, err := svc.LoginUser("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost", "123456")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- UpdateUser ---------------------

func TestUpdateUser_PasswordRequiresOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(1)).Return(models.User{UID: 1}, nil)

	_, err := svc.UpdateUser(1, dto.UpdateUserInput{Password: ptrString("newpass")})
	assert.Equal(t, ErrMissingOldPassword, err)
}

func TestUpdateUser_WrongOldPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByID(uint(1)).Return(models.User{UID: 1, Password: string(hashed)}, nil)

	_, err := svc.UpdateUser(1, dto.UpdateUserInput{
		Password:    ptrString("newpass"),
		OldPassword: ptrString("wrong"),
	})
	assert.Equal(t, ErrIncorrectPassword, err)
}

func TestUpdateUser_ProfileFields(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(1)).Return(models.User{UID: 1, FullName: "Old Name"}, nil)
	mockUser.EXPECT().Update(gomock.Any()).Return(nil)

	user, err := svc.UpdateUser(1, dto.UpdateUserInput{
		FullName: ptrString("New Name"),
		Status:   ptrString("disabled"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
	assert.Equal(t, "disabled", user.Status)
}
