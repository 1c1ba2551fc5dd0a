package services

import (
	"errors"
	"time"

	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/middleware"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) error {
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		FullName: input.FullName,
		Email:    input.Email,
		Role:     models.UserRoleTeacher,
		Status:   string(models.UserStatusActive),
		ClassID:  input.ClassID,
	}
	if input.Role != nil {
		user.Role = models.UserRole(*input.Role)
	}

	return s.Repos.User.Create(&user)
}

func (s *UserService) LoginUser(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.List()
}

func (s *UserService) FindUserByID(id uint) (models.User, error) {
	user, err := s.Repos.User.GetByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserInput) (models.User, error) {
	user, err := s.Repos.User.GetByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return models.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
			return models.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, ErrPasswordHashFailure
		}
		user.Password = string(hashed)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.Role != nil {
		user.Role = models.UserRole(*input.Role)
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.ClassID != nil {
		user.ClassID = input.ClassID
	}

	if err := s.Repos.User.Update(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) RemoveUser(id uint) error {
	return s.Repos.User.Delete(id)
}
