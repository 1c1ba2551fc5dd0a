package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/reservation-go/apperrors"
	"github.com/linskybing/reservation-go/dto"
	"github.com/linskybing/reservation-go/models"
	"github.com/linskybing/reservation-go/repositories"
	"github.com/linskybing/reservation-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupEquipmentServiceMocks(t *testing.T) (*EquipmentService, *mock_repositories.MockEquipmentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockEquipment := mock_repositories.NewMockEquipmentRepo(ctrl)
	repos := &repositories.Repos{Equipment: mockEquipment}
	return NewEquipmentService(repos), mockEquipment
}

func TestEquipmentCreate_FullStockAvailable(t *testing.T) {
	svc, mockEquipment := setupEquipmentServiceMocks(t)

	mockEquipment.EXPECT().Create(gomock.Any()).Return(nil)

	item, err := svc.Create(dto.CreateEquipmentDTO{Name: "Projector", Category: "av", TotalQuantity: 10})
	assert.NoError(t, err)
	assert.Equal(t, 10, item.TotalQuantity)
	assert.Equal(t, 10, item.AvailableQuantity)
}

func TestEquipmentGet_NotFound(t *testing.T) {
	svc, mockEquipment := setupEquipmentServiceMocks(t)

	mockEquipment.EXPECT().GetByID(uint(9)).Return(models.Equipment{}, gorm.ErrRecordNotFound)

	_, err := svc.Get(9)

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestEquipmentUpdate_GrowingTotalGrowsAvailable(t *testing.T) {
	svc, mockEquipment := setupEquipmentServiceMocks(t)

	mockEquipment.EXPECT().GetByID(uint(4)).Return(models.Equipment{EID: 4, TotalQuantity: 10, AvailableQuantity: 5}, nil)
	mockEquipment.EXPECT().Update(gomock.Any()).Return(nil)

	item, err := svc.Update(4, dto.UpdateEquipmentDTO{TotalQuantity: ptrInt(12)})
	assert.NoError(t, err)
	assert.Equal(t, 12, item.TotalQuantity)
	assert.Equal(t, 7, item.AvailableQuantity)
}

func TestEquipmentUpdate_ShrinkingTotalClampsAvailableAtZero(t *testing.T) {
	svc, mockEquipment := setupEquipmentServiceMocks(t)

	// 5 of 10 are out on loan; shrinking the fleet to 3 cannot make
	// availability negative
	mockEquipment.EXPECT().GetByID(uint(4)).Return(models.Equipment{EID: 4, TotalQuantity: 10, AvailableQuantity: 5}, nil)
	mockEquipment.EXPECT().Update(gomock.Any()).Return(nil)

	item, err := svc.Update(4, dto.UpdateEquipmentDTO{TotalQuantity: ptrInt(3)})
	assert.NoError(t, err)
	assert.Equal(t, 3, item.TotalQuantity)
	assert.Equal(t, 0, item.AvailableQuantity)
}

func TestEquipmentReserve_PassThrough(t *testing.T) {
	svc, mockEquipment := setupEquipmentServiceMocks(t)

	mockEquipment.EXPECT().Reserve(uint(4), 5).Return(true, nil)
	ok, err := svc.Reserve(4, 5)
	assert.NoError(t, err)
	assert.True(t, ok)

	mockEquipment.EXPECT().Reserve(uint(4), 50).Return(false, nil)
	ok, err = svc.Reserve(4, 50)
	assert.NoError(t, err)
	assert.False(t, ok)
}
