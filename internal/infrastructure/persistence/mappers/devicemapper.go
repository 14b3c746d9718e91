package mappers

import (
	"github.com/assetdesk/assetdesk/internal/domain/device"
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
)

type DeviceMapper interface {
	ToModel(d *device.DeviceLogin) *models.DeviceLoginModel
	ToDomain(model *models.DeviceLoginModel) (*device.DeviceLogin, error)
}

type DeviceMapperImpl struct{}

func NewDeviceMapper() DeviceMapper {
	return &DeviceMapperImpl{}
}

func (m *DeviceMapperImpl) ToModel(d *device.DeviceLogin) *models.DeviceLoginModel {
	return &models.DeviceLoginModel{
		ID:          d.ID(),
		UserID:      d.UserID(),
		Fingerprint: d.Fingerprint(),
		IPAddress:   d.IPAddress(),
		UserAgent:   d.UserAgent(),
		LoggedInAt:  d.LoggedInAt().UnixMilli(),
	}
}

func (m *DeviceMapperImpl) ToDomain(model *models.DeviceLoginModel) (*device.DeviceLogin, error) {
	return device.ReconstructDeviceLogin(
		model.ID,
		model.UserID,
		model.Fingerprint,
		model.IPAddress,
		model.UserAgent,
		millisToTime(model.LoggedInAt),
	)
}
