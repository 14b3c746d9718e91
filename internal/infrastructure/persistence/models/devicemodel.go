package models

type DeviceLoginModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Fingerprint string `gorm:"size:100;index"`
	IPAddress   string `gorm:"size:45;not null"`
	UserAgent   string `gorm:"size:500"`
	LoggedInAt  int64  `gorm:"not null;index"`
}

func (DeviceLoginModel) TableName() string {
	return "device_logins"
}
