// Package device records client login events for audit and the
// online-users display.
package device

import (
	"fmt"
	"time"
)

type DeviceLogin struct {
	id          uint
	userID      uint
	fingerprint string
	ipAddress   string
	userAgent   string
	loggedInAt  time.Time
}

func NewDeviceLogin(userID uint, fingerprint, ipAddress, userAgent string) (*DeviceLogin, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if ipAddress == "" {
		return nil, fmt.Errorf("IP address is required")
	}

	return &DeviceLogin{
		userID:      userID,
		fingerprint: fingerprint,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		loggedInAt:  time.Now(),
	}, nil
}

func ReconstructDeviceLogin(
	id uint,
	userID uint,
	fingerprint string,
	ipAddress string,
	userAgent string,
	loggedInAt time.Time,
) (*DeviceLogin, error) {
	if id == 0 {
		return nil, fmt.Errorf("device login ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &DeviceLogin{
		id:          id,
		userID:      userID,
		fingerprint: fingerprint,
		ipAddress:   ipAddress,
		userAgent:   userAgent,
		loggedInAt:  loggedInAt,
	}, nil
}

func (d *DeviceLogin) ID() uint {
	return d.id
}

func (d *DeviceLogin) UserID() uint {
	return d.userID
}

func (d *DeviceLogin) Fingerprint() string {
	return d.fingerprint
}

func (d *DeviceLogin) IPAddress() string {
	return d.ipAddress
}

func (d *DeviceLogin) UserAgent() string {
	return d.userAgent
}

func (d *DeviceLogin) LoggedInAt() time.Time {
	return d.loggedInAt
}

func (d *DeviceLogin) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("device login ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("device login ID cannot be zero")
	}
	d.id = id
	return nil
}
