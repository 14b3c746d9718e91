package asset

import (
	"fmt"
	"time"
)

type AssetStatus string

const (
	StatusAvailable   AssetStatus = "available"
	StatusAssigned    AssetStatus = "assigned"
	StatusMaintenance AssetStatus = "maintenance"
	StatusRetired     AssetStatus = "retired"
)

func (s AssetStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusMaintenance, StatusRetired:
		return true
	}
	return false
}

func (s AssetStatus) String() string {
	return string(s)
}

type Asset struct {
	id             uint
	tag            string
	name           string
	category       string
	status         AssetStatus
	assignedUserID *uint
	department     string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAsset(tag, name, category, department string) (*Asset, error) {
	if tag == "" {
		return nil, fmt.Errorf("asset tag is required")
	}
	if name == "" {
		return nil, fmt.Errorf("asset name is required")
	}
	if category == "" {
		return nil, fmt.Errorf("asset category is required")
	}

	now := time.Now()
	return &Asset{
		tag:        tag,
		name:       name,
		category:   category,
		status:     StatusAvailable,
		department: department,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAsset(
	id uint,
	tag string,
	name string,
	category string,
	status AssetStatus,
	assignedUserID *uint,
	department string,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status: %s", status)
	}

	return &Asset{
		id:             id,
		tag:            tag,
		name:           name,
		category:       category,
		status:         status,
		assignedUserID: assignedUserID,
		department:     department,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (a *Asset) ID() uint {
	return a.id
}

func (a *Asset) Tag() string {
	return a.tag
}

func (a *Asset) Name() string {
	return a.name
}

func (a *Asset) Category() string {
	return a.category
}

func (a *Asset) Status() AssetStatus {
	return a.status
}

func (a *Asset) AssignedUserID() *uint {
	return a.assignedUserID
}

func (a *Asset) Department() string {
	return a.department
}

func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsAssignedTo reports whether the asset is currently assigned to the
// given user. This backs the ownership guard on ticket creation.
func (a *Asset) IsAssignedTo(userID uint) bool {
	return a.assignedUserID != nil && *a.assignedUserID == userID
}

func (a *Asset) AssignTo(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if a.status == StatusRetired {
		return fmt.Errorf("cannot assign a retired asset")
	}

	a.assignedUserID = &userID
	a.status = StatusAssigned
	a.updatedAt = time.Now()
	return nil
}

func (a *Asset) Unassign() error {
	if a.assignedUserID == nil {
		return fmt.Errorf("asset is not assigned")
	}

	a.assignedUserID = nil
	a.status = StatusAvailable
	a.updatedAt = time.Now()
	return nil
}
