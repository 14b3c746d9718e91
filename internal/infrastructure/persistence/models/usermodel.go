package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Department   string `gorm:"size:100;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	DeletedAt    *int64 `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
