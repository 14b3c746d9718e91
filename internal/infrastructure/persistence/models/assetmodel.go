package models

type AssetModel struct {
	ID             uint   `gorm:"primaryKey"`
	Tag            string `gorm:"uniqueIndex;size:50;not null"`
	Name           string `gorm:"size:200;not null"`
	Category       string `gorm:"size:50;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	AssignedUserID *uint  `gorm:"index"`
	Department     string `gorm:"size:100;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AssetModel) TableName() string {
	return "assets"
}
