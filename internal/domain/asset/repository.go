package asset

import "context"

type AssetRepository interface {
	Save(ctx context.Context, asset *Asset) error
	Update(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, assetID uint) (*Asset, error)
	GetByUserID(ctx context.Context, userID uint) ([]*Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]*Asset, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type AssetFilter struct {
	Status     *AssetStatus
	Category   *string
	Department *string
	Page       int
	PageSize   int
}
