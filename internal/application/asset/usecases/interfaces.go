package usecases

import "context"

type GetUserAssetsExecutor interface {
	Execute(ctx context.Context, query GetUserAssetsQuery) (*GetUserAssetsResult, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context, query ListAssetsQuery) (*ListAssetsResult, error)
}

type AssignAssetExecutor interface {
	Execute(ctx context.Context, cmd AssignAssetCommand) (*AssetDTO, error)
}

type UnassignAssetExecutor interface {
	Execute(ctx context.Context, cmd UnassignAssetCommand) (*AssetDTO, error)
}
