package migration

import (
	"github.com/assetdesk/assetdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.AssetModel{},
		&models.TicketModel{},
		&models.TicketHistoryModel{},
		&models.TicketAttachmentModel{},
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.DeviceLoginModel{},
	}
}
