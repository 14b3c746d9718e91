package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// InitPortalPermissions seeds the role-capability matrix. Employees act on
// their own records, managers add department review powers, admins get the
// full surface. Superadmin inherits admin through the g grouping.
func InitPortalPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Employee permissions: own tickets, own assets, own chats.
		{"employee", "ticket", "create"},
		{"employee", "ticket", "read"},
		{"employee", "ticket", "update_status"},
		{"employee", "asset", "read"},
		{"employee", "message", "send"},
		{"employee", "message", "read"},
		{"employee", "device_login", "read"},
		{"employee", "dashboard", "read"},

		// Manager permissions: employee surface plus department review.
		{"manager", "ticket", "approve"},
		{"manager", "ticket", "reject"},
		{"manager", "asset", "list"},

		// Admin permissions: full portal surface.
		{"admin", "ticket", "create_on_behalf"},
		{"admin", "ticket", "approve"},
		{"admin", "ticket", "reject"},
		{"admin", "asset", "assign"},
		{"admin", "asset", "unassign"},
		{"admin", "device_login", "read_any"},
	}

	groupings := [][]string{
		{"manager", "employee"},
		{"admin", "manager"},
		{"superadmin", "admin"},
	}

	for _, policy := range policies {
		_, err := enforcer.AddPolicy(policy)
		if err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	for _, grouping := range groupings {
		_, err := enforcer.AddGroupingPolicy(grouping[0], grouping[1])
		if err != nil {
			log.Errorw("failed to add role inheritance",
				"error", err, "role", grouping[0], "inherits", grouping[1])
			return fmt.Errorf("failed to add grouping [%s, %s]: %w",
				grouping[0], grouping[1], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Error("failed to save portal permissions", "error", err)
		return fmt.Errorf("failed to save portal permissions: %w", err)
	}

	log.Info("portal permissions initialized successfully")
	return nil
}
