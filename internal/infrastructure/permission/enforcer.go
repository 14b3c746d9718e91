package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/assetdesk/assetdesk/internal/shared/logger"
)

// rbacModel is the static RBAC model: subject (role), object (resource),
// action. Role inheritance is handled by the g grouping.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Enforcer answers role-capability checks backed by casbin with policies
// persisted through the gorm adapter.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed",
			"error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.AddPolicy(role, resource, action)
	if err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) RemovePolicy(role string, resource string, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.enforcer.RemovePolicy(role, resource, action)
	if err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

// Raw exposes the underlying casbin enforcer for policy seeding.
func (e *Enforcer) Raw() *casbin.Enforcer {
	return e.enforcer
}
