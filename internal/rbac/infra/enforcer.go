package infra

import (
	"fmt"

	"github.com/casbin/casbin/v2"
)

// NewEnforcer memuat model dan policy (role, resource, action) dari file.
// Policy hanya dibaca saat start; perubahan butuh restart.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}
	return e, nil
}
