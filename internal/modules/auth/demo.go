package auth

import (
	"time"

	"oceanbreeze/internal/domain"
)

const (
	DemoAdminID = "demo-admin"
	DemoUserID  = "demo-user"
)

// DemoUsers are written ahead of the first registration into an empty users collection.
func DemoUsers(now time.Time) []domain.StoredUser {
	return []domain.StoredUser{
		{
			SessionUser: domain.SessionUser{
				ID:          DemoAdminID,
				Username:    "admin",
				Email:       "admin@oceanbreeze.com.br",
				FullName:    "Administrador do Sistema",
				DateOfBirth: domain.NewDate(1990, time.January, 1),
				Role:        domain.RoleAdmin,
				CreatedAt:   now,
			},
			Password: "admin123",
		},
		{
			SessionUser: domain.SessionUser{
				ID:          DemoUserID,
				Username:    "user",
				Email:       "user@oceanbreeze.com.br",
				FullName:    "Usuário Demonstração",
				DateOfBirth: domain.NewDate(1995, time.June, 15),
				Role:        domain.RoleUser,
				CreatedAt:   now,
			},
			Password: "user123",
		},
	}
}
