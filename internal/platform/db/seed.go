package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ems/internal/domain/auth"
	"ems/internal/domain/core"
	"ems/internal/platform/config"
	"ems/internal/platform/querier"
)

const AdminRole = "Admin"

var DefaultDepartments = []core.CreateDepartmentInput{
	{Name: "Engineering", Description: "Product and platform engineering"},
	{Name: "HR", Description: "People operations"},
	{Name: "Finance", Description: "Accounting and payroll"},
}

type departmentCreator interface {
	CreateDepartment(ctx context.Context, in core.CreateDepartmentInput) (core.Department, error)
}

type userRegistrar interface {
	Register(ctx context.Context, in auth.RegisterInput) (auth.User, error)
}

// Seed is idempotent: records that already exist are left untouched.
func Seed(ctx context.Context, db querier.Querier, cfg config.Config) error {
	departments := core.NewService(core.NewStore(db))
	users := auth.NewService(auth.NewStore(db), nil)
	return seed(ctx, departments, users, cfg)
}

func seed(ctx context.Context, departments departmentCreator, users userRegistrar, cfg config.Config) error {
	for _, in := range DefaultDepartments {
		dep, err := departments.CreateDepartment(ctx, in)
		switch {
		case errors.Is(err, core.ErrDepartmentNameTaken):
			continue
		case err != nil:
			return err
		}
		slog.Info("seeded department", "name", dep.Name, "id", dep.ID)
	}

	return ensureAdminUser(ctx, users, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdminUser(ctx context.Context, users userRegistrar, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		slog.Warn("admin seed skipped", "reason", "SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set")
		return nil
	}

	user, err := users.Register(ctx, auth.RegisterInput{
		FullName: "System Administrator",
		Email:    email,
		Password: password,
		Role:     AdminRole,
	})
	if errors.Is(err, auth.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("seeded admin user", "email", user.Email)
	return nil
}
