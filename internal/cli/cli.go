package cli

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/repository"
	"bloom_daily_backend/internal/service"
	"bloom_daily_backend/pkg/database"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"
)

// Context 子命令共享的运行时依赖
type Context struct {
	DB       *gorm.DB
	Email    string
	Location *time.Location
	Out      io.Writer
	Now      func() time.Time
}

type stack struct {
	users     *service.UserService
	analytics *service.AnalyticsService
}

func (c *Context) stack() *stack {
	userRepo := repository.NewUserRepository(c.DB)
	analytics := service.NewAnalyticsService(
		userRepo,
		repository.NewRoutineRepository(c.DB),
		repository.NewRoutineLogRepository(c.DB),
		repository.NewGoalRepository(c.DB),
		repository.NewGoalLogRepository(c.DB),
		c.Location,
	)
	if c.Now != nil {
		analytics.Now = c.Now
	}
	return &stack{users: service.NewUserService(userRepo), analytics: analytics}
}

func (c *Context) print(v interface{}) error {
	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type SeedCmd struct{}

func (cmd *SeedCmd) Run(c *Context) error {
	if err := database.Migrate(c.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	user, err := database.Seed(c.DB, c.Email)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return c.print(user)
}

type ReportCmd struct {
	Range string `help:"Time range: weekly, monthly or yearly." default:"weekly" enum:"weekly,monthly,yearly"`
}

func (cmd *ReportCmd) Run(c *Context) error {
	ctx := context.Background()
	s := c.stack()

	user, err := s.users.Resolve(ctx, c.Email)
	if err != nil {
		return err
	}
	series, err := s.analytics.ResolveAndAggregate(ctx, user.ID, model.TimeRange(cmd.Range))
	if err != nil {
		return err
	}
	return c.print(series)
}

type StatusCmd struct{}

func (cmd *StatusCmd) Run(c *Context) error {
	ctx := context.Background()
	s := c.stack()

	user, err := s.users.Resolve(ctx, c.Email)
	if err != nil {
		return err
	}
	dist, err := s.analytics.ClassifyGoalStatus(ctx, user.ID)
	if err != nil {
		return err
	}
	return c.print(dist)
}
