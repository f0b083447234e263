package service

import (
	"bloom_daily_backend/internal/model"
	"bloom_daily_backend/internal/repository"
	"context"
	"strings"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

// Resolve 将调用方身份映射为用户记录，缺失时返回 ErrUserNotFound
func (s *UserService) Resolve(ctx context.Context, email string) (*model.User, error) {
	return s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
