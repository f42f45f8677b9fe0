package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dzhusipov/fleet-core/internal/dto"
	"github.com/dzhusipov/fleet-core/internal/model"
	"github.com/dzhusipov/fleet-core/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
	var empty dto.UserResponse

	role := model.Role(req.Role)
	if !role.Valid() {
		return empty, &InvalidEnumError{Field: "role", Value: req.Role}
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return empty, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return empty, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return empty, err
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	u := model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		Language:     lang,
		Active:       true,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return empty, err
	}
	return dto.ToUserResponse(&u), nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (dto.UserResponse, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.ToUserResponse(u), nil
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = dto.ToUserResponse(&users[i])
	}
	return out, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (dto.UserResponse, error) {
	var empty dto.UserResponse

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return empty, err
	}

	if req.FullName.Present && !req.FullName.Null {
		u.FullName = req.FullName.Value
	}
	if req.Role.Present && !req.Role.Null {
		role := model.Role(req.Role.Value)
		if !role.Valid() {
			return empty, &InvalidEnumError{Field: "role", Value: req.Role.Value}
		}
		u.Role = role
	}
	if req.Language.Present && !req.Language.Null {
		u.Language = req.Language.Value
	}
	if req.Active.Present && !req.Active.Null {
		u.Active = req.Active.Value
	}
	if req.TelegramChatID.Present {
		u.TelegramChatID = req.TelegramChatID.Ptr()
	}
	if req.Password.Present && !req.Password.Null {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return empty, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return empty, err
	}
	return dto.ToUserResponse(u), nil
}
