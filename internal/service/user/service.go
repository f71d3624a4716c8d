package user

import (
	"context"
	"fmt"
	"time"

	"github.com/atlashr/attendance-backend-go/internal/domain/auth"
	"github.com/atlashr/attendance-backend-go/internal/domain/department"
	"github.com/atlashr/attendance-backend-go/internal/domain/role"
	"github.com/atlashr/attendance-backend-go/internal/domain/user"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
	"github.com/atlashr/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	db                     *database.DB
	userRepository         user.UserRepository
	roleRepository         role.RoleRepository
	departmentRepository   department.DepartmentRepository
	refreshTokenRepository auth.RefreshTokenRepository
}

func NewUserService(
	db *database.DB,
	userRepository user.UserRepository,
	roleRepository role.RoleRepository,
	departmentRepository department.DepartmentRepository,
	refreshTokenRepository auth.RefreshTokenRepository,
) user.UserService {
	return &userService{
		db:                     db,
		userRepository:         userRepository,
		roleRepository:         roleRepository,
		departmentRepository:   departmentRepository,
		refreshTokenRepository: refreshTokenRepository,
	}
}

// CreateUser implements user.UserService.
func (s *userService) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.userRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: &passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		RoleID:       req.RoleID,
		DepartmentID: req.DepartmentID,
		Status:       "active",
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

// ListUsers implements user.UserService.
func (s *userService) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

// GetUser implements user.UserService.
func (s *userService) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

// UpdateUser implements user.UserService. Unset fields keep their stored
// values.
func (s *userService) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	u, err := s.userRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.RoleID != nil {
		u.RoleID = req.RoleID
	}
	if req.DepartmentID != nil {
		u.DepartmentID = req.DepartmentID
	}

	updated, err := s.userRepository.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}
	updated.RoleName = u.RoleName

	return toResponse(updated), nil
}

// DeleteUser implements user.UserService. The user's refresh sessions are
// revoked in the same transaction so a deleted account cannot keep minting
// access tokens.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.refreshTokenRepository.RevokeAllForUser(txCtx, id); err != nil {
			return err
		}
		return s.userRepository.Delete(txCtx, id)
	})
}

// ListRoles implements user.UserService.
func (s *userService) ListRoles(ctx context.Context, departmentID *int64) ([]role.Role, error) {
	return s.roleRepository.List(ctx, departmentID)
}

// ListDepartments implements user.UserService.
func (s *userService) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepository.List(ctx)
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		FullName:     u.FullName(),
		Username:     u.Username,
		RoleID:       u.RoleID,
		RoleName:     u.RoleName,
		DepartmentID: u.DepartmentID,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}
