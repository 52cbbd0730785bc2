package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffpoint/attendance-backend-go/internal/domain/auth"
	"github.com/staffpoint/attendance-backend-go/internal/domain/employee"
	"github.com/staffpoint/attendance-backend-go/internal/domain/user"
	"github.com/staffpoint/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// same error for unknown email and bad password
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !emp.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.FullName, emp.Role)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token: token,
		User:  toProfile(emp),
	}, nil
}

// Profile implements auth.AuthService.
func (s *AuthServiceImpl) Profile(ctx context.Context) (*auth.UserProfile, error) {
	identity, err := user.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, identity.EmployeeID)
	if err != nil {
		return nil, err
	}

	profile := toProfile(emp)
	return &profile, nil
}

func toProfile(emp employee.Employee) auth.UserProfile {
	return auth.UserProfile{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.FullName,
		Email:        emp.Email,
		Role:         string(emp.Role),
		Department:   emp.Department,
		Position:     emp.Position,
	}
}
