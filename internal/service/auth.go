package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/auth"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/repository"
	"github.com/umalmyha/imaging-leads/pkg/db/transactor"
)

// AuthService authenticates staff members
type AuthService interface {
	Login(context.Context, string, string, time.Time) (*auth.Jwt, error)
	EnsureStaff(context.Context, string, string) error
}

type authService struct {
	jwtIssuer  *auth.JwtIssuer
	transactor transactor.Transactor
	staffRepo  repository.StaffRepository
}

// NewAuthService builds AuthService
func NewAuthService(jwtIssuer *auth.JwtIssuer, trx transactor.Transactor, staffRepo repository.StaffRepository) AuthService {
	return &authService{jwtIssuer: jwtIssuer, transactor: trx, staffRepo: staffRepo}
}

func (s *authService) Login(ctx context.Context, email, password string, at time.Time) (*auth.Jwt, error) {
	staff, err := s.staffRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if staff == nil || !auth.PasswordMatches(staff.PasswordHash, password) {
		return nil, echo.ErrUnauthorized
	}

	return s.jwtIssuer.Sign(staff, at)
}

// EnsureStaff creates staff account or refreshes its password hash, if password was changed
func (s *authService) EnsureStaff(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		staff, err := s.staffRepo.FindByEmail(ctx, email)
		if err != nil {
			return err
		}

		if staff != nil && auth.PasswordMatches(staff.PasswordHash, password) && !auth.NeedsRehash(staff.PasswordHash) {
			return nil
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password - %w", err)
		}

		if staff == nil {
			logrus.Infof("creating staff account %s", email)
			return s.staffRepo.Create(ctx, &model.Staff{ID: uuid.NewString(), Email: email, PasswordHash: hash})
		}

		logrus.Infof("refreshing password of staff account %s", email)
		return s.staffRepo.UpdatePasswordHash(ctx, staff.ID, hash)
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
