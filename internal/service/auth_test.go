package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/imaging-leads/internal/auth"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/repository/mocks"
)

const (
	jwtAlgoEd25519 = "EdDSA"
	jwtIssuerClaim = "test-issuer"
	jwtTimeToLive  = 3 * time.Minute
)

var testAuthCtx = context.Background()
var testNow = time.Now().UTC()
var testPassword = "secret_password"

type authServiceTestSuite struct {
	suite.Suite
	authSvc        AuthService
	jwtIssuer      *auth.JwtIssuer
	testStaff      *model.Staff
	transactorMock *mocks.Transactor
	staffRpsMock   *mocks.StaffRepository
}

func (s *authServiceTestSuite) SetupSuite() {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err, "failed to generate ed25519 key")
	s.jwtIssuer = auth.NewJwtIssuer(jwtIssuerClaim, jwt.GetSigningMethod(jwtAlgoEd25519), jwtTimeToLive, priv)

	hash, err := auth.HashPassword(testPassword)
	s.Require().NoError(err, "failed to hash password")

	s.testStaff = &model.Staff{
		ID:           "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
		Email:        "staff@email.com",
		PasswordHash: hash,
	}
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()
	s.transactorMock = mocks.NewTransactor(t)
	s.staffRpsMock = mocks.NewStaffRepository(t)
	s.authSvc = NewAuthService(s.jwtIssuer, s.transactorMock, s.staffRpsMock)
}

func (s *authServiceTestSuite) withinTransaction() {
	s.transactorMock.On(
		"WithinTransaction",
		testAuthCtx,
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		return txFunc(ctx)
	}).Once()
}

func (s *authServiceTestSuite) TestLoginUnknownEmail() {
	email := s.testStaff.Email

	s.staffRpsMock.On("FindByEmail", testAuthCtx, email).Return(nil, nil).Once()

	s.T().Logf("login staff %s but email is not registered", email)
	{
		_, err := s.authSvc.Login(testAuthCtx, email, testPassword, testNow)
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginBadPassword() {
	email := s.testStaff.Email

	s.staffRpsMock.On("FindByEmail", testAuthCtx, email).Return(s.testStaff, nil).Once()

	s.T().Logf("login staff %s but password is incorrect", email)
	{
		_, err := s.authSvc.Login(testAuthCtx, email, "invalid_password", testNow)
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginSuccess() {
	s.staffRpsMock.On("FindByEmail", testAuthCtx, s.testStaff.Email).Return(s.testStaff, nil).Once()

	s.T().Log("email is matched case-insensitively")
	{
		token, err := s.authSvc.Login(testAuthCtx, " Staff@Email.com ", testPassword, testNow)
		s.Assert().NoError(err, "credentials are correct but error was raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), token.ExpiresAt, "incorrect time to live was set for jwt")
	}
}

func (s *authServiceTestSuite) TestEnsureStaffCreatesAccount() {
	s.withinTransaction()
	s.staffRpsMock.On("FindByEmail", testAuthCtx, "admin@email.com").Return(nil, nil).Once()
	s.staffRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*model.Staff")).Return(nil).Once()

	err := s.authSvc.EnsureStaff(testAuthCtx, "admin@email.com", testPassword)
	s.Assert().NoError(err, "no error must be raised")
}

func (s *authServiceTestSuite) TestEnsureStaffUpToDate() {
	s.withinTransaction()
	s.staffRpsMock.On("FindByEmail", testAuthCtx, s.testStaff.Email).Return(s.testStaff, nil).Once()

	err := s.authSvc.EnsureStaff(testAuthCtx, s.testStaff.Email, testPassword)
	s.Assert().NoError(err, "no error must be raised")
	s.staffRpsMock.AssertNotCalled(s.T(), "UpdatePasswordHash", mock.Anything, mock.Anything, mock.Anything)
}

func (s *authServiceTestSuite) TestEnsureStaffRefreshesPassword() {
	s.withinTransaction()
	s.staffRpsMock.On("FindByEmail", testAuthCtx, s.testStaff.Email).Return(s.testStaff, nil).Once()
	s.staffRpsMock.On("UpdatePasswordHash", testAuthCtx, s.testStaff.ID, mock.AnythingOfType("string")).Return(nil).Once()

	err := s.authSvc.EnsureStaff(testAuthCtx, s.testStaff.Email, "new_password")
	s.Assert().NoError(err, "no error must be raised")
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
