package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	pkgauth "github.com/driesvermeulen/loadline-backend/pkg/auth"
	"github.com/driesvermeulen/loadline-backend/pkg/auth/session"
	"github.com/driesvermeulen/loadline-backend/pkg/config"
	"github.com/driesvermeulen/loadline-backend/pkg/db/models"
	"github.com/driesvermeulen/loadline-backend/pkg/enums"
	pkgerrors "github.com/driesvermeulen/loadline-backend/pkg/errors"
	"github.com/driesvermeulen/loadline-backend/pkg/security"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "test-secret",
	Issuer:            "loadline",
	ExpirationMinutes: 30,
}

type stubUserRepo struct {
	byEmail    map[string]*models.User
	byID       map[uuid.UUID]*models.User
	lastLogins map[uuid.UUID]time.Time
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:    make(map[string]*models.User),
		byID:       make(map[uuid.UUID]*models.User),
		lastLogins: make(map[uuid.UUID]time.Time),
	}
}

func (s *stubUserRepo) add(user *models.User) {
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	s.lastLogins[id] = at
	return nil
}

type stubSessionManager struct {
	sessions map[string]string
	revoked  []string
}

func newStubSessionManager() *stubSessionManager {
	return &stubSessionManager{sessions: make(map[string]string)}
}

func (s *stubSessionManager) Generate(_ context.Context, accessID string) (string, error) {
	token := "refresh-" + accessID
	s.sessions[accessID] = token
	return token, nil
}

func (s *stubSessionManager) Rotate(_ context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := s.sessions[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(s.sessions, oldAccessID)
	newAccessID := uuid.NewString()
	newToken := "refresh-" + newAccessID
	s.sessions[newAccessID] = newToken
	return newAccessID, newToken, nil
}

func (s *stubSessionManager) Revoke(_ context.Context, accessID string) error {
	delete(s.sessions, accessID)
	s.revoked = append(s.revoked, accessID)
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role enums.UserRole) *models.User {
	t.Helper()

	hash, err := security.HashPassword(password, config.PasswordConfig{})
	require.NoError(t, err)

	companyID := uuid.New()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    &companyID,
		IsActive:     true,
	}
	repo.add(user)
	return user
}

func newTestService(t *testing.T, repo *stubUserRepo, sessions *stubSessionManager) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig,
	})
	require.NoError(t, err)
	return svc
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr, "expected coded error, got %v", err)
	assert.Equal(t, code, appErr.Code())
}

func TestServiceLoginIssuesTokenPair(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	user := seedUser(t, repo, "dispatcher@vermeulen.test", "sterk-wachtwoord", enums.UserRoleCompany)
	svc := newTestService(t, repo, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    " Dispatcher@Vermeulen.test ",
		Password: "sterk-wachtwoord",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, enums.UserRoleCompany, claims.Role)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, *user.CompanyID, *claims.CompanyID)

	_, tracked := repo.lastLogins[user.ID]
	assert.True(t, tracked)
	assert.Equal(t, resp.RefreshToken, sessions.sessions[claims.ID])
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	seedUser(t, repo, "dispatcher@vermeulen.test", "sterk-wachtwoord", enums.UserRoleCompany)
	svc := newTestService(t, repo, sessions)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Email: "dispatcher@vermeulen.test", Password: "fout"})
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = svc.Login(ctx, LoginRequest{Email: "onbekend@vermeulen.test", Password: "sterk-wachtwoord"})
	requireCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = svc.Login(ctx, LoginRequest{Email: "  ", Password: "sterk-wachtwoord"})
	requireCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestServiceLoginRejectsInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	user := seedUser(t, repo, "dispatcher@vermeulen.test", "sterk-wachtwoord", enums.UserRoleCompany)
	user.IsActive = false
	svc := newTestService(t, repo, sessions)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "dispatcher@vermeulen.test",
		Password: "sterk-wachtwoord",
	})
	requireCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestServiceRefreshRotatesSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	user := seedUser(t, repo, "dispatcher@vermeulen.test", "sterk-wachtwoord", enums.UserRoleCompany)
	svc := newTestService(t, repo, sessions)
	ctx := context.Background()

	login, err := svc.Login(ctx, LoginRequest{Email: "dispatcher@vermeulen.test", Password: "sterk-wachtwoord"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// Old pair no longer rotates.
	_, err = svc.Refresh(ctx, RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	requireCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestServiceRefreshRejectsGarbageToken(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	svc := newTestService(t, repo, sessions)

	_, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  "not-a-jwt",
		RefreshToken: "whatever",
	})
	requireCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestServiceLogoutRevokesSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionManager()
	seedUser(t, repo, "dispatcher@vermeulen.test", "sterk-wachtwoord", enums.UserRoleCompany)
	svc := newTestService(t, repo, sessions)
	ctx := context.Background()

	login, err := svc.Login(ctx, LoginRequest{Email: "dispatcher@vermeulen.test", Password: "sterk-wachtwoord"})
	require.NoError(t, err)

	claims, err := pkgauth.ParseAccessToken(testJWTConfig, login.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.ID))
	assert.Equal(t, []string{claims.ID}, sessions.revoked)

	err = svc.Logout(ctx, "  ")
	requireCode(t, err, pkgerrors.CodeUnauthorized)
}
