package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"coworka/internal/entity"
	"coworka/internal/repository"
	"coworka/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type SignupInput struct {
	TenantName string
	TenantSlug string
	Email      string
	Password   string
}

type LoginInput struct {
	TenantSlug string
	Email      string
	Password   string
	DeviceID   string
	DeviceName string
	IPAddress  *string
	UserAgent  *string
}

type LoginMFAInput struct {
	MFAToken   string
	Code       string
	DeviceID   string
	DeviceName string
	IPAddress  *string
	UserAgent  *string
}

type LoginResult struct {
	AccessToken       string
	ExpiresIn         int64
	RefreshToken      string
	RefreshExpiresIn  int64
	MFARequired       bool
	MFAToken          string
	MFATokenExpiresIn int64
}

type AuthService struct {
	tenants       repository.TenantRepository
	users         repository.UserRepository
	sessions      repository.SessionRepository
	verifications repository.VerificationTokenRepository
	mfaSecrets    repository.MFASecretRepository
	auditLogs     repository.AuditLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	accessTokens AccessTokenIssuer
	mfaTokens    MFATokenIssuer
	mfaProvider  MFAProvider
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	tenants repository.TenantRepository,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	verifications repository.VerificationTokenRepository,
	mfaSecrets repository.MFASecretRepository,
	auditLogs repository.AuditLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	accessTokens AccessTokenIssuer,
	mfaTokens MFATokenIssuer,
	mfaProvider MFAProvider,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		tenants:       tenants,
		users:         users,
		sessions:      sessions,
		verifications: verifications,
		mfaSecrets:    mfaSecrets,
		auditLogs:     auditLogs,
		emailSender:   emailSender,
		passwordHash:  passwordHash,
		accessTokens:  accessTokens,
		mfaTokens:     mfaTokens,
		mfaProvider:   mfaProvider,
		clock:         clock,
		config:        config,
	}
}

// Signup provisions a new tenant and its first admin user.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) error {
	if strings.TrimSpace(input.TenantName) == "" || strings.TrimSpace(input.TenantSlug) == "" ||
		strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return ErrInvalidInput
	}

	slug := strings.ToLower(strings.TrimSpace(input.TenantSlug))
	existing, err := s.tenants.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrTenantSlugTaken
	}

	tenant := &entity.Tenant{
		Name:     strings.TrimSpace(input.TenantName),
		Slug:     slug,
		Plan:     entity.TenantPlanStarter,
		IsActive: true,
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return err
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return err
	}

	admin := &entity.User{
		TenantID:     tenant.ID,
		Email:        utils.NormalizeEmail(input.Email),
		PasswordHash: &hash,
		Role:         entity.UserRoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	_ = s.audit(ctx, &tenant.ID, &admin.ID, nil, entity.AuditTenantCreated, map[string]any{"slug": slug})
	return s.sendEmailVerification(ctx, admin)
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	verification, err := s.verifications.FindValid(ctx, utils.HashToken(token), entity.EmailVerify)
	if err != nil {
		return err
	}
	if verification == nil {
		return ErrInvalidToken
	}

	if err := s.users.VerifyEmail(ctx, verification.UserID); err != nil {
		return err
	}
	return s.verifications.MarkUsed(ctx, verification.ID)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.TenantSlug) == "" || strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" || strings.TrimSpace(input.DeviceID) == "" {
		return nil, ErrInvalidInput
	}

	tenant, err := s.tenants.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(input.TenantSlug)))
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		// Burn a hash comparison so a missing tenant costs the same as a bad
		// password.
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		return nil, ErrInvalidCredentials
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, tenant.ID, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.audit(ctx, &tenant.ID, nil, input.IPAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(*user.PasswordHash, input.Password) {
		_ = s.audit(ctx, &tenant.ID, &user.ID, input.IPAddress, entity.AuditLoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if user.EmailVerifiedAt == nil {
		return nil, ErrEmailNotVerified
	}

	if s.mfaProvider != nil && s.mfaSecrets != nil && s.mfaTokens != nil {
		secret, err := s.mfaSecrets.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if secret != nil && secret.EnabledAt != nil {
			mfaToken, expiresIn, err := s.mfaTokens.IssueMFAToken(user.ID)
			if err != nil {
				return nil, err
			}
			return &LoginResult{
				MFARequired:       true,
				MFAToken:          mfaToken,
				MFATokenExpiresIn: int64(expiresIn.Seconds()),
			}, nil
		}
	}

	result, err := s.createSessionAndTokens(ctx, user, input.DeviceID, input.DeviceName, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, err
	}

	_ = s.audit(ctx, &tenant.ID, &user.ID, input.IPAddress, entity.AuditLoginSuccess, map[string]any{"device_id": input.DeviceID})
	return result, nil
}

func (s *AuthService) LoginWithMFA(ctx context.Context, input LoginMFAInput) (*LoginResult, error) {
	if s.mfaProvider == nil || s.mfaTokens == nil || s.mfaSecrets == nil {
		return nil, ErrMFANotConfigured
	}
	if strings.TrimSpace(input.MFAToken) == "" || strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.DeviceID) == "" {
		return nil, ErrInvalidInput
	}
	userID, err := s.mfaTokens.ParseMFAToken(input.MFAToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByIDGlobal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	secret, err := s.mfaSecrets.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.EnabledAt == nil {
		return nil, ErrMFARequired
	}
	if !s.mfaProvider.ValidateCode(secret.Secret, input.Code) {
		_ = s.audit(ctx, &user.TenantID, &user.ID, input.IPAddress, entity.AuditMFAFailed, map[string]any{"device_id": input.DeviceID})
		return nil, ErrInvalidMFACode
	}

	result, err := s.createSessionAndTokens(ctx, user, input.DeviceID, input.DeviceName, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, err
	}
	_ = s.audit(ctx, &user.TenantID, &user.ID, input.IPAddress, entity.AuditLoginSuccess, map[string]any{"device_id": input.DeviceID, "mfa": true})
	return result, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessions.FindByTokenHash(ctx, utils.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByIDGlobal(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	newRefreshToken, newRefreshHash, newRefreshExpiry, err := s.buildRefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.sessions.RotateToken(ctx, session.ID, newRefreshHash, newRefreshExpiry); err != nil {
		return nil, err
	}

	accessToken, expiresIn, err := s.accessTokens.IssueAccessToken(*user, session.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(expiresIn.Seconds()),
		RefreshToken:     newRefreshToken,
		RefreshExpiresIn: int64(newRefreshExpiry.Sub(s.now()).Seconds()),
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, tenantID uuid.UUID, sessionID uuid.UUID, userID *uuid.UUID, ipAddress *string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	_ = s.audit(ctx, &tenantID, userID, ipAddress, entity.AuditLogout, nil)
	return nil
}

func (s *AuthService) LogoutAll(ctx context.Context, tenantID, userID uuid.UUID, ipAddress *string) error {
	if err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
		return err
	}
	_ = s.audit(ctx, &tenantID, &userID, ipAddress, entity.AuditSessionRevoked, map[string]any{"scope": "all"})
	return nil
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, tenantSlug, email string) error {
	if strings.TrimSpace(tenantSlug) == "" || strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	tenant, err := s.tenants.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(tenantSlug)))
	if err != nil {
		return err
	}
	if tenant == nil {
		return nil
	}

	user, err := s.users.FindByEmail(ctx, tenant.ID, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil || user.EmailVerifiedAt == nil {
		return nil
	}

	token, err := s.createVerificationToken(ctx, user.ID, entity.PasswordReset, s.resetTokenTTL())
	if err != nil {
		return err
	}

	if s.emailSender != nil {
		if err := s.emailSender.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
			return err
		}
	}

	_ = s.audit(ctx, &tenant.ID, &user.ID, nil, entity.AuditPasswordReset, nil)
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}

	verification, err := s.verifications.FindValid(ctx, utils.HashToken(token), entity.PasswordReset)
	if err != nil {
		return err
	}
	if verification == nil {
		return ErrInvalidToken
	}

	user, err := s.users.FindByIDGlobal(ctx, verification.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.verifications.MarkUsed(ctx, verification.ID); err != nil {
		return err
	}

	_ = s.sessions.RevokeAllByUser(ctx, user.ID)
	_ = s.audit(ctx, &user.TenantID, &user.ID, nil, entity.AuditPasswordReset, map[string]any{"source": "password_reset"})
	return nil
}

func (s *AuthService) EnableMFA(ctx context.Context, tenantID, userID uuid.UUID) (string, error) {
	if s.mfaProvider == nil || s.mfaSecrets == nil {
		return "", ErrMFANotConfigured
	}
	user, err := s.users.FindByID(ctx, tenantID, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	secret, err := s.mfaProvider.GenerateSecret()
	if err != nil {
		return "", err
	}

	mfaSecret := &entity.MFASecret{
		UserID:    user.ID,
		Secret:    secret,
		EnabledAt: nil,
	}
	if err := s.mfaSecrets.Upsert(ctx, mfaSecret); err != nil {
		return "", err
	}

	issuer := s.config.MFAIssuer
	if strings.TrimSpace(issuer) == "" {
		issuer = "Coworka"
	}
	return s.mfaProvider.QRCodeURL(user.Email, issuer, secret)
}

func (s *AuthService) VerifyMFA(ctx context.Context, userID uuid.UUID, code string) error {
	if s.mfaProvider == nil || s.mfaSecrets == nil {
		return ErrMFANotConfigured
	}
	if strings.TrimSpace(code) == "" {
		return ErrInvalidInput
	}
	secret, err := s.mfaSecrets.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if secret == nil {
		return ErrMFARequired
	}
	if !s.mfaProvider.ValidateCode(secret.Secret, code) {
		return ErrInvalidMFACode
	}

	now := s.now()
	secret.EnabledAt = &now
	return s.mfaSecrets.Upsert(ctx, secret)
}

func (s *AuthService) DisableMFA(ctx context.Context, userID uuid.UUID) error {
	if s.mfaSecrets == nil {
		return nil
	}
	return s.mfaSecrets.Delete(ctx, userID)
}

func (s *AuthService) GetCurrentUser(ctx context.Context, tenantID, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, tenantID, userID)
}

func (s *AuthService) ListUsers(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, tenantID, limit, offset)
}

func (s *AuthService) RevokeUserSessions(ctx context.Context, tenantID, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.sessions.RevokeAllByUser(ctx, user.ID)
}

func (s *AuthService) createSessionAndTokens(
	ctx context.Context,
	user *entity.User,
	deviceID string,
	deviceName string,
	ipAddress *string,
	userAgent *string,
) (*LoginResult, error) {
	refreshToken, refreshHash, refreshExpiry, err := s.buildRefreshToken()
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		TenantID:   user.TenantID,
		UserID:     user.ID,
		TokenHash:  refreshHash,
		DeviceID:   deviceID,
		DeviceName: deviceName,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		ExpiresAt:  refreshExpiry,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	accessToken, expiresIn, err := s.accessTokens.IssueAccessToken(*user, session.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(expiresIn.Seconds()),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshExpiry.Sub(s.now()).Seconds()),
	}, nil
}

func (s *AuthService) sendEmailVerification(ctx context.Context, user *entity.User) error {
	if s.emailSender == nil {
		return nil
	}
	verificationToken, err := s.createVerificationToken(ctx, user.ID, entity.EmailVerify, s.verificationTokenTTL())
	if err != nil {
		return err
	}
	return s.emailSender.SendVerificationEmail(ctx, user.Email, verificationToken)
}

func (s *AuthService) createVerificationToken(
	ctx context.Context,
	userID uuid.UUID,
	typeValue entity.VerificationType,
	ttl time.Duration,
) (string, error) {
	rawToken, err := utils.GenerateRandomToken(32)
	if err != nil {
		return "", err
	}

	verification := &entity.VerificationToken{
		UserID:    userID,
		TokenHash: utils.HashToken(rawToken),
		Type:      typeValue,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.verifications.Create(ctx, verification); err != nil {
		return "", err
	}
	return rawToken, nil
}

func (s *AuthService) buildRefreshToken() (string, string, time.Time, error) {
	rawToken, err := utils.GenerateRandomToken(48)
	if err != nil {
		return "", "", time.Time{}, err
	}
	expiresAt := s.now().Add(s.refreshTokenTTL())
	return rawToken, utils.HashToken(rawToken), expiresAt, nil
}

func (s *AuthService) audit(
	ctx context.Context,
	tenantID *uuid.UUID,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.AuditAction,
	metadata map[string]any,
) error {
	if s.auditLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}
	return s.auditLogs.Log(ctx, &entity.AuditLog{
		TenantID:  tenantID,
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	})
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) refreshTokenTTL() time.Duration {
	if s.config.RefreshTokenTTL == 0 {
		return 30 * 24 * time.Hour
	}
	return s.config.RefreshTokenTTL
}

func (s *AuthService) verificationTokenTTL() time.Duration {
	if s.config.VerificationTokenTTL == 0 {
		return 24 * time.Hour
	}
	return s.config.VerificationTokenTTL
}

func (s *AuthService) resetTokenTTL() time.Duration {
	if s.config.ResetTokenTTL == 0 {
		return 30 * time.Minute
	}
	return s.config.ResetTokenTTL
}
