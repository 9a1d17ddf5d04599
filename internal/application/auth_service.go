package application

import (
	"context"
	"fmt"
	"io"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/domain"
	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/ports"
	"github.com/Sai-Chandu-Mallelli/canteen-client/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the session/profile facade: it owns signup, login and
// profile edits against the identity and account stores.
type AuthService struct {
	identity ports.IdentityPort
	accounts ports.AccountStorePort
	images   ports.ImageHostPort
	logger   *zap.Logger
}

func NewAuthService(identity ports.IdentityPort, accounts ports.AccountStorePort, images ports.ImageHostPort, logger *zap.Logger) *AuthService {
	return &AuthService{identity: identity, accounts: accounts, images: images, logger: logger}
}

// SignUp creates a credential row and the matching account document with the
// starting balance. A failed document write returns ErrProfileWrite and
// leaves the identity in place; the next login repairs it.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*domain.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", domain.ErrAuth)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("%w: hash password: %v", domain.ErrAuth, err)
	}
	user, err := s.identity.CreateUser(ctx, email, string(hashed))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	acct := &domain.Account{
		UID:     user.UID,
		Name:    name,
		Email:   email,
		Balance: domain.StartingBalance,
	}
	if err := s.accounts.SetAccount(ctx, acct); err != nil {
		s.logger.Error("account document write failed after signup",
			zap.String("uid", user.UID), zap.Error(err))
		return nil, "", fmt.Errorf("%w: %v", domain.ErrProfileWrite, err)
	}
	token, err := auth.GenerateToken(email, user.UID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: issue token: %v", domain.ErrAuth, err)
	}
	return acct, token, nil
}

// LogIn verifies credentials and returns the user, the account snapshot and
// a session token. An identity without an account document (an orphan left
// by a failed signup) gets its document recreated with the starting balance.
// A document read failure is logged and returns a nil account; the refresh
// cascade retries later.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (*domain.User, *domain.Account, string, error) {
	user, err := s.identity.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	if user == nil {
		return nil, nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrAuth)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, "", fmt.Errorf("%w: invalid credentials", domain.ErrAuth)
	}
	token, err := auth.GenerateToken(email, user.UID)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%w: issue token: %v", domain.ErrAuth, err)
	}
	acct, err := s.accounts.GetAccount(ctx, user.UID)
	if err != nil {
		s.logger.Warn("account read failed on login", zap.String("uid", user.UID), zap.Error(err))
		return user, nil, token, nil
	}
	if acct == nil {
		acct = &domain.Account{UID: user.UID, Email: email, Balance: domain.StartingBalance}
		if err := s.accounts.SetAccount(ctx, acct); err != nil {
			s.logger.Error("orphan account repair failed", zap.String("uid", user.UID), zap.Error(err))
			return user, nil, token, nil
		}
		s.logger.Info("recreated missing account document", zap.String("uid", user.UID))
	}
	return user, acct, token, nil
}

// FetchAccount reads the account document. (nil, nil) means no document.
func (s *AuthService) FetchAccount(ctx context.Context, uid string) (*domain.Account, error) {
	acct, err := s.accounts.GetAccount(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: account %s: %v", domain.ErrRead, uid, err)
	}
	return acct, nil
}

// UpdateProfile writes name and email, uploading the photo first when one is
// supplied. An upload failure drops the photo and commits the remaining
// fields rather than failing the whole update.
func (s *AuthService) UpdateProfile(ctx context.Context, uid string, photo io.Reader, name, email string) error {
	if name == "" || email == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrProfileWrite)
	}
	fields := map[string]interface{}{
		"name":  name,
		"email": email,
	}
	if photo != nil {
		url, err := s.images.Upload(ctx, photo)
		if err != nil {
			s.logger.Warn("profile photo upload failed, committing fields without it",
				zap.String("uid", uid), zap.Error(err))
		} else {
			fields["profile_photo"] = url
		}
	}
	if err := s.accounts.UpdateAccountFields(ctx, uid, fields); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProfileWrite, err)
	}
	return nil
}
