package core

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/karizzz/subletez-backend/internal/db"
	"github.com/karizzz/subletez-backend/internal/identity"
	"github.com/karizzz/subletez-backend/internal/models"
)

// accountService implements AccountService.
type accountService struct {
	identity identity.Client
	profiles db.ProfileRepository
	logger   *zap.Logger
}

// NewAccountService creates an AccountService over the given identity
// provider client and profile repository.
func NewAccountService(idClient identity.Client, profiles db.ProfileRepository, logger *zap.Logger) AccountService {
	return &accountService{
		identity: idClient,
		profiles: profiles,
		logger:   logger,
	}
}

// SignUp provisions the identity account, then writes the profile record
// keyed by the returned subject ID. The two steps have no transactional
// guarantee from the backing services, so a failed profile write triggers a
// compensating deletion of the account. If the compensation itself fails
// the orphaned account is logged and accepted; the caller still sees the
// original failure either way.
func (s *accountService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error) {
	uid, err := s.identity.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, mapProviderErr(err)
	}

	age := req.Age
	phone := strings.TrimSpace(req.Phone)
	sex := req.Sex
	user := &models.User{
		ID:     uid,
		Name:   strings.TrimSpace(req.Name),
		School: strings.TrimSpace(req.School),
		Bio:    strings.TrimSpace(req.Bio),
		Email:  req.Email,
		Age:    &age,
		Phone:  &phone,
		Sex:    &sex,
	}

	if err := s.profiles.Create(ctx, user); err != nil {
		if delErr := s.identity.DeleteUser(ctx, uid); delErr != nil {
			s.logger.Error("sign-up compensation failed, identity account orphaned",
				zap.String("uid", uid),
				zap.Error(delErr))
		} else {
			s.logger.Warn("sign-up rolled back after profile write failure",
				zap.String("uid", uid))
		}
		return nil, err
	}

	// The repository stamps both timestamps server-side; approximate them in
	// the response rather than re-reading the fresh record.
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	return user, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*identity.Session, error) {
	session, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, mapProviderErr(err)
	}
	return session, nil
}

func (s *accountService) SignOut(ctx context.Context, userID string) error {
	if err := s.identity.RevokeSessions(ctx, userID); err != nil {
		return mapProviderErr(err)
	}
	return nil
}
