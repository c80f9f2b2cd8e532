package service

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/noonstudio/cms_api/internal/repository"
	"github.com/noonstudio/cms_api/internal/utils"
)

// MinPasswordLength is the minimum accepted length for a new admin password.
const MinPasswordLength = 6

// CredentialService validates and rotates the single shared admin credential.
// A stored bcrypt hash, once created, always takes precedence over the
// environment-configured bootstrap password.
type CredentialService struct {
	credRepo    repository.CredentialRepository
	envPassword string
}

// NewCredentialService constructs a CredentialService. envPassword may be
// empty; with no stored hash and no bootstrap password every validation fails.
func NewCredentialService(credRepo repository.CredentialRepository, envPassword string) *CredentialService {
	return &CredentialService{credRepo: credRepo, envPassword: envPassword}
}

// Validate reports whether the candidate password matches the current admin
// credential. The error return is reserved for store failures; a mismatch is
// (false, nil).
func (s *CredentialService) Validate(ctx context.Context, candidate string) (bool, error) {
	cred, err := s.credRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load admin credential")
		return false, err
	}

	if cred != nil {
		return bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(candidate)) == nil, nil
	}

	// No stored hash yet: fall back to the bootstrap password. With neither
	// configured, validation always fails.
	if s.envPassword == "" {
		log.Warn().Msg("no admin credential configured; rejecting login")
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.envPassword)) == 1, nil
}

// ChangePassword rotates the admin credential. After success all future
// validations use the stored hash exclusively; the bootstrap password becomes
// unreachable until the stored row is externally deleted.
func (s *CredentialService) ChangePassword(ctx context.Context, current, next string) error {
	if current == "" || next == "" {
		return utils.ErrPasswordRequired
	}
	if len(next) < MinPasswordLength {
		return utils.ErrPasswordTooShort
	}

	ok, err := s.Validate(ctx, current)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	cred, err := s.credRepo.Get(ctx)
	if err != nil {
		return err
	}
	if cred != nil {
		if err := s.credRepo.UpdateHash(ctx, cred.ID, string(newHash)); err != nil {
			return err
		}
	} else {
		if err := s.credRepo.Insert(ctx, string(newHash)); err != nil {
			return err
		}
	}

	log.Info().Msg("admin credential rotated")
	return nil
}
