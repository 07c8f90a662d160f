package app

import (
	"strings"

	"blogit/internal/model"
	"blogit/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

type UpdateProfileInput struct {
	UserID    uint
	FirstName string
	LastName  string
	Username  string
	Email     string
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Profile(userID uint) (*model.User, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrProfileNotFound
	}
	return user, nil
}

// UpdateProfile merges only the non-empty fields, the same falsy-skip rule
// the blog update uses.
func (s *UserService) UpdateProfile(input UpdateProfileInput) (*model.User, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	existing, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	fields := map[string]interface{}{}
	if v := strings.TrimSpace(input.FirstName); v != "" {
		fields["first_name"] = v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		fields["last_name"] = v
	}
	if v := strings.TrimSpace(input.Username); v != "" {
		fields["username"] = v
	}
	if v := strings.TrimSpace(strings.ToLower(input.Email)); v != "" {
		fields["email"] = v
	}
	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.userRepo.UpdateFields(input.UserID, fields); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(input.UserID)
}

// DeleteAccount soft-flags the account. The row is kept; the username and
// email become available again for registration.
func (s *UserService) DeleteAccount(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrProfileNotFound
	}
	return s.userRepo.SoftDelete(userID)
}
