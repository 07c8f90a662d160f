package app

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"blogit/internal/model"
	"blogit/internal/pkg/jwtutil"
	"blogit/internal/repository"
)

// AuthService issues and backs the session credential. Logout is client-side
// only: there is no server-side revocation, so an issued token remains valid
// until it expires.
type AuthService struct {
	userRepo      *repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

type LoginInput struct {
	Identifier string
	Password   string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates an account after checking that the username and email are
// unused among non-deleted accounts. The check-then-insert window is not
// closed by a database constraint, matching the documented uniqueness rule.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := strings.TrimSpace(input.Password)

	if firstName == "" {
		return nil, &ValidationError{Field: "first name"}
	}
	if lastName == "" {
		return nil, &ValidationError{Field: "last name"}
	}
	if username == "" {
		return nil, &ValidationError{Field: "username"}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email address"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password"}
	}

	existingByEmail, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingByEmail != nil {
		return nil, ErrEmailExists
	}

	existingByName, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existingByName != nil {
		return nil, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts a username or email as identifier. Unknown identifier and
// wrong password collapse into the same error so callers cannot enumerate
// accounts.
func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	identifier := strings.TrimSpace(input.Identifier)
	password := strings.TrimSpace(input.Password)
	if identifier == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, jwtutil.Principal{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// ChangePassword verifies the previous password before storing a new hash.
func (s *AuthService) ChangePassword(userID uint, previous, next string) error {
	previous = strings.TrimSpace(previous)
	next = strings.TrimSpace(next)
	if userID == 0 || previous == "" {
		return ErrInvalidInput
	}
	if next == "" {
		return &ValidationError{Field: "new password"}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrProfileNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(previous)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}
	return s.userRepo.UpdatePasswordHash(userID, string(hash))
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.userRepo.GetByID(id)
}
