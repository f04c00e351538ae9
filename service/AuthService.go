package service

import (
	"errors"

	"bookstore-api/dto"
	"bookstore-api/model"
	"bookstore-api/repository"
	"bookstore-api/util"
)

var (
	// ErrInvalidCredentials is returned for both unknown user and wrong
	// password so callers cannot tell which field failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists = errors.New("username or email already registered")
)

type AuthService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tokens   *util.TokenIssuer
	mailer   *EmailService
	logger   *util.Logger
}

func NewAuthService(
	u repository.UserRepository,
	r repository.RoleRepository,
	tokens *util.TokenIssuer,
	mailer *EmailService,
	logger *util.Logger,
) *AuthService {
	return &AuthService{
		userRepo: u,
		roleRepo: r,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

// VerifyCredentials checks a submitted username/password pair against the
// identity store. The attempt outcome is logged at info level; the password
// never is.
func (s *AuthService) VerifyCredentials(username, password string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("login attempt for %s failed", username)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := util.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login attempt for %s failed", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("login attempt for %s succeeded", username)
	return user, nil
}

// Login validates credentials and issues a signed bearer token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}

// Register creates a new user with the default Customer role.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	defaultRole, err := s.roleRepo.GetByName("Customer")
	if err != nil {
		// Registration must not create users with zero permissions.
		return nil, errors.New("system error: default role not found")
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		Roles:        []model.Role{*defaultRole},
	}
	if err := s.userRepo.Create(user); err != nil {
		if util.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	// Welcome mail is best effort; registration already succeeded.
	if s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.SendWelcome(user.Email, user.Username); err != nil {
			s.logger.Warn("welcome email to %s failed: %v", user.Email, err)
		}
	}

	return &dto.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
