package users

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"resume-hub/internal/shared/apperr"
	"resume-hub/internal/shared/auth"
	"resume-hub/internal/shared/identity"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// SignUpInput is the raw sign-up request.
type SignUpInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	Name            string
}

// Service implements sign-up, sign-in and user resolution for the auth gate.
type Service struct {
	Repo   Repo
	Hasher auth.PasswordHasher
	Tokens TokenIssuer
}

func NewService(repo Repo, hasher auth.PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{Repo: repo, Hasher: hasher, Tokens: tokens}
}

// SignUp validates the input in a fixed order, reporting only the first
// failure, then stores the user and profile together.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (Profile, error) {
	switch {
	case in.Email == "":
		return Profile{}, apperr.MissingField("email", "이메일을 입력해 주세요.")
	case in.Password == "":
		return Profile{}, apperr.MissingField("password", "비밀번호를 입력해 주세요.")
	case in.PasswordConfirm == "":
		return Profile{}, apperr.MissingField("passwordConfirm", "비밀번호 확인을 입력해 주세요.")
	case in.Name == "":
		return Profile{}, apperr.MissingField("name", "이름을 입력해 주세요.")
	}
	if !emailPattern.MatchString(in.Email) {
		return Profile{}, apperr.New(apperr.CodeInvalidFormat).WithField("email")
	}

	_, err := s.Repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return Profile{}, apperr.New(apperr.CodeConflict)
	case !errors.Is(err, ErrNotFound):
		return Profile{}, err
	}

	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return Profile{}, apperr.New(apperr.CodeWeakPassword).WithField("password")
	}
	if in.Password != in.PasswordConfirm {
		return Profile{}, apperr.New(apperr.CodePasswordMismatch).WithField("passwordConfirm")
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return Profile{}, err
	}

	_, profile, err := s.Repo.Create(ctx, User{Email: in.Email, PasswordHash: hash}, in.Name)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return Profile{}, apperr.New(apperr.CodeConflict)
		}
		return Profile{}, err
	}
	return profile, nil
}

// SignIn verifies credentials and returns a fresh session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	switch {
	case email == "":
		return "", apperr.MissingField("email", "이메일을 입력해 주세요.")
	case password == "":
		return "", apperr.MissingField("password", "비밀번호를 입력해 주세요.")
	}
	if !emailPattern.MatchString(email) {
		return "", apperr.New(apperr.CodeInvalidFormat).WithField("email")
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", apperr.NotFound("회원 정보가 조회되지 않습니다.")
		}
		return "", err
	}

	ok, err := s.Hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.New(apperr.CodeInvalidCredentials).WithField("password")
	}

	return s.Tokens.Issue(user.ID)
}

// ResolveUser loads the live user for the auth gate.
func (s *Service) ResolveUser(ctx context.Context, userID int64) (identity.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return identity.User{}, identity.ErrUnknownUser
		}
		return identity.User{}, err
	}
	return identity.User{ID: user.ID, Email: user.Email}, nil
}

// Profile returns the profile of userID.
func (s *Service) Profile(ctx context.Context, userID int64) (Profile, error) {
	profile, err := s.Repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Profile{}, apperr.NotFound("회원 정보가 조회되지 않습니다.")
		}
		return Profile{}, err
	}
	return profile, nil
}
