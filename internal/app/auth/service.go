package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
	"github.com/IgorKammerGrahl/MoodTrack/internal/observability"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 30 * 24 * time.Hour

// Service handles registration, login and token verification.
type Service struct {
	users  domain.UserStore
	secret []byte
	now    func() time.Time
}

func NewService(users domain.UserStore, secret string) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		now:    time.Now,
	}
}

type Credentials struct {
	User  *domain.User
	Token string
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*Credentials, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info("user registered", "user_id", user.ID)
	return &Credentials{User: user, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Credentials, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &Credentials{User: user, Token: token}, nil
}

func (s *Service) generateToken(id domain.UserID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"id":  string(id),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// VerifyToken parses a bearer token and returns the user id it carries.
func (s *Service) VerifyToken(tokenString string) (domain.UserID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected token claims")
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", errors.New("token has no user id")
	}

	return domain.UserID(id), nil
}
