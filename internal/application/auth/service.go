package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/filmgrid/movie-service/internal/domain"
)

// UserStore is the persistence surface the auth flows need.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Service struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

func New(users UserStore, secret string, tokenTTL time.Duration) *Service {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

type RegisterCmd struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates the account. Email uniqueness is enforced by the store;
// a duplicate surfaces as a conflict, not as a pre-check race.
func (s *Service) Register(ctx context.Context, cmd RegisterCmd) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and returns a signed access token.
// Unknown email and wrong password produce the same response so the
// endpoint cannot be used to probe registered addresses.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) && appErr.Code == domain.CodeNotFound {
			return "", nil, domain.ErrValidation("Invalid email or password")
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrValidation("Invalid email or password")
	}

	token, err := s.sign(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Claims is the access token payload.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

func (s *Service) sign(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates an access token, returning the user id.
func (s *Service) Verify(tokenStr string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrForbidden("Invalid token")
	}
	return claims.UserID, nil
}
