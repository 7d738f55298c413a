package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

const denylistKeyPrefix = "auth:denylist:"

// AuthService handles registration, login and token lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	Logout(ctx context.Context, token string) error
	IsRevoked(token string) bool
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	redis    *redis.Client
	secret   string
	tokenTTL time.Duration
	metrics  *metrics.Metrics
}

// NewAuthService creates a new auth service. The redis client may be nil;
// logout then degrades to a no-op and tokens expire naturally.
func NewAuthService(userRepo repository.UserRepository, redisClient *redis.Client, secret string, tokenTTL time.Duration, m *metrics.Metrics) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		redis:    redisClient,
		secret:   secret,
		tokenTTL: tokenTTL,
		metrics:  m,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.recordAuth("register", false)
		return nil, response.NewValidationError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.recordAuth("register", false)
		return nil, err
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.recordAuth("register", true)
	return &dto.AuthResponse{User: toUserResponse(user), Token: token}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordAuth("login", false)
			return nil, response.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.recordAuth("login", false)
		return nil, response.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.recordAuth("login", true)
	return &dto.AuthResponse{User: toUserResponse(user), Token: token}, nil
}

func (s *authServiceImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Logout denylists the presented token until it would expire on its own
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	if s.redis == nil {
		return nil
	}

	ttl := s.tokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if exp := tokenExpiry(token, s.secret); exp != nil {
		if remaining := time.Until(*exp); remaining > 0 {
			ttl = remaining
		}
	}

	return s.redis.Set(ctx, denylistKeyPrefix+token, "1", ttl).Err()
}

func (s *authServiceImpl) IsRevoked(token string) bool {
	if s.redis == nil {
		return false
	}
	n, err := s.redis.Exists(context.Background(), denylistKeyPrefix+token).Result()
	if err != nil {
		// fail open: an unreachable denylist must not lock everyone out
		return false
	}
	return n > 0
}

func (s *authServiceImpl) signToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     time.Now().Unix(),
	}
	if s.tokenTTL > 0 {
		claims["exp"] = time.Now().Add(s.tokenTTL).Unix()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

func (s *authServiceImpl) recordAuth(kind string, success bool) {
	if s.metrics != nil {
		s.metrics.RecordAuthAttempt(kind, success)
	}
}

func tokenExpiry(tokenString, secret string) *time.Time {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
