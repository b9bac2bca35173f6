package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/iyhunko/treko-inventory/internal/metrics"
	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when code, name and password do not match an employee.
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	// ErrMissingCredentials is returned when any login field is blank.
	ErrMissingCredentials = errors.New("por favor, preencha todos os campos")
)

// Claims are carried by the session token issued on login.
type Claims struct {
	Name string `json:"nome"`
	jwt.RegisteredClaims
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Employee  *model.Employee
}

// AuthService checks employee credentials and issues session tokens.
type AuthService struct {
	employees repository.EmployeeRepository
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(employees repository.EmployeeRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		employees: employees,
		secret:    []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Login verifies that code, name and password belong to the same employee.
func (as *AuthService) Login(ctx context.Context, code, name, password string) (*Session, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" || name == "" || password == "" {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return nil, ErrMissingCredentials
	}

	employee, err := as.employees.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	if !strings.EqualFold(employee.Name, name) ||
		bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		slog.Info("login rejected", slog.String("code", code))
		return nil, ErrInvalidCredentials
	}

	now := as.now()
	expiresAt := now.Add(as.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name: employee.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   employee.Code,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(as.secret)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	slog.Info("login succeeded", slog.String("code", employee.Code))
	return &Session{Token: signed, ExpiresAt: expiresAt, Employee: employee}, nil
}

// ParseToken validates a session token and returns its claims.
func (as *AuthService) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return as.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// EnsureEmployee creates the employee unless one with the same code exists.
func (as *AuthService) EnsureEmployee(ctx context.Context, code, name, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = as.employees.Create(ctx, &model.Employee{
		Code:         strings.TrimSpace(code),
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	})
	var uniqueErr *repository.UniqueConstraintError
	if errors.As(err, &uniqueErr) {
		slog.Info("bootstrap employee already exists", slog.String("code", code))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create employee %q: %w", code, err)
	}
	slog.Info("bootstrap employee created", slog.String("code", code))
	return nil
}
