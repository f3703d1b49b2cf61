package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tasko/internal/auth"
	"tasko/internal/logger"
	"tasko/internal/models/user"
	"tasko/internal/repository"

	"go.uber.org/zap"
)

// TokenIssuer emite un token de sesión para un usuario autenticado.
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

type UserService struct {
	repo   UserRepository
	hasher auth.PasswordHasher
	tokens TokenIssuer
}

func NewUserService(repo UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register da de alta un usuario. La contraseña se guarda como hash
// bcrypt; el campo en claro nunca llega al almacenamiento.
func (s *UserService) Register(ctx context.Context, email, password string) (*user.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewValidationError("email", "es obligatorio")
	}
	if password == "" {
		return nil, NewValidationError("password", "es obligatoria")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, NewValidationError("email", "ya está registrado")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("búsqueda de usuario por email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	u := &user.User{Email: email, Password: hash}
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creación de usuario: %w", err)
	}
	u.ID = id

	logger.Info("Service: Usuario registrado", zap.String("user_id", id))
	return u, nil
}

// Login verifica las credenciales contra el hash guardado y emite un
// token. Email desconocido y contraseña equivocada devuelven el mismo
// error para no filtrar qué cuentas existen.
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Service: Intento de acceso con email desconocido")
			return "", "", NewInvalidCredentials()
		}
		return "", "", fmt.Errorf("búsqueda de usuario por email: %w", err)
	}

	if err := s.hasher.Compare(u.Password, password); err != nil {
		logger.Warn("Service: Contraseña incorrecta", zap.String("user_id", u.ID))
		return "", "", NewInvalidCredentials()
	}

	token, err := s.tokens.Generate(u.ID)
	if err != nil {
		return "", "", fmt.Errorf("emisión de token: %w", err)
	}

	logger.Info("Service: Acceso correcto", zap.String("user_id", u.ID))
	return u.ID, token, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("usuario", id)
		}
		return nil, fmt.Errorf("lectura de usuario: %w", err)
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*user.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listado de usuarios: %w", err)
	}
	return users, nil
}

// UpdateUser reemplaza email y contraseña; la contraseña nueva se
// vuelve a hashear.
func (s *UserService) UpdateUser(ctx context.Context, id, email, password string) (*user.User, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("usuario", id)
		}
		return nil, fmt.Errorf("lectura de usuario: %w", err)
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewValidationError("email", "es obligatorio")
	}
	if password == "" {
		return nil, NewValidationError("password", "es obligatoria")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	u := &user.User{ID: id, Email: email, Password: hash}
	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("usuario", id)
		}
		return nil, fmt.Errorf("actualización de usuario: %w", err)
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("usuario", id)
		}
		return fmt.Errorf("eliminación de usuario: %w", err)
	}
	logger.Info("Service: Usuario eliminado", zap.String("user_id", id))
	return nil
}
