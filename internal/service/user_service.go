package service

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/model"
	"appointment-booking-api/internal/store"
	"appointment-booking-api/pkg/apperr"
	"appointment-booking-api/pkg/metrics"
)

type UserService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewUserService(st *store.Store, logger *zap.Logger) *UserService {
	return &UserService{store: st, logger: logger}
}

// Register creates an account and returns it. Role defaults to "user";
// anything other than the two known roles is rejected.
func (s *UserService) Register(name, email, password, role string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Invalid("Name, email, and password are required")
	}
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, apperr.Invalid("Unknown role")
	}

	// hash outside the store lock; it's the only slow step
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("Registration failed", err)
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	err = s.store.Update(func(d *store.Data) error {
		if d.UserByEmail(email) != nil {
			return apperr.Conflict("Email already registered")
		}
		d.InsertUser(u)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Registrations.Inc()
	s.logger.Info("user registered",
		zap.String("userId", u.ID),
		zap.String("role", u.Role),
	)

	out := *u
	return &out, nil
}

// Login verifies credentials. Unknown email and wrong password are the same
// failure from the caller's point of view.
func (s *UserService) Login(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Invalid("Email and password are required")
	}

	var u model.User
	err := s.store.View(func(d *store.Data) error {
		found := d.UserByEmail(email)
		if found == nil {
			return apperr.Unauthenticated("Invalid email or password")
		}
		u = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}

	return &u, nil
}
