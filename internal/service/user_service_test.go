package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"appointment-booking-api/internal/model"
	"appointment-booking-api/internal/store"
	"appointment-booking-api/pkg/apperr"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(store.New(), zap.NewNop())
}

func TestRegister(t *testing.T) {
	s := newUserService(t)

	u, err := s.Register("Ada", "ada@example.com", "correct-horse", "")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, model.RoleUser, u.Role, "role must default to user")
	assert.NotEqual(t, "correct-horse", u.PasswordHash)
}

func TestRegisterAdminRole(t *testing.T) {
	s := newUserService(t)

	u, err := s.Register("Root", "root@example.com", "correct-horse", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestRegisterValidation(t *testing.T) {
	s := newUserService(t)

	tests := []struct {
		name                  string
		uname, email, pw, role string
	}{
		{"missing name", "", "a@b.com", "pw123456", ""},
		{"missing email", "A", "", "pw123456", ""},
		{"missing password", "A", "a@b.com", "", ""},
		{"unknown role", "A", "a@b.com", "pw123456", "superuser"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(tt.uname, tt.email, tt.pw, tt.role)
			require.Error(t, err)
			assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newUserService(t)

	_, err := s.Register("First", "dup@example.com", "pw123456", "")
	require.NoError(t, err)

	_, err = s.Register("Second", "dup@example.com", "pw123456", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	s := newUserService(t)

	reg, err := s.Register("Ada", "ada@example.com", "correct-horse", "")
	require.NoError(t, err)

	u, err := s.Login("ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
}

func TestLoginFailures(t *testing.T) {
	s := newUserService(t)
	_, err := s.Register("Ada", "ada@example.com", "correct-horse", "")
	require.NoError(t, err)

	_, err = s.Login("ada@example.com", "wrong")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = s.Login("nobody@example.com", "correct-horse")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = s.Login("", "")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}
