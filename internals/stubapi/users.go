package stubapi

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserName  string `gorm:"size:100;not null;uniqueIndex"`
	Password  string `gorm:"not null"`
	Roles     string `gorm:"size:100;not null"` // comma separated
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "stub_users" }

func (u UserModel) HasRole(role string) bool {
	for _, r := range strings.Split(u.Roles, ",") {
		if strings.TrimSpace(r) == role {
			return true
		}
	}
	return false
}

// UserStore is where login looks accounts up.
type UserStore interface {
	FindUser(ctx context.Context, userName string) (*UserModel, error)
	SaveUser(ctx context.Context, u *UserModel) error
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

/* ===== memory ===== */

type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string]UserModel
}

func NewMemoryUsers() *MemoryUsers { return &MemoryUsers{users: map[string]UserModel{}} }

func (m *MemoryUsers) FindUser(_ context.Context, userName string) (*UserModel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[strings.ToLower(userName)]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryUsers) SaveUser(_ context.Context, u *UserModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == 0 {
		u.ID = uint(len(m.users) + 1)
	}
	m.users[strings.ToLower(u.UserName)] = *u
	return nil
}

/* ===== gorm ===== */

func (s *GormStore) FindUser(ctx context.Context, userName string) (*UserModel, error) {
	var u UserModel
	err := s.db.WithContext(ctx).Where("LOWER(user_name) = LOWER(?)", userName).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) SaveUser(ctx context.Context, u *UserModel) error {
	return s.db.WithContext(ctx).Save(u).Error
}
