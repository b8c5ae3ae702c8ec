package repositories

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/vanik/app/models"
	"github.com/shashiranjanraj/vanik/pkg/cache"
	"github.com/shashiranjanraj/vanik/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("vanik:user:%d", id)
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// FindByIDCached is FindByID through the cache layer. The session
// middleware resolves the same account on every request, so the row is
// kept for a minute instead of re-read each time; Update drops the entry.
//
// The cached copy carries no password hash (the field is excluded from
// serialisation). Use it for display and authorization checks, never as
// the base of a Save.
func (r *UserRepository) FindByIDCached(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).
		Cache(userCacheKey(id), time.Minute, &user)
	if err != nil {
		return user, err
	}
	if user.ID == 0 {
		return user, orm.ErrNotFound
	}
	return user, nil
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

// Update persists changes to an existing user and drops their cached copy.
func (r *UserRepository) Update(user *models.User) error {
	if err := orm.DB().Save(user); err != nil {
		return err
	}
	return cache.Forget(userCacheKey(user.ID))
}
