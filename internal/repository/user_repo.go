package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raizel/manadabook/internal/db"
	svcErr "github.com/raizel/manadabook/internal/errors"
)

// UserRepository provides data access methods for the User directory.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Upsert creates the profile or refreshes its display name.
// Counters are never written here.
func (r *UserRepository) Upsert(ctx context.Context, id, displayName string) (*db.User, error) {
	user := db.User{ID: id, DisplayName: displayName}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
		}).
		Create(&user).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Get loads one user. Returns ErrUserNotFound when missing.
func (r *UserRepository) Get(ctx context.Context, id string) (*db.User, error) {
	var user db.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs resolves ids to users. Unknown ids are absent from the map.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]db.User, error) {
	out := make(map[string]db.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var users []db.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

// inOrder returns the users of ids in the same order, skipping unknown ids.
func inOrder(ids []string, users map[string]db.User) []db.User {
	out := make([]db.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := users[id]; ok {
			out = append(out, u)
		}
	}
	return out
}
