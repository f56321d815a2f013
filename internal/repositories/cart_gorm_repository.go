package repositories

import (
	"context"
	"fmt"

	"potato/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// Create creates a new cart in the database.
func (r *GORMCartRepository) Create(ctx context.Context, cart *models.Cart) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// FindByUserID retrieves the cart owned by userID.
func (r *GORMCartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	return r.findByUserID(conn(ctx, r.db), userID)
}

// FindByUserIDForUpdate retrieves the cart owned by userID with SELECT ... FOR UPDATE.
// SQLite has no row locks and serializes writers on its own, so the clause is skipped there.
func (r *GORMCartRepository) FindByUserIDForUpdate(ctx context.Context, userID string) (*models.Cart, error) {
	db := conn(ctx, r.db)
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.findByUserID(db, userID)
}

func (r *GORMCartRepository) findByUserID(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.First(&cart, "user_id = ?", userID).Error; err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("cart of user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart of user %s: %w", userID, err)
	}
	return &cart, nil
}
