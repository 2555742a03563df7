package conversation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Conversation) error
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]Conversation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Conversation, error)
	UpdateVersioned(ctx context.Context, c *Conversation, expected int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Conversation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]Conversation, error) {
	var list []Conversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	var c Conversation
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateVersioned writes c only if the stored version still equals expected,
// bumping it by one. A lost race returns ErrVersionConflict.
func (r *repository) UpdateVersioned(ctx context.Context, c *Conversation, expected int) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&Conversation{}).
		Where("id = ? AND version = ?", c.ID, expected).
		Updates(map[string]interface{}{
			"title":           c.Title,
			"current_section": c.CurrentSection,
			"essay_context":   c.Context,
			"messages":        c.Messages,
			"version":         expected + 1,
			"updated_at":      now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}

	c.Version = expected + 1
	c.UpdatedAt = now
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Conversation{}, "id = ?", id).Error
}
