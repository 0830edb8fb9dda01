package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/easeaico/oriona/internal/types"
)

// engagementModel maps to the engagements table.
type engagementModel struct {
	UserID            string `gorm:"primaryKey;size:128"`
	ConversationCount int
	Topics            json.RawMessage `gorm:"type:jsonb"`
	InterestLevel     int
	LastInteraction   time.Time
}

func (engagementModel) TableName() string {
	return "engagements"
}

// EngagementRepo stores pattern-dialogue engagement state.
type EngagementRepo struct {
	db *gorm.DB
}

// NewEngagementRepo returns an EngagementRepo.
func NewEngagementRepo(db *gorm.DB) *EngagementRepo {
	return &EngagementRepo{db: db}
}

func (r *EngagementRepo) GetEngagement(ctx context.Context, userID string) (*types.Engagement, error) {
	var record engagementModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to query engagement: %w", err)
	}
	if record.UserID == "" {
		return nil, nil
	}
	return engagementFromModel(record)
}

func (r *EngagementRepo) SaveEngagement(ctx context.Context, e *types.Engagement) error {
	if e == nil {
		return errNilEngagement
	}
	topics, err := marshalJSON(e.Topics)
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}
	record := engagementModel{
		UserID:            e.UserID,
		ConversationCount: e.ConversationCount,
		Topics:            topics,
		InterestLevel:     e.InterestLevel,
		LastInteraction:   e.LastInteraction,
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to upsert engagement: %w", err)
	}
	return nil
}

func (r *EngagementRepo) DeleteEngagement(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&engagementModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete engagement: %w", err)
	}
	return nil
}

func engagementFromModel(record engagementModel) (*types.Engagement, error) {
	e := &types.Engagement{
		UserID:            record.UserID,
		ConversationCount: record.ConversationCount,
		InterestLevel:     record.InterestLevel,
		LastInteraction:   record.LastInteraction,
	}
	if err := unmarshalJSON(record.Topics, &e.Topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}
	return e, nil
}
