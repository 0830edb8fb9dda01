package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/easeaico/oriona/internal/types"
)

// profileModel maps to the user_profiles table.
type profileModel struct {
	UserID       string          `gorm:"primaryKey;size:128"`
	Style        string          `gorm:"size:32"`
	Formality    string          `gorm:"size:32"`
	Interests    json.RawMessage `gorm:"type:jsonb"`
	Vocabulary   json.RawMessage `gorm:"type:jsonb"`
	Traits       json.RawMessage `gorm:"type:jsonb"`
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (profileModel) TableName() string {
	return "user_profiles"
}

// memoryModel maps to the profile_memories table. Rows are rewritten with the
// profile, Position keeps the most-recent-first order.
type memoryModel struct {
	ID            int
	UserID        string `gorm:"index;size:128"`
	Position      int
	Topic         string          `gorm:"size:64"`
	Summary       string          `gorm:"type:text"`
	Keywords      json.RawMessage `gorm:"type:jsonb"`
	Sentiment     string          `gorm:"size:32"`
	Importance    int
	MentionCount  int
	LastMentioned time.Time
	// Embedding is the hashed keyword vector used for similarity recall.
	Embedding *pgvector.Vector `gorm:"type:vector(64)"`
}

func (memoryModel) TableName() string {
	return "profile_memories"
}

// ProfileRepo stores user profiles in postgres.
type ProfileRepo struct {
	db *gorm.DB
}

// NewProfileRepo returns a ProfileRepo.
func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	var record profileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}
	if record.UserID == "" {
		return nil, nil
	}

	var memories []memoryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&memories).Error; err != nil {
		return nil, fmt.Errorf("failed to query profile memories: %w", err)
	}
	return profileFromModel(record, memories)
}

func (r *ProfileRepo) SaveProfile(ctx context.Context, p *types.UserProfile) error {
	if p == nil {
		return errNilProfile
	}
	record, memories, err := profileToModel(p)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to upsert profile: %w", err)
		}
		if err := tx.Where("user_id = ?", p.UserID).Delete(&memoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear profile memories: %w", err)
		}
		if len(memories) == 0 {
			return nil
		}
		if err := tx.Create(&memories).Error; err != nil {
			return fmt.Errorf("failed to insert profile memories: %w", err)
		}
		return nil
	})
}

func (r *ProfileRepo) DeleteProfile(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&memoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile memories: %w", err)
		}
		if err := tx.Where("user_id = ?", userID).Delete(&profileModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		return nil
	})
}

// SimilarMemories ranks the user's memories by cosine similarity to vector.
func (r *ProfileRepo) SimilarMemories(ctx context.Context, userID string, vector []float32, limit int, threshold float64) ([]types.Memory, error) {
	if len(vector) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, user_id, position, topic, summary, keywords, sentiment, importance,
		       mention_count, last_mentioned, embedding
		FROM profile_memories
		WHERE user_id = ? AND embedding IS NOT NULL AND 1 - (embedding <=> ?) > ?
		ORDER BY embedding <=> ?
		LIMIT ?`
	v := pgvector.NewVector(vector)

	var records []memoryModel
	if err := r.db.WithContext(ctx).
		Raw(query, userID, v, threshold, v, limit).
		Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar memories: %w", err)
	}
	out := make([]types.Memory, 0, len(records))
	for _, record := range records {
		m, err := memoryFromModel(record)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func profileToModel(p *types.UserProfile) (profileModel, []memoryModel, error) {
	interests, err := marshalJSON(p.Interests)
	if err != nil {
		return profileModel{}, nil, fmt.Errorf("failed to encode interests: %w", err)
	}
	vocabulary, err := marshalJSON(p.Vocabulary)
	if err != nil {
		return profileModel{}, nil, fmt.Errorf("failed to encode vocabulary: %w", err)
	}
	traits, err := marshalJSON(p.PersonalityTraits)
	if err != nil {
		return profileModel{}, nil, fmt.Errorf("failed to encode traits: %w", err)
	}
	record := profileModel{
		UserID:       p.UserID,
		Style:        string(p.Style),
		Formality:    string(p.Formality),
		Interests:    interests,
		Vocabulary:   vocabulary,
		Traits:       traits,
		MessageCount: p.MessageCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	memories := make([]memoryModel, 0, len(p.Memories))
	for i, m := range p.Memories {
		keywords, err := marshalJSON(m.Keywords)
		if err != nil {
			return profileModel{}, nil, fmt.Errorf("failed to encode memory keywords: %w", err)
		}
		var embedding *pgvector.Vector
		if len(m.Vector) > 0 {
			v := pgvector.NewVector(m.Vector)
			embedding = &v
		}
		memories = append(memories, memoryModel{
			UserID:        p.UserID,
			Position:      i,
			Topic:         m.Topic,
			Summary:       m.Summary,
			Keywords:      keywords,
			Sentiment:     m.Sentiment,
			Importance:    m.Importance,
			MentionCount:  m.MentionCount,
			LastMentioned: m.LastMentioned,
			Embedding:     embedding,
		})
	}
	return record, memories, nil
}

func profileFromModel(record profileModel, memories []memoryModel) (*types.UserProfile, error) {
	p := &types.UserProfile{
		UserID:       record.UserID,
		Style:        types.Style(record.Style),
		Formality:    types.Formality(record.Formality),
		MessageCount: record.MessageCount,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
	if err := unmarshalJSON(record.Interests, &p.Interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}
	if err := unmarshalJSON(record.Vocabulary, &p.Vocabulary); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary: %w", err)
	}
	if err := unmarshalJSON(record.Traits, &p.PersonalityTraits); err != nil {
		return nil, fmt.Errorf("failed to decode traits: %w", err)
	}
	for _, record := range memories {
		m, err := memoryFromModel(record)
		if err != nil {
			return nil, err
		}
		p.Memories = append(p.Memories, m)
	}
	return p, nil
}

func memoryFromModel(record memoryModel) (types.Memory, error) {
	m := types.Memory{
		Topic:         record.Topic,
		Summary:       record.Summary,
		Sentiment:     record.Sentiment,
		Importance:    record.Importance,
		MentionCount:  record.MentionCount,
		LastMentioned: record.LastMentioned,
	}
	if err := unmarshalJSON(record.Keywords, &m.Keywords); err != nil {
		return types.Memory{}, fmt.Errorf("failed to decode memory keywords: %w", err)
	}
	if record.Embedding != nil {
		m.Vector = record.Embedding.Slice()
	}
	return m, nil
}
