package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/easeaico/oriona/internal/knowledge"
)

type techniqueModel struct {
	ID              int
	Key             string          `gorm:"uniqueIndex;size:128"`
	Name            string          `gorm:"size:255"`
	Description     string          `gorm:"type:text"`
	Application     string          `gorm:"type:text"`
	NaturalLanguage json.RawMessage `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

func (techniqueModel) TableName() string {
	return "knowledge_techniques"
}

type conceptModel struct {
	ID          int
	Name        string `gorm:"uniqueIndex;size:128"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (conceptModel) TableName() string {
	return "knowledge_concepts"
}

type empathyModel struct {
	ID        int
	Phrase    string `gorm:"uniqueIndex;type:text"`
	CreatedAt time.Time
}

func (empathyModel) TableName() string {
	return "knowledge_empathy_phrases"
}

// KnowledgeRepo persists learned knowledge. Writes never overwrite an
// existing technique, concept or phrase.
type KnowledgeRepo struct {
	db *gorm.DB
}

// NewKnowledgeRepo returns a KnowledgeRepo.
func NewKnowledgeRepo(db *gorm.DB) *KnowledgeRepo {
	return &KnowledgeRepo{db: db}
}

func (r *KnowledgeRepo) LoadKnowledge(ctx context.Context) (*knowledge.Snapshot, error) {
	db := r.db.WithContext(ctx)

	var techniques []techniqueModel
	if err := db.Order("id ASC").Find(&techniques).Error; err != nil {
		return nil, fmt.Errorf("failed to query techniques: %w", err)
	}
	var concepts []conceptModel
	if err := db.Order("id ASC").Find(&concepts).Error; err != nil {
		return nil, fmt.Errorf("failed to query concepts: %w", err)
	}
	var phrases []empathyModel
	if err := db.Order("id ASC").Find(&phrases).Error; err != nil {
		return nil, fmt.Errorf("failed to query empathy phrases: %w", err)
	}

	snap := &knowledge.Snapshot{}
	for _, record := range techniques {
		t, err := techniqueFromModel(record)
		if err != nil {
			return nil, err
		}
		snap.Techniques = append(snap.Techniques, t)
	}
	for _, record := range concepts {
		snap.Concepts = append(snap.Concepts, knowledge.Concept{Name: record.Name, Description: record.Description})
	}
	for _, record := range phrases {
		snap.Empathy = append(snap.Empathy, record.Phrase)
	}
	return snap, nil
}

func (r *KnowledgeRepo) SaveKnowledge(ctx context.Context, learned knowledge.Snapshot) error {
	techniques := make([]techniqueModel, 0, len(learned.Techniques))
	for _, t := range learned.Techniques {
		natural, err := marshalJSON(t.NaturalLanguage)
		if err != nil {
			return fmt.Errorf("failed to encode technique phrasing: %w", err)
		}
		techniques = append(techniques, techniqueModel{
			Key:             t.Key,
			Name:            t.Name,
			Description:     t.Description,
			Application:     t.Application,
			NaturalLanguage: natural,
		})
	}
	concepts := make([]conceptModel, 0, len(learned.Concepts))
	for _, c := range learned.Concepts {
		concepts = append(concepts, conceptModel{Name: c.Name, Description: c.Description})
	}
	phrases := make([]empathyModel, 0, len(learned.Empathy))
	for _, p := range learned.Empathy {
		phrases = append(phrases, empathyModel{Phrase: p})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(techniques) > 0 {
			if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}).
				Create(&techniques).Error; err != nil {
				return fmt.Errorf("failed to insert techniques: %w", err)
			}
		}
		if len(concepts) > 0 {
			if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
				Create(&concepts).Error; err != nil {
				return fmt.Errorf("failed to insert concepts: %w", err)
			}
		}
		if len(phrases) > 0 {
			if err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "phrase"}}, DoNothing: true}).
				Create(&phrases).Error; err != nil {
				return fmt.Errorf("failed to insert empathy phrases: %w", err)
			}
		}
		return nil
	})
}

func techniqueFromModel(record techniqueModel) (knowledge.Technique, error) {
	t := knowledge.Technique{
		Key:         record.Key,
		Name:        record.Name,
		Description: record.Description,
		Application: record.Application,
	}
	if err := unmarshalJSON(record.NaturalLanguage, &t.NaturalLanguage); err != nil {
		return knowledge.Technique{}, fmt.Errorf("failed to decode technique phrasing: %w", err)
	}
	return t, nil
}
