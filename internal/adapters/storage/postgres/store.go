// Package postgres is a gorm-backed ReadingStore.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/randomtoy/tarot-reader/internal/domain"
)

// readingRow is the tarot_readings table.
type readingRow struct {
	ID             string         `gorm:"type:varchar(36);primaryKey"`
	SessionID      string         `gorm:"type:varchar(64);index"`
	Question       string         `gorm:"type:text"`
	SpreadType     string         `gorm:"type:varchar(32)"`
	Cards          datatypes.JSON `gorm:"type:jsonb"`
	Interpretation string         `gorm:"type:text"`
	QuestionType   string         `gorm:"type:varchar(20);index"`
	Narrative      string         `gorm:"type:text"`
	CreatedAt      time.Time      `gorm:"index"`
	UpdatedAt      time.Time
}

func (readingRow) TableName() string {
	return "tarot_readings"
}

// Store implements ports.ReadingStore on PostgreSQL.
type Store struct {
	db *gorm.DB
}

// Open connects to dsn and migrates the readings table.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return New(db)
}

// New wraps an existing connection and migrates the readings table.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&readingRow{}); err != nil {
		return nil, fmt.Errorf("migrate readings: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Create(ctx context.Context, r domain.Reading) error {
	row, err := toRow(r)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Reading, error) {
	var row readingRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Reading{}, domain.ErrReadingNotFound
	}
	if err != nil {
		return domain.Reading{}, fmt.Errorf("select reading: %w", err)
	}
	return fromRow(row)
}

func (s *Store) List(ctx context.Context, sessionID string, limit int) ([]domain.Reading, error) {
	q := s.db.WithContext(ctx).Order("created_at desc")
	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []readingRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}

	out := make([]domain.Reading, 0, len(rows))
	for _, row := range rows {
		r, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&readingRow{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete reading: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReadingNotFound
	}
	return nil
}

func toRow(r domain.Reading) (readingRow, error) {
	cards, err := json.Marshal(r.Cards)
	if err != nil {
		return readingRow{}, fmt.Errorf("encode cards: %w", err)
	}
	return readingRow{
		ID:             r.ID,
		SessionID:      r.SessionID,
		Question:       r.Question,
		SpreadType:     r.SpreadType,
		Cards:          datatypes.JSON(cards),
		Interpretation: r.Interpretation,
		QuestionType:   string(r.QuestionType),
		Narrative:      r.Narrative,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}, nil
}

func fromRow(row readingRow) (domain.Reading, error) {
	var cards []domain.DrawnCard
	if len(row.Cards) > 0 {
		if err := json.Unmarshal(row.Cards, &cards); err != nil {
			return domain.Reading{}, fmt.Errorf("decode cards of reading %s: %w", row.ID, err)
		}
	}
	return domain.Reading{
		ID:             row.ID,
		SessionID:      row.SessionID,
		Question:       row.Question,
		SpreadType:     row.SpreadType,
		Cards:          cards,
		Interpretation: row.Interpretation,
		QuestionType:   domain.Category(row.QuestionType),
		Narrative:      row.Narrative,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}
