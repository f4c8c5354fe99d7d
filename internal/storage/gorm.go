package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntryModel struct {
	Namespace string    `gorm:"column:namespace;primaryKey;size:64"`
	EntryKey  string    `gorm:"column:entry_key;primaryKey;size:128"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvEntryModel) TableName() string { return "kv_entries" }

// GormKV stores entries in the kv_entries table. The namespace column separates
// independent profiles sharing one database.
type GormKV struct {
	db        *gorm.DB
	namespace string
}

func NewGormKV(db *gorm.DB, namespace string) *GormKV {
	return &GormKV{db: db, namespace: namespace}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&kvEntryModel{})
}

func (g *GormKV) Get(ctx context.Context, key string) (string, error) {
	var rows []kvEntryModel
	tx := g.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", g.namespace, key).
		Limit(1).
		Find(&rows)
	if tx.Error != nil {
		return "", fmt.Errorf("kv get %s: %w", key, tx.Error)
	}
	if len(rows) == 0 {
		return "", ErrNotFound
	}
	return rows[0].Value, nil
}

func (g *GormKV) Set(ctx context.Context, key, value string) error {
	m := kvEntryModel{
		Namespace: g.namespace,
		EntryKey:  key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	tx := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m)
	if tx.Error != nil {
		return fmt.Errorf("kv set %s: %w", key, tx.Error)
	}
	return nil
}

func (g *GormKV) Remove(ctx context.Context, key string) error {
	tx := g.db.WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", g.namespace, key).
		Delete(&kvEntryModel{})
	if tx.Error != nil {
		return fmt.Errorf("kv remove %s: %w", key, tx.Error)
	}
	return nil
}
