package store

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key-value row.
type Entry struct {
	Key   string `gorm:"primaryKey;size:255;column:entry_key"`
	Value []byte `gorm:"type:blob;not null"`
}

// TableName keeps the table name stable across GORM naming strategies.
func (Entry) TableName() string {
	return "store_entries"
}

// MySQL is a GORM-backed durable store. Like the other backends it fails
// safe: database errors read as a miss and write as a no-op.
type MySQL struct {
	db *gorm.DB
}

// NewMySQL connects and migrates the blob table.
func NewMySQL(dsn string) (*MySQL, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &MySQL{db: db}, nil
}

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	if m == nil || m.db == nil {
		return nil, nil
	}
	var entry Entry
	err := m.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry).Error
	if err != nil {
		// gorm.ErrRecordNotFound and outages both read as a miss
		return nil, nil
	}
	return entry.Value, nil
}

func (m *MySQL) Set(ctx context.Context, key string, value []byte) error {
	if m == nil || m.db == nil {
		return nil
	}
	entry := Entry{Key: key, Value: value}
	_ = m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	return nil
}

func (m *MySQL) Delete(ctx context.Context, key string) error {
	if m == nil || m.db == nil {
		return nil
	}
	_ = m.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&Entry{}).Error
	return nil
}
