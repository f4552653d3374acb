package kv_ser

import (
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KVEntry 键值表记录
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value string `gorm:"type:text"`
}

// TableName 指定表名
func (KVEntry) TableName() string {
	return "kv_entries"
}

// SqliteStore 基于sqlite单表的底座实现，无需外部服务
type SqliteStore struct {
	db     *gorm.DB
	prefix string
}

// NewSqliteStore 打开（必要时创建）sqlite底座
func NewSqliteStore(path string, prefix string) (*SqliteStore, error) {
	if prefix == "" {
		prefix = Prefix
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	return &SqliteStore{db: db, prefix: prefix}, nil
}

func (s *SqliteStore) key(key string) string {
	return s.prefix + key
}

// Get 读取键值，键不存在时ok为false
func (s *SqliteStore) Get(key string) (string, bool, error) {
	var entry KVEntry
	err := s.db.Take(&entry, "key = ?", s.key(key)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set 写入键值，存在则覆盖
func (s *SqliteStore) Set(key string, value string) error {
	entry := KVEntry{Key: s.key(key), Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Remove 删除键，键不存在时也视为成功
func (s *SqliteStore) Remove(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", s.key(key)).Error
}
