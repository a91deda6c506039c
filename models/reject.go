package models

import (
  "time"

  "gorm.io/datatypes"
)

// Reject keeps a payload that failed to decode so it can be retried.
type Reject struct {
  ID        string         `gorm:"size:20;primaryKey"`
  Digest    string         `gorm:"size:40;not null;uniqueIndex"`
  Raw       datatypes.JSON `gorm:"not null"`
  Reason    string         `gorm:"size:1000;not null"`
  Attempts  int            `gorm:"not null"`
  TweetID   string         `gorm:"size:20;not null"`
  Status    int            `gorm:"not null;index:idx_tweet_rejects,priority:1"`
  CreatedAt time.Time      `gorm:"not null"`
  UpdatedAt time.Time      `gorm:"not null;index:idx_tweet_rejects,priority:2"`
}

func (m *Reject) TableName() string {
  return "tweet_rejects"
}
