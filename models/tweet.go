package models

import (
  "time"

  "gorm.io/datatypes"
)

type Tweet struct {
  ID                string            `gorm:"size:20;primaryKey"`
  TwitterID         int64             `gorm:"not null;uniqueIndex"`
  AuthorID          int64             `gorm:"not null;index:idx_decoded_tweets_authors,priority:1"`
  Content           string            `gorm:"size:5000;not null"`
  Lang              string            `gorm:"size:10;not null"`
  Source            string            `gorm:"size:500;not null"`
  SourceName        string            `gorm:"size:200;not null"`
  QuotedID          int64             `gorm:"not null;index"`
  RetweetedID       int64             `gorm:"not null;index"`
  InReplyToID       int64             `gorm:"not null"`
  RetweetCount      int32             `gorm:"not null"`
  FavoriteCount     int32             `gorm:"not null"`
  Entities          datatypes.JSONMap `gorm:"not null"`
  ExtendedEntities  datatypes.JSONMap
  Raw               datatypes.JSON
  Timestamp         int64             `gorm:"not null;index:idx_decoded_tweets,priority:1;index:idx_decoded_tweets_authors,priority:2"`
  Status            int               `gorm:"not null;index:idx_decoded_tweets,priority:2"`
  CreatedAt         time.Time         `gorm:"not null"`
  UpdatedAt         time.Time         `gorm:"not null"`
}

func (m *Tweet) TableName() string {
  return "decoded_tweets"
}
