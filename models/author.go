package models

import (
  "time"
)

type Author struct {
  ID              int64     `gorm:"primaryKey;autoIncrement:false"`
  Account         string    `gorm:"size:50;not null;index"`
  Name            string    `gorm:"size:100;not null"`
  Description     string    `gorm:"size:500;not null"`
  Avatar          string    `gorm:"size:200;not null"`
  Verified        bool      `gorm:"not null"`
  FavouritesCount int32     `gorm:"not null"`
  FollowersCount  int32     `gorm:"not null"`
  FriendsCount    int32     `gorm:"not null"`
  ListedCount     int32     `gorm:"not null"`
  StatusesCount   int32     `gorm:"not null"`
  Timestamp       int64     `gorm:"not null"`
  CreatedAt       time.Time `gorm:"not null"`
  UpdatedAt       time.Time `gorm:"not null"`
}

func (m *Author) TableName() string {
  return "decoded_authors"
}
