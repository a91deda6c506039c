package repositories

import (
  "time"

  "gorm.io/gorm"
  "gorm.io/gorm/clause"

  "scraper.local/tweet-decoder/models"
  "scraper.local/tweet-decoder/users"
)

type AuthorsRepository struct {
  Db *gorm.DB
}

func (r *AuthorsRepository) Find(id int64) (entity *models.Author, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *AuthorsRepository) Get(account string) (entity *models.Author, err error) {
  err = r.Db.Where("account", account).Take(&entity).Error
  return
}

// Save upserts the author, keeping the counters of the latest sighting.
func (r *AuthorsRepository) Save(user *users.User) error {
  if user == nil {
    return nil
  }
  entity := NewAuthorModel(user)
  return r.Db.Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "id"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "account",
      "name",
      "description",
      "avatar",
      "verified",
      "favourites_count",
      "followers_count",
      "friends_count",
      "listed_count",
      "statuses_count",
      "timestamp",
      "updated_at",
    }),
  }).Create(&entity).Error
}

func NewAuthorModel(user *users.User) *models.Author {
  entity := &models.Author{
    ID:              user.ID,
    Account:         user.ScreenName,
    Name:            user.Name,
    Verified:        user.Verified,
    FavouritesCount: user.FavouritesCount,
    FollowersCount:  user.FollowersCount,
    FriendsCount:    user.FriendsCount,
    ListedCount:     user.ListedCount,
    StatusesCount:   user.StatusesCount,
    Timestamp:       time.Now().UnixMicro(),
  }
  if user.Description != nil {
    entity.Description = *user.Description
  }
  if user.ProfileImageURLHttps != nil {
    entity.Avatar = *user.ProfileImageURLHttps
  }
  return entity
}
