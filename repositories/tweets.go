package repositories

import (
  "errors"

  jsoniter "github.com/json-iterator/go"
  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/models"
  "scraper.local/tweet-decoder/tweets"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type TweetsRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

type TweetsDecodedPayload struct {
  ID        string `json:"id"`
  TwitterID int64  `json:"twitter_id"`
}

func (r *TweetsRepository) Count(conditions map[string]interface{}) int64 {
  var total int64
  query := r.Db.Model(&models.Tweet{})
  if _, ok := conditions["author_id"]; ok {
    query.Where("author_id", conditions["author_id"].(int64))
  }
  if _, ok := conditions["lang"]; ok {
    query.Where("lang", conditions["lang"].(string))
  }
  if _, ok := conditions["status"]; ok {
    query.Where("status", conditions["status"].(int))
  } else {
    query.Where("status IN (1,2)")
  }
  query.Count(&total)
  return total
}

func (r *TweetsRepository) Listings(conditions map[string]interface{}, current int, pageSize int) []*models.Tweet {
  var entities []*models.Tweet
  query := r.Db.Select([]string{
    "id",
    "twitter_id",
    "author_id",
    "content",
    "lang",
    "source_name",
    "quoted_id",
    "retweeted_id",
    "retweet_count",
    "favorite_count",
    "entities",
    "extended_entities",
    "timestamp",
    "status",
  })
  if _, ok := conditions["author_id"]; ok {
    query.Where("author_id", conditions["author_id"].(int64))
  }
  if _, ok := conditions["lang"]; ok {
    query.Where("lang", conditions["lang"].(string))
  }
  if _, ok := conditions["timestamp"]; ok {
    query.Where("timestamp BETWEEN ? AND ?", conditions["timestamp"].([]int64)[0], conditions["timestamp"].([]int64)[1])
  }
  if _, ok := conditions["status"]; ok {
    query.Where("status", conditions["status"].(int))
  } else {
    query.Where("status IN (1,2)")
  }
  query.Order("timestamp desc")
  query.Offset((current - 1) * pageSize).Limit(pageSize).Find(&entities)
  return entities
}

func (r *TweetsRepository) Find(id string) (entity *models.Tweet, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *TweetsRepository) Get(twitterID int64) (entity *models.Tweet, err error) {
  err = r.Db.Where("twitter_id", twitterID).Take(&entity).Error
  return
}

func (r *TweetsRepository) IsExists(twitterID int64) bool {
  var entity *models.Tweet
  result := r.Db.Where("twitter_id", twitterID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

// Save stores tweet and every status embedded in it, innermost first, and
// returns the id of the record for tweet itself. Statuses already stored are
// left untouched. raw is kept on the outer record only.
func (r *TweetsRepository) Save(tweet *tweets.Tweet, raw []byte) (id string, err error) {
  var chain []*tweets.Tweet
  tweet.Walk(func(t *tweets.Tweet) error {
    chain = append(chain, t)
    return nil
  })

  var created []*models.Tweet
  err = r.Db.Transaction(func(tx *gorm.DB) error {
    authors := &AuthorsRepository{Db: tx}
    for i := len(chain) - 1; i >= 0; i-- {
      t := chain[i]
      if err := authors.Save(t.User); err != nil {
        return err
      }
      var entity *models.Tweet
      result := tx.Where("twitter_id", t.ID).Take(&entity)
      if result.Error == nil {
        if i == 0 {
          id = entity.ID
          if entity.Status != config.TWEET_STATUS_POSTED {
            err := tx.Model(&entity).Updates(map[string]interface{}{
              "raw":    datatypes.JSON(raw),
              "status": config.TWEET_STATUS_POSTED,
            }).Error
            if err != nil {
              return err
            }
          }
        }
        continue
      }
      if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
        return result.Error
      }
      entity = NewTweetModel(t)
      if i == 0 {
        entity.Status = config.TWEET_STATUS_POSTED
        entity.Raw = datatypes.JSON(raw)
        id = entity.ID
      }
      if err := tx.Create(&entity).Error; err != nil {
        return err
      }
      created = append(created, entity)
    }
    return nil
  })
  if err != nil {
    return "", err
  }

  for _, entity := range created {
    data, _ := json.Marshal(&TweetsDecodedPayload{
      ID:        entity.ID,
      TwitterID: entity.TwitterID,
    })
    if r.Nats != nil {
      r.Nats.Publish(config.NATS_TWEETS_DECODED, data)
    }
  }
  if r.Nats != nil && len(created) > 0 {
    r.Nats.Flush()
  }
  return
}

// NewTweetModel maps a decoded tweet onto a new embedded record. Callers
// promote the outer tweet to TWEET_STATUS_POSTED.
func NewTweetModel(t *tweets.Tweet) *models.Tweet {
  entity := &models.Tweet{
    ID:            xid.New().String(),
    TwitterID:     t.ID,
    Content:       t.Text,
    Lang:          t.Lang,
    Source:        t.Source,
    RetweetCount:  t.RetweetCount,
    FavoriteCount: t.FavoriteCount,
    Entities:      common.JSONMap(t.Entities),
    Status:        config.TWEET_STATUS_EMBEDDED,
  }
  if t.User != nil {
    entity.AuthorID = t.User.ID
  }
  if app, err := t.SourceApp(); err == nil {
    entity.SourceName = app.Name
  }
  if t.ExtendedEntities != nil {
    entity.ExtendedEntities = common.JSONMap(t.ExtendedEntities)
  }
  if t.QuotedStatus != nil {
    entity.QuotedID = t.QuotedStatus.ID
  } else if t.QuotedStatusID != nil {
    entity.QuotedID = *t.QuotedStatusID
  }
  if t.RetweetedStatus != nil {
    entity.RetweetedID = t.RetweetedStatus.ID
  }
  if t.InReplyToStatusID != nil {
    entity.InReplyToID = *t.InReplyToStatusID
  }
  if created, err := t.CreatedTime(); err == nil {
    entity.Timestamp = created.UnixMicro()
  }
  return entity
}
