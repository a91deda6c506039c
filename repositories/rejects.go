package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/datatypes"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/models"
)

type RejectsRepository struct {
  Db *gorm.DB
}

func (r *RejectsRepository) Find(id string) (entity *models.Reject, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *RejectsRepository) Get(digest string) (entity *models.Reject, err error) {
  err = r.Db.Where("digest", digest).Take(&entity).Error
  return
}

func (r *RejectsRepository) Count(status int) int64 {
  var total int64
  r.Db.Model(&models.Reject{}).Where("status", status).Count(&total)
  return total
}

// Pending lists the oldest rejects still waiting for another attempt.
func (r *RejectsRepository) Pending(limit int) []*models.Reject {
  var entities []*models.Reject
  r.Db.Where(
    "status",
    config.REJECT_STATUS_PENDING,
  ).Order(
    "updated_at ASC",
  ).Limit(
    limit,
  ).Find(&entities)
  return entities
}

// Record stores a payload that failed to decode. A payload seen before has its
// attempt counted instead, and is abandoned after REJECTS_MAX_ATTEMPTS.
func (r *RejectsRepository) Record(digest string, raw []byte, reason error) (id string, err error) {
  var entity models.Reject
  result := r.Db.Where("digest", digest).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    entity = models.Reject{
      ID:       xid.New().String(),
      Digest:   digest,
      Raw:      datatypes.JSON(raw),
      Reason:   truncate(reason.Error(), 1000),
      Attempts: 1,
      Status:   config.REJECT_STATUS_PENDING,
    }
    err = r.Db.Create(&entity).Error
    return entity.ID, err
  }
  if result.Error != nil {
    return "", result.Error
  }
  return entity.ID, r.Attempt(&entity, reason)
}

func (r *RejectsRepository) Attempt(entity *models.Reject, reason error) error {
  attempts := entity.Attempts + 1
  status := entity.Status
  if attempts >= config.REJECTS_MAX_ATTEMPTS {
    status = config.REJECT_STATUS_ABANDONED
  }
  return r.Db.Model(&entity).Updates(map[string]interface{}{
    "reason":   truncate(reason.Error(), 1000),
    "attempts": attempts,
    "status":   status,
  }).Error
}

func (r *RejectsRepository) Resolve(entity *models.Reject, tweetID string) error {
  return r.Db.Model(&entity).Updates(map[string]interface{}{
    "tweet_id": tweetID,
    "status":   config.REJECT_STATUS_RESOLVED,
  }).Error
}

func truncate(s string, n int) string {
  if len(s) <= n {
    return s
  }
  return s[:n]
}
