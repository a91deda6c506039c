package repositories

import (
  "context"
  "crypto/sha1"
  "encoding/hex"
  "fmt"

  "github.com/go-redis/redis/v8"
  "github.com/nats-io/nats.go"
  "github.com/pkg/errors"
  log "github.com/sirupsen/logrus"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/fields"
  "scraper.local/tweet-decoder/tweets"
)

var ErrBusy = errors.New("payload is being decoded")

type DecodeResult struct {
  ID     string        `json:"id"`
  Digest string        `json:"digest"`
  Cached bool          `json:"cached"`
  Tweet  *tweets.Tweet `json:"tweet"`
}

type DecoderRepository struct {
  Db                *gorm.DB
  Rdb               *redis.Client
  Ctx               context.Context
  Parser            *tweets.Parser
  TweetsRepository  *TweetsRepository
  RejectsRepository *RejectsRepository
}

func NewDecoderRepository(
  db *gorm.DB,
  rdb *redis.Client,
  ctx context.Context,
  nc *nats.Conn,
) *DecoderRepository {
  return &DecoderRepository{
    Db:     db,
    Rdb:    rdb,
    Ctx:    ctx,
    Parser: NewLoggingParser(),
    TweetsRepository: &TweetsRepository{
      Db:   db,
      Nats: nc,
    },
    RejectsRepository: &RejectsRepository{
      Db: db,
    },
  }
}

// NewLoggingParser returns a parser that logs every dropped lenient member.
func NewLoggingParser() *tweets.Parser {
  return tweets.NewParser(func(path string, err error) {
    log.WithFields(log.Fields{
      "path":  path,
      "cause": errors.Cause(err).Error(),
    }).Warn("tweet field discarded")
  })
}

func Digest(raw []byte) string {
  hash := sha1.Sum(raw)
  return hex.EncodeToString(hash[:])
}

// Process decodes raw and stores the result. Identical payloads decoded
// within DECODER_CACHE_TTL resolve to the stored record. Structural failures
// are recorded as rejects and returned as is, so callers can match
// fields.ErrInvalidResponse.
func (r *DecoderRepository) Process(raw []byte) (*DecodeResult, error) {
  digest := Digest(raw)
  tweet, err := r.Parser.DecodeBytes(raw)
  if err != nil {
    if _, rerr := r.RejectsRepository.Record(digest, raw, err); rerr != nil {
      log.WithError(rerr).Errorln("record reject", digest)
    }
    return nil, err
  }

  mutex := common.NewMutex(
    r.Rdb,
    r.Ctx,
    fmt.Sprintf(config.LOCKS_TWEETS_DECODE, digest),
  )
  locked, err := mutex.Lock(config.DECODER_LOCK_TTL)
  if err != nil {
    return nil, errors.Wrap(err, "lock payload")
  }
  if !locked {
    return nil, ErrBusy
  }
  defer mutex.Unlock()

  result := &DecodeResult{
    Digest: digest,
    Tweet:  tweet,
  }

  redisKey := fmt.Sprintf(config.REDIS_KEY_TWEETS_DIGEST, digest)
  if id, _ := r.Rdb.Get(r.Ctx, redisKey).Result(); id != "" {
    if _, err := r.TweetsRepository.Find(id); err == nil {
      result.ID = id
      result.Cached = true
      return result, nil
    }
  }

  id, err := r.TweetsRepository.Save(tweet, raw)
  if err != nil {
    return nil, errors.Wrap(err, "save tweet")
  }
  r.Rdb.SetEX(
    r.Ctx,
    redisKey,
    id,
    common.GetEnvDuration("DECODER_CACHE_TTL", config.DECODER_CACHE_TTL),
  )
  result.ID = id
  return result, nil
}

// Validate decodes raw without touching storage.
func (r *DecoderRepository) Validate(raw []byte) (*tweets.Tweet, error) {
  return r.Parser.DecodeBytes(raw)
}

// Retry decodes up to limit pending rejects again, resolving the ones that
// decode now. It returns how many were resolved.
func (r *DecoderRepository) Retry(limit int) (count int, err error) {
  mutex := common.NewMutex(r.Rdb, r.Ctx, config.LOCKS_REJECTS_RETRY)
  locked, err := mutex.Lock(config.DECODER_LOCK_TTL * 6)
  if err != nil {
    return 0, errors.Wrap(err, "lock rejects")
  }
  if !locked {
    return 0, ErrBusy
  }
  defer mutex.Unlock()

  for _, reject := range r.RejectsRepository.Pending(limit) {
    tweet, err := r.Parser.DecodeBytes(reject.Raw)
    if err != nil {
      if !errors.Is(err, fields.ErrInvalidResponse) {
        return count, err
      }
      if err := r.RejectsRepository.Attempt(reject, err); err != nil {
        return count, errors.Wrap(err, "count reject attempt")
      }
      continue
    }
    id, err := r.TweetsRepository.Save(tweet, reject.Raw)
    if err != nil {
      return count, errors.Wrap(err, "save tweet")
    }
    if err := r.RejectsRepository.Resolve(reject, id); err != nil {
      return count, errors.Wrap(err, "resolve reject")
    }
    count++
  }
  log.WithFields(log.Fields{
    "resolved": count,
  }).Info("rejects retried")
  return count, nil
}
