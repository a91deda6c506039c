package config

import "time"

const (
  NATS_TWEETS_RAW     = "tweets.raw"
  NATS_TWEETS_DECODED = "tweets.decoded"

  NATS_QUEUE_DECODERS = "decoders"
)

const (
  ASYNQ_QUEUE_TWEETS = "tweets"

  ASYNQ_JOBS_TWEETS_DECODE  = "tweets:decode"
  ASYNQ_JOBS_REJECTS_RETRY = "rejects:retry"
)

const (
  REDIS_KEY_TWEETS_DIGEST = "tweets:digest:%s"
  REDIS_KEY_TWEETS_COUNT  = "tweets:count:%s"

  LOCKS_TWEETS_DECODE  = "locks:tweets:decode:%s"
  LOCKS_REJECTS_RETRY = "locks:rejects:retry"
)

const (
  TWEET_STATUS_POSTED   = 1
  TWEET_STATUS_EMBEDDED = 2

  REJECT_STATUS_PENDING   = 1
  REJECT_STATUS_RESOLVED  = 2
  REJECT_STATUS_ABANDONED = 3

  REJECTS_MAX_ATTEMPTS = 5
)

const (
  API_ERROR_PARAMS           = 1004
  API_ERROR_NOT_FOUND        = 1005
  API_ERROR_INVALID_RESPONSE = 1101
  API_ERROR_BUSY             = 1102
  API_ERROR_STORAGE          = 1103
)

const (
  DECODER_CACHE_TTL  = 24 * time.Hour
  DECODER_LOCK_TTL   = 10 * time.Second
  DECODER_MAX_BODY   = 4 << 20
  DECODER_CRON_SPEC  = "@every 10m"
  DECODER_API_PORT   = 8040
  DECODER_RETRY_SIZE = 100
)
