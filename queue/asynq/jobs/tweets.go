package jobs

import (
  "github.com/hibiken/asynq"

  "scraper.local/tweet-decoder/config"
)

type Tweets struct{}

// Decode carries the raw payload itself, it is not json-wrapped.
func (h *Tweets) Decode(raw []byte) (*asynq.Task, error) {
  return asynq.NewTask(config.ASYNQ_JOBS_TWEETS_DECODE, raw), nil
}

type Rejects struct{}

func (h *Rejects) Retry(limit int) (*asynq.Task, error) {
  payload, err := json.Marshal(RetryPayload{limit})
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(config.ASYNQ_JOBS_REJECTS_RETRY, payload), nil
}
