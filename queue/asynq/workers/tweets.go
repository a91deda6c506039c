package workers

import (
  "context"
  "fmt"

  "github.com/hibiken/asynq"
  "github.com/pkg/errors"
  log "github.com/sirupsen/logrus"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/fields"
  "scraper.local/tweet-decoder/queue/asynq/jobs"
  "scraper.local/tweet-decoder/repositories"
)

type Tweets struct {
  AnsqContext *common.AnsqServerContext
  Repository  *repositories.DecoderRepository
}

func NewTweets(ansqContext *common.AnsqServerContext) *Tweets {
  h := &Tweets{
    AnsqContext: ansqContext,
  }
  h.Repository = repositories.NewDecoderRepository(
    h.AnsqContext.Db,
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    h.AnsqContext.Nats,
  )
  return h
}

// Decode fails without retry on structural errors; the payload is kept as a
// reject instead.
func (h *Tweets) Decode(ctx context.Context, t *asynq.Task) error {
  result, err := h.Repository.Process(t.Payload())
  if errors.Is(err, fields.ErrInvalidResponse) {
    return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
  }
  if err != nil {
    return err
  }
  log.WithFields(log.Fields{
    "id":     result.ID,
    "cached": result.Cached,
  }).Debug("tweet decoded")
  return nil
}

func (h *Tweets) Retry(ctx context.Context, t *asynq.Task) error {
  var payload jobs.RetryPayload
  if err := json.Unmarshal(t.Payload(), &payload); err != nil {
    return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
  }
  if payload.Limit < 1 {
    payload.Limit = config.DECODER_RETRY_SIZE
  }
  _, err := h.Repository.Retry(payload.Limit)
  if errors.Is(err, repositories.ErrBusy) {
    return nil
  }
  return err
}

func (h *Tweets) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_TWEETS_DECODE, h.Decode)
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_REJECTS_RETRY, h.Retry)
  return nil
}
