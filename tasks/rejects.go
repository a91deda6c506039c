package tasks

import (
  "time"

  "github.com/hibiken/asynq"
  "github.com/pkg/errors"
  log "github.com/sirupsen/logrus"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/queue/asynq/jobs"
  "scraper.local/tweet-decoder/repositories"
)

type RejectsTask struct {
  Job               *jobs.Rejects
  AnsqContext       *common.AnsqClientContext
  RejectsRepository *repositories.RejectsRepository
}

func NewRejectsTask(ansqContext *common.AnsqClientContext) *RejectsTask {
  return &RejectsTask{
    AnsqContext: ansqContext,
    RejectsRepository: &repositories.RejectsRepository{
      Db: ansqContext.Db,
    },
  }
}

// Retry enqueues a retry pass when rejects are waiting.
func (t *RejectsTask) Retry(limit int) (err error) {
  pending := t.RejectsRepository.Count(config.REJECT_STATUS_PENDING)
  log.WithField("pending", pending).Println("tasks rejects retry")
  if pending == 0 {
    return nil
  }
  job, err := t.Job.Retry(limit)
  if err != nil {
    return err
  }
  _, err = t.AnsqContext.Conn.Enqueue(
    job,
    asynq.Queue(config.ASYNQ_QUEUE_TWEETS),
    asynq.MaxRetry(0),
    asynq.Timeout(5*time.Minute),
    asynq.Unique(time.Minute),
  )
  if errors.Is(err, asynq.ErrDuplicateTask) {
    return nil
  }
  return err
}
