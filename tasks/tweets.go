package tasks

import (
  "time"

  "github.com/hibiken/asynq"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/queue/asynq/jobs"
)

type TweetsTask struct {
  Job         *jobs.Tweets
  AnsqContext *common.AnsqClientContext
}

func NewTweetsTask(ansqContext *common.AnsqClientContext) *TweetsTask {
  return &TweetsTask{
    AnsqContext: ansqContext,
  }
}

// Decode enqueues raw for decoding and returns the task id.
func (t *TweetsTask) Decode(raw []byte) (string, error) {
  job, err := t.Job.Decode(raw)
  if err != nil {
    return "", err
  }
  info, err := t.AnsqContext.Conn.Enqueue(
    job,
    asynq.Queue(config.ASYNQ_QUEUE_TWEETS),
    asynq.MaxRetry(3),
    asynq.Timeout(time.Minute),
  )
  if err != nil {
    return "", err
  }
  return info.ID, nil
}
