package asynq

import (
  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/queue/asynq/workers"
)

type Workers struct {
  AnsqContext *common.AnsqServerContext
}

func NewWorkers(ansqContext *common.AnsqServerContext) *Workers {
  return &Workers{
    AnsqContext: ansqContext,
  }
}

func (h *Workers) Register() error {
  workers.NewTweets(h.AnsqContext).Register()
  return nil
}
