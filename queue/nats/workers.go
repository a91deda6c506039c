package nats

import (
  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/queue/nats/workers"
)

type Workers struct {
  NatsContext *common.NatsContext
}

func NewWorkers(natsContext *common.NatsContext) *Workers {
  return &Workers{
    NatsContext: natsContext,
  }
}

func (h *Workers) Subscribe() error {
  return workers.NewTweets(h.NatsContext).Subscribe()
}
