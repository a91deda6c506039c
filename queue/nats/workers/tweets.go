package workers

import (
  "github.com/nats-io/nats.go"
  "github.com/pkg/errors"
  log "github.com/sirupsen/logrus"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/fields"
  "scraper.local/tweet-decoder/repositories"
)

// Tweets decodes raw payloads published on NATS_TWEETS_RAW. Workers share
// a queue group so each payload is handled once.
type Tweets struct {
  NatsContext *common.NatsContext
  Repository  *repositories.DecoderRepository
}

func NewTweets(natsContext *common.NatsContext) *Tweets {
  h := &Tweets{
    NatsContext: natsContext,
  }
  h.Repository = repositories.NewDecoderRepository(
    h.NatsContext.Db,
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    h.NatsContext.Conn,
  )
  return h
}

func (h *Tweets) Subscribe() error {
  _, err := h.NatsContext.Conn.QueueSubscribe(config.NATS_TWEETS_RAW, config.NATS_QUEUE_DECODERS, h.Decode)
  return err
}

func (h *Tweets) Decode(m *nats.Msg) {
  result, err := h.Repository.Process(m.Data)
  if errors.Is(err, fields.ErrInvalidResponse) {
    log.WithField("digest", repositories.Digest(m.Data)).Warnln("tweet rejected", err)
    return
  }
  if err != nil {
    log.WithError(err).Errorln("decode tweet")
    return
  }
  log.WithFields(log.Fields{
    "id":     result.ID,
    "cached": result.Cached,
  }).Debug("tweet decoded")
  if m.Reply != "" {
    data, _ := json.Marshal(result)
    m.Respond(data)
  }
}
