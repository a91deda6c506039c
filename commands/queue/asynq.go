package queue

import (
  "context"

  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"
  log "github.com/sirupsen/logrus"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/queue/asynq/workers"
)

type AsynqHandler struct {
  Db  *gorm.DB
  Rdb *redis.Client
  Ctx context.Context
}

func NewAsynqCommand() *cli.Command {
  var h AsynqHandler
  return &cli.Command{
    Name:  "asynq",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = AsynqHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *AsynqHandler) run() error {
  log.Println("asynq queue running...")

  mux := asynq.NewServeMux()
  worker := common.NewAsynqServer()

  nc := common.NewNats()
  defer nc.Close()

  ansqContext := &common.AnsqServerContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Mux:  mux,
    Nats: nc,
  }

  workers.NewTweets(ansqContext).Register()

  return worker.Run(mux)
}
