package queue

import (
  "context"
  "os"
  "os/signal"
  "syscall"

  "github.com/go-redis/redis/v8"
  log "github.com/sirupsen/logrus"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/queue/nats"
)

type NatsHandler struct {
  Db  *gorm.DB
  Rdb *redis.Client
  Ctx context.Context
}

func NewNatsCommand() *cli.Command {
  var h NatsHandler
  return &cli.Command{
    Name:  "nats",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = NatsHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.Run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *NatsHandler) Run() error {
  log.Println("nats running...")

  nc := common.NewNats()
  defer nc.Drain()

  natsContext := &common.NatsContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Conn: nc,
  }
  if err := nats.NewWorkers(natsContext).Subscribe(); err != nil {
    return err
  }

  <-h.wait()

  return nil
}

func (h *NatsHandler) wait() chan os.Signal {
  ch := make(chan os.Signal, 1)
  signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
  return ch
}
