package commands

import (
  "context"
  "os"
  "os/signal"
  "syscall"

  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"
  "github.com/robfig/cron/v3"
  log "github.com/sirupsen/logrus"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/tasks"
)

type CronHandler struct {
  Db    *gorm.DB
  Rdb   *redis.Client
  Asynq *asynq.Client
  Ctx   context.Context
}

func NewCronCommand() *cli.Command {
  var h CronHandler
  return &cli.Command{
    Name:  "cron",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = CronHandler{
        Db:    common.NewDB(),
        Rdb:   common.NewRedis(),
        Asynq: common.NewAsynqClient(),
        Ctx:   context.Background(),
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

func (h *CronHandler) run() error {
  log.Println("cron running...")

  ansqContext := &common.AnsqClientContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Conn: h.Asynq,
  }

  rejects := tasks.NewRejectsTask(ansqContext)

  spec := common.GetEnvString("DECODER_CRON_SPEC")
  if spec == "" {
    spec = config.DECODER_CRON_SPEC
  }

  c := cron.New()
  _, err := c.AddFunc(spec, func() {
    if err := rejects.Retry(config.DECODER_RETRY_SIZE); err != nil {
      log.WithError(err).Errorln("tasks rejects retry")
    }
  })
  if err != nil {
    return err
  }
  c.Start()
  defer c.Stop()

  <-h.wait()

  return nil
}

func (h *CronHandler) wait() chan os.Signal {
  ch := make(chan os.Signal, 1)
  signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
  return ch
}
