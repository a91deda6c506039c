package commands

import (
  "context"
  "fmt"
  "net/http"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/chi/v5/middleware"
  "github.com/go-redis/redis/v8"
  "github.com/nats-io/nats.go"
  log "github.com/sirupsen/logrus"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/api/v1"
  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
)

type ApiHandler struct {
  Db   *gorm.DB
  Rdb  *redis.Client
  Nats *nats.Conn
  Ctx  context.Context
}

func NewApiCommand() *cli.Command {
  var h ApiHandler
  return &cli.Command{
    Name:  "api",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = ApiHandler{
        Db:   common.NewDB(),
        Rdb:  common.NewRedis(),
        Nats: common.NewNats(),
        Ctx:  context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      defer h.Nats.Close()
      if err := h.Run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *ApiHandler) Run() error {
  port := common.GetEnvIntDefault("DECODER_API_PORT", config.DECODER_API_PORT)
  log.WithField("port", port).Println("api running...")

  apiContext := &common.ApiContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Nats: h.Nats,
  }

  r := chi.NewRouter()
  r.Use(middleware.Recoverer)
  r.Route("/v1", func(r chi.Router) {
    r.Mount("/tweets", v1.NewTweetsRouter(apiContext))
  })

  return http.ListenAndServe(fmt.Sprintf("127.0.0.1:%v", port), r)
}
