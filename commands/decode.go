package commands

import (
  "io"
  "os"

  "github.com/hibiken/asynq"
  jsoniter "github.com/json-iterator/go"
  "github.com/pkg/errors"
  log "github.com/sirupsen/logrus"
  "github.com/urfave/cli/v2"

  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/tasks"
  "scraper.local/tweet-decoder/tweets"
)

type DecodeHandler struct {
  Asynq *asynq.Client
}

func NewDecodeCommand() *cli.Command {
  var h DecodeHandler
  return &cli.Command{
    Name:      "decode",
    Usage:     "decode a tweet read from a file or stdin",
    ArgsUsage: "[file]",
    Flags: []cli.Flag{
      &cli.BoolFlag{
        Name:  "enqueue",
        Usage: "push the payload to the decode queue instead",
      },
      &cli.BoolFlag{
        Name:  "pretty",
        Usage: "indent the decoded tweet",
      },
    },
    Action: func(c *cli.Context) error {
      raw, err := h.read(c.Args().First())
      if err != nil {
        return cli.Exit(err.Error(), 1)
      }
      if c.Bool("enqueue") {
        h.Asynq = common.NewAsynqClient()
        defer h.Asynq.Close()
        err = h.enqueue(raw)
      } else {
        err = h.decode(c.App.Writer, raw, c.Bool("pretty"))
      }
      if err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *DecodeHandler) read(file string) ([]byte, error) {
  if file == "" || file == "-" {
    return io.ReadAll(os.Stdin)
  }
  raw, err := os.ReadFile(file)
  return raw, errors.Wrap(err, "read payload")
}

func (h *DecodeHandler) decode(w io.Writer, raw []byte, pretty bool) error {
  parser := tweets.NewParser(func(path string, err error) {
    log.WithField("path", path).Warnln("discarded", errors.Cause(err))
  })
  tweet, err := parser.DecodeBytes(raw)
  if err != nil {
    return err
  }
  enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
  if pretty {
    enc.SetIndent("", "  ")
  }
  return enc.Encode(tweet)
}

func (h *DecodeHandler) enqueue(raw []byte) error {
  id, err := tasks.NewTweetsTask(&common.AnsqClientContext{
    Conn: h.Asynq,
  }).Decode(raw)
  if err != nil {
    return err
  }
  log.WithField("task", id).Println("tweet enqueued")
  return nil
}
