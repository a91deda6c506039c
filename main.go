package main

import (
  "os"
  "path"
  "path/filepath"

  "github.com/joho/godotenv"
  log "github.com/sirupsen/logrus"
  "github.com/urfave/cli/v2"

  "scraper.local/tweet-decoder/commands"
  "scraper.local/tweet-decoder/common"
)

func main() {
  if err := godotenv.Load(path.Join(filepath.Dir(os.Args[0]), ".env")); err != nil {
    dir, _ := os.Getwd()
    if err = godotenv.Load(path.Join(dir, ".env")); err != nil {
      log.Debugln("no .env file", err)
    }
  }
  common.SetupLogger()

  app := &cli.App{
    Name:  "tweet decoder commands",
    Usage: "",
    Action: func(c *cli.Context) error {
      if c.Command.Action == nil {
        cli.ShowAppHelp(c)
      } else {
        log.Fatalln("unknown command", c.Args().First())
      }
      return nil
    },
    Commands: []*cli.Command{
      commands.NewDbCommand(),
      commands.NewDecodeCommand(),
      commands.NewRulesCommand(),
      commands.NewApiCommand(),
      commands.NewQueueCommand(),
      commands.NewCronCommand(),
    },
    Version: "0.0.0",
  }

  err := app.Run(os.Args)
  if err != nil {
    log.Fatalln("error", err)
  }
}
