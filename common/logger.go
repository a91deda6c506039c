package common

import (
  "os"
  "strings"

  log "github.com/sirupsen/logrus"
)

func SetupLogger() {
  log.SetOutput(os.Stderr)
  log.SetFormatter(&log.TextFormatter{
    FullTimestamp: true,
  })
  level, err := log.ParseLevel(strings.ToLower(GetEnvString("LOG_LEVEL")))
  if err != nil {
    level = log.InfoLevel
  }
  log.SetLevel(level)
}
