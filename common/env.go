package common

import (
  "os"
  "strings"
  "time"

  "github.com/spf13/cast"
)

func GetEnvString(key string) string {
  return os.Getenv(key)
}

func GetEnvInt(key string) int {
  return cast.ToInt(os.Getenv(key))
}

// GetEnvArray splits a ";" separated value, skipping empty items.
func GetEnvArray(key string) []string {
  var items []string
  for _, item := range strings.Split(os.Getenv(key), ";") {
    if item = strings.TrimSpace(item); item != "" {
      items = append(items, item)
    }
  }
  return items
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
  if d, err := cast.ToDurationE(os.Getenv(key)); err == nil && d > 0 {
    return d
  }
  return fallback
}

func GetEnvIntDefault(key string, fallback int) int {
  if n := GetEnvInt(key); n > 0 {
    return n
  }
  return fallback
}
