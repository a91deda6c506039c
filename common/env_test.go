package common

import (
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
  t.Setenv("DECODER_TEST_INT", "42")
  t.Setenv("DECODER_TEST_ARRAY", "tweets,6; rejects,1;;")
  t.Setenv("DECODER_TEST_TTL", "90m")
  t.Setenv("DECODER_TEST_BAD", "soon")

  assert.Equal(t, 42, GetEnvInt("DECODER_TEST_INT"))
  assert.Equal(t, 0, GetEnvInt("DECODER_TEST_MISSING"))
  assert.Equal(t, 7, GetEnvIntDefault("DECODER_TEST_MISSING", 7))
  assert.Equal(t, []string{"tweets,6", "rejects,1"}, GetEnvArray("DECODER_TEST_ARRAY"))
  assert.Nil(t, GetEnvArray("DECODER_TEST_MISSING"))
  assert.Equal(t, 90*time.Minute, GetEnvDuration("DECODER_TEST_TTL", time.Hour))
  assert.Equal(t, time.Hour, GetEnvDuration("DECODER_TEST_BAD", time.Hour))
}

func TestJSONMap(t *testing.T) {
  m := JSONMap(struct {
    Hashtags []string `json:"hashtags"`
  }{Hashtags: []string{"go"}})
  assert.Equal(t, []interface{}{"go"}, m["hashtags"])
}
