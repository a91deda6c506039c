package jobs

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RetryPayload struct {
  Limit int `json:"limit"`
}
