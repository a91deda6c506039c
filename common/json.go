package common

import (
  jsoniter "github.com/json-iterator/go"
  "gorm.io/datatypes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func JSONMap(in interface{}) datatypes.JSONMap {
  buf, _ := json.Marshal(in)
  var out datatypes.JSONMap
  json.Unmarshal(buf, &out)
  return out
}
