package api

import (
  "net/http"

  jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ResponseHandler struct {
  Writer http.ResponseWriter
}

type ErrorBody struct {
  Code    int         `json:"code"`
  Message string      `json:"message"`
  Data    interface{} `json:"data,omitempty"`
}

type PagenateBody struct {
  Data     interface{} `json:"data"`
  Total    int64       `json:"total"`
  Current  int         `json:"current"`
  PageSize int         `json:"page_size"`
}

func (h *ResponseHandler) Json(data interface{}) {
  h.write(http.StatusOK, map[string]interface{}{
    "success": true,
    "data":    data,
  })
}

func (h *ResponseHandler) Pagenate(data interface{}, total int64, current int, pageSize int) {
  h.write(http.StatusOK, &PagenateBody{
    Data:     data,
    Total:    total,
    Current:  current,
    PageSize: pageSize,
  })
}

func (h *ResponseHandler) Error(status int, code int, message string) {
  h.write(status, &ErrorBody{
    Code:    code,
    Message: message,
  })
}

// Fail is Error with a payload describing the failure.
func (h *ResponseHandler) Fail(status int, code int, message string, data interface{}) {
  h.write(status, &ErrorBody{
    Code:    code,
    Message: message,
    Data:    data,
  })
}

func (h *ResponseHandler) write(status int, body interface{}) {
  h.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
  h.Writer.WriteHeader(status)
  json.NewEncoder(h.Writer).Encode(body)
}
