package v1

import (
  "crypto/md5"
  "encoding/hex"
  "fmt"
  "io"
  "net/http"
  "strconv"
  "time"

  "github.com/go-chi/chi/v5"
  "github.com/pkg/errors"
  log "github.com/sirupsen/logrus"
  "gorm.io/gorm"

  "scraper.local/tweet-decoder/api"
  "scraper.local/tweet-decoder/common"
  "scraper.local/tweet-decoder/config"
  "scraper.local/tweet-decoder/fields"
  "scraper.local/tweet-decoder/models"
  "scraper.local/tweet-decoder/repositories"
  "scraper.local/tweet-decoder/tweets"
)

type TweetsHandler struct {
  ApiContext *common.ApiContext
  Repository *repositories.TweetsRepository
  Decoder    *repositories.DecoderRepository
}

type TweetInfo struct {
  ID               string      `json:"id"`
  TwitterID        string      `json:"twitter_id"`
  AuthorID         string      `json:"author_id"`
  Content          string      `json:"content"`
  Lang             string      `json:"lang"`
  Source           string      `json:"source"`
  QuotedID         string      `json:"quoted_id,omitempty"`
  RetweetedID      string      `json:"retweeted_id,omitempty"`
  RetweetCount     int32       `json:"retweet_count"`
  FavoriteCount    int32       `json:"favorite_count"`
  Entities         interface{} `json:"entities"`
  ExtendedEntities interface{} `json:"extended_entities,omitempty"`
  Timestamp        int64       `json:"timestamp"`
  Status           int         `json:"status"`
}

type InvalidInfo struct {
  Path  string `json:"path,omitempty"`
  Cause string `json:"cause"`
}

func NewTweetsRouter(apiContext *common.ApiContext) http.Handler {
  h := TweetsHandler{
    ApiContext: apiContext,
  }
  h.Decoder = repositories.NewDecoderRepository(
    h.ApiContext.Db,
    h.ApiContext.Rdb,
    h.ApiContext.Ctx,
    h.ApiContext.Nats,
  )
  h.Repository = h.Decoder.TweetsRepository

  r := chi.NewRouter()
  r.Get("/", h.Listings)
  r.Get("/{id:[0-9a-v]{20}}", h.Show)
  r.Post("/decode", h.Decode)
  r.Post("/validate", h.Validate)
  return r
}

func (h *TweetsHandler) Decode(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  raw, ok := readBody(response, r)
  if !ok {
    return
  }

  result, err := h.Decoder.Process(raw)
  if errors.Is(err, fields.ErrInvalidResponse) {
    invalid(response, err)
    return
  }
  if errors.Is(err, repositories.ErrBusy) {
    response.Error(http.StatusConflict, config.API_ERROR_BUSY, err.Error())
    return
  }
  if err != nil {
    log.WithError(err).Errorln("decode tweet")
    response.Error(http.StatusInternalServerError, config.API_ERROR_STORAGE, "storage unavailable")
    return
  }

  response.Json(result)
}

// Validate decodes the body without storing anything.
func (h *TweetsHandler) Validate(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  raw, ok := readBody(response, r)
  if !ok {
    return
  }

  var discarded []*InvalidInfo
  parser := tweets.NewParser(func(path string, err error) {
    info := newInvalidInfo(err)
    info.Path = path
    discarded = append(discarded, info)
  })
  tweet, err := parser.DecodeBytes(raw)
  if err != nil {
    invalid(response, err)
    return
  }

  response.Json(map[string]interface{}{
    "tweet":     tweet,
    "discarded": discarded,
  })
}

func (h *TweetsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  current := 1
  if r.URL.Query().Has("current") {
    current, _ = strconv.Atoi(r.URL.Query().Get("current"))
  }
  if current < 1 {
    response.Error(http.StatusForbidden, config.API_ERROR_PARAMS, "current not valid")
    return
  }

  pageSize := 50
  if r.URL.Query().Has("page_size") {
    pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
  }
  if pageSize < 1 || pageSize > 100 {
    response.Error(http.StatusForbidden, config.API_ERROR_PARAMS, "page size not valid")
    return
  }

  conditions := make(map[string]interface{})
  if r.URL.Query().Get("author_id") != "" {
    authorID, err := strconv.ParseInt(r.URL.Query().Get("author_id"), 10, 64)
    if err != nil {
      response.Error(http.StatusForbidden, config.API_ERROR_PARAMS, "author id not valid")
      return
    }
    conditions["author_id"] = authorID
  }
  if r.URL.Query().Get("lang") != "" {
    conditions["lang"] = r.URL.Query().Get("lang")
  }
  if r.URL.Query().Get("status") != "" {
    status, _ := strconv.Atoi(r.URL.Query().Get("status"))
    if status != config.TWEET_STATUS_POSTED && status != config.TWEET_STATUS_EMBEDDED {
      response.Error(http.StatusForbidden, config.API_ERROR_PARAMS, "status not valid")
      return
    }
    conditions["status"] = status
  }

  hash := md5.Sum([]byte(fmt.Sprintf("%v", conditions)))
  redisKey := fmt.Sprintf(
    config.REDIS_KEY_TWEETS_COUNT,
    hex.EncodeToString(hash[:]),
  )
  var total int64
  val, _ := h.ApiContext.Rdb.Get(h.ApiContext.Ctx, redisKey).Result()
  if val == "" {
    total = h.Repository.Count(conditions)
    h.ApiContext.Rdb.SetEX(h.ApiContext.Ctx, redisKey, total, time.Minute*15)
  } else {
    total, _ = strconv.ParseInt(val, 10, 64)
  }

  entities := h.Repository.Listings(conditions, current, pageSize)
  data := make([]*TweetInfo, len(entities))
  for i, entity := range entities {
    data[i] = newTweetInfo(entity)
  }

  response.Pagenate(data, total, current, pageSize)
}

func (h *TweetsHandler) Show(
  w http.ResponseWriter,
  r *http.Request,
) {
  response := &api.ResponseHandler{
    Writer: w,
  }

  entity, err := h.Repository.Find(chi.URLParam(r, "id"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    response.Error(http.StatusNotFound, config.API_ERROR_NOT_FOUND, "tweet not found")
    return
  }
  if err != nil {
    log.WithError(err).Errorln("find tweet")
    response.Error(http.StatusInternalServerError, config.API_ERROR_STORAGE, "storage unavailable")
    return
  }

  response.Json(newTweetInfo(entity))
}

func readBody(response *api.ResponseHandler, r *http.Request) ([]byte, bool) {
  raw, err := io.ReadAll(io.LimitReader(r.Body, config.DECODER_MAX_BODY+1))
  if err != nil {
    response.Error(http.StatusBadRequest, config.API_ERROR_PARAMS, "body not readable")
    return nil, false
  }
  if len(raw) > config.DECODER_MAX_BODY {
    response.Error(http.StatusRequestEntityTooLarge, config.API_ERROR_PARAMS, "body too large")
    return nil, false
  }
  if len(raw) == 0 {
    response.Error(http.StatusBadRequest, config.API_ERROR_PARAMS, "body is empty")
    return nil, false
  }
  return raw, true
}

func invalid(response *api.ResponseHandler, err error) {
  response.Fail(
    http.StatusUnprocessableEntity,
    config.API_ERROR_INVALID_RESPONSE,
    "invalid response",
    newInvalidInfo(err),
  )
}

func newInvalidInfo(err error) *InvalidInfo {
  info := &InvalidInfo{
    Cause: err.Error(),
  }
  var fe *fields.FieldError
  if errors.As(err, &fe) {
    info.Path = fe.Path
    info.Cause = fe.Err.Error()
  }
  return info
}

func newTweetInfo(entity *models.Tweet) *TweetInfo {
  info := &TweetInfo{
    ID:            entity.ID,
    TwitterID:     fmt.Sprint(entity.TwitterID),
    AuthorID:      fmt.Sprint(entity.AuthorID),
    Content:       entity.Content,
    Lang:          entity.Lang,
    Source:        entity.SourceName,
    RetweetCount:  entity.RetweetCount,
    FavoriteCount: entity.FavoriteCount,
    Entities:      entity.Entities,
    Timestamp:     entity.Timestamp,
    Status:        entity.Status,
  }
  if entity.ExtendedEntities != nil {
    info.ExtendedEntities = entity.ExtendedEntities
  }
  if entity.QuotedID > 0 {
    info.QuotedID = fmt.Sprint(entity.QuotedID)
  }
  if entity.RetweetedID > 0 {
    info.RetweetedID = fmt.Sprint(entity.RetweetedID)
  }
  return info
}
