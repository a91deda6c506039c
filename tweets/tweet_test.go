package tweets

import (
  "testing"
  "time"

  jsoniter "github.com/json-iterator/go"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "github.com/tidwall/gjson"

  "scraper.local/tweet-decoder/fields"
)

var json = jsoniter.Config{UseNumber: true, SortMapKeys: true}.Froze()

func without(t *testing.T, raw string, member string) string {
  var doc map[string]interface{}
  require.NoError(t, json.UnmarshalFromString(raw, &doc))
  delete(doc, member)
  out, err := json.MarshalToString(doc)
  require.NoError(t, err)
  return out
}

func TestDecodeMinimal(t *testing.T) {
  tweet, err := Decode(gjson.Parse(minimalTweet(850006245121695744, "")))
  require.NoError(t, err)
  require.NotNil(t, tweet)

  assert.Equal(t, int64(850006245121695744), tweet.ID)
  assert.Equal(t, "en", tweet.Lang)
  assert.Equal(t, "Just setting up my account", tweet.Text)
  require.NotNil(t, tweet.User)
  assert.Equal(t, "TwitterDev", tweet.User.ScreenName)

  assert.Equal(t, int32(0), tweet.FavoriteCount)
  assert.False(t, tweet.WithheldCopyright)

  assert.Nil(t, tweet.CurrentUserRetweet)
  assert.Nil(t, tweet.ExtendedEntities)
  assert.Nil(t, tweet.Favorited)
  assert.Nil(t, tweet.Retweeted)
  assert.Nil(t, tweet.PossiblySensitive)
  assert.Nil(t, tweet.InReplyToUserID)
  assert.Nil(t, tweet.InReplyToScreenName)
  assert.Nil(t, tweet.InReplyToStatusID)
  assert.Nil(t, tweet.QuotedStatusID)
  assert.Nil(t, tweet.QuotedStatus)
  assert.Nil(t, tweet.RetweetedStatus)
  assert.Nil(t, tweet.WithheldInCountries)
  assert.Nil(t, tweet.WithheldScope)

  assert.NotNil(t, tweet.Entities.Hashtags)
  assert.Empty(t, tweet.Entities.Hashtags)
  assert.Nil(t, tweet.Entities.Media)
}

func TestDecodeMissingRequired(t *testing.T) {
  raw := minimalTweet(1, "")
  for _, member := range []string{"id", "created_at", "lang", "text", "source", "retweet_count", "entities", "user"} {
    t.Run(member, func(t *testing.T) {
      tweet, err := DecodeBytes([]byte(without(t, raw, member)))
      assert.Nil(t, tweet)
      assert.ErrorIs(t, err, fields.ErrInvalidResponse)
      assert.ErrorIs(t, err, fields.ErrMissing)

      var fe *fields.FieldError
      require.ErrorAs(t, err, &fe)
      assert.Equal(t, member, fe.Path)
    })
  }
}

func TestDecodeNotObject(t *testing.T) {
  for _, raw := range []string{`[` + minimalTweet(1, "") + `]`, `"tweet"`, `42`, `null`, `true`} {
    tweet, err := Decode(gjson.Parse(raw))
    assert.Nil(t, tweet)
    assert.ErrorIs(t, err, fields.ErrInvalidResponse, raw)
    assert.ErrorIs(t, err, fields.ErrNotObject, raw)
  }
}

func TestDecodeBytesMalformed(t *testing.T) {
  tweet, err := DecodeBytes([]byte(`{"id": 1,`))
  assert.Nil(t, tweet)
  assert.ErrorIs(t, err, fields.ErrInvalidResponse)
  assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestDecodeFull(t *testing.T) {
  tweet, err := DecodeBytes([]byte(fullTweetJSON))
  require.NoError(t, err)

  assert.Equal(t, int32(161), tweet.RetweetCount)
  assert.Equal(t, int32(295), tweet.FavoriteCount)
  require.NotNil(t, tweet.Favorited)
  assert.False(t, *tweet.Favorited)
  require.NotNil(t, tweet.InReplyToUserID)
  assert.Equal(t, int64(6253282), *tweet.InReplyToUserID)
  assert.Nil(t, tweet.InReplyToStatusID)
  require.NotNil(t, tweet.CurrentUserRetweet)
  assert.Equal(t, int64(1050200000000000000), *tweet.CurrentUserRetweet)
  require.NotNil(t, tweet.WithheldInCountries)
  assert.Equal(t, []string{"DE", "XY"}, *tweet.WithheldInCountries)
  require.NotNil(t, tweet.WithheldScope)
  assert.Equal(t, "status", *tweet.WithheldScope)

  e := tweet.Entities
  require.Len(t, e.Hashtags, 1)
  assert.Equal(t, "Emoji", e.Hashtags[0].Text)
  require.Len(t, e.Symbols, 1)
  assert.Equal(t, "TWTR", e.Symbols[0].Text)
  require.Len(t, e.Urls, 1)
  require.Len(t, e.UserMentions, 1)
  assert.Equal(t, int64(6253282), e.UserMentions[0].ID)
  require.NotNil(t, e.Media)
  assert.Len(t, *e.Media, 1)

  require.NotNil(t, tweet.ExtendedEntities)
  assert.Len(t, tweet.ExtendedEntities.Media, 2)
  assert.Len(t, tweet.AllMedia(), 2)

  require.NotNil(t, tweet.QuotedStatusID)
  require.NotNil(t, tweet.QuotedStatus)
  assert.Equal(t, *tweet.QuotedStatusID, tweet.QuotedStatus.ID)
  assert.Nil(t, tweet.QuotedStatus.Favorited)
  assert.Equal(t, 1, tweet.Depth())
}

func TestDecodeNested(t *testing.T) {
  tweet, err := Decode(gjson.Parse(nestedTweet(3)))
  require.NoError(t, err)

  require.NotNil(t, tweet.QuotedStatus)
  assert.Equal(t, int64(2), tweet.QuotedStatus.ID)
  require.NotNil(t, tweet.QuotedStatus.RetweetedStatus)
  assert.Equal(t, int64(3), tweet.QuotedStatus.RetweetedStatus.ID)
  require.NotNil(t, tweet.QuotedStatus.RetweetedStatus.QuotedStatus)
  inner := tweet.QuotedStatus.RetweetedStatus.QuotedStatus
  assert.Equal(t, int64(4), inner.ID)
  assert.Equal(t, int32(0), inner.FavoriteCount)
  assert.Nil(t, inner.QuotedStatus)
  require.NotNil(t, inner.User)
  assert.Equal(t, 3, tweet.Depth())
}

func TestDecodeDeeplyNested(t *testing.T) {
  tweet, err := Decode(gjson.Parse(nestedTweet(200)))
  require.NoError(t, err)
  assert.Equal(t, 200, tweet.Depth())
}

func TestDecodeMalformedNested(t *testing.T) {
  quoted := without(t, minimalTweet(2, ""), "text")
  raw := minimalTweet(1, `, "quoted_status_id": 2, "quoted_status": `+quoted+`, "retweeted_status": [1, 2]`)

  tweet, err := Decode(gjson.Parse(raw))
  require.NoError(t, err)
  assert.Nil(t, tweet.QuotedStatus)
  assert.Nil(t, tweet.RetweetedStatus)
  require.NotNil(t, tweet.QuotedStatusID)
  assert.Equal(t, int64(2), *tweet.QuotedStatusID)
}

func TestDecodeCurrentUserRetweet(t *testing.T) {
  tests := []struct {
    name    string
    extra   string
    want    *int64
    wantErr bool
  }{
    {name: "object with id", extra: `, "current_user_retweet": {"id": 42}`, want: ptr(int64(42))},
    {name: "absent", extra: ``},
    {name: "null", extra: `, "current_user_retweet": null`},
    {name: "not an object", extra: `, "current_user_retweet": 42`},
    {name: "non numeric id", extra: `, "current_user_retweet": {"id": "not-a-number"}`, wantErr: true},
    {name: "missing id", extra: `, "current_user_retweet": {"id_str": "42"}`, wantErr: true},
  }
  for _, tt := range tests {
    t.Run(tt.name, func(t *testing.T) {
      tweet, err := Decode(gjson.Parse(minimalTweet(1, tt.extra)))
      if tt.wantErr {
        assert.Nil(t, tweet)
        assert.ErrorIs(t, err, fields.ErrInvalidResponse)
        var fe *fields.FieldError
        require.ErrorAs(t, err, &fe)
        assert.Equal(t, "current_user_retweet.id", fe.Path)
        return
      }
      require.NoError(t, err)
      assert.Equal(t, tt.want, tweet.CurrentUserRetweet)
    })
  }
}

func TestDecodeEntitiesMedia(t *testing.T) {
  t.Run("absent", func(t *testing.T) {
    tweet, err := Decode(gjson.Parse(minimalTweet(1, "")))
    require.NoError(t, err)
    assert.Nil(t, tweet.Entities.Media)
  })

  t.Run("empty", func(t *testing.T) {
    raw := withEntities(minimalTweet(1, ""), `{"hashtags": [], "symbols": [], "urls": [], "user_mentions": [], "media": []}`)
    tweet, err := Decode(gjson.Parse(raw))
    require.NoError(t, err)
    require.NotNil(t, tweet.Entities.Media)
    assert.Empty(t, *tweet.Entities.Media)
  })

  t.Run("broken collection", func(t *testing.T) {
    raw := withEntities(minimalTweet(1, ""), `{"hashtags": [{"text": 1, "indices": [0, 2]}], "symbols": [], "urls": [], "user_mentions": []}`)
    tweet, err := Decode(gjson.Parse(raw))
    assert.Nil(t, tweet)
    var fe *fields.FieldError
    require.ErrorAs(t, err, &fe)
    assert.Equal(t, "entities.hashtags[0].text", fe.Path)
  })

  t.Run("missing symbols", func(t *testing.T) {
    raw := withEntities(minimalTweet(1, ""), `{"hashtags": [], "urls": [], "user_mentions": []}`)
    _, err := Decode(gjson.Parse(raw))
    assert.ErrorIs(t, err, fields.ErrMissing)
  })
}

func TestDecodeExtendedEntities(t *testing.T) {
  tweet, err := Decode(gjson.Parse(minimalTweet(1, `, "extended_entities": {"media": []}`)))
  require.NoError(t, err)
  require.NotNil(t, tweet.ExtendedEntities)
  assert.NotNil(t, tweet.ExtendedEntities.Media)
  assert.Empty(t, tweet.ExtendedEntities.Media)

  tweet, err = Decode(gjson.Parse(minimalTweet(1, `, "extended_entities": {}`)))
  require.NoError(t, err)
  assert.Nil(t, tweet.ExtendedEntities)
}

func TestParserReportsDiscards(t *testing.T) {
  type discard struct {
    path string
    err  error
  }
  var discards []discard
  p := NewParser(func(path string, err error) {
    discards = append(discards, discard{path, err})
  })

  quoted := minimalTweet(2, `, "possibly_sensitive": "no"`)
  raw := minimalTweet(1, `, "favorited": "yes", "in_reply_to_status_id": null, "favorite_count": -1.5, "quoted_status": `+quoted+`, "retweeted_status": {"id": 3}`)

  tweet, err := p.Decode(gjson.Parse(raw))
  require.NoError(t, err)
  assert.Nil(t, tweet.Favorited)
  assert.Equal(t, int32(0), tweet.FavoriteCount)
  require.NotNil(t, tweet.QuotedStatus)
  assert.Nil(t, tweet.QuotedStatus.PossiblySensitive)
  assert.Nil(t, tweet.RetweetedStatus)

  paths := make([]string, len(discards))
  for i, d := range discards {
    paths[i] = d.path
    assert.ErrorIs(t, d.err, fields.ErrInvalidResponse, d.path)
  }
  assert.Equal(t, []string{
    "favorite_count",
    "favorited",
    "quoted_status.possibly_sensitive",
    "retweeted_status",
  }, paths)
}

func TestRules(t *testing.T) {
  policies := map[string]fields.Policy{}
  for _, rule := range Rules() {
    policies[rule.Name] = rule.Policy
  }
  assert.Equal(t, map[string]fields.Policy{
    "created_at":              fields.Required,
    "current_user_retweet":    fields.Reduced,
    "entities":                fields.Required,
    "extended_entities":       fields.LenientPolicy,
    "favorite_count":          fields.Defaulted,
    "favorited":               fields.LenientPolicy,
    "id":                      fields.Required,
    "in_reply_to_user_id":     fields.LenientPolicy,
    "in_reply_to_screen_name": fields.LenientPolicy,
    "in_reply_to_status_id":   fields.LenientPolicy,
    "lang":                    fields.Required,
    "possibly_sensitive":      fields.LenientPolicy,
    "quoted_status_id":        fields.LenientPolicy,
    "quoted_status":           fields.Recursive,
    "retweet_count":           fields.Required,
    "retweeted":               fields.LenientPolicy,
    "retweeted_status":        fields.Recursive,
    "source":                  fields.Required,
    "text":                    fields.Required,
    "user":                    fields.Required,
    "withheld_copyright":      fields.Defaulted,
    "withheld_in_countries":   fields.LenientPolicy,
    "withheld_scope":          fields.LenientPolicy,
  }, policies)

  assert.Equal(t, []fields.Rule{
    {Name: "hashtags", Policy: fields.Required},
    {Name: "symbols", Policy: fields.Required},
    {Name: "urls", Policy: fields.Required},
    {Name: "user_mentions", Policy: fields.Required},
    {Name: "media", Policy: fields.LenientPolicy},
  }, EntitiesRules())
  assert.Equal(t, []fields.Rule{{Name: "media", Policy: fields.Required}}, ExtendedEntitiesRules())
}

func TestHelpers(t *testing.T) {
  tweet, err := DecodeBytes([]byte(fullTweetJSON))
  require.NoError(t, err)

  created, err := tweet.CreatedTime()
  require.NoError(t, err)
  assert.Equal(t, time.Date(2018, 10, 10, 20, 19, 24, 0, time.UTC), created.UTC())

  app, err := tweet.SourceApp()
  require.NoError(t, err)
  assert.Equal(t, SourceApp{Name: "TweetDeck", URL: "https://about.twitter.com/products/tweetdeck"}, app)

  app, err = tweet.QuotedStatus.SourceApp()
  require.NoError(t, err)
  assert.Equal(t, SourceApp{Name: "web"}, app)

  var ids []int64
  err = tweet.Walk(func(t *Tweet) error {
    ids = append(ids, t.ID)
    return nil
  })
  require.NoError(t, err)
  assert.Equal(t, []int64{1050118621198921728, 1049736460223893504}, ids)
}

func ptr[T any](v T) *T {
  return &v
}
