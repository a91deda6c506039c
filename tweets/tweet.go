// Package tweets decodes status objects, including the quoted and
// retweeted statuses embedded in them.
package tweets

import (
  "github.com/tidwall/gjson"

  "scraper.local/tweet-decoder/fields"
  "scraper.local/tweet-decoder/users"
)

// Tweet is a single status update.
type Tweet struct {
  // Formatted like "Wed Aug 27 13:08:45 +0000 2008".
  CreatedAt string `json:"created_at"`
  // Id of the caller's own retweet of this tweet, if any.
  CurrentUserRetweet  *int64            `json:"current_user_retweet,omitempty"`
  Entities            Entities          `json:"entities"`
  ExtendedEntities    *ExtendedEntities `json:"extended_entities,omitempty"`
  FavoriteCount       int32             `json:"favorite_count"`
  Favorited           *bool             `json:"favorited,omitempty"`
  ID                  int64             `json:"id"`
  InReplyToUserID     *int64            `json:"in_reply_to_user_id,omitempty"`
  InReplyToScreenName *string           `json:"in_reply_to_screen_name,omitempty"`
  InReplyToStatusID   *int64            `json:"in_reply_to_status_id,omitempty"`
  // Machine-detected language, "und" when undetermined.
  Lang              string `json:"lang"`
  PossiblySensitive *bool  `json:"possibly_sensitive,omitempty"`
  QuotedStatusID    *int64 `json:"quoted_status_id,omitempty"`
  QuotedStatus      *Tweet `json:"quoted_status,omitempty"`
  RetweetCount      int32  `json:"retweet_count"`
  Retweeted         *bool  `json:"retweeted,omitempty"`
  RetweetedStatus   *Tweet `json:"retweeted_status,omitempty"`
  // HTML anchor naming the posting application, see SourceApp.
  Source            string      `json:"source"`
  Text              string      `json:"text"`
  User              *users.User `json:"user"`
  WithheldCopyright bool        `json:"withheld_copyright"`
  // Two-letter country codes. "XX" means all countries, "XY" a DMCA notice.
  WithheldInCountries *[]string `json:"withheld_in_countries,omitempty"`
  // "status" or "user".
  WithheldScope *string `json:"withheld_scope,omitempty"`
}

// Parser decodes tweets. The zero value is ready to use.
type Parser struct {
  // Discarded, when set, is told about every lenient member that was
  // present but could not be decoded and was dropped, at any depth. Paths
  // are relative to the outermost tweet, e.g. "entities.media[0].video_info".
  Discarded fields.Reporter
}

func NewParser(discarded fields.Reporter) *Parser {
  return &Parser{Discarded: discarded}
}

// Decode decodes one tweet object. On failure the returned tweet is nil and
// the error matches fields.ErrInvalidResponse.
func (p *Parser) Decode(v gjson.Result) (*Tweet, error) {
  return decode(v, p.Discarded)
}

// DecodeBytes parses raw JSON and decodes it.
func (p *Parser) DecodeBytes(raw []byte) (*Tweet, error) {
  if !gjson.ValidBytes(raw) {
    return nil, fields.Invalid(ErrMalformedJSON)
  }
  return p.Decode(gjson.ParseBytes(raw))
}

func decode(v gjson.Result, report fields.Reporter) (*Tweet, error) {
  t := &Tweet{}
  if err := fields.Decode(v, report, t.bindings()...); err != nil {
    return nil, err
  }
  return t, nil
}

func (t *Tweet) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("created_at", fields.String, &t.CreatedAt),
    fields.ReducedID("current_user_retweet", &t.CurrentUserRetweet),
    fields.Strict("entities", DecodeEntities, &t.Entities),
    fields.Lenient("extended_entities", DecodeExtendedEntities, &t.ExtendedEntities),
    fields.Default("favorite_count", fields.Int32, &t.FavoriteCount, 0),
    fields.Lenient("favorited", fields.Bool, &t.Favorited),
    fields.Strict("id", fields.Int64, &t.ID),
    fields.Lenient("in_reply_to_user_id", fields.Int64, &t.InReplyToUserID),
    fields.Lenient("in_reply_to_screen_name", fields.String, &t.InReplyToScreenName),
    fields.Lenient("in_reply_to_status_id", fields.Int64, &t.InReplyToStatusID),
    fields.Strict("lang", fields.String, &t.Lang),
    fields.Lenient("possibly_sensitive", fields.Bool, &t.PossiblySensitive),
    fields.Lenient("quoted_status_id", fields.Int64, &t.QuotedStatusID),
    fields.Nested("quoted_status", decode, &t.QuotedStatus),
    fields.Strict("retweet_count", fields.Int32, &t.RetweetCount),
    fields.Lenient("retweeted", fields.Bool, &t.Retweeted),
    fields.Nested("retweeted_status", decode, &t.RetweetedStatus),
    fields.Strict("source", fields.String, &t.Source),
    fields.Strict("text", fields.String, &t.Text),
    fields.Strict("user", users.Decode, &t.User),
    fields.Default("withheld_copyright", fields.Bool, &t.WithheldCopyright, false),
    fields.Lenient("withheld_in_countries", fields.List(fields.String), &t.WithheldInCountries),
    fields.Lenient("withheld_scope", fields.String, &t.WithheldScope),
  }
}

var defaultParser = &Parser{}

// Decode decodes v without reporting discarded members.
func Decode(v gjson.Result) (*Tweet, error) {
  return defaultParser.Decode(v)
}

func DecodeBytes(raw []byte) (*Tweet, error) {
  return defaultParser.DecodeBytes(raw)
}

// Rules is the member policy table applied to every tweet object.
func Rules() []fields.Rule {
  return fields.Rules((&Tweet{}).bindings())
}
