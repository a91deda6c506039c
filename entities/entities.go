// Package entities decodes the annotations attached to tweet text.
package entities

import (
  "github.com/tidwall/gjson"

  "scraper.local/tweet-decoder/fields"
)

// Range is the [start, end) code point offset of an entity in the text.
type Range [2]int32

var decodeRange = fields.Pair(fields.Int32)

func rangeField(dst *Range) fields.Binding {
  return fields.Strict("indices", func(v gjson.Result, report fields.Reporter) (Range, error) {
    r, err := decodeRange(v, report)
    return Range(r), err
  }, dst)
}

// HashtagEntity is a "#hashtag" or, among symbols, a "$CASHTAG".
type HashtagEntity struct {
  Range Range  `json:"indices"`
  Text  string `json:"text"`
}

func (e *HashtagEntity) bindings() []fields.Binding {
  return []fields.Binding{
    rangeField(&e.Range),
    fields.Strict("text", fields.String, &e.Text),
  }
}

var DecodeHashtag = fields.Object((*HashtagEntity).bindings)

// UrlEntity is a link in the text, already wrapped by the t.co shortener.
type UrlEntity struct {
  DisplayURL  string `json:"display_url"`
  ExpandedURL string `json:"expanded_url"`
  Range       Range  `json:"indices"`
  URL         string `json:"url"`
}

func (e *UrlEntity) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("display_url", fields.String, &e.DisplayURL),
    fields.Strict("expanded_url", fields.String, &e.ExpandedURL),
    rangeField(&e.Range),
    fields.Strict("url", fields.String, &e.URL),
  }
}

var DecodeUrl = fields.Object((*UrlEntity).bindings)

// MentionEntity is an "@screen_name" in the text.
type MentionEntity struct {
  ID         int64  `json:"id"`
  Range      Range  `json:"indices"`
  Name       string `json:"name"`
  ScreenName string `json:"screen_name"`
}

func (e *MentionEntity) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("id", fields.Int64, &e.ID),
    rangeField(&e.Range),
    fields.Strict("name", fields.String, &e.Name),
    fields.Strict("screen_name", fields.String, &e.ScreenName),
  }
}

var DecodeMention = fields.Object((*MentionEntity).bindings)

func HashtagRules() []fields.Rule {
  return fields.Rules((&HashtagEntity{}).bindings())
}

func UrlRules() []fields.Rule {
  return fields.Rules((&UrlEntity{}).bindings())
}

func MentionRules() []fields.Rule {
  return fields.Rules((&MentionEntity{}).bindings())
}
