package tweets

import (
  "scraper.local/tweet-decoder/entities"
  "scraper.local/tweet-decoder/fields"
)

// Entities holds the annotations parsed from the tweet text, in text order.
type Entities struct {
  Hashtags     []entities.HashtagEntity `json:"hashtags"`
  Symbols      []entities.HashtagEntity `json:"symbols"`
  Urls         []entities.UrlEntity     `json:"urls"`
  UserMentions []entities.MentionEntity `json:"user_mentions"`
  // Media is nil when the tweet carries no "media" member at all. Only the
  // first photo of a set is listed here, see ExtendedEntities.
  Media *[]entities.MediaEntity `json:"media,omitempty"`
}

func (e *Entities) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("hashtags", fields.List(entities.DecodeHashtag), &e.Hashtags),
    fields.Strict("symbols", fields.List(entities.DecodeHashtag), &e.Symbols),
    fields.Strict("urls", fields.List(entities.DecodeUrl), &e.Urls),
    fields.Strict("user_mentions", fields.List(entities.DecodeMention), &e.UserMentions),
    fields.Lenient("media", fields.List(entities.DecodeMedia), &e.Media),
  }
}

// ExtendedEntities carries every attached photo, or the full video/gif
// information, when a tweet has media.
type ExtendedEntities struct {
  Media []entities.MediaEntity `json:"media"`
}

func (e *ExtendedEntities) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("media", fields.List(entities.DecodeMedia), &e.Media),
  }
}

var (
  DecodeEntities         = fields.Object((*Entities).bindings)
  DecodeExtendedEntities = fields.Object((*ExtendedEntities).bindings)
)

func EntitiesRules() []fields.Rule {
  return fields.Rules((&Entities{}).bindings())
}

func ExtendedEntitiesRules() []fields.Rule {
  return fields.Rules((&ExtendedEntities{}).bindings())
}

// AllMedia prefers the extended media list over the truncated one.
func (t *Tweet) AllMedia() []entities.MediaEntity {
  if t.ExtendedEntities != nil {
    return t.ExtendedEntities.Media
  }
  if t.Entities.Media != nil {
    return *t.Entities.Media
  }
  return nil
}
