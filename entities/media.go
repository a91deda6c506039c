package entities

import (
  "scraper.local/tweet-decoder/fields"
)

type MediaSize struct {
  W      int32  `json:"w"`
  H      int32  `json:"h"`
  Resize string `json:"resize"`
}

var DecodeMediaSize = fields.Object(func(s *MediaSize) []fields.Binding {
  return []fields.Binding{
    fields.Strict("w", fields.Int32, &s.W),
    fields.Strict("h", fields.Int32, &s.H),
    fields.Strict("resize", fields.String, &s.Resize),
  }
})

type MediaSizes struct {
  Thumb  MediaSize `json:"thumb"`
  Small  MediaSize `json:"small"`
  Medium MediaSize `json:"medium"`
  Large  MediaSize `json:"large"`
}

var DecodeMediaSizes = fields.Object(func(s *MediaSizes) []fields.Binding {
  return []fields.Binding{
    fields.Strict("thumb", DecodeMediaSize, &s.Thumb),
    fields.Strict("small", DecodeMediaSize, &s.Small),
    fields.Strict("medium", DecodeMediaSize, &s.Medium),
    fields.Strict("large", DecodeMediaSize, &s.Large),
  }
})

type VideoVariant struct {
  Bitrate     *int32 `json:"bitrate,omitempty"`
  ContentType string `json:"content_type"`
  URL         string `json:"url"`
}

var DecodeVideoVariant = fields.Object(func(vv *VideoVariant) []fields.Binding {
  return []fields.Binding{
    fields.Lenient("bitrate", fields.Int32, &vv.Bitrate),
    fields.Strict("content_type", fields.String, &vv.ContentType),
    fields.Strict("url", fields.String, &vv.URL),
  }
})

// VideoInfo is only present on video and animated_gif media.
type VideoInfo struct {
  AspectRatio    [2]int32       `json:"aspect_ratio"`
  DurationMillis *int32         `json:"duration_millis,omitempty"`
  Variants       []VideoVariant `json:"variants"`
}

var DecodeVideoInfo = fields.Object(func(vi *VideoInfo) []fields.Binding {
  return []fields.Binding{
    fields.Strict("aspect_ratio", fields.Pair(fields.Int32), &vi.AspectRatio),
    fields.Lenient("duration_millis", fields.Int32, &vi.DurationMillis),
    fields.Strict("variants", fields.List(DecodeVideoVariant), &vi.Variants),
  }
})

// MediaEntity is a photo, video or animated gif attached to a tweet.
type MediaEntity struct {
  DisplayURL     string     `json:"display_url"`
  ExpandedURL    string     `json:"expanded_url"`
  ID             int64      `json:"id"`
  Range          Range      `json:"indices"`
  MediaURL       string     `json:"media_url"`
  MediaURLHttps  string     `json:"media_url_https"`
  Sizes          MediaSizes `json:"sizes"`
  SourceStatusID *int64     `json:"source_status_id,omitempty"`
  MediaType      string     `json:"type"`
  URL            string     `json:"url"`
  VideoInfo      *VideoInfo `json:"video_info,omitempty"`
  ExtAltText     *string    `json:"ext_alt_text,omitempty"`
}

func (e *MediaEntity) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("display_url", fields.String, &e.DisplayURL),
    fields.Strict("expanded_url", fields.String, &e.ExpandedURL),
    fields.Strict("id", fields.Int64, &e.ID),
    rangeField(&e.Range),
    fields.Strict("media_url", fields.String, &e.MediaURL),
    fields.Strict("media_url_https", fields.String, &e.MediaURLHttps),
    fields.Strict("sizes", DecodeMediaSizes, &e.Sizes),
    fields.Lenient("source_status_id", fields.Int64, &e.SourceStatusID),
    fields.Strict("type", fields.String, &e.MediaType),
    fields.Strict("url", fields.String, &e.URL),
    fields.Lenient("video_info", DecodeVideoInfo, &e.VideoInfo),
    fields.Lenient("ext_alt_text", fields.String, &e.ExtAltText),
  }
}

var DecodeMedia = fields.Object((*MediaEntity).bindings)

func MediaRules() []fields.Rule {
  return fields.Rules((&MediaEntity{}).bindings())
}

// IsVideo reports whether the media carries playable variants.
func (e *MediaEntity) IsVideo() bool {
  return e.MediaType == "video" || e.MediaType == "animated_gif"
}

// BestVariant picks the highest bitrate variant, or nil without video info.
func (e *MediaEntity) BestVariant() *VideoVariant {
  if e.VideoInfo == nil {
    return nil
  }
  var best *VideoVariant
  for i := range e.VideoInfo.Variants {
    v := &e.VideoInfo.Variants[i]
    if best == nil || bitrate(v) > bitrate(best) {
      best = v
    }
  }
  return best
}

func bitrate(v *VideoVariant) int32 {
  if v.Bitrate == nil {
    return -1
  }
  return *v.Bitrate
}
