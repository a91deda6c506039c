package tweets

import (
  "fmt"
  "strings"
)

const userJSON = `{
  "id": 2244994945,
  "id_str": "2244994945",
  "name": "Twitter Dev",
  "screen_name": "TwitterDev",
  "created_at": "Sat Dec 14 04:35:55 +0000 2013",
  "followers_count": 128452,
  "verified": true
}`

const entitiesJSON = `{"hashtags": [], "symbols": [], "urls": [], "user_mentions": []}`

const sourceJSON = `"<a href=\"http://twitter.com\" rel=\"nofollow\">Twitter Web Client</a>"`

// minimalTweet holds the required members only; extra is spliced in as
// additional members and must start with a comma when not empty.
func minimalTweet(id int64, extra string) string {
  return fmt.Sprintf(`{
    "created_at": "Thu Apr 06 15:24:15 +0000 2017",
    "id": %d,
    "lang": "en",
    "retweet_count": 0,
    "source": %s,
    "text": "Just setting up my account",
    "entities": %s,
    "user": %s%s
  }`, id, sourceJSON, entitiesJSON, userJSON, extra)
}

// nestedTweet embeds depth levels of statuses, alternating between
// quoted_status and retweeted_status.
func nestedTweet(depth int) string {
  raw := minimalTweet(int64(depth+1), "")
  for i := depth; i > 0; i-- {
    member := "quoted_status"
    if i%2 == 0 {
      member = "retweeted_status"
    }
    raw = minimalTweet(int64(i), fmt.Sprintf(`, %q: %s`, member, raw))
  }
  return raw
}

const fullTweetJSON = `{
  "created_at": "Wed Oct 10 20:19:24 +0000 2018",
  "id": 1050118621198921728,
  "id_str": "1050118621198921728",
  "text": "To make room for more expression, we will now count all emojis as equal #Emoji $TWTR @TwitterAPI https://t.co/MkGjXf9aXm https://t.co/GUgG4hPRbP",
  "source": "<a href=\"https://about.twitter.com/products/tweetdeck\" rel=\"nofollow\">TweetDeck</a>",
  "truncated": false,
  "in_reply_to_status_id": null,
  "in_reply_to_user_id": 6253282,
  "in_reply_to_screen_name": "TwitterAPI",
  "user": ` + userJSON + `,
  "is_quote_status": true,
  "quoted_status_id": 1049736460223893504,
  "quoted_status": {
    "created_at": "Tue Oct 09 19:01:01 +0000 2018",
    "id": 1049736460223893504,
    "text": "quoted",
    "source": "web",
    "lang": "en",
    "retweet_count": 3,
    "favorited": "yes",
    "entities": ` + entitiesJSON + `,
    "user": ` + userJSON + `
  },
  "retweet_count": 161,
  "favorite_count": 295,
  "favorited": false,
  "retweeted": false,
  "possibly_sensitive": false,
  "current_user_retweet": {"id": 1050200000000000000, "id_str": "1050200000000000000"},
  "withheld_in_countries": ["DE", "XY"],
  "withheld_scope": "status",
  "lang": "en",
  "entities": {
    "hashtags": [{"text": "Emoji", "indices": [72, 78]}],
    "symbols": [{"text": "TWTR", "indices": [79, 84]}],
    "urls": [{
      "url": "https://t.co/MkGjXf9aXm",
      "expanded_url": "https://twitter.com/i/web/status/1050118621198921728",
      "display_url": "twitter.com/i/web/status/1…",
      "indices": [97, 120]
    }],
    "user_mentions": [{
      "screen_name": "TwitterAPI",
      "name": "Twitter API",
      "id": 6253282,
      "id_str": "6253282",
      "indices": [85, 96]
    }],
    "media": [` + photoJSON + `]
  },
  "extended_entities": {
    "media": [` + photoJSON + `, ` + photoJSON + `]
  }
}`

const photoJSON = `{
  "id": 1050118613485563904,
  "indices": [121, 144],
  "media_url": "http://pbs.twimg.com/media/DpO3s3AWwAA.jpg",
  "media_url_https": "https://pbs.twimg.com/media/DpO3s3AWwAA.jpg",
  "url": "https://t.co/GUgG4hPRbP",
  "display_url": "pic.twitter.com/GUgG4hPRbP",
  "expanded_url": "https://twitter.com/TwitterDev/status/1050118621198921728/photo/1",
  "type": "photo",
  "sizes": {
    "thumb": {"w": 150, "h": 150, "resize": "crop"},
    "small": {"w": 680, "h": 383, "resize": "fit"},
    "medium": {"w": 1200, "h": 675, "resize": "fit"},
    "large": {"w": 1920, "h": 1080, "resize": "fit"}
  }
}`

// withEntities swaps the default entities object of a minimal tweet.
func withEntities(raw string, entities string) string {
  return strings.Replace(raw, `"entities": `+entitiesJSON, `"entities": `+entities, 1)
}
