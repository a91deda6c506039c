// Package users decodes the author object embedded in every tweet.
package users

import (
  "scraper.local/tweet-decoder/fields"
)

type User struct {
  ID                   int64     `json:"id"`
  ScreenName           string    `json:"screen_name"`
  Name                 string    `json:"name"`
  CreatedAt            string    `json:"created_at"`
  Description          *string   `json:"description,omitempty"`
  Location             *string   `json:"location,omitempty"`
  URL                  *string   `json:"url,omitempty"`
  ProfileImageURLHttps *string   `json:"profile_image_url_https,omitempty"`
  Lang                 *string   `json:"lang,omitempty"`
  Protected            bool      `json:"protected"`
  Verified             bool      `json:"verified"`
  FollowersCount       int32     `json:"followers_count"`
  FriendsCount         int32     `json:"friends_count"`
  ListedCount          int32     `json:"listed_count"`
  FavouritesCount      int32     `json:"favourites_count"`
  StatusesCount        int32     `json:"statuses_count"`
  WithheldInCountries  *[]string `json:"withheld_in_countries,omitempty"`
}

func (u *User) bindings() []fields.Binding {
  return []fields.Binding{
    fields.Strict("id", fields.Int64, &u.ID),
    fields.Strict("screen_name", fields.String, &u.ScreenName),
    fields.Strict("name", fields.String, &u.Name),
    fields.Strict("created_at", fields.String, &u.CreatedAt),
    fields.Lenient("description", fields.String, &u.Description),
    fields.Lenient("location", fields.String, &u.Location),
    fields.Lenient("url", fields.String, &u.URL),
    fields.Lenient("profile_image_url_https", fields.String, &u.ProfileImageURLHttps),
    fields.Lenient("lang", fields.String, &u.Lang),
    fields.Default("protected", fields.Bool, &u.Protected, false),
    fields.Default("verified", fields.Bool, &u.Verified, false),
    fields.Default("followers_count", fields.Int32, &u.FollowersCount, 0),
    fields.Default("friends_count", fields.Int32, &u.FriendsCount, 0),
    fields.Default("listed_count", fields.Int32, &u.ListedCount, 0),
    fields.Default("favourites_count", fields.Int32, &u.FavouritesCount, 0),
    fields.Default("statuses_count", fields.Int32, &u.StatusesCount, 0),
    fields.Lenient("withheld_in_countries", fields.List(fields.String), &u.WithheldInCountries),
  }
}

// Decode is the entry point tweets use for their "user" member.
var Decode = fields.Ref(fields.Object((*User).bindings))

func Rules() []fields.Rule {
  return fields.Rules((&User{}).bindings())
}
