package tweets

import (
  "strings"
  "time"

  "github.com/PuerkitoBio/goquery"
  "github.com/pkg/errors"
)

var (
  ErrMalformedJSON = errors.New("malformed json")
  ErrNoSourceLink  = errors.New("source has no link")
)

// CreatedTime parses CreatedAt.
func (t *Tweet) CreatedTime() (time.Time, error) {
  return time.Parse(time.RubyDate, t.CreatedAt)
}

// SourceApp is the posting application named by the source anchor.
type SourceApp struct {
  Name string `json:"name"`
  URL  string `json:"url"`
}

// SourceApp extracts the application from the "source" HTML anchor, e.g.
// `<a href="http://twitter.com" rel="nofollow">Twitter Web Client</a>`.
// Plain "web" sources have no link and yield only a name.
func (t *Tweet) SourceApp() (SourceApp, error) {
  doc, err := goquery.NewDocumentFromReader(strings.NewReader(t.Source))
  if err != nil {
    return SourceApp{}, errors.Wrap(err, "parse source")
  }
  a := doc.Find("a").First()
  if a.Length() == 0 {
    name := strings.TrimSpace(doc.Text())
    if name == "" {
      return SourceApp{}, ErrNoSourceLink
    }
    return SourceApp{Name: name}, nil
  }
  href, _ := a.Attr("href")
  return SourceApp{
    Name: strings.TrimSpace(a.Text()),
    URL:  href,
  }, nil
}

// Walk visits t and then each embedded status depth-first, quoted before
// retweeted. It stops at the first error fn returns.
func (t *Tweet) Walk(fn func(*Tweet) error) error {
  if t == nil {
    return nil
  }
  if err := fn(t); err != nil {
    return err
  }
  if err := t.QuotedStatus.Walk(fn); err != nil {
    return err
  }
  return t.RetweetedStatus.Walk(fn)
}

// Depth counts the nesting levels below t.
func (t *Tweet) Depth() int {
  if t == nil {
    return -1
  }
  d := t.QuotedStatus.Depth()
  if r := t.RetweetedStatus.Depth(); r > d {
    d = r
  }
  return d + 1
}
