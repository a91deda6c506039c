package commands

import (
  "bytes"
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  "scraper.local/tweet-decoder/fields"
)

const tweetJSON = `{
  "created_at": "Thu Apr 06 15:24:15 +0000 2017",
  "id": 850006245121695744,
  "lang": "en",
  "retweet_count": 0,
  "source": "web",
  "text": "Just setting up my account",
  "entities": {"hashtags": [], "symbols": [], "urls": [], "user_mentions": []},
  "user": {
    "id": 2244994945,
    "screen_name": "TwitterDev",
    "name": "Twitter Dev",
    "created_at": "Sat Dec 14 04:35:55 +0000 2013"
  }
}`

func TestDecode(t *testing.T) {
  var buf bytes.Buffer
  h := &DecodeHandler{}
  require.NoError(t, h.decode(&buf, []byte(tweetJSON), false))
  out := buf.String()
  assert.True(t, strings.HasSuffix(out, "}\n"))
  assert.Contains(t, out, `"id":850006245121695744`)
  assert.Contains(t, out, `"favorite_count":0`)

  buf.Reset()
  require.NoError(t, h.decode(&buf, []byte(tweetJSON), true))
  assert.Contains(t, buf.String(), "\n  \"created_at\": ")
}

func TestDecodeInvalid(t *testing.T) {
  var buf bytes.Buffer
  err := new(DecodeHandler).decode(&buf, []byte(`{"id": 1}`), false)
  assert.ErrorIs(t, err, fields.ErrInvalidResponse)
  assert.Zero(t, buf.Len())
}

func TestPrintRules(t *testing.T) {
  var buf bytes.Buffer
  require.NoError(t, printRules(&buf))
  var rows []string
  for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
    rows = append(rows, strings.Join(strings.Fields(line), " "))
  }
  assert.Contains(t, rows, "tweet current_user_retweet reduced")
  assert.Contains(t, rows, "tweet quoted_status recursive")
  assert.Contains(t, rows, "entities media lenient")
  assert.Contains(t, rows, "extended_entities media required")
  assert.Contains(t, rows, "user followers_count defaulted")
}
