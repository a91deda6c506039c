package commands

import (
  "fmt"
  "io"
  "text/tabwriter"

  "github.com/urfave/cli/v2"

  "scraper.local/tweet-decoder/entities"
  "scraper.local/tweet-decoder/fields"
  "scraper.local/tweet-decoder/tweets"
  "scraper.local/tweet-decoder/users"
)

var rulesTables = []struct {
  name  string
  rules func() []fields.Rule
}{
  {"tweet", tweets.Rules},
  {"entities", tweets.EntitiesRules},
  {"extended_entities", tweets.ExtendedEntitiesRules},
  {"user", users.Rules},
  {"hashtag", entities.HashtagRules},
  {"url", entities.UrlRules},
  {"mention", entities.MentionRules},
  {"media", entities.MediaRules},
}

func NewRulesCommand() *cli.Command {
  return &cli.Command{
    Name:  "rules",
    Usage: "print the per-field decode policy of every object",
    Action: func(c *cli.Context) error {
      return printRules(c.App.Writer)
    },
  }
}

func printRules(w io.Writer) error {
  tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
  for _, table := range rulesTables {
    for _, rule := range table.rules() {
      fmt.Fprintf(tw, "%s\t%s\t%s\n", table.name, rule.Name, rule.Policy)
    }
  }
  return tw.Flush()
}
