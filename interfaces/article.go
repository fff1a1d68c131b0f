package interfaces

import "fmt"

// NewsArticle is a published story. Content is carried but not part of the
// summary.
type NewsArticle struct {
	Headline string `yaml:"headline"`
	Location string `yaml:"location"`
	Author   string `yaml:"author"`
	Content  string `yaml:"content"`
}

func (a NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}
