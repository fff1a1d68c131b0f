package interfaces

// Tweet is a short social post. Reply and Retweet are flags only; they do not
// change the summary.
type Tweet struct {
	Username string `yaml:"username"`
	Content  string `yaml:"content"`
	Reply    bool   `yaml:"reply"`
	Retweet  bool   `yaml:"retweet"`
}

func (t Tweet) Summarize() string { return t.Username + ": " + t.Content }
