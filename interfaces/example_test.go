package interfaces_test

import (
	"fmt"
	"os"

	"github.com/marcodamonte/traits/interfaces"
)

func ExampleNotify() {
	tweet := interfaces.Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}

	fmt.Println("1 new tweet:", tweet.Summarize())
	_ = interfaces.Notify(os.Stdout, tweet)
	// Output:
	// 1 new tweet: horse_ebooks: of course, as you probably already know, people
	// Breaking news! horse_ebooks: of course, as you probably already know, people
}

func ExampleNewsArticle_Summarize() {
	article := interfaces.NewsArticle{
		Headline: "Penguins win the Stanley Cup Championship!",
		Location: "Pittsburgh, PA, USA",
		Author:   "Iceburgh",
	}
	fmt.Println(article.Summarize())
	// Output: Penguins win the Stanley Cup Championship!, by Iceburgh (Pittsburgh, PA, USA)
}
