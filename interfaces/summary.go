// Package interfaces shows capability polymorphism: two unrelated record
// types, NewsArticle and Tweet, both satisfy Summary without sharing any
// type hierarchy.
package interfaces

// Summary is implemented by anything that can describe itself in one line.
// Implementations must be pure: same fields, same summary, no side effects.
type Summary interface {
	Summarize() string
}

// Compile-time checks. Go has no "implements" keyword; these lines fail to
// build if a method is renamed or its signature drifts.
var (
	_ Summary = NewsArticle{}
	_ Summary = Tweet{}
)
