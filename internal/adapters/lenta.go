package adapters

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SanitizeLenta extracts the title and body text of a lenta.ru article.
func SanitizeLenta(html string, plaintext bool) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("parse lenta html: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1.topic-title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	article := doc.Find(".topic-body__content").First()
	if article.Length() == 0 {
		return "", "", fmt.Errorf("lenta article body not found")
	}
	article.Find("script, style, figure, .topic-body__embed").Remove()

	body := collectText(article, plaintext)
	if body == "" {
		return "", "", fmt.Errorf("lenta article body is empty")
	}

	return title, body, nil
}
