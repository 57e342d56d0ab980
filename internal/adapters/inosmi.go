package adapters

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const inosmiNoise = "script, style, noscript, .article__aside, .article__share, .advert"

// SanitizeInosmi extracts the title and body text of an inosmi.ru article.
func SanitizeInosmi(html string, plaintext bool) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("parse inosmi html: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	article := doc.Find("div.article__text").First()
	if article.Length() == 0 {
		article = doc.Find("article").First()
	}
	if article.Length() == 0 {
		return "", "", fmt.Errorf("inosmi article body not found")
	}
	article.Find(inosmiNoise).Remove()

	body := collectText(article, plaintext)
	if body == "" {
		return "", "", fmt.Errorf("inosmi article body is empty")
	}

	return title, body, nil
}

// collectText joins paragraph-level text of the selection. With plaintext
// set, all markup is discarded; otherwise paragraphs keep <p> wrappers.
func collectText(sel *goquery.Selection, plaintext bool) string {
	var parts []string
	paragraphs := sel.Find("p")
	if paragraphs.Length() == 0 {
		return strings.TrimSpace(sel.Text())
	}
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			return
		}
		if plaintext {
			parts = append(parts, text)
		} else {
			parts = append(parts, "<p>"+text+"</p>")
		}
	})
	return strings.Join(parts, "\n")
}
