package domain

// ProcessingStatus enumerates the terminal outcomes of one article pipeline.
type ProcessingStatus string

const (
	StatusOK           ProcessingStatus = "OK"
	StatusFetchError   ProcessingStatus = "FETCH_ERROR"
	StatusParsingError ProcessingStatus = "PARSING_ERROR"
	StatusTimeout      ProcessingStatus = "TIMEOUT"
)

// ArticleRate is the per-URL outcome record. Rate and WordCount are present
// only when Status is StatusOK; nil pointers marshal as JSON null. URL is
// carried for logging and ordering but stays out of the wire format, which
// is fixed to the four response fields.
type ArticleRate struct {
	URL       string           `json:"-"`
	Title     string           `json:"title"`
	Status    ProcessingStatus `json:"status"`
	Rate      *float64         `json:"rate"`
	WordCount *int             `json:"count_words"`
}

// NewOKRate builds a successful outcome with both measurements populated.
func NewOKRate(url, title string, rate float64, wordCount int) ArticleRate {
	return ArticleRate{
		URL:       url,
		Title:     title,
		Status:    StatusOK,
		Rate:      &rate,
		WordCount: &wordCount,
	}
}

// NewFailedRate builds an outcome for any of the failure statuses.
func NewFailedRate(url, title string, status ProcessingStatus) ArticleRate {
	return ArticleRate{URL: url, Title: title, Status: status}
}
