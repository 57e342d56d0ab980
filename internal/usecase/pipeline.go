package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"ArticlesRate/internal/adapters"
	"ArticlesRate/internal/domain"
	"ArticlesRate/internal/metrics"
	"ArticlesRate/internal/ports"
	"ArticlesRate/internal/text"
)

// DefaultTimeout is the per-article deadline covering the whole pipeline:
// fetch, sanitize, tokenize, and score run as one unit against it.
const DefaultTimeout = 3 * time.Second

// Failure titles shown in place of the article title.
const (
	titleFetchError = "URL not exist"
	titleTimeout    = "Timeout expired"
)

// PipelineDeps wires the shared, read-only collaborators into the pipeline.
// All of them are created once per process and shared across workers.
type PipelineDeps struct {
	Fetcher      ports.Fetcher
	Registry     *adapters.Registry
	Normalizer   ports.Normalizer
	ChargedWords map[string]struct{}
	Timeout      time.Duration
	Logger       *slog.Logger
}

// Pipeline computes jaundice rates for article URLs.
type Pipeline struct {
	fetcher      ports.Fetcher
	registry     *adapters.Registry
	normalizer   ports.Normalizer
	chargedWords map[string]struct{}
	timeout      time.Duration
	logger       *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pipeline{
		fetcher:      deps.Fetcher,
		registry:     deps.Registry,
		normalizer:   deps.Normalizer,
		chargedWords: deps.ChargedWords,
		timeout:      timeout,
		logger:       deps.Logger,
	}
}

// HandleURLs analyzes every URL concurrently, one worker per URL, and
// returns exactly one outcome per input URL, duplicates included. Results
// are kept in input order: each worker owns its slot of the result slice,
// so a slow or failing worker never delays or corrupts a sibling.
func (p *Pipeline) HandleURLs(ctx context.Context, urls []string) []domain.ArticleRate {
	results := make([]domain.ArticleRate, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			results[i] = p.ProcessArticle(ctx, url)
		}(i, url)
	}
	wg.Wait()

	return results
}

// ProcessArticle runs the whole per-URL pipeline under one deadline and
// converts every failure into an outcome record. It never returns an error:
// a worker failure is terminal for that URL only.
func (p *Pipeline) ProcessArticle(ctx context.Context, url string) domain.ArticleRate {
	start := time.Now()

	articleCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result := p.analyze(articleCtx, url)

	elapsed := time.Since(start)
	metrics.ArticlesProcessed.WithLabelValues(string(result.Status)).Inc()
	metrics.ProcessingSeconds.Observe(elapsed.Seconds())
	p.debug("analysis finished",
		"url", url,
		"status", result.Status,
		"seconds", math.Round(elapsed.Seconds()*100)/100,
	)

	return result
}

func (p *Pipeline) analyze(ctx context.Context, url string) domain.ArticleRate {
	html, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		if isDeadline(err) {
			return domain.NewFailedRate(url, titleTimeout, domain.StatusTimeout)
		}
		return domain.NewFailedRate(url, titleFetchError, domain.StatusFetchError)
	}

	sanitize, source, err := p.resolve(url)
	if err != nil {
		return p.parsingFailure(url, err, source)
	}

	title, body, err := sanitize(html, true)
	if err != nil {
		return p.parsingFailure(url, err, source)
	}

	words, err := text.SplitByWords(ctx, p.normalizer, body)
	if err != nil {
		// Only the deadline interrupts tokenization.
		return domain.NewFailedRate(url, titleTimeout, domain.StatusTimeout)
	}

	rate := text.CalculateJaundiceRate(words, p.chargedWords)
	return domain.NewOKRate(url, title, rate, len(words))
}

// resolve looks up the site sanitizer and reports the host label used for
// the lookup, so parsing failures can name the offending source.
func (p *Pipeline) resolve(url string) (adapters.SanitizeFunc, string, error) {
	fn, err := p.registry.Resolve(url)
	var notFound *adapters.ArticleNotFoundError
	if errors.As(err, &notFound) {
		return nil, notFound.Source, err
	}
	key, _ := adapters.HostKey(url)
	return fn, key, err
}

func (p *Pipeline) parsingFailure(url string, err error, source string) domain.ArticleRate {
	p.debug("article parsing failed", "url", url, "error", err)
	title := fmt.Sprintf("Article on %s", source)
	return domain.NewFailedRate(url, title, domain.StatusParsingError)
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
