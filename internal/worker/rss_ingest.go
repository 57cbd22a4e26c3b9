package worker

import (
	"context"
	"net/http"
	"time"

	"batilink/internal/usecase"
	"batilink/pkg/logger"

	"github.com/mmcdole/gofeed"
)

// RSSIngestor pulls the legal watch feed and stores unseen items for the
// summarizer to pick up.
type RSSIngestor struct {
	legalUseCase usecase.LegalUseCase
	parser       *gofeed.Parser
	feedURL      string
	source       string
	logger       *logger.Logger
}

func NewRSSIngestor(legalUseCase usecase.LegalUseCase, feedURL, source string, logger *logger.Logger) *RSSIngestor {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 30 * time.Second}
	parser.UserAgent = "batilink-legal-watch/1.0"

	return &RSSIngestor{
		legalUseCase: legalUseCase,
		parser:       parser,
		feedURL:      feedURL,
		source:       source,
		logger:       logger,
	}
}

// Run fetches the feed once and returns how many new articles were stored.
// Items whose source URL is already known are skipped.
func (w *RSSIngestor) Run(ctx context.Context) (int, error) {
	feed, err := w.parser.ParseURLWithContext(w.feedURL, ctx)
	if err != nil {
		return 0, err
	}

	ingested := 0
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		body := item.Description
		if item.Content != "" {
			body = item.Content
		}

		_, created, err := w.legalUseCase.IngestArticle(usecase.IngestArticleInput{
			Title:       item.Title,
			Body:        item.Description,
			RawContent:  body,
			Source:      w.source,
			SourceURL:   item.Link,
			PublishedAt: item.PublishedParsed,
		})
		if err != nil {
			w.logger.Warn("Failed to ingest %s: %v", item.Link, err)
			continue
		}
		if created {
			ingested++
		}
	}

	w.logger.Info("Legal ingest done, %d new of %d items", ingested, len(feed.Items))
	return ingested, nil
}
