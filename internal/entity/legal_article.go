package entity

import "time"

type LegalArticleStatus string

const (
	LegalIngested  LegalArticleStatus = "INGESTED"
	LegalProcessed LegalArticleStatus = "PROCESSED"
	LegalReady     LegalArticleStatus = "READY"
)

type LegalArticle struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Body          string             `json:"body,omitempty"`
	RawContent    string             `json:"-"`
	Source        string             `json:"source"`
	SourceURL     string             `json:"source_url"`
	PublishedAt   *time.Time         `json:"published_at,omitempty"`
	AutoGenerated bool               `json:"auto_generated"`
	Status        LegalArticleStatus `json:"status"`
	AISummary     string             `json:"ai_summary,omitempty"`
	HumanSummary  string             `json:"human_summary,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}
