package worker

import (
	"context"
	"fmt"

	"batilink/internal/entity"
	"batilink/internal/usecase"
	"batilink/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

const summarizerBatchSize = 10

const summarizerSystemPrompt = "Tu es un assistant juridique pour des professionnels du bâtiment (BTP). " +
	"Résume le texte réglementaire fourni en français simple, en 3 à 5 phrases, " +
	"en expliquant concrètement ce qui change pour un artisan ou une entreprise du BTP."

// Summarizer produces a short summary of a legal text.
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
}

// ChatSummarizer calls an OpenAI-compatible chat completion API. Pointing
// the base URL at DeepSeek works with the same wire format.
type ChatSummarizer struct {
	client *openai.Client
	model  string
}

func NewChatSummarizer(apiKey, baseURL, model string) *ChatSummarizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = "deepseek-chat"
	}
	return &ChatSummarizer{client: openai.NewClientWithConfig(cfg), model: model}
}

func (s *ChatSummarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarizerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: title + "\n\n" + text},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// SummarizerWorker drains ingested articles through the summarizer and
// marks them processed.
type SummarizerWorker struct {
	legalUseCase usecase.LegalUseCase
	summarizer   Summarizer
	logger       *logger.Logger
}

func NewSummarizerWorker(legalUseCase usecase.LegalUseCase, summarizer Summarizer, logger *logger.Logger) *SummarizerWorker {
	return &SummarizerWorker{
		legalUseCase: legalUseCase,
		summarizer:   summarizer,
		logger:       logger,
	}
}

// Run summarizes one batch of pending articles and returns how many were
// processed. A failed article stays INGESTED and is retried next run.
func (w *SummarizerWorker) Run(ctx context.Context) (int, error) {
	pending, err := w.legalUseCase.PendingArticles(summarizerBatchSize)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, article := range pending {
		summary, err := w.summarizeArticle(ctx, article)
		if err != nil {
			w.logger.Warn("Failed to summarize article %s: %v", article.ID, err)
			continue
		}
		if err := w.legalUseCase.SaveSummary(article.ID, summary); err != nil {
			w.logger.Warn("Failed to save summary for article %s: %v", article.ID, err)
			continue
		}
		processed++
	}

	if processed > 0 {
		w.logger.Info("Summarized %d legal articles", processed)
	}
	return processed, nil
}

func (w *SummarizerWorker) summarizeArticle(ctx context.Context, article entity.LegalArticle) (string, error) {
	text := article.RawContent
	if text == "" {
		text = article.Body
	}
	return w.summarizer.Summarize(ctx, article.Title, text)
}
