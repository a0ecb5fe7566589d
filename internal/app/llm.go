package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"transcript_rag/internal/store"
)

// Ask отвечает на вопрос по проиндексированным транскриптам: векторный поиск
// релевантных чанков + ответ LLM с опорой на найденный контекст.
func (a *App) Ask(ctx context.Context, question string, videoID string) (string, error) {
	results, err := a.Search(ctx, question, a.cfg.TopK, videoID)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no indexed transcript chunks matched the question")
	}

	prompt := buildAnswerPrompt(question, results)
	return a.queryLLM(ctx, prompt)
}

// queryLLM отправляет промпт в LLM и возвращает ответ
func (a *App) queryLLM(ctx context.Context, prompt string) (string, error) {
	// Формируем запрос в OpenAI-compatible формате
	reqBody := map[string]interface{}{
		"model": a.cfg.OllamaModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  a.cfg.MaxTokens,
		"temperature": a.cfg.Temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := a.cfg.OllamaURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("LLM returned status %d: %s", resp.StatusCode, string(body))
	}

	// Парсим ответ
	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return response.Choices[0].Message.Content, nil
}

// buildAnswerPrompt формирует промпт с найденными чанками транскрипта
func buildAnswerPrompt(question string, results []store.SearchResult) string {
	var buf strings.Builder

	buf.WriteString("You answer questions about video content using transcript excerpts.\n\n")
	buf.WriteString("Transcript excerpts:\n")
	for i, r := range results {
		buf.WriteString(fmt.Sprintf("%d. [video %s, %.0fs] (similarity: %.2f)\n",
			i+1, r.Metadata.VideoID, r.Metadata.Start, r.Similarity))
		buf.WriteString("<<<\n")
		buf.WriteString(r.Text)
		buf.WriteString("\n>>>\n\n")
	}

	buf.WriteString("Question:\n")
	buf.WriteString(question)
	buf.WriteString("\n\nAnswer using only the excerpts above. ")
	buf.WriteString("Mention the timestamp of the excerpt you relied on. ")
	buf.WriteString("If the excerpts do not contain the answer, say so.\n")

	return buf.String()
}
