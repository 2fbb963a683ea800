package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/randomtoy/tarot-reader/internal/domain"
	"github.com/randomtoy/tarot-reader/internal/ports"
)

const defaultDisclaimer = "재미와 성찰을 위한 해석이며 의료·법률·재정 조언이 아닙니다."

// Client implements ports.Narrator via the OpenRouter API.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, fallbackModels []string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:     httpClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Narrate tries the primary model, then each fallback in order.
func (c *Client) Narrate(ctx context.Context, in ports.NarrateInput) (ports.NarrateOutput, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	var lastErr error
	for _, model := range models {
		out, err := c.narrateWithModel(ctx, in, model)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next", "model", model, "error", err)
		}
	}

	return ports.NarrateOutput{}, lastErr
}

func (c *Client) narrateWithModel(ctx context.Context, in ports.NarrateInput, model string) (ports.NarrateOutput, error) {
	userPrompt := buildUserPrompt(in)

	content, err := c.callLLM(ctx, model, systemPrompt, userPrompt)
	if err != nil {
		return ports.NarrateOutput{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}

	var out ports.NarrateOutput
	if err := json.Unmarshal([]byte(stripFences(content)), &out); err != nil {
		c.logger.WarnContext(ctx, "LLM returned invalid JSON, retrying", "model", model, "error", err)
		content, err = c.callLLM(ctx, model, systemPrompt, retryPrompt(content))
		if err != nil {
			return ports.NarrateOutput{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
		}
		if err := json.Unmarshal([]byte(stripFences(content)), &out); err != nil {
			return ports.NarrateOutput{}, fmt.Errorf("%w: %w", domain.ErrInvalidLLMJSON, err)
		}
	}

	if strings.TrimSpace(out.Text) == "" {
		return ports.NarrateOutput{}, fmt.Errorf("%w: empty text", domain.ErrInvalidLLMJSON)
	}
	if out.Disclaimer == "" {
		out.Disclaimer = defaultDisclaimer
	}
	out.Model = model

	return out, nil
}

func (c *Client) callLLM(ctx context.Context, model, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// stripFences removes a ```json ... ``` wrapper some models add anyway.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

const systemPrompt = `당신은 따뜻하고 차분한 타로 리더입니다. 이미 작성된 타로 해석을 바탕으로 짧은 이야기 형식의 리딩을 한국어로 다시 씁니다.

규칙:
- 주어진 카드와 해석의 내용을 벗어나지 마세요.
- 의료, 법률, 재정에 관한 구체적인 조언을 하지 마세요.
- 특정한 결과나 불행을 단정적으로 예언하지 마세요.
- 명령하지 말고 스스로 돌아볼 수 있는 질문을 건네세요.
- 세 문단 이내로 작성하세요.

마크다운이나 코드 블록 없이 다음 형식의 JSON 객체 하나만 응답하세요:
{
  "text": "<이야기 형식의 리딩>",
  "disclaimer": "` + defaultDisclaimer + `"
}`

func buildUserPrompt(in ports.NarrateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "스프레드: %s\n주제: %s\n\n뽑힌 카드:\n", in.Spread, in.Category)

	for _, card := range in.Cards {
		fmt.Fprintf(&b, "  [%s] %s (%s)\n", card.Position, card.Name, card.Orientation)
		if len(card.Keywords) > 0 {
			fmt.Fprintf(&b, "    키워드: %s\n", strings.Join(card.Keywords, ", "))
		}
	}

	if in.Question != "" {
		fmt.Fprintf(&b, "\n질문: %q\n", in.Question)
	}
	if in.Interpretation != "" {
		fmt.Fprintf(&b, "\n기존 해석:\n%s\n", in.Interpretation)
	}

	b.WriteString("\n위 내용을 하나의 JSON 객체로 다시 들려주세요.")
	return b.String()
}

func retryPrompt(badJSON string) string {
	return fmt.Sprintf(`이전 응답이 올바른 JSON이 아니었습니다. 받은 응답은 다음과 같습니다:
%s

마크다운이나 코드 블록 없이 다음 형식의 JSON 객체만 다시 보내 주세요:
{
  "text": "<이야기 형식의 리딩>",
  "disclaimer": "%s"
}`, badJSON, defaultDisclaimer)
}
