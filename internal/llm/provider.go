package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minjae-lab/infogram/internal/model"
)

// Provider defines the interface for labeling-oracle backends. The
// oracle names numbers that were already extracted; it never decides
// which numbers exist.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Label assigns reader-facing labels to extracted numeric claims
	Label(ctx context.Context, req LabelRequest) (*LabelResponse, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// LabelRequest is the oracle input: the claims plus the article title
// as a hint. Claims are referenced positionally in the response.
type LabelRequest struct {
	TitleHint string
	Claims    []model.NumericClaim

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// LabelItem is one enrichment result, addressed by the position of the
// claim in the request list.
type LabelItem struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
	Trend string `json:"trend,omitempty"`
	Drop  bool   `json:"drop,omitempty"`
}

// LabelResponse contains the oracle's output
type LabelResponse struct {
	Items      []LabelItem
	Model      string
	TokensUsed int
}

// Config holds oracle provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults (oracle disabled)
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// systemPrompt frames the oracle as an infographic copy desk: label
// what each number is, never invent interpretation absent from the
// article.
const systemPrompt = "너는 신문사 인포그래픽 편집 데스크다. " +
	"숫자 후보를 보고 '무슨 수치인지' 라벨과 단위를 정확히 정리한다. " +
	"기사에 근거 없는 해석/추측은 하지 않는다."

type promptItem struct {
	Index   int     `json:"index"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
	Raw     string  `json:"raw"`
	Context string  `json:"context"`
}

type promptPayload struct {
	TitleHint   string       `json:"title_hint"`
	Items       []promptItem `json:"items"`
	Instruction string       `json:"instruction"`
}

const promptInstruction = "각 item에 대해 아래 필드를 채워라.\n" +
	"- index: 입력 item의 index 그대로\n" +
	"- label: 독자용 짧은 라벨(2~8자)\n" +
	"- note: 맥락 한 줄(20~45자), 원문 문맥 기반\n" +
	"- trend: 원문에 방향 표현이 있을 때만 up/down, 없으면 neutral\n" +
	"순번/날짜/페이지 등으로 보이면 drop=true로 표시해 제외해라.\n" +
	"출력은 반드시 JSON 하나만. 형식: {\"items\": [{\"index\": 0, \"label\": \"\", \"note\": \"\", \"trend\": \"neutral\", \"drop\": false}, ...]}"

// BuildPrompt renders the user message for a labeling call
func BuildPrompt(req LabelRequest) (string, error) {
	payload := promptPayload{
		TitleHint:   req.TitleHint,
		Items:       make([]promptItem, len(req.Claims)),
		Instruction: promptInstruction,
	}
	for i, c := range req.Claims {
		payload.Items[i] = promptItem{
			Index:   i,
			Value:   c.Value,
			Unit:    c.Unit,
			Raw:     c.Raw,
			Context: c.Context,
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal prompt payload: %w", err)
	}
	return string(data), nil
}

// ParseItems decodes the oracle's JSON reply. A reply that is not a
// JSON object with an items array is an error; individually malformed
// items are tolerated by the merge step, not here.
func ParseItems(raw string) ([]LabelItem, error) {
	var parsed struct {
		Items []LabelItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse oracle reply: %w", err)
	}
	return parsed.Items, nil
}
