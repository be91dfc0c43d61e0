package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"strings"
	"time"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/models/response_models"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

const (
	geminiMaxAttempts    = 2
	geminiBackoffBase    = 2 * time.Second
	geminiBackoffFactor  = 1.5
	geminiRequestTimeout = 30 * time.Second
)

// GeminiClient implements AIClientInterface on Google's Gemini models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (AIClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// generateJSON runs one prompt with retries and returns the raw JSON text.
func (c *GeminiClient) generateJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	var lastErr error
	backoff := geminiBackoffBase
	for attempt := 1; attempt <= geminiMaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, geminiRequestTimeout)
		resp, err := m.GenerateContent(callCtx, genai.Text(prompt))
		cancel()
		if err != nil {
			lastErr = fmt.Errorf("gemini API call failed: %w", err)
		} else if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			lastErr = fmt.Errorf("no content generated by Gemini")
		} else {
			content := cleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
			if !json.Valid([]byte(content)) {
				lastErr = fmt.Errorf("not valid json")
			} else {
				return content, nil
			}
		}

		if attempt < geminiMaxAttempts {
			log.Printf("Gemini attempt %d failed, retrying: %v", attempt, lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			backoff = time.Duration(float64(backoff) * geminiBackoffFactor)
		}
	}

	return "", lastErr
}

func (c *GeminiClient) RecognizeCategory(ctx context.Context, query string, known []string) (string, error) {
	prompt := fmt.Sprintf(`You map shopping queries onto product categories.

Known categories:
%s

User query: %q

If the query clearly refers to one of the known categories, answer with that
exact category name. If it refers to a product type not in the list, answer
with NONE. Return JSON only, matching: {"category":"<name or NONE>"}`,
		strings.Join(known, "\n"), query)

	content, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return "", err
	}

	var out struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}

	name := strings.TrimSpace(out.Category)
	if name == "" || strings.EqualFold(name, "NONE") {
		return "", nil
	}
	for _, k := range known {
		if strings.EqualFold(k, name) {
			return k, nil
		}
	}
	return "", nil
}

func (c *GeminiClient) CreateCategory(ctx context.Context, query string) (*db_models.Category, error) {
	prompt := fmt.Sprintf(`Design a clarifying-question schema for a product category.

User is shopping for: %q

Return JSON only, matching exactly:
{
  "name": "CategoryName",
  "specs": [
    {
      "id": "snake_case_id",
      "type": "boolean",
      "label": {"en": "...", "tr": "..."},
      "emoji": "🔧",
      "weight": 0.8
    },
    {
      "id": "another_id",
      "type": "single_choice",
      "label": {"en": "...", "tr": "..."},
      "options": [{"id": "opt_id", "label": {"en": "...", "tr": "..."}}],
      "weight": 0.6
    },
    {
      "id": "numeric_id",
      "type": "number",
      "label": {"en": "...", "tr": "..."},
      "min": 0,
      "max": 100,
      "weight": 0.5
    }
  ]
}

Hard constraints:
- "name" is a single capitalized English word or short phrase.
- 4 to 7 specs, the most decisive first with weight 0.9-1.0.
- Every label has both "en" and "tr" text.
- A spec may include "depends_on": [{"id": "<earlier spec id>", "eq": <value>}].
- Use only types boolean, single_choice, number.`, query)

	content, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var category db_models.Category
	if err := json.Unmarshal([]byte(content), &category); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	if err := category.Validate(); err != nil {
		return nil, fmt.Errorf("%w: generated schema: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	return &category, nil
}

func (c *GeminiClient) SearchProducts(ctx context.Context, query request_models.ProductSearchQuery) (*response_models.ProductSearchResult, error) {
	var budget strings.Builder
	if query.BudgetMin != nil {
		fmt.Fprintf(&budget, "minimum %d, ", *query.BudgetMin)
	}
	if query.BudgetMax != nil {
		fmt.Fprintf(&budget, "maximum %d", *query.BudgetMax)
	}
	if budget.Len() == 0 {
		budget.WriteString("not specified")
	}

	prompt := fmt.Sprintf(`Recommend 3 currently available products.

Category: %s
Budget: %s
Wanted features: %s
Answer language: %s

Return JSON only, matching exactly:
{
  "status": "success",
  "recommendations": [
    {
      "title": "...",
      "price": {"value": 1234.0, "currency": "TRY", "display": "1.234 TL"},
      "features": ["..."],
      "pros": ["..."],
      "cons": ["..."],
      "match_score": 85,
      "source_site": "hepsiburada",
      "product_url": "https://...",
      "why_recommended": "..."
    }
  ],
  "sources": ["..."]
}

Hard constraints:
- Exactly 3 recommendations, best match first.
- Prices inside the budget when one is given.
- product_url must be a real retailer search or product page.`,
		query.Category, budget.String(), strings.Join(query.Features, ", "), query.Language)

	content, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result response_models.ProductSearchResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	return &result, nil
}

// GetEmbedding generates a simple vector embedding for text.
// Note: This is a fallback since Gemini free tier doesn't have dedicated embeddings.
func (c *GeminiClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

// textToVector creates a simple hash-based vector representation of text.
func (c *GeminiClient) textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := c.hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func (c *GeminiClient) hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// cleanJSONResponse removes markdown formatting around a JSON payload.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelim(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatchingDelim(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

func findMatchingDelim(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
