package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"findflow/internal/models/db_models"
	"findflow/internal/models/request_models"
	"findflow/internal/models/response_models"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements AIClientInterface on the OpenAI chat and
// embedding endpoints.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) AIClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) chatJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("not valid json")
	}
	return content, nil
}

func (c *OpenAIClient) RecognizeCategory(ctx context.Context, query string, known []string) (string, error) {
	prompt := fmt.Sprintf(`You map shopping queries onto product categories.

Known categories:
%s

User query: %q

If the query clearly refers to one of the known categories, answer with that
exact category name. If it refers to a product type not in the list, answer
with NONE. Return JSON only, matching: {"category":"<name or NONE>"}`,
		strings.Join(known, "\n"), query)

	content, err := c.chatJSON(ctx, prompt)
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

func (c *OpenAIClient) CreateCategory(ctx context.Context, query string) (*db_models.Category, error) {
	prompt := fmt.Sprintf(`Design a clarifying-question schema for a product category.

User is shopping for: %q

Return JSON only with "name" (a single capitalized English word or short
phrase) and "specs": 4 to 7 entries of
{"id","type","label":{"en","tr"},"weight"} where type is one of boolean,
single_choice (with "options": [{"id","label":{"en","tr"}}]) or number (with
"min" and "max"). The most decisive spec comes first with weight 0.9-1.0. A
spec may include "depends_on": [{"id": "<earlier spec id>", "eq": <value>}].`, query)

	content, err := c.chatJSON(ctx, prompt)
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

func (c *OpenAIClient) SearchProducts(ctx context.Context, query request_models.ProductSearchQuery) (*response_models.ProductSearchResult, error) {
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

Return JSON only with "status": "success" and "recommendations": exactly 3
entries of {"title","price":{"value","currency","display"},"features","pros",
"cons","match_score","source_site","product_url","why_recommended"}, best
match first, prices inside the budget when one is given.`,
		query.Category, budget.String(), strings.Join(query.Features, ", "), query.Language)

	content, err := c.chatJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result response_models.ProductSearchResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedBehaviorOfAI, err)
	}
	return &result, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding returned")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
