package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-shopchat-be/internal/constant"
	"ai-shopchat-be/pkg/llm"
	"ai-shopchat-be/pkg/store"
)

// Analyzer turns raw user text into a structured query via the LLM
// query-analysis call. Malformed JSON from the model is a hard failure for
// the turn; there are no retries.
type Analyzer struct {
	provider llm.LLMProvider
}

func NewAnalyzer(provider llm.LLMProvider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Result bundles the parsed analysis with the call's token usage.
type Result struct {
	Analyzed store.AnalyzedQuery
	Usage    llm.Usage
}

// Analyze runs the analyzer prompt at temperature 0 and decodes the strict
// JSON answer.
func (a *Analyzer) Analyze(ctx context.Context, userMessage string) (*Result, error) {
	prompt := fmt.Sprintf(constant.AnalyzePromptTemplate, userMessage)

	res, err := a.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: constant.AnalyzeSystemPrompt},
			{Role: "user", Content: prompt},
		},
		llm.WithTemperature(0),
		llm.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("query analysis failed: %w", err)
	}

	var analyzed store.AnalyzedQuery
	if err := json.Unmarshal([]byte(res.Content), &analyzed); err != nil {
		return nil, fmt.Errorf("query analysis returned invalid JSON: %w", err)
	}

	return &Result{Analyzed: analyzed, Usage: res.Usage}, nil
}
