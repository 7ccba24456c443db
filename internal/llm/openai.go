package llm

import (
	"context"

	openai "github.com/openai/openai-go"
	oaioption "github.com/openai/openai-go/option"
)

// openAIBackend talks to the OpenAI chat completions API or any gateway
// that speaks it.
type openAIBackend struct {
	client openai.Client
	model  string
}

func newOpenAI(apiKey, baseURL, model string) *openAIBackend {
	opts := []oaioption.RequestOption{
		oaioption.WithAPIKey(apiKey),
		oaioption.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, oaioption.WithBaseURL(baseURL))
	}
	return &openAIBackend{client: openai.NewClient(opts...), model: model}
}

func (o *openAIBackend) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *openAIBackend) close() error { return nil }
