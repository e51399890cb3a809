package scan

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const visionPrompt = "This is a photo of a purchase receipt. Reply with the " +
	"final payable total as a plain decimal number, nothing else. If no " +
	"total is readable, reply with 0."

// OpenAIScanner reads the receipt total with a vision-capable chat
// model. The model's reply is run through the same rule-based extractor
// used for raw OCR text, so a chatty reply still yields an amount.
type OpenAIScanner struct {
	client *openai.Client
	model  string
}

func NewOpenAIScanner(apiKey, model string) *OpenAIScanner {
	return &OpenAIScanner{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *OpenAIScanner) ScanAmount(ctx context.Context, image []byte) (float64, error) {
	mime := http.DetectContentType(image)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(image))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: 32,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("vision request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, ErrNoAmount
	}
	return ExtractAmount(resp.Choices[0].Message.Content)
}
