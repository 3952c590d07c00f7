package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Chat is a conversation with a model. *genai.Chat implements it.
type Chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// maxCalls bounds the function calls answered for a single question.
const maxCalls = 8

// ErrTooManyCalls is returned when the model keeps calling functions.
var ErrTooManyCalls = errors.New("too many function calls")

// Expert is a chat with a model, optionally able to call functions.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	Library   Library
	chat      Chat
}

// Start creates the chat session on client.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("cannot start chat with %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Started reports whether the expert has a chat session.
func (e *Expert) Started() bool { return e.chat != nil }

// Ask sends parts to the expert and returns its answer. Function calls
// requested by the model are answered from the Library until it gives a real
// answer.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	for range maxCalls {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from expert %s", e.Name)
		}
		content := resp.Candidates[0].Content

		var calls []*genai.FunctionCall
		for _, p := range content.Parts {
			if p.FunctionCall != nil {
				calls = append(calls, p.FunctionCall)
			}
		}
		if len(calls) == 0 {
			return content, nil
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}

		parts = make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			l.Debug("function call", zap.String("expert", e.Name), zap.String("function", call.Name), zap.Any("args", call.Args))
			parts = append(parts, &genai.Part{FunctionResponse: e.Library(ctx, call)})
		}
	}
	return nil, fmt.Errorf("expert %s: %w", e.Name, ErrTooManyCalls)
}

// text concatenates the text parts of c.
func text(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
