// Package advisor implements an interactive financial assistant backed by
// Gemini, with read access to a portfolio.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Advisor runs the question and answer session.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	Expert *Expert
	// Print writes an answer, fmt.Fprintln by default.
	Print func(w io.Writer, markdown string)
}

// New creates an Advisor writing to w and reading questions from r.
func New(w io.Writer, r io.Reader, e *Expert) *Advisor {
	return &Advisor{
		w:      w,
		r:      bufio.NewReader(r),
		Expert: e,
		Print:  func(w io.Writer, md string) { fmt.Fprintln(w, md) },
	}
}

const prompt = "assist> "

// Run starts the session. prompts are asked first, as if typed by the user.
// The session ends on "bye" or at the end of the input.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if !a.Expert.Started() {
		if err := a.Expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to pms financial assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				return nil // Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "bye":
			return nil
		}

		content, err := a.Expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, text(content))
	}
}
