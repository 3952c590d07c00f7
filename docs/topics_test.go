package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/pms"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([a-z]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if slices.Contains(all, index) {
		t.Errorf("GetAllTopics() contains the index")
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	star, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(star, content) {
			t.Errorf("GetTopics(\"*\") does not contain topic %q", topic)
		}
	}

	if _, err := GetTopics("format", "missing"); err == nil {
		t.Errorf("GetTopics(missing) want error, got nil")
	}
}

// TestHeadings checks that every topic starts with a level 1 heading.
func TestHeadings(t *testing.T) {
	for _, topic := range append([]string{index}, must(GetAllTopics())...) {
		src := []byte(must(GetTopic(topic)))
		root := goldmark.DefaultParser().Parse(text.NewReader(src))
		h, ok := root.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("topic %q must start with a level 1 heading", topic)
		}
	}
}

// TestPortfolioBlocks decodes every "portfolio" code block of the topics.
func TestPortfolioBlocks(t *testing.T) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	count := 0
	for _, topic := range must(GetAllTopics()) {
		src := []byte(must(GetTopic(topic)))
		root := md.Parser().Parse(text.NewReader(src))
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			fcb, ok := n.(*ast.FencedCodeBlock)
			if !entering || !ok || string(fcb.Language(src)) != "portfolio" {
				return ast.WalkContinue, nil
			}
			count++
			var b strings.Builder
			for i := 0; i < fcb.Lines().Len(); i++ {
				line := fcb.Lines().At(i)
				b.Write(line.Value(src))
			}
			p := new(pms.Portfolio)
			holdings, err := pms.DecodeHoldings(strings.NewReader(b.String()))
			if err != nil {
				t.Errorf("topic %q: cannot decode portfolio block: %v", topic, err)
				return ast.WalkContinue, nil
			}
			for _, h := range holdings {
				p.Add(h)
			}
			var enc strings.Builder
			if err := pms.EncodeHoldings(&enc, p); err != nil {
				t.Fatal(err)
			}
			if enc.String() != b.String() {
				t.Errorf("topic %q: portfolio block is not canonical:\ngot:\n%s\nwant:\n%s", topic, b.String(), enc.String())
			}
			return ast.WalkContinue, nil
		})
	}
	if count == 0 {
		t.Errorf("no portfolio block found")
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
