// Package docs holds the documentation topics of the pms command.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing the others. It is not part of GetAllTopics.
const index = "readme"

// GetTopic returns the content of a documentation topic. "*" is all the
// topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of topics, separated by an empty line.
func GetTopics(topics ...string) (string, error) {
	var expanded []string
	for _, t := range topics {
		if t != "*" {
			expanded = append(expanded, t)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, t := range expanded {
		content, err := GetTopic(t)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of topics, without the index.
func GetAllTopics() ([]string, error) {
	entries, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if t := strings.TrimSuffix(path.Base(e), ".md"); t != index {
			topics = append(topics, t)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
