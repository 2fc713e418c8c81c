package content

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter schema for journal entry files. The body below the closing
// delimiter is presentation content and is ignored here.
type frontmatter struct {
	Title    string       `yaml:"title"`
	Date     string       `yaml:"date"`
	Location *locationDoc `yaml:"location"`
	Routes   []segmentDoc `yaml:"routes"`
}

type locationDoc struct {
	Name        string    `yaml:"name" validate:"required"`
	Coordinates []float64 `yaml:"coordinates" validate:"required,len=2"`
}

type segmentDoc struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
	Mode string `yaml:"mode" validate:"required,oneof=train car foot ferry direct"`
}

const frontmatterDelimiter = "---"

// extractFrontmatter returns the YAML block between the leading and the
// next "---" delimiter line. Files without a frontmatter block are invalid.
func extractFrontmatter(data []byte) (*frontmatter, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelimiter {
		return nil, errors.New("missing frontmatter opening delimiter")
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, errors.New("missing frontmatter closing delimiter")
	}

	block := strings.Join(lines[1:end], "\n")

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter yaml: %w", err)
	}

	return &fm, nil
}
