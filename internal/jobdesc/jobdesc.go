// Package jobdesc resolves the job description a ranking run is matched against.
package jobdesc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spigell/hire-ranker/internal/utils"
)

var (
	// ErrNotProvided means neither inline text nor a file was configured.
	ErrNotProvided = errors.New("job description is not provided")
	// ErrEmpty means the configured description holds only whitespace.
	ErrEmpty = errors.New("job description is empty")
)

// Input is the description as configured: inline text and/or a file path.
type Input struct {
	Text string
	File string
}

// Description is a resolved job description. File is set when it was read from disk.
type Description struct {
	Text string
	File string
}

// Resolve reads the description. A configured file wins over inline text.
// Line endings are normalized to \n and a leading byte order mark is dropped.
func Resolve(in Input) (Description, error) {
	file := strings.TrimSpace(in.File)
	text := in.Text

	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return Description{}, fmt.Errorf("reading job description file %q: %w", file, err)
		}
		text = string(data)
	case strings.TrimSpace(text) == "":
		return Description{}, ErrNotProvided
	}

	text = normalize(text)
	if text == "" {
		if file != "" {
			return Description{}, fmt.Errorf("job description file %q: %w", file, ErrEmpty)
		}
		return Description{}, ErrEmpty
	}

	return Description{Text: text, File: file}, nil
}

// Origin names where the description came from, for logs.
func (d Description) Origin() string {
	if d.File != "" {
		return "file " + d.File
	}
	return "inline"
}

// Summary is the description on a single line, cut to limit runes.
func (d Description) Summary(limit int) string {
	return utils.TruncateForLog(utils.OneLine(d.Text), limit)
}

func normalize(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}
