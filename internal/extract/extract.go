// Package extract pulls tagged sections out of free-form LLM output.
//
// Models are asked to wrap their answer in XML-like tags and may surround it
// with reasoning sections such as <understand> or <verify>. Only the first
// occurrence of the requested tag is used.
package extract

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrTagNotFound is matched by every *TagNotFoundError via errors.Is.
var ErrTagNotFound = errors.New("tag not found")

// TagNotFoundError reports that text contained no <Tag>...</Tag> section.
type TagNotFoundError struct {
	Tag string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag <%s> not found in model output", e.Tag)
}

func (e *TagNotFoundError) Is(target error) bool {
	return target == ErrTagNotFound
}

// tagPattern returns the non-greedy matcher for one tag name. [\s\S] lets the
// content span lines and the tag name is quoted so it is matched literally.
func tagPattern(tag string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(tag)
	return regexp.MustCompile(`<` + quoted + `>([\s\S]*?)</` + quoted + `>`)
}

// Extract returns the content of the first <tag>...</tag> section in text,
// exactly as it appears, surrounding whitespace included. The content may be
// empty. When no section exists the error is a *TagNotFoundError.
func Extract(tag, text string) (string, error) {
	m := tagPattern(tag).FindStringSubmatch(text)
	if m == nil {
		return "", &TagNotFoundError{Tag: tag}
	}
	return m[1], nil
}
