// Package postprocess tidies an extracted polished message for display.
//
// The HTTP endpoint returns the extracted text verbatim; this cleanup is only
// applied where a human reads the result directly, such as the polish command.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes LLM artifacts from text in three phases and returns the
// trimmed result:
//  1. Reasoning block removal
//  2. Preamble removal
//  3. Quote wrapping removal
func Clean(text string) string {
	text = removeReasoningBlocks(text)
	text = removePreamble(text)
	text = removeQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// --- Phase 1: reasoning blocks ---

// The chain-of-thought tags requested by the system prompt occasionally leak
// into the polished section, next to the generic thinking tags some models
// emit on their own. RE2 has no backreferences, so each tag is listed.
var reasoningBlockRe = regexp.MustCompile(
	`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>|` +
		`<understand>.*?</understand>|<cleanse>.*?</cleanse>|<correction>.*?</correction>|` +
		`<structure>.*?</structure>|<verify>.*?</verify>|<step>.*?</step>`,
)

// truncatedThinkingRe matches an opened thinking tag whose closing tag is
// missing (the model was cut off mid-thought).
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func removeReasoningBlocks(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// --- Phase 2: preamble ---

// preamblePatterns match introductory phrases that models sometimes prepend
// even when told not to. Each is anchored at the start and requires a colon.
var preamblePatterns = []*regexp.Regexp{
	// "Here is / Here's [the|your] [polished|cleaned up|final] [text] message:"
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the| your)? (?:polished |cleaned[- ]up |final )?(?:text )?(?:message|text)\s*:`),
	// "[The] [polished|final] [text] message:"
	regexp.MustCompile(`(?i)^(?:the )?(?:polished |final )(?:text )?(?:message|text)\s*:`),
	// "Certainly / Sure / Of course[,] here is ..."
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]? here(?:'s| is)(?: the| your)? (?:polished |cleaned[- ]up |final )?(?:text )?(?:message|text)\s*:`),
}

func removePreamble(text string) string {
	for _, re := range preamblePatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// --- Phase 3: quote wrapping ---

// removeQuoteWrapping strips a matching pair of outer quotes when the entire
// text is wrapped in them. The worked example in the prompt shows the input
// in quotes, and some models copy that style. Supported pairs:
//
//	"…"  '…'  «…»  "…"  '…'
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}
