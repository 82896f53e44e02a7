package llm

import (
	"strings"

	apperrors "github.com/cultrend/trendseer/internal/errors"
)

// ExtractJSON pulls the outermost {...} object out of model output.
// Models wrap JSON in prose or markdown code fences often enough that
// callers should never json.Unmarshal raw output directly.
func ExtractJSON(text string) (string, error) {
	text = stripFences(text)

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", apperrors.Permanent(apperrors.CodeLLMParseError, "no JSON object in model output")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", apperrors.Permanent(apperrors.CodeLLMParseError, "unterminated JSON object in model output")
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
