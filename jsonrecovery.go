package quizai

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	codeFence     = regexp.MustCompile("```(?:json)?\n?")
	isCorrectKey  = regexp.MustCompile(`"isCo[^"]*":`)
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	unquotedKey   = regexp.MustCompile(`([{,]\s*)([a-zA-Z_][a-zA-Z0-9_]*)\s*:`)
)

// RecoverDrafts coerces a raw stage-2 reply into question drafts. The model
// emits near-valid JSON more often than valid JSON: raw newlines inside
// strings, trailing commas, unquoted keys, typo'd keys and markdown fences
// all show up routinely. The envelope between the first '[' and the last ']'
// is repaired step by step; if the array still will not parse, individual
// brace-balanced objects are salvaged and unparseable ones dropped. At least
// one object must survive, otherwise the reply is a MalformedReplyError. The
// repair rules only rewrite syntax; they never invent content.
func RecoverDrafts(reply string, logger *zap.Logger) ([]AIQuestionDraft, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end <= start {
		return nil, &MalformedReplyError{Reason: "no JSON array envelope in reply"}
	}

	jsonStr := reply[start : end+1]
	jsonStr = codeFence.ReplaceAllString(jsonStr, "")
	jsonStr = escapeNewlinesInStrings(jsonStr)
	jsonStr = stripControlChars(jsonStr)
	jsonStr = isCorrectKey.ReplaceAllString(jsonStr, `"isCorrect":`)
	jsonStr = trailingComma.ReplaceAllString(jsonStr, "$1")
	jsonStr = unquotedKey.ReplaceAllString(jsonStr, `$1"$2":`)

	var drafts []AIQuestionDraft
	if err := json.Unmarshal([]byte(jsonStr), &drafts); err == nil {
		return drafts, nil
	} else {
		logger.Warn("array parse failed, salvaging objects", zap.Error(err))
	}

	objects := balancedObjects(jsonStr)
	if len(objects) == 0 {
		return nil, &MalformedReplyError{Reason: "no JSON objects in reply"}
	}

	drafts = drafts[:0]
	for i, obj := range objects {
		var d AIQuestionDraft
		if err := json.Unmarshal([]byte(obj), &d); err != nil {
			logger.Warn("dropping unparseable object", zap.Int("index", i), zap.Error(err))
			continue
		}
		drafts = append(drafts, d)
	}
	if len(drafts) == 0 {
		return nil, &MalformedReplyError{Reason: "no object in reply could be parsed"}
	}

	logger.Info("recovered objects individually",
		zap.Int("recovered", len(drafts)), zap.Int("found", len(objects)))
	return drafts, nil
}

// escapeNewlinesInStrings rewrites literal CR/LF inside JSON string literals
// as \n and \r escapes so multi-line model output becomes valid single-line
// string content. Text outside string literals is untouched.
func escapeNewlinesInStrings(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !inString {
			if c == '"' {
				inString = true
			}
			b.WriteByte(c)
			continue
		}
		switch {
		case escaped:
			escaped = false
			b.WriteByte(c)
		case c == '\\':
			escaped = true
			b.WriteByte(c)
		case c == '"':
			inString = false
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// stripControlChars replaces control characters that are invalid inside JSON
// (other than the newlines handled above) with spaces.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r <= 0x08 || r == 0x0B || r == 0x0C || (r >= 0x0E && r <= 0x19) {
			return ' '
		}
		return r
	}, s)
}

// balancedObjects slices each top-level brace-balanced {...} substring out of
// s, ignoring braces inside string literals.
func balancedObjects(s string) []string {
	var objects []string

	depth := 0
	start := -1
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				objects = append(objects, s[start:i+1])
				start = -1
			}
		}
	}
	return objects
}
