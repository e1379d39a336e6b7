package command

import "strings"

// DetectRedirect returns the token following the first "2>" that is not the last token.
func DetectRedirect(tokens []string) (string, bool) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == RedirectStderr {
			return tokens[i+1], true
		}
	}
	return "", false
}

/*
CommandBefore rebuilds the part of a line that precedes the first "2>"
token. If that part is wrapped in parentheses, the outermost pair is
dropped.
*/
func CommandBefore(tokens []string) string {
	end := len(tokens)
	for i, tok := range tokens {
		if tok == RedirectStderr {
			end = i
			break
		}
	}
	if end == 0 {
		return ""
	}

	head := make([]string, end)
	copy(head, tokens[:end])
	last := end - 1
	if strings.HasPrefix(head[0], "(") && strings.HasSuffix(head[last], ")") {
		if last == 0 {
			head[0] = strings.TrimSuffix(strings.TrimPrefix(head[0], "("), ")")
		} else {
			head[0] = strings.TrimPrefix(head[0], "(")
			head[last] = strings.TrimSuffix(head[last], ")")
		}
	}
	return Join(head)
}
