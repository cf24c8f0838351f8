package frontend

import (
	"github.com/viant/fndecor/syntax"
)

// decoratorRun is a sequence of decorators written in front of a function declaration head
type decoratorRun struct {
	decorators []syntax.Span
	// head is the offset of the first modifier or function keyword following the run
	head int
}

func (r *decoratorRun) start() int {
	return r.decorators[0].Start
}

var headModifiers = map[string]bool{
	"export":  true,
	"default": true,
	"declare": true,
	"async":   true,
}

// scanDecoratorRuns locates decorators preceding a function declaration. The grammar only
// accepts decorators on classes and class members, so these runs are lifted out before parsing.
func scanDecoratorRuns(src []byte) []*decoratorRun {
	var runs []*decoratorRun
	for i := 0; i < len(src); {
		switch src[i] {
		case '\'', '"', '`':
			i = skipString(src, i)
			continue
		case '/':
			if next := skipComment(src, i); next > i {
				i = next
				continue
			}
		case '@':
			if run, end := scanRun(src, i); run != nil {
				runs = append(runs, run)
				i = end
				continue
			}
		}
		i++
	}
	return runs
}

func scanRun(src []byte, at int) (*decoratorRun, int) {
	run := &decoratorRun{}
	pos := at
	for pos < len(src) && src[pos] == '@' {
		end := scanDecorator(src, pos)
		if end <= pos+1 {
			return nil, 0
		}
		run.decorators = append(run.decorators, syntax.Span{Start: pos, End: end})
		pos = skipTrivia(src, end)
	}
	run.head = pos
	for {
		word, end := scanWord(src, pos)
		switch {
		case word == "function":
			if len(run.decorators) == 0 {
				return nil, 0
			}
			return run, pos
		case headModifiers[word]:
			pos = skipTrivia(src, end)
		default:
			return nil, 0
		}
	}
}

// scanDecorator returns the end offset of the decorator starting at '@'
func scanDecorator(src []byte, at int) int {
	pos := at + 1
	if pos < len(src) && src[pos] == '(' {
		return skipBalanced(src, pos)
	}
	word, end := scanWord(src, pos)
	if word == "" {
		return pos
	}
	pos = end
	for pos < len(src) {
		switch src[pos] {
		case '.':
			word, end = scanWord(src, pos+1)
			if word == "" {
				return pos
			}
			pos = end
		case '(':
			pos = skipBalanced(src, pos)
		default:
			return pos
		}
	}
	return pos
}

func isWordStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isWordPart(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}

func scanWord(src []byte, pos int) (string, int) {
	if pos >= len(src) || !isWordStart(src[pos]) {
		return "", pos
	}
	end := pos + 1
	for end < len(src) && isWordPart(src[end]) {
		end++
	}
	return string(src[pos:end]), end
}

// skipBalanced skips a parenthesized group starting at '(' honoring strings and comments
func skipBalanced(src []byte, pos int) int {
	depth := 0
	for pos < len(src) {
		switch src[pos] {
		case '\'', '"', '`':
			pos = skipString(src, pos)
			continue
		case '/':
			if next := skipComment(src, pos); next > pos {
				pos = next
				continue
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return pos + 1
			}
		}
		pos++
	}
	return pos
}

func skipTrivia(src []byte, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case ' ', '\t', '\n', '\r':
			pos++
		case '/':
			next := skipComment(src, pos)
			if next == pos {
				return pos
			}
			pos = next
		default:
			return pos
		}
	}
	return pos
}

// skipComment returns the offset past a comment starting at pos, or pos if none starts there
func skipComment(src []byte, pos int) int {
	if pos+1 >= len(src) || src[pos] != '/' {
		return pos
	}
	switch src[pos+1] {
	case '/':
		end := pos + 2
		for end < len(src) && src[end] != '\n' {
			end++
		}
		return end
	case '*':
		end := pos + 2
		for end+1 < len(src) && !(src[end] == '*' && src[end+1] == '/') {
			end++
		}
		if end+1 >= len(src) {
			return len(src)
		}
		return end + 2
	}
	return pos
}

// skipString returns the offset past a quoted or template literal starting at pos
func skipString(src []byte, pos int) int {
	quote := src[pos]
	end := pos + 1
	depth := 0
	for end < len(src) {
		c := src[end]
		switch {
		case c == '\\':
			end += 2
			continue
		case quote == '`' && c == '$' && end+1 < len(src) && src[end+1] == '{':
			depth++
			end += 2
			continue
		case quote == '`' && depth > 0 && c == '}':
			depth--
		case c == quote && depth == 0:
			return end + 1
		case c == '\n' && quote != '`':
			return end
		}
		end++
	}
	return len(src)
}

// maskDecorators blanks every decorator of runs, keeping line breaks so offsets are unchanged
func maskDecorators(src []byte, runs []*decoratorRun) []byte {
	masked := make([]byte, len(src))
	copy(masked, src)
	for _, run := range runs {
		for _, span := range run.decorators {
			blank(masked, span)
		}
	}
	return masked
}

// decoratorBuffer lays out decorator expressions as standalone statements at their original offsets
func decoratorBuffer(src []byte, runs []*decoratorRun) []byte {
	buffer := make([]byte, len(src))
	for i := range buffer {
		if src[i] == '\n' {
			buffer[i] = '\n'
			continue
		}
		buffer[i] = ' '
	}
	for _, run := range runs {
		for _, span := range run.decorators {
			buffer[span.Start] = ';'
			copy(buffer[span.Start+1:span.End], src[span.Start+1:span.End])
		}
	}
	return buffer
}

func blank(data []byte, span syntax.Span) {
	for i := span.Start; i < span.End && i < len(data); i++ {
		if data[i] != '\n' && data[i] != '\r' {
			data[i] = ' '
		}
	}
}
