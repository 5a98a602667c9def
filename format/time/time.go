package time

import (
	"fmt"
	"strings"
	"time"

	"github.com/michalsrutek/arrow/internal/lru"
)

// DefaultDateFormat is the Unicode (LDML) pattern used when no date format is configured.
const DefaultDateFormat = "yyyy-MM-dd'T'HH:mm:ssZZZZZ"

// literalPlaceholder stands for pattern literal text in a Go layout; it starts no layout element.
const literalPlaceholder = "\x00"

// layoutElementStarts are the characters a Go layout element can start with
const layoutElementStarts = "0123456789_JMPpZ"

var layoutCache = lru.New[string, Layout](256)

// Layout is a Go time layout compiled from a date pattern.
// Literal text that Go would read as a layout element is matched against the input verbatim.
type Layout struct {
	layout   string
	literals []string
}

// GoLayout wraps a Go time layout, an empty layout means RFC3339
func GoLayout(layout string) Layout {
	return Layout{layout: layout}
}

// Compile converts a Unicode date pattern (yyyy-MM-dd'T'HH:mm:ss) to a Layout.
// Quoted text and non letters are literal, '' stands for a single quote.
// Pattern letters without a Go layout equivalent are dropped.
// Fractional seconds (S) are parsed only when they follow '.' or ','.
func Compile(dateFormat string) Layout {
	if cached, ok := layoutCache.Get(dateFormat); ok {
		return cached
	}
	layout := compile(dateFormat)
	layoutCache.Set(dateFormat, layout)
	return layout
}

// DateFormatToTimeLayout converts a Unicode date pattern to a Go time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return Compile(dateFormat).String()
}

// String returns Go layout with literal text restored
func (l Layout) String() string {
	result := l.layout
	for _, literal := range l.literals {
		result = strings.Replace(result, literalPlaceholder, literal, 1)
	}
	return result
}

// Parse parses value, UTC is assumed when the layout carries no zone.
func (l Layout) Parse(value string) (time.Time, error) {
	layout := l.layout
	if layout == "" {
		layout = time.RFC3339
	}
	if len(l.literals) == 0 {
		return time.ParseInLocation(layout, value, time.UTC)
	}
	if strings.Contains(value, literalPlaceholder) {
		return time.Time{}, fmt.Errorf("parsing time %q: unexpected control character", value)
	}
	return parseLiterals(layout, value, l.literals, 0)
}

// parseLiterals replaces each literal occurrence, in order, with the placeholder and parses the rest.
func parseLiterals(layout, value string, literals []string, from int) (time.Time, error) {
	if len(literals) == 0 {
		return time.ParseInLocation(layout, value, time.UTC)
	}
	literal := literals[0]
	err := fmt.Errorf("parsing time %q: literal %q not found", value, literal)
	for offset := from; offset < len(value); {
		index := strings.Index(value[offset:], literal)
		if index == -1 {
			break
		}
		start := offset + index
		candidate := value[:start] + literalPlaceholder + value[start+len(literal):]
		result, parseErr := parseLiterals(layout, candidate, literals[1:], start+len(literalPlaceholder))
		if parseErr == nil {
			return result, nil
		}
		err = parseErr
		offset = start + 1
	}
	return time.Time{}, err
}

type layoutBuilder struct {
	layout   strings.Builder
	literal  strings.Builder
	literals []string
}

func (b *layoutBuilder) writeField(field string) {
	b.flushLiteral()
	b.layout.WriteString(field)
}

func (b *layoutBuilder) flushLiteral() {
	if b.literal.Len() == 0 {
		return
	}
	text := b.literal.String()
	b.literal.Reset()
	if !strings.ContainsAny(text, layoutElementStarts) {
		b.layout.WriteString(text)
		return
	}
	b.layout.WriteString(literalPlaceholder)
	b.literals = append(b.literals, text)
}

func compile(dateFormat string) Layout {
	builder := &layoutBuilder{}
	runes := []rune(dateFormat)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\'' {
			i = copyQuoted(&builder.literal, runes, i)
			continue
		}
		if !isPatternLetter(r) {
			builder.literal.WriteRune(r)
			i++
			continue
		}
		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		builder.writeField(fieldLayout(r, j-i))
		i = j
	}
	builder.flushLiteral()
	return Layout{layout: builder.layout.String(), literals: builder.literals}
}

// copyQuoted copies quoted literal starting at runes[start] == '\'' and returns the next position.
func copyQuoted(builder *strings.Builder, runes []rune, start int) int {
	i := start + 1
	if i < len(runes) && runes[i] == '\'' {
		builder.WriteRune('\'')
		return i + 1
	}
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				builder.WriteRune('\'')
				i += 2
				continue
			}
			return i + 1
		}
		builder.WriteRune(runes[i])
		i++
	}
	return i
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func fieldLayout(letter rune, count int) string {
	switch letter {
	case 'y', 'u', 'Y':
		if count == 2 {
			return "06"
		}
		return "2006"
	case 'M', 'L':
		switch count {
		case 1:
			return "1"
		case 2:
			return "01"
		case 3:
			return "Jan"
		}
		return "January"
	case 'd':
		if count == 1 {
			return "2"
		}
		return "02"
	case 'D':
		return "002"
	case 'E':
		if count >= 4 {
			return "Monday"
		}
		return "Mon"
	case 'H', 'k':
		return "15"
	case 'h', 'K':
		if count == 1 {
			return "3"
		}
		return "03"
	case 'm':
		if count == 1 {
			return "4"
		}
		return "04"
	case 's':
		if count == 1 {
			return "5"
		}
		return "05"
	case 'S':
		return strings.Repeat("0", count)
	case 'a':
		return "PM"
	case 'Z':
		switch {
		case count <= 3:
			return "-0700"
		case count == 4:
			return "GMT-07:00"
		}
		return "Z07:00"
	case 'X':
		switch count {
		case 1:
			return "Z07"
		case 2, 4:
			return "Z0700"
		}
		return "Z07:00"
	case 'x':
		switch count {
		case 1:
			return "-07"
		case 2, 4:
			return "-0700"
		}
		return "-07:00"
	case 'z':
		return "MST"
	}
	return ""
}

// Parse parses value with a Go layout, UTC is assumed when the layout carries no zone.
func Parse(layout, value string) (time.Time, error) {
	return GoLayout(layout).Parse(value)
}
