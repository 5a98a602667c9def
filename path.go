package arrow

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/michalsrutek/arrow/internal/lru"
	"github.com/viant/parsly"
)

type (
	pathSegment struct {
		key     string
		index   int
		isIndex bool
	}

	pathSegments []pathSegment
)

const pathCacheCapacity = 1024

var pathCache = lru.New[string, pathSegments](pathCacheCapacity)

func parsePath(expr string) (pathSegments, error) {
	if cached, ok := pathCache.Get(expr); ok {
		return cached, nil
	}
	segments, err := matchPath(expr)
	if err != nil {
		return nil, err
	}
	pathCache.Set(expr, segments)
	return segments, nil
}

func matchPath(expr string) (pathSegments, error) {
	var result pathSegments
	cursor := parsly.NewCursor("", []byte(expr), 0)
	for cursor.Pos < len(cursor.Input) {
		var tokens = []*parsly.Token{indexBlockMatcher}
		rest := cursor.Input[cursor.Pos:]
		dotIndex := bytes.IndexByte(rest, '.')
		bracketIndex := bytes.IndexByte(rest, '[')
		if dotIndex != -1 && (bracketIndex == -1 || dotIndex < bracketIndex) {
			tokens = append(tokens, dotTerminatorMatcher)
		} else if bracketIndex != -1 {
			tokens = append(tokens, bracketTerminatorMatcher)
		}

		match := cursor.MatchAny(tokens...)
		switch match.Code {
		case indexBlockToken:
			text := match.Text(cursor)
			segment, err := indexSegment(text[1 : len(text)-1])
			if err != nil {
				return nil, fmt.Errorf("invalid path %q: %w", expr, err)
			}
			result = append(result, segment)
		case dotTerminatorToken:
			text := match.Text(cursor)
			if key := text[:len(text)-1]; key != "" { //exclude .
				result = append(result, pathSegment{key: key})
			}
		case bracketTerminatorToken:
			text := match.Text(cursor)
			key := text[:len(text)-1] //exclude [
			if key == "" {
				return nil, fmt.Errorf("invalid path %q: unterminated index at %d", expr, cursor.Pos-1)
			}
			result = append(result, pathSegment{key: key})
			cursor.Pos--
		default:
			result = append(result, pathSegment{key: string(rest)})
			cursor.Pos = len(cursor.Input)
		}
	}
	return result, nil
}

func indexSegment(text string) (pathSegment, error) {
	text = strings.TrimSpace(text)
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0] {
		return pathSegment{key: text[1 : len(text)-1]}, nil
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		return pathSegment{}, fmt.Errorf("invalid index %q", text)
	}
	return pathSegment{index: index, isIndex: true}, nil
}
