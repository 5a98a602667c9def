package arrow

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	dotTerminatorToken = iota
	bracketTerminatorToken
	indexBlockToken
)

var (
	dotTerminatorMatcher     = parsly.NewToken(dotTerminatorToken, ".", matcher.NewTerminator('.', true))
	bracketTerminatorMatcher = parsly.NewToken(bracketTerminatorToken, "[", matcher.NewTerminator('[', true))
	indexBlockMatcher        = parsly.NewToken(indexBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
)
