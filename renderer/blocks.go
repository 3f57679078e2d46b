package renderer

import (
	"regexp"
	"strings"
)

// blockKind identifies the structural unit a line belongs to.
type blockKind int

const (
	blockBlank blockKind = iota
	blockHeading
	blockFenceMarker
	blockUnorderedItem
	blockOrderedItem
	blockParagraph
)

var (
	headingRe       = regexp.MustCompile(`^(#{1,6}) (.*)$`)
	unorderedItemRe = regexp.MustCompile(`^[-*+] (.*)$`)
	orderedItemRe   = regexp.MustCompile(`^\d+\. (.*)$`)
)

// classifiedLine is one input line after block recognition. For headings,
// level carries the heading depth; text carries the line with its block
// marker stripped.
type classifiedLine struct {
	kind  blockKind
	level int
	text  string
}

// classifyLine applies the block prefix rules in precedence order: blank,
// heading, fence marker, unordered item, ordered item, and finally
// paragraph for anything else. The first match wins.
func classifyLine(raw string) classifiedLine {
	if strings.TrimSpace(raw) == "" {
		return classifiedLine{kind: blockBlank}
	}
	if m := headingRe.FindStringSubmatch(raw); m != nil {
		return classifiedLine{kind: blockHeading, level: len(m[1]), text: m[2]}
	}
	if isFenceLine(raw) {
		return classifiedLine{kind: blockFenceMarker}
	}
	if m := unorderedItemRe.FindStringSubmatch(raw); m != nil {
		return classifiedLine{kind: blockUnorderedItem, text: m[1]}
	}
	if m := orderedItemRe.FindStringSubmatch(raw); m != nil {
		return classifiedLine{kind: blockOrderedItem, text: m[1]}
	}
	return classifiedLine{kind: blockParagraph, text: raw}
}

// isFenceLine reports whether a line opens or closes a fenced code block.
// Any info string after the opening backticks is accepted and ignored.
func isFenceLine(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "```")
}
