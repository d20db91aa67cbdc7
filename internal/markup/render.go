// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package markup

import (
	"html"
	"regexp"
	"strings"
)

var numberedItem = regexp.MustCompile(`^\d+\. `)

type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockBullet
	blockNumbered
)

// Render converts source form to HTML. Blank lines separate blocks and are
// not preserved.
func Render(source string) string {
	var (
		out  strings.Builder
		list blockKind
	)

	closeList := func() {
		switch list {
		case blockBullet:
			out.WriteString("</ul>")
		case blockNumbered:
			out.WriteString("</ol>")
		}
		list = blockNone
	}

	for _, line := range strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		kind, text := classify(line)

		if kind != list {
			closeList()
		}

		switch kind {
		case blockNone:
			continue
		case blockParagraph:
			out.WriteString("<p>")
			out.WriteString(renderInline(text))
			out.WriteString("</p>")
		case blockBullet, blockNumbered:
			if list == blockNone {
				if kind == blockBullet {
					out.WriteString("<ul>")
				} else {
					out.WriteString("<ol>")
				}
				list = kind
			}
			out.WriteString("<li>")
			out.WriteString(renderInline(text))
			out.WriteString("</li>")
		}
	}
	closeList()

	return out.String()
}

func classify(line string) (blockKind, string) {
	switch {
	case strings.TrimSpace(line) == "":
		return blockNone, ""
	case strings.HasPrefix(line, "- "):
		return blockBullet, line[2:]
	case numberedItem.MatchString(line):
		return blockNumbered, line[len(numberedItem.FindString(line)):]
	default:
		return blockParagraph, line
	}
}

// renderInline turns emphasis markers into tags. A marker only opens when a
// matching closer follows, so stray asterisks and underscores stay literal.
func renderInline(s string) string {
	var (
		out                     strings.Builder
		text                    strings.Builder
		bold, underline, italic bool
	)

	flush := func() {
		out.WriteString(html.EscapeString(text.String()))
		text.Reset()
	}
	toggle := func(open *bool, tag string) {
		flush()
		if *open {
			out.WriteString("</" + tag + ">")
		} else {
			out.WriteString("<" + tag + ">")
		}
		*open = !*open
	}

	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "**") && (bold || strings.Contains(rest[2:], "**")):
			toggle(&bold, "b")
			i += 2
		case strings.HasPrefix(rest, "__") && (underline || strings.Contains(rest[2:], "__")):
			toggle(&underline, "u")
			i += 2
		case rest[0] == '_' && italic:
			toggle(&italic, "i")
			i++
		case rest[0] == '_' && !isWordByte(s, i-1) && hasItalicCloser(rest[1:]):
			toggle(&italic, "i")
			i++
		default:
			text.WriteByte(rest[0])
			i++
		}
	}
	flush()

	// close whatever a crossing pair left open
	if italic {
		out.WriteString("</i>")
	}
	if underline {
		out.WriteString("</u>")
	}
	if bold {
		out.WriteString("</b>")
	}

	return out.String()
}

func isWordByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

// hasItalicCloser reports whether rest holds a single "_" that ends an
// italic run (not followed by a word character).
func hasItalicCloser(rest string) bool {
	for j := 0; j < len(rest); j++ {
		if rest[j] != '_' {
			continue
		}
		if j+1 < len(rest) && rest[j+1] == '_' {
			j++
			continue
		}
		if j > 0 && !isWordByte(rest, j+1) {
			return true
		}
	}
	return false
}
