// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package markup

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Source converts a stored HTML body to source form. Bodies without any tag
// (plain text written by imports or older versions) are returned unchanged.
func Source(body string) string {
	if !looksLikeHTML(body) {
		return body
	}
	return walk(body, true)
}

// PlainText strips all markup from a stored body. List items keep their
// "- " or "1. " prefix so the text still reads as a list.
func PlainText(body string) string {
	if !looksLikeHTML(body) {
		return strings.TrimSpace(body)
	}
	return walk(body, false)
}

func looksLikeHTML(body string) bool {
	i := strings.IndexByte(body, '<')
	return i >= 0 && strings.IndexByte(body[i:], '>') > 0
}

type list struct {
	ordered bool
	n       int
}

// walker accumulates output lines while tokenising HTML.
type walker struct {
	markers bool

	lines       []string
	cur         strings.Builder
	inBlock     bool
	atLineStart bool
	lastSpace   bool

	lists []list
	spans [][]string
	skip  int
}

func walk(body string, markers bool) string {
	w := &walker{markers: markers}
	z := html.NewTokenizer(strings.NewReader(body))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed tail; both end the document
			w.endBlock()
			return w.result()
		case html.TextToken:
			if w.skip == 0 {
				w.text(string(z.Text()))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			var style string
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "style" {
					style = string(val)
				}
			}
			w.start(string(name), style, tt == html.SelfClosingTagToken)
		case html.EndTagToken:
			name, _ := z.TagName()
			w.end(string(name))
		}
	}
}

func (w *walker) start(tag, style string, selfClosing bool) {
	switch tag {
	case "head", "style", "script", "title":
		if !selfClosing {
			w.skip++
		}
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "br", "tr":
		w.newBlock("")
	case "ul":
		w.lists = append(w.lists, list{})
	case "ol":
		w.lists = append(w.lists, list{ordered: true})
	case "li":
		prefix := "- "
		if n := len(w.lists); n > 0 && w.lists[n-1].ordered {
			w.lists[n-1].n++
			prefix = strconv.Itoa(w.lists[n-1].n) + ". "
		}
		w.newBlock(prefix)
	case "b", "strong":
		w.marker("**")
	case "i", "em":
		w.marker("_")
	case "u", "ins":
		w.marker("__")
	case "span":
		if selfClosing {
			return
		}
		markers := spanMarkers(style)
		for _, m := range markers {
			w.marker(m)
		}
		w.spans = append(w.spans, markers)
	}
}

func (w *walker) end(tag string) {
	switch tag {
	case "head", "style", "script", "title":
		if w.skip > 0 {
			w.skip--
		}
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "li", "tr":
		w.endBlock()
	case "ul", "ol":
		if n := len(w.lists); n > 0 {
			w.lists = w.lists[:n-1]
		}
		w.endBlock()
	case "b", "strong":
		w.marker("**")
	case "i", "em":
		w.marker("_")
	case "u", "ins":
		w.marker("__")
	case "span":
		n := len(w.spans)
		if n == 0 {
			return
		}
		markers := w.spans[n-1]
		w.spans = w.spans[:n-1]
		for i := len(markers) - 1; i >= 0; i-- {
			w.marker(markers[i])
		}
	}
}

// spanMarkers maps inline CSS to markers, outermost first.
func spanMarkers(style string) []string {
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	var markers []string
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		switch prop {
		case "font-weight":
			if val == "bold" || val == "bolder" || val >= "600" && len(val) == 3 {
				markers = append(markers, "**")
			}
		case "font-style":
			if val == "italic" || val == "oblique" {
				markers = append(markers, "_")
			}
		case "text-decoration", "text-decoration-line":
			if strings.Contains(val, "underline") {
				markers = append(markers, "__")
			}
		}
	}
	return markers
}

func (w *walker) marker(m string) {
	if !w.markers || w.skip > 0 {
		return
	}
	if !w.inBlock {
		w.newBlock("")
	}
	if w.lastSpace && !w.atLineStart {
		w.cur.WriteByte(' ')
		w.lastSpace = false
	}
	w.cur.WriteString(m)
}

func (w *walker) text(t string) {
	collapsed := strings.Join(strings.Fields(t), " ")
	leading := t != "" && isSpace(t[0])
	trailing := t != "" && isSpace(t[len(t)-1])

	if collapsed == "" {
		if leading && w.inBlock && !w.atLineStart {
			w.lastSpace = true
		}
		return
	}
	if !w.inBlock {
		w.newBlock("")
	}
	if (leading || w.lastSpace) && !w.atLineStart {
		w.cur.WriteByte(' ')
	}
	w.cur.WriteString(collapsed)
	w.atLineStart = false
	w.lastSpace = trailing
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (w *walker) newBlock(prefix string) {
	w.endBlock()
	w.inBlock = true
	w.atLineStart = true
	w.lastSpace = false
	w.cur.WriteString(prefix)
}

func (w *walker) endBlock() {
	if !w.inBlock {
		return
	}
	w.lines = append(w.lines, strings.TrimRight(w.cur.String(), " "))
	w.cur.Reset()
	w.inBlock = false
}

// result joins lines, folding runs of blank lines into one and trimming
// blank lines at both ends.
func (w *walker) result() string {
	out := make([]string, 0, len(w.lines))
	for _, line := range w.lines {
		blank := strings.TrimSpace(line) == ""
		if blank && (len(out) == 0 || out[len(out)-1] == "") {
			continue
		}
		if blank {
			line = ""
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
