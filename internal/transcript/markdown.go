package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown-транскрипты: файлы с заголовками вида "## [12:34] ..." или
// "## [1:02:34] ...", текст под заголовком - реплика. Такие файлы делают
// экспортеры субтитров и конспекты лекций.

var mdStampRe = regexp.MustCompile(`\[(?:(\d+):)?(\d{1,2}):(\d{2})\]`)

// ParseMarkdown parses a markdown transcript into timed segments. Each
// timestamped heading opens a segment; its duration is the gap to the next
// heading (0 for the last one).
func ParseMarkdown(content string) ([]Segment, error) {
	md := goldmark.New()
	reader := text.NewReader([]byte(content))
	doc := md.Parser().Parse(reader)

	source := []byte(content)
	var segments []Segment
	var current strings.Builder
	var start float64
	open := false

	closeSegment := func() {
		if !open {
			return
		}
		if t := strings.TrimSpace(current.String()); t != "" {
			segments = append(segments, Segment{Text: t, Start: start})
		}
		current.Reset()
	}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if heading, ok := n.(*ast.Heading); ok {
				headingText := extractText(heading, source)
				stamp, ok := parseStamp(headingText)
				if ok {
					closeSegment()
					start = stamp
					open = true
				}
				return ast.WalkSkipChildren, nil
			}
			if textNode, ok := n.(*ast.Text); ok && open {
				current.Write(textNode.Segment.Value(source))
				if textNode.SoftLineBreak() || textNode.HardLineBreak() {
					current.WriteByte(' ')
				}
			}
		} else {
			if _, ok := n.(*ast.Paragraph); ok && open {
				current.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	closeSegment()

	if len(segments) == 0 {
		return nil, fmt.Errorf("no timestamped headings found in markdown transcript")
	}

	// Длительность сегмента = интервал до следующего заголовка
	for i := 0; i < len(segments)-1; i++ {
		if d := segments[i+1].Start - segments[i].Start; d > 0 {
			segments[i].Duration = d
		}
	}
	return segments, nil
}

// extractText собирает текст из дочерних узлов AST
func extractText(node ast.Node, source []byte) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}

func parseStamp(s string) (float64, bool) {
	m := mdStampRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	var h int
	if m[1] != "" {
		h, _ = strconv.Atoi(m[1])
	}
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	return float64(h)*3600 + float64(mm)*60 + float64(ss), true
}
