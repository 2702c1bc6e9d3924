package parsers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// CommentMarker starts a comment line in suffix lists.
const CommentMarker = "//"

// Lines splits `r` into a series of entries, one per line.
//
// Empty lines and comment lines are skipped. Only the first whitespace
// delimited field of a line is returned, the rest of the line is ignored.
func Lines(r io.Reader) SeriesParser[string] {
	return LinesWithComments(r, nil)
}

// LinesWithComments is like `Lines` but passes the text of each comment line,
// without the marker and surrounding spaces, to `onComment`.
func LinesWithComments(r io.Reader, onComment func(string)) SeriesParser[string] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	return &lines{scanner: scanner, onComment: onComment}
}

type lines struct {
	scanner   *bufio.Scanner
	lineNo    uint
	onComment func(string)
}

func (l *lines) Position() string {
	return fmt.Sprintf("line %d", l.lineNo)
}

func (l *lines) Next(ctx context.Context) (string, error) {
	for {
		l.lineNo++

		if err := ctx.Err(); err != nil {
			return "", NewNonResumableError(err)
		}

		if !l.scanner.Scan() {
			break
		}

		text := strings.TrimSpace(l.scanner.Text())

		if len(text) == 0 {
			continue
		}

		if strings.HasPrefix(text, CommentMarker) {
			if l.onComment != nil {
				l.onComment(strings.TrimSpace(strings.TrimPrefix(text, CommentMarker)))
			}

			continue
		}

		if idx := strings.IndexAny(text, " \t"); idx != -1 {
			text = text[:idx]
		}

		return text, nil
	}

	if err := l.scanner.Err(); err != nil {
		// bufio.Scanner does not support continuing after an error
		return "", NewNonResumableError(err)
	}

	return "", NewNonResumableError(io.EOF)
}
