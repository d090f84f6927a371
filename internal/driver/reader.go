package driver

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// readStatements reads up to the next ';' at a time, the way spec.md
// §4.4 describes: it skips a whitespace-only remainder at end of input,
// and rejects any statement whose stripped text (including the trailing
// ';') exceeds maxLen (spec.md §6's 1024-char statement buffer).
func readStatements(r io.Reader, maxLen int) ([]string, error) {
	br := bufio.NewReader(r)

	var (
		out []string
		buf strings.Builder
	)

	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, errors.Wrap(err, "reading input")
		}

		buf.WriteRune(ch)

		if ch == ';' {
			text := strings.TrimSpace(buf.String())
			if len(text) > maxLen {
				return nil, errors.Errorf("statement exceeds %d-character limit", maxLen)
			}

			out = append(out, text)
			buf.Reset()
		}
	}

	if strings.TrimSpace(buf.String()) != "" {
		return nil, errors.New("unterminated statement at end of input")
	}

	return out, nil
}
