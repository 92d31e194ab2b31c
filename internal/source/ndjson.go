package source

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/fernwell/attune/internal/model"
)

// maxLineBytes bounds a single NDJSON record. Reflections are short free-form
// text; anything past 1MB is a malformed input, not a journal entry.
const maxLineBytes = 1 << 20

// StreamNDJSON decodes newline-delimited JSON reflections from r onto a
// channel, shared by the stdin and file sources. Blank lines are skipped;
// undecodable lines are logged with the source name and dropped. Records
// without a timestamp keep the zero value, so enrichment of the same line
// always yields the same reading and duplicate lines hash identically.
func StreamNDJSON(ctx context.Context, r io.Reader, name string) <-chan model.Reflection {
	ch := make(chan model.Reflection)
	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

		var lineNo int
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			var ref model.Reflection
			if err := json.Unmarshal([]byte(line), &ref); err != nil {
				slog.Warn("skipping undecodable record",
					"source", name, "line", lineNo, "error", err)
				continue
			}
			select {
			case ch <- ref:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("read failed", "source", name, "error", err)
		}
	}()
	return ch
}
