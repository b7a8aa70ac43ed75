package monitor

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var writeMu sync.Map // path (string) -> *sync.Mutex

func lockFor(path string) *sync.Mutex {
	mu, _ := writeMu.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// writeEventAsync appends one compact JSON object followed by "\n" to path,
// creating parent directories as needed. Writes to the same path are
// serialized via a per-path mutex.
func writeEventAsync(path string, event map[string]any) error {
	mu := lockFor(path)
	mu.Lock()
	defer mu.Unlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(line)
	return err
}

// readEventsAsync streams JSON lines from path, skipping malformed or empty
// lines. If since is non-nil, lines whose "timestamp" field parses as
// ISO-8601 at or before since are filtered out. A missing file yields an
// empty, non-error result.
func readEventsAsync(path string, since *time.Time) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []map[string]any
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event map[string]any
		if err := json.Unmarshal(line, &event); err != nil {
			continue
		}
		if since != nil {
			if ts, ok := event["timestamp"].(string); ok {
				if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
					if !parsed.After(*since) {
						continue
					}
				}
			}
		}
		out = append(out, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
