package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// JSONL is an append-only session trace. Each line is one JSON-serialized
// Event. The file is synced after every Append so a crashed session loses at
// most the in-flight line.
//
// Session identity: "<unix-timestamp>-<pid>.jsonl", so concurrent sessions in
// the same directory never collide and names sort chronologically.
type JSONL struct {
	file *os.File
	mu   sync.Mutex
	path string
}

// NewJSONL creates the session trace file in dir, creating dir if needed.
func NewJSONL(dir string) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("trace: mkdir %q: %w", dir, err)
	}
	name := fmt.Sprintf("%d-%d.jsonl", time.Now().Unix(), os.Getpid())
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("trace: open %q: %w", path, err)
	}
	return &JSONL{file: f, path: path}, nil
}

// Path returns the trace file's location.
func (j *JSONL) Path() string { return j.path }

// Append serializes ev as a JSON line, writes it, and syncs. Safe to call
// from multiple goroutines.
func (j *JSONL) Append(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("trace: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("trace: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("trace: sync: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// ReadFile loads all events from a trace file, skipping malformed lines.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %q: %w", path, err)
	}
	defer f.Close()

	var events []Event
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			log.Printf("trace: skipping malformed line in %s: %v", path, err)
			continue
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trace: scan %q: %w", path, err)
	}
	return events, nil
}

// Latest returns the most recent trace file in dir. Timestamp-prefixed names
// sort chronologically.
func Latest(dir string) (string, error) {
	files, err := listTraces(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("trace: no trace files in %q", dir)
	}
	return filepath.Join(dir, files[len(files)-1]), nil
}

// EnforceRetention removes the oldest trace files in dir, keeping at most
// maxKeep. maxKeep 0 keeps everything. Missing dir is not an error.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	files, err := listTraces(dir)
	if err != nil {
		return err
	}
	toDelete := len(files) - maxKeep
	for i := 0; i < toDelete; i++ {
		path := filepath.Join(dir, files[i])
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("trace: remove %q: %w", path, err)
		}
	}
	return nil
}

func listTraces(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("trace: read dir %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
