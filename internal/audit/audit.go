// Package audit persists an append-only trail of authenticated catalog
// mutations to a local JSON-lines file. Each entry is fsynced before
// the write returns, so the trail survives a crash of the process.
package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry records one mutation: who did what to which record.
type Entry struct {
	ID         string    `json:"id"`
	ActorID    string    `json:"actor_id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Log is an append-only audit log. A nil *Log is valid and discards
// every record, so wiring stays unconditional when auditing is off.
type Log struct {
	filePath string
	file     *os.File
	mu       sync.Mutex
}

// Open creates (or reopens) the audit log at filePath.
func Open(filePath string) (*Log, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Log{
		filePath: filePath,
		file:     file,
	}, nil
}

// Record appends one entry and syncs it to disk. The entry's ID and
// timestamp are filled in here.
func (l *Log) Record(actorID, actor, action, resource, resourceID string) error {
	if l == nil {
		return nil
	}

	entry := Entry{
		ID:         uuid.NewString(),
		ActorID:    actorID,
		Actor:      actor,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Timestamp:  time.Now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	if _, err := l.file.WriteString(string(data) + "\n"); err != nil {
		logger.Log.Error("Audit: failed to write entry",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.Error(err),
		)
		return err
	}

	// Force sync to disk (durability)
	if err := l.file.Sync(); err != nil {
		logger.Log.Error("Audit: failed to sync to disk", zap.Error(err))
		return err
	}

	return nil
}

// ReadAll returns every entry in the log, oldest first. Corrupt lines
// are skipped.
func (l *Log) ReadAll() ([]Entry, error) {
	if l == nil {
		return []Entry{}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// Close closes the underlying file.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
