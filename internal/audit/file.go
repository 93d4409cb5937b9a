package audit

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	logFileName   = "logs.txt"
	auditFileName = "audit.txt"
)

// FileSink appends events and audit records to pipe-separated text files
// in a log directory, one line per record. The format matches what the
// registration-desk tooling already parses.
type FileSink struct {
	mu  sync.Mutex
	dir string
}

// AuditEntry is one parsed line of the audit file.
type AuditEntry struct {
	Timestamp string `json:"timestamp"`
	TicketID  string `json:"ticket_id"`
	Action    string `json:"action"`
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) RecordEvent(source, level, message string) {
	line := fmt.Sprintf("%s | %s | %s | %s", time.Now().UTC().Format(time.RFC3339), source, level, message)
	s.appendLine(logFileName, line)
}

func (s *FileSink) RecordAudit(ticketID, action string) {
	line := fmt.Sprintf("%s | %s | %s", time.Now().UTC().Format(time.RFC3339), ticketID, action)
	s.appendLine(auditFileName, line)
}

func (s *FileSink) appendLine(name, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("audit file open failed: %v", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		log.Printf("audit file write failed: %v", err)
	}
}

// AuditEntries reads the audit trail back. A missing file is an empty
// trail, not an error.
func (s *FileSink) AuditEntries() ([]AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(filepath.Join(s.dir, auditFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []AuditEntry
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			continue
		}
		entries = append(entries, AuditEntry{
			Timestamp: strings.TrimSpace(parts[0]),
			TicketID:  strings.TrimSpace(parts[1]),
			Action:    strings.TrimSpace(parts[2]),
		})
	}
	return entries, nil
}
