package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// FileState represents the state of a single input file
type FileState struct {
	MTime int64  `json:"mtime"`
	Hash  string `json:"hash"`
}

// PageRecord describes the last successful generation of a page
type PageRecord struct {
	Source  string    `json:"source"`
	Output  string    `json:"output"`
	Title   string    `json:"title"`
	Size    int64     `json:"size"`
	BuiltAt time.Time `json:"built_at"`
	BuildID string    `json:"build_id"`
}

// State represents the build state
type State struct {
	BuildID   string                 `json:"build_id"`
	LastBuild time.Time              `json:"last_build"`
	Files     map[string]*FileState  `json:"files"`
	Pages     map[string]*PageRecord `json:"pages"` // source path -> record
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Files: make(map[string]*FileState),
		Pages: make(map[string]*PageRecord),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	if state.Files == nil {
		state.Files = make(map[string]*FileState)
	}
	if state.Pages == nil {
		state.Pages = make(map[string]*PageRecord)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// BeginBuild assigns a fresh build id and returns it
func (s *State) BeginBuild(now time.Time) string {
	s.BuildID = uuid.New().String()
	s.LastBuild = now
	return s.BuildID
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a file has changed since the last build
// Uses hybrid mtime + hash approach
func (s *State) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	mtime := info.ModTime().Unix()

	fileState, exists := s.Files[path]
	if !exists {
		// New file
		return true, nil
	}

	// Fast path: check mtime first
	if mtime == fileState.MTime {
		return false, nil
	}

	// mtime changed, compute hash to check for actual content changes
	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != fileState.Hash, nil
}

// Update records the current mtime and hash of a file
func (s *State) Update(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	s.Files[path] = &FileState{
		MTime: info.ModTime().Unix(),
		Hash:  hash,
	}

	return nil
}

// Forget drops tracked files that are not in keep.
// Returns the paths that were dropped.
func (s *State) Forget(keep map[string]bool) []string {
	var dropped []string
	for path := range s.Files {
		if !keep[path] {
			delete(s.Files, path)
			dropped = append(dropped, path)
		}
	}
	sort.Strings(dropped)
	return dropped
}

// RecordPage stores the record of a generated page
func (s *State) RecordPage(rec PageRecord) {
	s.Pages[rec.Source] = &rec
}

// SortedPages returns page records ordered by source path
func (s *State) SortedPages() []*PageRecord {
	pages := make([]*PageRecord, 0, len(s.Pages))
	for _, p := range s.Pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Source < pages[j].Source
	})
	return pages
}

// GetMTime returns the modification time for a file
func (s *State) GetMTime(path string) time.Time {
	if fileState, exists := s.Files[path]; exists {
		return time.Unix(fileState.MTime, 0)
	}
	return time.Time{}
}
