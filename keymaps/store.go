package keymaps

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ErrPersistence wraps every failure to read or write the mapping file.
var ErrPersistence = errors.New("mapping persistence failed")

const holdOption = "hold_triggers_continuous_tap="

// Store reads and writes the line oriented mapping file:
//
//	# comment
//	hold_triggers_continuous_tap=0|1
//	<key> <x> <y> <label>
type Store struct {
	path string

	mu   sync.Mutex
	last []byte
}

// NewStore creates a store for path. The file need not exist.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the mapping file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the mapping file. A missing file is an empty table.
func (s *Store) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info().Str("path", s.path).Msg("mapping file not found, starting with empty mappings")
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: read %s: %w", ErrPersistence, s.path, err)
	}

	snap, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: parse %s: %w", ErrPersistence, s.path, err)
	}

	s.mu.Lock()
	s.last = data
	s.mu.Unlock()

	log.Info().Str("path", s.path).Int("mappings", len(snap.Entries)).Msg("loaded key mappings")
	return snap, nil
}

// Save writes snap to disk, skipping the write when the content is
// unchanged since the last load or save.
func (s *Store) Save(snap Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}
	data := buf.Bytes()

	s.mu.Lock()
	defer s.mu.Unlock()

	if bytes.Equal(data, s.last) {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create directory: %w", ErrPersistence, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %w", ErrPersistence, tmp, err)
	}

	s.last = append([]byte(nil), data...)
	return nil
}

// Watch reloads the file when something other than this store changes it
// and passes the new snapshot to onChange. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func(Snapshot)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, the file is replaced by rename on every save.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(s.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				s.reload(onChange)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", s.path).Msg("mapping file watcher error")
		}
	}
}

func (s *Store) reload(onChange func(Snapshot)) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug().Err(err).Str("path", s.path).Msg("mapping file not readable, skipping reload")
		return
	}

	s.mu.Lock()
	same := bytes.Equal(data, s.last)
	if !same {
		s.last = data
	}
	s.mu.Unlock()
	if same {
		return
	}

	snap, err := Decode(bytes.NewReader(data))
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("failed to parse changed mapping file")
		return
	}
	log.Info().Str("path", s.path).Int("mappings", len(snap.Entries)).Msg("mapping file changed, reloading")
	onChange(snap)
}

// Decode parses the mapping file format. Comment, blank and malformed lines
// are skipped. Key range and coordinate clamping are left to Table.Replace.
func Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if value, ok := strings.CutPrefix(line, holdOption); ok {
			value = strings.TrimSpace(value)
			if value == "1" || value == "true" {
				snap.Policy = ContinuousTap
			} else {
				snap.Policy = MaintainContact
			}
			continue
		}

		entry, ok := decodeEntry(line)
		if !ok {
			log.Debug().Int("line", lineNo).Str("text", line).Msg("skipping malformed mapping line")
			continue
		}
		snap.Entries = append(snap.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func decodeEntry(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, false
	}
	key, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, false
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, false
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return Entry{}, false
	}

	// The label is the remainder of the line and may contain spaces.
	label := ""
	if len(fields) > 3 {
		rest := line
		for i := 0; i < 3; i++ {
			rest = strings.TrimLeft(rest, " \t")
			rest = rest[len(fields[i]):]
		}
		label = strings.TrimSpace(rest)
	}

	return Entry{Key: Key(key), Mapping: KeyMapping{X: x, Y: y, Label: label}}, true
}

// Encode writes snap in the mapping file format.
func Encode(w io.Writer, snap Snapshot) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Keyboard to Touch Mapping Configuration")
	fmt.Fprintln(bw, "# Format: KeyCode X Y KeyName")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# Configuration Options:")
	fmt.Fprintln(bw, "# hold_triggers_continuous_tap=0  (0=hold maintains touch, 1=hold triggers repeated taps)")
	fmt.Fprintln(bw)

	hold := "0"
	if snap.Policy == ContinuousTap {
		hold = "1"
	}
	fmt.Fprintf(bw, "%s%s\n\n", holdOption, hold)

	for _, e := range snap.Entries {
		fmt.Fprintf(bw, "%d %d %d %s\n", int(e.Key), e.Mapping.X, e.Mapping.Y, e.Mapping.Label)
	}
	return bw.Flush()
}
