package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schoolhub/school-records-hub/internal/domain/ledger"
	"github.com/schoolhub/school-records-hub/internal/domain/record"
	"github.com/schoolhub/school-records-hub/internal/domain/shared"
	"github.com/schoolhub/school-records-hub/pkg/logger"
)

// Codec maps one entity type onto its file representation.
type Codec[T any] struct {
	// HeaderTag is written as the collection's fixed first line.
	HeaderTag string
	// MinArity is the minimum field count of a valid line. Shorter lines
	// are silently dropped on load; existing files contain such lines and
	// sessions must tolerate them.
	MinArity int
	// Decode builds the entity from trimmed fields (len >= MinArity).
	Decode func(fields []string) (T, error)
	// Encode returns the entity's field values in file order.
	Encode func(entity T) []string
}

// Store persists one entity collection in a single flat file. Load and save
// work on whole collections; a save is a full overwrite, so appends made by
// another writer between LoadAll and SaveAll are lost. That hazard comes
// with the file format and is not papered over with locking.
type Store[T any] struct {
	path  string
	codec Codec[T]
	log   *logger.Logger
}

// NewStore creates a store for the given file path and codec.
func NewStore[T any](path string, codec Codec[T], log *logger.Logger) *Store[T] {
	if log == nil {
		log = logger.Default()
	}
	return &Store[T]{path: path, codec: codec, log: log.With(logger.FilePath(path))}
}

// LoadAll reads every well-formed entity line in file order. Header lines,
// empty lines and under-arity lines are skipped; a line whose numeric field
// fails to parse is skipped with a warning rather than aborting the load.
// A missing or unreadable file degrades to an empty collection.
func (s *Store[T]) LoadAll() ([]T, error) {
	f, err := os.Open(s.path)
	if err != nil {
		s.log.Debug("backing file unavailable, loading empty collection", logger.Err(err))
		return nil, nil
	}
	defer f.Close()

	var items []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || ledger.IsHeaderLine(line) {
			continue
		}

		fields := record.Decode(line)
		if len(fields) < s.codec.MinArity {
			continue
		}

		item, err := s.codec.Decode(fields)
		if err != nil {
			if shared.IsMalformedField(err) {
				s.log.Warn("skipping malformed record", logger.Err(err))
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, shared.WrapError("flatfile", "LoadAll",
			shared.ErrFileUnavailable, "reading "+s.path, err)
	}

	return items, nil
}

// SaveAll rewrites the whole file: the fixed header line followed by one
// encoded line per entity.
func (s *Store[T]) SaveAll(items []T) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", s.codec.HeaderTag)

	for _, item := range items {
		line, err := record.Encode(s.codec.Encode(item))
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return shared.WrapError("flatfile", "SaveAll",
			shared.ErrFileUnavailable, "writing "+s.path, err)
	}
	s.log.Debug("collection saved", logger.LineCount(len(items)))
	return nil
}
