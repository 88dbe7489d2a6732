package fcrefs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/iter"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/parser"
)

// Scanner scans directories of FCStd documents for uses of a reference.
// A Scanner is safe for sequential reuse; its cache persists across scans.
type Scanner struct {
	opts   Options
	logger *slog.Logger
	cache  *documentCache
}

// NewScanner creates a Scanner. A nil logger uses slog.Default().
func NewScanner(opts Options, logger *slog.Logger) (*Scanner, error) {
	if _, err := ParseMatchMode(string(opts.MatchModeOrDefault())); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := newDocumentCache(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating document cache: %w", err)
	}
	return &Scanner{
		opts:   opts,
		logger: logger,
		cache:  cache,
	}, nil
}

// ScanCorpus scans every document in dir using a one-off Scanner.
func ScanCorpus(dir string, ref models.Reference, opts Options) (*models.ScanResult, error) {
	s, err := NewScanner(opts, nil)
	if err != nil {
		return nil, err
	}
	return s.ScanCorpus(dir, ref)
}

// docOutcome is the result of loading and walking one document.
type docOutcome struct {
	matches []models.Match
	err     *DocumentError
}

// ScanCorpus lists dir, loads every file with the configured extension and
// returns all uses of ref. Documents that fail to load or walk are logged,
// recorded in ScanResult.Skipped and contribute no matches.
//
// Matches are grouped by document in directory listing order (sorted by
// file name), whatever the number of workers.
func (s *Scanner) ScanCorpus(dir string, ref models.Reference) (*models.ScanResult, error) {
	matcher, err := parser.NewMatcher(ref, string(s.opts.MatchModeOrDefault()))
	if err != nil {
		return nil, err
	}

	paths, err := s.discover(dir)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("discovered documents", "dir", dir, "count", len(paths), "reference", ref.String())

	scanOne := func(path *string) docOutcome {
		return s.scanFile(*path, matcher)
	}

	var outcomes []docOutcome
	if s.opts.Workers > 1 {
		mapper := iter.Mapper[string, docOutcome]{MaxGoroutines: s.opts.Workers}
		outcomes = mapper.Map(paths, scanOne)
	} else {
		outcomes = make([]docOutcome, len(paths))
		for i := range paths {
			outcomes[i] = scanOne(&paths[i])
		}
	}

	return s.collect(ref, outcomes), nil
}

// ScanDocuments scans documents that are already parsed. Labels are used
// as the match document names.
func (s *Scanner) ScanDocuments(docs []models.NamedDocument, ref models.Reference) (*models.ScanResult, error) {
	matcher, err := parser.NewMatcher(ref, string(s.opts.MatchModeOrDefault()))
	if err != nil {
		return nil, err
	}

	outcomes := make([]docOutcome, len(docs))
	for i, doc := range docs {
		outcomes[i] = s.walk(doc.Label, doc.Label, doc.Root, matcher)
	}
	return s.collect(ref, outcomes), nil
}

func (s *Scanner) collect(ref models.Reference, outcomes []docOutcome) *models.ScanResult {
	result := &models.ScanResult{
		Reference: ref,
		Matches:   []models.Match{},
		Documents: len(outcomes),
	}
	for _, o := range outcomes {
		if o.err != nil {
			s.logger.Warn("skipping document", "path", o.err.Path, "stage", o.err.Stage, "error", o.err.Err)
			result.Skipped = append(result.Skipped, models.SkippedDocument{
				Document: filepath.Base(o.err.Path),
				Reason:   o.err.Err.Error(),
				Err:      o.err,
			})
			continue
		}
		result.Matches = append(result.Matches, o.matches...)
	}
	return result
}

// discover returns the candidate documents in dir in listing order.
func (s *Scanner) discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	ext := s.opts.FileExtension()
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

func (s *Scanner) scanFile(path string, matcher parser.Matcher) docOutcome {
	root, err := s.load(path)
	if err != nil {
		return docOutcome{err: NewDocumentError(path, "load", err)}
	}
	return s.walk(path, filepath.Base(path), root, matcher)
}

func (s *Scanner) walk(path, label string, root *models.Node, matcher parser.Matcher) docOutcome {
	matches, err := parser.FindMatches(label, root, matcher)
	if err != nil {
		return docOutcome{err: NewDocumentError(path, "walk", err)}
	}
	s.logger.Debug("scanned document", "document", label, "matches", len(matches))
	return docOutcome{matches: matches}
}

func (s *Scanner) load(path string) (*models.Node, error) {
	if s.cache == nil {
		return parser.LoadDocument(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parser.ErrArchive, err)
	}
	key := keyFor(path, info)
	if root, ok := s.cache.get(key); ok {
		s.logger.Debug("document cache hit", "path", path)
		return root, nil
	}

	root, err := parser.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	s.cache.add(key, root)
	return root, nil
}
