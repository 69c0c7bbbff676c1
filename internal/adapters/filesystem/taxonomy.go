package filesystem

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wordnet/internal/domain"
	"wordnet/internal/ports"
)

// ParseError reports a malformed line in a taxonomy file
type ParseError struct {
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// Source implements ports.TaxonomySource over the Princeton text files:
//
//	synsets.txt:   36,AND_circuit AND_gate,a circuit in a computer ...
//	hypernyms.txt: 36,42338,42339
type Source struct {
	synsetsPath   string
	hypernymsPath string
}

// Ensure Source implements TaxonomySource
var _ ports.TaxonomySource = (*Source)(nil)

// NewSource creates a source reading the given synset and hypernym files
func NewSource(synsetsPath, hypernymsPath string) *Source {
	return &Source{
		synsetsPath:   expandHome(synsetsPath),
		hypernymsPath: expandHome(hypernymsPath),
	}
}

// Synsets parses the synsets file
func (s *Source) Synsets(ctx context.Context) ([]domain.Synset, error) {
	var synsets []domain.Synset

	err := scanLines(ctx, s.synsetsPath, func(line string, n int) error {
		fields := strings.SplitN(line, ",", 3)
		if len(fields) < 2 {
			return &ParseError{File: s.synsetsPath, Line: n, Reason: "expected id,nouns[,gloss]"}
		}

		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return &ParseError{File: s.synsetsPath, Line: n, Reason: fmt.Sprintf("invalid synset id %q", fields[0])}
		}

		nouns := strings.Fields(fields[1])
		if len(nouns) == 0 {
			return &ParseError{File: s.synsetsPath, Line: n, Reason: "synset has no nouns"}
		}

		synset := domain.Synset{ID: id, Nouns: nouns}
		if len(fields) == 3 {
			synset.Gloss = fields[2]
		}
		synsets = append(synsets, synset)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return synsets, nil
}

// Hypernyms parses the hypernyms file
func (s *Source) Hypernyms(ctx context.Context) ([]domain.Hypernym, error) {
	var hypernyms []domain.Hypernym

	err := scanLines(ctx, s.hypernymsPath, func(line string, n int) error {
		fields := strings.Split(line, ",")
		ids := make([]int, 0, len(fields))
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			id, err := strconv.Atoi(f)
			if err != nil {
				return &ParseError{File: s.hypernymsPath, Line: n, Reason: fmt.Sprintf("invalid synset id %q", f)}
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			return &ParseError{File: s.hypernymsPath, Line: n, Reason: "missing synset id"}
		}

		hypernyms = append(hypernyms, domain.Hypernym{Synset: ids[0], Hypernyms: ids[1:]})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return hypernyms, nil
}

// Fingerprint hashes the path, size and modification time of both files
func (s *Source) Fingerprint() (string, error) {
	h := sha256.New()
	for _, path := range []string{s.synsetsPath, s.hypernymsPath} {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		fmt.Fprintf(h, "%s\x00%d\x00%d\n", abs, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// scanLines calls fn for every non-blank line of a file
func scanLines(ctx context.Context, path string, fn func(line string, n int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line, n); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
