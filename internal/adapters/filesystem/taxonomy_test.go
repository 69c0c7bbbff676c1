package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSynsets = `0,entity,that which is perceived or known or inferred to have its own distinct existence
1,animal animate_being beast,a living organism characterized by voluntary movement
2,dog domestic_dog Canis_familiaris,a member of the genus Canis, probably descended from the common wolf
3,cat true_cat,feline mammal usually having thick soft fur
`

const testHypernyms = `1,0
2,1
3,1
`

func writeTaxonomy(t *testing.T, synsets, hypernyms string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	synsetsPath := filepath.Join(dir, "synsets.txt")
	hypernymsPath := filepath.Join(dir, "hypernyms.txt")

	if err := os.WriteFile(synsetsPath, []byte(synsets), 0644); err != nil {
		t.Fatalf("failed to write synsets: %v", err)
	}
	if err := os.WriteFile(hypernymsPath, []byte(hypernyms), 0644); err != nil {
		t.Fatalf("failed to write hypernyms: %v", err)
	}

	return synsetsPath, hypernymsPath
}

func TestSource_Synsets(t *testing.T) {
	src := NewSource(writeTaxonomy(t, testSynsets, testHypernyms))

	synsets, err := src.Synsets(context.Background())
	if err != nil {
		t.Fatalf("Synsets failed: %v", err)
	}

	if len(synsets) != 4 {
		t.Fatalf("expected 4 synsets, got %d", len(synsets))
	}

	dog := synsets[2]
	if dog.ID != 2 {
		t.Errorf("expected id 2, got %d", dog.ID)
	}
	if strings.Join(dog.Nouns, " ") != "dog domestic_dog Canis_familiaris" {
		t.Errorf("unexpected nouns: %v", dog.Nouns)
	}
	// Glosses keep their own commas
	if dog.Gloss != "a member of the genus Canis, probably descended from the common wolf" {
		t.Errorf("unexpected gloss: %q", dog.Gloss)
	}
}

func TestSource_Hypernyms(t *testing.T) {
	src := NewSource(writeTaxonomy(t, testSynsets, "1,0\n\n4,1,2,3\r\n"))

	hypernyms, err := src.Hypernyms(context.Background())
	if err != nil {
		t.Fatalf("Hypernyms failed: %v", err)
	}

	if len(hypernyms) != 2 {
		t.Fatalf("expected 2 records, got %d", len(hypernyms))
	}

	last := hypernyms[1]
	if last.Synset != 4 {
		t.Errorf("expected synset 4, got %d", last.Synset)
	}
	if len(last.Hypernyms) != 3 || last.Hypernyms[0] != 1 || last.Hypernyms[2] != 3 {
		t.Errorf("unexpected hypernyms: %v", last.Hypernyms)
	}
}

func TestSource_RootHasNoHypernyms(t *testing.T) {
	src := NewSource(writeTaxonomy(t, testSynsets, "0\n"))

	hypernyms, err := src.Hypernyms(context.Background())
	if err != nil {
		t.Fatalf("Hypernyms failed: %v", err)
	}
	if len(hypernyms) != 1 || len(hypernyms[0].Hypernyms) != 0 {
		t.Errorf("expected a root record with no hypernyms, got %+v", hypernyms)
	}
}

func TestSource_ParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		synsets   string
		hypernyms string
		wantLine  int
	}{
		{
			name:     "non numeric synset id",
			synsets:  "0,entity,root\nx,dog,a dog\n",
			wantLine: 2,
		},
		{
			name:     "synset without nouns",
			synsets:  "0, ,root\n",
			wantLine: 1,
		},
		{
			name:     "missing fields",
			synsets:  "0\n",
			wantLine: 1,
		},
		{
			name:      "non numeric hypernym",
			synsets:   testSynsets,
			hypernyms: "1,0\n2,one\n",
			wantLine:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(writeTaxonomy(t, tt.synsets, tt.hypernyms))

			_, err := src.Synsets(context.Background())
			if err == nil {
				_, err = src.Hypernyms(context.Background())
			}
			if err == nil {
				t.Fatal("expected a parse error, got nil")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected ParseError, got %T: %v", err, err)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, parseErr.Line)
			}
		})
	}
}

func TestSource_MissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "nope.txt"), filepath.Join(t.TempDir(), "nope2.txt"))

	if _, err := src.Synsets(context.Background()); err == nil {
		t.Error("expected error for missing synsets file")
	}
	if _, err := src.Fingerprint(); err == nil {
		t.Error("expected error fingerprinting missing files")
	}
}

func TestSource_Fingerprint(t *testing.T) {
	synsetsPath, hypernymsPath := writeTaxonomy(t, testSynsets, testHypernyms)
	src := NewSource(synsetsPath, hypernymsPath)

	first, err := src.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	second, err := src.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if first != second {
		t.Error("fingerprint changed without file changes")
	}

	// Touch the hypernyms file with new content and a later mtime
	if err := os.WriteFile(hypernymsPath, []byte(testHypernyms+"0\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite hypernyms: %v", err)
	}
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(hypernymsPath, later, later); err != nil {
		t.Fatalf("failed to touch hypernyms: %v", err)
	}

	third, err := src.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	if third == first {
		t.Error("fingerprint should change when a file changes")
	}
}
