package letters

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
)

//go:embed sample
var sampleFS embed.FS

// Sample returns the asset pack bundled with the binary.
func Sample() fs.FS {
	sub, err := fs.Sub(sampleFS, "sample")
	if err != nil {
		panic(err)
	}
	return sub
}

// Library is the example pool provider. It loads every letter file of an
// asset pack up front. Files that fail validation are skipped and kept in
// Problems so callers can report them.
type Library struct {
	manifest Manifest
	byStem   map[string]*Entry
	byChar   map[string]*Entry
	problems []Problem
}

// Load reads an asset pack. Only an unusable manifest is fatal; broken
// letter files are recorded as problems.
func Load(fsys fs.FS) (*Library, error) {
	m, err := ReadManifest(fsys)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		manifest: m,
		byStem:   make(map[string]*Entry),
		byChar:   make(map[string]*Entry),
	}

	var files []string
	for _, pattern := range []string{"letter_*.json", "h_letter_*.json"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	for _, name := range files {
		entry, err := readEntry(fsys, name)
		if err != nil {
			slog.Warn("skip letter asset", "file", name, "error", err)
			lib.problems = append(lib.problems, Problem{File: name, Err: err})
			continue
		}
		lib.byStem[stem(name)] = entry
		lib.byChar[entry.Char] = entry
	}

	slog.Debug("loaded asset pack", "version", m.Version, "letters", len(lib.byChar), "problems", len(lib.problems))
	return lib, nil
}

func readEntry(fsys fs.FS, name string) (*Entry, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	if err := ValidateJSON(SchemaLetter, raw); err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	e.Char = Normalize(e.Char)
	return &e, nil
}

// stem turns "letter_ka.json" or "h_letter_ka.json" into "ka".
func stem(name string) string {
	base := strings.TrimSuffix(path.Base(name), ".json")
	base = strings.TrimPrefix(base, "h_")
	return Normalize(strings.TrimPrefix(base, "letter_"))
}

// Manifest returns the loaded pack manifest.
func (l *Library) Manifest() Manifest { return l.manifest }

// Problems returns the files skipped during Load.
func (l *Library) Problems() []Problem { return l.problems }

// Entry finds the asset for letter. The file named after the letter wins,
// then the file named after its romanization, then any file whose char
// field matches.
func (l *Library) Entry(letter string) (*Entry, error) {
	key := Normalize(letter)
	if e, ok := l.byStem[key]; ok {
		return e, nil
	}
	if r, ok := Romanize(key); ok {
		if e, ok := l.byStem[r]; ok {
			return e, nil
		}
	}
	if e, ok := l.byChar[key]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLetter, letter)
}

// Pool returns the examples for letter in file order. A missing letter has
// an empty pool.
func (l *Library) Pool(letter string) []Example {
	e, err := l.Entry(letter)
	if err != nil {
		return nil
	}
	return append([]Example(nil), e.Examples...)
}

// LetterAudio returns the audio path declared in the letter file.
func (l *Library) LetterAudio(letter string) (string, bool) {
	e, err := l.Entry(letter)
	if err != nil || e.Audio == "" {
		return "", false
	}
	return e.Audio, true
}

// CombinationsFor returns the practice syllables for letter.
func (l *Library) CombinationsFor(letter string) []string {
	var override []string
	if e, err := l.Entry(letter); err == nil {
		override = e.Combinations
	}
	return Combinations(letter, override)
}

// Letters returns the letters with an asset, in chart order. Letters not on
// the chart follow in byte order.
func (l *Library) Letters() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range All() {
		if _, err := l.Entry(c); err == nil {
			out = append(out, c)
			seen[c] = true
		}
	}
	var extra []string
	for c := range l.byChar {
		if !seen[c] {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
