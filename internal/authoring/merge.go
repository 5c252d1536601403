package authoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/hima/internal/letters"
)

// Merge appends examples to a letter file's JSON. Fields other than
// examples are kept as they are. The result is validated against the
// letter schema before it is returned.
func Merge(raw []byte, add []letters.Example) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode letter file: %w", err)
	}

	var current []letters.Example
	if ex, ok := doc["examples"]; ok {
		if err := json.Unmarshal(ex, &current); err != nil {
			return nil, fmt.Errorf("decode examples: %w", err)
		}
	}

	merged, err := json.Marshal(append(current, add...))
	if err != nil {
		return nil, err
	}
	doc["examples"] = merged

	out, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	if err := letters.ValidateJSON(letters.SchemaLetter, out); err != nil {
		return nil, fmt.Errorf("merged letter file: %w", err)
	}
	return out, nil
}

// NewLetterFile returns the JSON of a letter file holding only examples.
func NewLetterFile(letter string, examples []letters.Example) ([]byte, error) {
	return marshal(letters.Entry{Char: letters.Normalize(letter), Examples: examples})
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode letter file: %w", err)
	}
	return buf.Bytes(), nil
}

// LetterFile finds the file for letter in an asset directory, using the
// same names the library looks up. When none exists it returns the path a
// new file should take and false.
func LetterFile(dir, letter string) (string, bool) {
	letter = letters.Normalize(letter)
	names := []string{"letter_" + letter + ".json", "h_letter_" + letter + ".json"}
	roman, hasRoman := letters.Romanize(letter)
	if hasRoman {
		names = append(names, "letter_"+roman+".json", "h_letter_"+roman+".json")
	}
	for _, name := range names {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	if hasRoman {
		return filepath.Join(dir, "letter_"+roman+".json"), false
	}
	return filepath.Join(dir, names[0]), false
}

// WriteExamples merges examples into the letter's file under dir, creating
// the file when it does not exist yet.
func WriteExamples(dir, letter string, add []letters.Example) (string, error) {
	path, exists := LetterFile(dir, letter)

	var (
		out []byte
		err error
	)
	if exists {
		raw, rerr := os.ReadFile(path)
		if rerr != nil {
			return "", fmt.Errorf("read %s: %w", path, rerr)
		}
		out, err = Merge(raw, add)
	} else {
		out, err = NewLetterFile(letter, add)
	}
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("asset directory %s does not exist", dir)
		}
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
