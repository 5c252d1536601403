package letters

import (
	"errors"
	"fmt"
)

// Example is one vocabulary word taught with a letter. It is a plain value
// type so two examples compare equal with ==.
type Example struct {
	Word       string `json:"word"`
	Emoji      string `json:"emoji,omitempty"`
	Audio      string `json:"audio,omitempty"`
	Meaning    string `json:"meaning,omitempty"`
	Sentence   string `json:"sentence,omitempty"`
	SentenceMr string `json:"sentence_mr,omitempty"`
}

// Entry is the parsed content of a letter_*.json asset.
type Entry struct {
	Char         string    `json:"char"`
	Audio        string    `json:"audio,omitempty"`
	Examples     []Example `json:"examples"`
	Combinations []string  `json:"combinations,omitempty"`
}

// Manifest describes an asset pack.
type Manifest struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version"`
}

// Problem records an asset file that could not be used.
type Problem struct {
	File string
	Err  error
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %v", p.File, p.Err)
}

var (
	// ErrUnknownLetter is returned when no asset matches a letter.
	ErrUnknownLetter = errors.New("unknown letter")

	// ErrPackVersion is returned when the manifest version is unsupported.
	ErrPackVersion = errors.New("unsupported asset pack version")
)
