// Package cmu reads the CMU Pronouncing Dictionary and turns its entries
// into quiz words.
//
// Both the classic "WORD  P1 P2" layout with ";;;" comments and the newer
// lower-case "word p1 p2 # note" layout are accepted. Alternate
// pronunciations are written "WORD(2)".
package cmu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okian/accent/internal/domain/phonetic"
)

// Dict maps words to their pronunciations, first variant first.
type Dict struct {
	prons     map[string][]phonetic.Transcription
	order     []string
	malformed int
}

// Load reads a dictionary file.
func Load(ctx context.Context, path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(ctx, f)
}

// Parse reads a dictionary from r. Lines that cannot be parsed are counted
// and skipped.
func Parse(ctx context.Context, r io.Reader) (*Dict, error) {
	d := &Dict{prons: make(map[string][]phonetic.Transcription)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 0; sc.Scan(); line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		word, t, ok := parseLine(sc.Text())
		if !ok {
			if strings.TrimSpace(sc.Text()) != "" && !isComment(sc.Text()) {
				d.malformed++
			}
			continue
		}
		if _, seen := d.prons[word]; !seen {
			d.order = append(d.order, word)
		}
		d.prons[word] = append(d.prons[word], t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cmu dictionary: %w", err)
	}
	if len(d.order) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

func isComment(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#")
}

func parseLine(line string) (string, phonetic.Transcription, bool) {
	if isComment(line) {
		return "", phonetic.Transcription{}, false
	}
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", phonetic.Transcription{}, false
	}
	word, ok := baseWord(fields[0])
	if !ok {
		return "", phonetic.Transcription{}, false
	}
	t, err := phonetic.Parse(strings.Join(fields[1:], " "))
	if err != nil {
		return "", phonetic.Transcription{}, false
	}
	return word, t, true
}

// baseWord strips a "(n)" variant suffix and lower-cases the word.
func baseWord(token string) (string, bool) {
	if open := strings.IndexByte(token, '('); open > 0 && strings.HasSuffix(token, ")") {
		if _, err := strconv.Atoi(token[open+1 : len(token)-1]); err != nil {
			return "", false
		}
		token = token[:open]
	}
	token = strings.ToLower(token)
	return token, token != ""
}

// Lookup returns the first pronunciation of word.
func (d *Dict) Lookup(word string) (phonetic.Transcription, error) {
	prons := d.prons[strings.ToLower(strings.TrimSpace(word))]
	if len(prons) == 0 {
		return phonetic.Transcription{}, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return prons[0], nil
}

// Variants returns every pronunciation of word.
func (d *Dict) Variants(word string) []phonetic.Transcription {
	return append([]phonetic.Transcription(nil), d.prons[strings.ToLower(strings.TrimSpace(word))]...)
}

// Words returns the dictionary words in file order.
func (d *Dict) Words() []string {
	return append([]string(nil), d.order...)
}

// Len returns the number of distinct words.
func (d *Dict) Len() int { return len(d.order) }

// Malformed returns how many non-comment lines were skipped.
func (d *Dict) Malformed() int { return d.malformed }
