// Package jsonimport implements the train2 collaborator: importing
// pre-built parameter tables from the four fixed JSON files described in
// spec.md §6, writing them into the parameter store.
package jsonimport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer is the subset of the parameter store's write API import needs.
// internal/store.BoltWriter satisfies this structurally.
type Writer interface {
	PutInitProb(c string, v float64) error
	PutTransProb(post, pre string, v float64) error
	PutEmissProb(c, syllable string, v float64) error
	PutPinyinStates(syllable, chars string) error
}

// Paths names the four fixed JSON parameter files.
type Paths struct {
	InitProb     string
	TransProb    string
	EmissProb    string
	PinyinStates string
}

// Import reads the four JSON files named by p and writes their contents
// into w. encoding/json is used directly: these files are read exactly
// once at process start and parsed into plain Go maps, a boundary-parsing
// task with no decode-time performance requirement, so the standard
// library decoder is the right tool (no faster third-party JSON decoder
// is imported directly by any example in this codebase's lineage).
func Import(p Paths, w Writer) error {
	initMap, err := readInitProb(p.InitProb)
	if err != nil {
		return err
	}
	for c, v := range initMap {
		if err := w.PutInitProb(c, v); err != nil {
			return fmt.Errorf("jsonimport: write init_prob[%q]: %w", c, err)
		}
	}

	transMap, err := readNestedMap(p.TransProb)
	if err != nil {
		return fmt.Errorf("jsonimport: read %s: %w", p.TransProb, err)
	}
	for post, row := range transMap {
		for pre, v := range row {
			if err := w.PutTransProb(post, pre, v); err != nil {
				return fmt.Errorf("jsonimport: write trans_prob[%q,%q]: %w", post, pre, err)
			}
		}
	}

	emissMap, err := readNestedMap(p.EmissProb)
	if err != nil {
		return fmt.Errorf("jsonimport: read %s: %w", p.EmissProb, err)
	}
	for char, row := range emissMap {
		for syl, v := range row {
			if err := w.PutEmissProb(char, syl, v); err != nil {
				return fmt.Errorf("jsonimport: write emiss_prob[%q,%q]: %w", char, syl, err)
			}
		}
	}

	statesMap, err := readPinyinStates(p.PinyinStates)
	if err != nil {
		return fmt.Errorf("jsonimport: read %s: %w", p.PinyinStates, err)
	}
	for syl, chars := range statesMap {
		if err := w.PutPinyinStates(syl, strings.Join(chars, "")); err != nil {
			return fmt.Errorf("jsonimport: write pinyin_states[%q]: %w", syl, err)
		}
	}

	return nil
}

func readInitProb(path string) (map[string]float64, error) {
	var m map[string]float64
	if err := readJSONFile(path, &m); err != nil {
		return nil, fmt.Errorf("jsonimport: read %s: %w", path, err)
	}
	return m, nil
}

func readNestedMap(path string) (map[string]map[string]float64, error) {
	var m map[string]map[string]float64
	if err := readJSONFile(path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func readPinyinStates(path string) (map[string][]string, error) {
	var m map[string][]string
	if err := readJSONFile(path, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func readJSONFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return decodeJSON(f, v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	return dec.Decode(v)
}
