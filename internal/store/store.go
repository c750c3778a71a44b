// Package store implements the parameter store as a single-file, embedded,
// transactional key-value database (go.etcd.io/bbolt). It is the concrete
// backing for the four logical tables described by the decoder's
// external interface: init_prob, trans_prob, emiss_prob, pinyin_states.
package store

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.etcd.io/bbolt"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/logging"
)

var (
	initBucket   = []byte("init_prob")
	transBucket  = []byte("trans_prob")
	emissBucket  = []byte("emiss_prob")
	statesBucket = []byte("pinyin_states")

	allBuckets = [][]byte{initBucket, transBucket, emissBucket, statesBucket}
)

// compositeKey joins two strings with a NUL separator. A NUL byte cannot
// occur inside the UTF-8 encoding of a CJK character, a pinyin syllable, or
// the BOS/EOS sentinels, so this never collides.
func compositeKey(a, b string) []byte {
	key := make([]byte, 0, len(a)+1+len(b))
	key = append(key, a...)
	key = append(key, 0)
	key = append(key, b...)
	return key
}

func encodeFloat(v float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(v))
	return buf
}

func decodeFloat(b []byte) (float64, bool) {
	if len(b) != 8 {
		return 0, false
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), true
}

// BoltStore is a read-only snapshot over the parameter store, opened once
// and held for the lifetime of a single decode (or, for these CLI
// binaries, the lifetime of the process) so every lookup within that
// decode sees a consistent view, per the store's snapshot-read contract.
type BoltStore struct {
	db *bbolt.DB
	tx *bbolt.Tx
}

// Open opens (creating if absent) the bbolt file at path and begins a
// long-lived read-only transaction backing every subsequent lookup.
func Open(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	tx, err := db.Begin(false)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: begin read snapshot: %w", err)
	}

	logging.GetLogger().Debug().Str("path", path).Msg("store: opened read snapshot")
	return &BoltStore{db: db, tx: tx}, nil
}

// Close releases the read snapshot and the underlying database handle.
func (s *BoltStore) Close() error {
	if err := s.tx.Rollback(); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("store: close read snapshot: %w", err)
	}
	return s.db.Close()
}

func (s *BoltStore) get(bucket []byte, key []byte) ([]byte, bool) {
	b := s.tx.Bucket(bucket)
	if b == nil {
		return nil, false
	}
	v := b.Get(key)
	if v == nil {
		return nil, false
	}
	return v, true
}

// InitProb returns log P(c is first char), or (_, false) if absent.
func (s *BoltStore) InitProb(c string) (float64, bool) {
	v, ok := s.get(initBucket, []byte(c))
	if !ok {
		return 0, false
	}
	return decodeFloat(v)
}

// TransProb returns log P(post | pre), or (_, false) if absent.
func (s *BoltStore) TransProb(post, pre string) (float64, bool) {
	v, ok := s.get(transBucket, compositeKey(post, pre))
	if !ok {
		return 0, false
	}
	return decodeFloat(v)
}

// EmissProb returns log P(syllable | c), or (_, false) if absent.
func (s *BoltStore) EmissProb(c, syllable string) (float64, bool) {
	v, ok := s.get(emissBucket, compositeKey(c, syllable))
	if !ok {
		return 0, false
	}
	return decodeFloat(v)
}

// PinyinStates returns the concatenated candidate-character string stored
// for syllable, or (_, false) if no entry exists.
func (s *BoltStore) PinyinStates(syllable string) (string, bool) {
	v, ok := s.get(statesBucket, []byte(syllable))
	if !ok {
		return "", false
	}
	return string(v), true
}

// BoltWriter is a single read-write transaction used by the training and
// JSON-import paths. Writes are only visible to readers after Commit.
type BoltWriter struct {
	db *bbolt.DB
	tx *bbolt.Tx
}

// OpenWriter opens (creating if absent) the bbolt file at path and begins
// a write transaction with all four table buckets pre-created.
func OpenWriter(path string) (*BoltWriter, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	tx, err := db.Begin(true)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: begin write transaction: %w", err)
	}

	for _, bucket := range allBuckets {
		if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
			_ = tx.Rollback()
			_ = db.Close()
			return nil, fmt.Errorf("store: create bucket %s: %w", bucket, err)
		}
	}

	return &BoltWriter{db: db, tx: tx}, nil
}

func (w *BoltWriter) put(bucket, key, value []byte) error {
	b := w.tx.Bucket(bucket)
	if b == nil {
		return fmt.Errorf("store: bucket %s missing", bucket)
	}
	return b.Put(key, value)
}

// PutInitProb writes log P(c is first char).
func (w *BoltWriter) PutInitProb(c string, v float64) error {
	return w.put(initBucket, []byte(c), encodeFloat(v))
}

// PutTransProb writes log P(post | pre).
func (w *BoltWriter) PutTransProb(post, pre string, v float64) error {
	return w.put(transBucket, compositeKey(post, pre), encodeFloat(v))
}

// PutEmissProb writes log P(syllable | c).
func (w *BoltWriter) PutEmissProb(c, syllable string, v float64) error {
	return w.put(emissBucket, compositeKey(c, syllable), encodeFloat(v))
}

// PutPinyinStates overwrites the candidate-character string for syllable.
func (w *BoltWriter) PutPinyinStates(syllable, chars string) error {
	return w.put(statesBucket, []byte(syllable), []byte(chars))
}

// AppendPinyinState appends a single candidate character to syllable's
// stored string if it isn't already present, deduplicating on write per
// the store's recommended (not mandatory) behavior for pinyin_states.
func (w *BoltWriter) AppendPinyinState(syllable, char string) error {
	existing, _ := w.get(statesBucket, []byte(syllable))
	for _, r := range string(existing) {
		if string(r) == char {
			return nil
		}
	}
	return w.put(statesBucket, []byte(syllable), append(existing, char...))
}

func (w *BoltWriter) get(bucket, key []byte) ([]byte, bool) {
	b := w.tx.Bucket(bucket)
	if b == nil {
		return nil, false
	}
	v := b.Get(key)
	if v == nil {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

// Commit atomically writes every change made through this writer.
func (w *BoltWriter) Commit() error {
	if err := w.tx.Commit(); err != nil {
		_ = w.db.Close()
		return fmt.Errorf("store: commit write transaction: %w", err)
	}
	return w.db.Close()
}

// Rollback discards every change made through this writer.
func (w *BoltWriter) Rollback() error {
	if err := w.tx.Rollback(); err != nil {
		_ = w.db.Close()
		return err
	}
	return w.db.Close()
}
