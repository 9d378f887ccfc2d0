// Package store persists protocol traffic for postmortem inspection.
// Every envelope crossing the channel is written as one badger entry
// keyed by a monotonic sequence number.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/webpilot/proto"
)

const tracePrefix = "trace:"

// TraceEntry is one recorded envelope with its direction and capture
// time.
type TraceEntry struct {
	Seq       uint64          `json:"seq"`
	Time      time.Time       `json:"time"`
	Direction proto.Direction `json:"direction"`
	Envelope  *proto.Envelope `json:"envelope"`
}

// TraceStore records protocol envelopes under a badger directory. It
// implements proto.Recorder, Record is safe for concurrent callers.
type TraceStore struct {
	DB       *badger.DB
	filepath string
	seq      uint64
}

// NewTraceStore rooted at filepath
func NewTraceStore(filepath string) *TraceStore {
	return &TraceStore{filepath: filepath}
}

// Init opens the store, creating the directory if needed
func (s *TraceStore) Init() error {
	if err := os.MkdirAll(s.filepath, 0766); err != nil {
		return err
	}
	db, err := badger.Open(badger.DefaultOptions(s.filepath))
	if err != nil {
		return errors.Wrap(err, "opening trace store")
	}
	s.DB = db
	return nil
}

// Record one envelope. Failures are logged, never propagated, tracing
// must not take down the channel.
func (s *TraceStore) Record(dir proto.Direction, env *proto.Envelope) {
	entry := &TraceEntry{
		Seq:       atomic.AddUint64(&s.seq, 1),
		Time:      time.Now(),
		Direction: dir,
		Envelope:  env,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode trace entry")
		return
	}
	err = s.DB.Update(func(txn *badger.Txn) error {
		return txn.Set(traceKey(entry.Seq), data)
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to record trace entry")
	}
}

// Walk every recorded entry in sequence order
func (s *TraceStore) Walk(fn func(entry *TraceEntry) error) error {
	return s.DB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(tracePrefix)})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			entry := &TraceEntry{}
			if err := json.Unmarshal(val, entry); err != nil {
				return errors.Wrap(err, "decoding trace entry")
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close the underlying store
func (s *TraceStore) Close() error {
	return s.DB.Close()
}

// fixed width so lexical key order matches sequence order
func traceKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%012d", tracePrefix, seq))
}
