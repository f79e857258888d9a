package main

import (
	"errors"
	"fmt"

	"github.com/tuannh982/treemap/utils/collections"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownOp  = errors.New("unknown op")
	ErrDivergence = errors.New("tree map diverged from reference")
)

const (
	OpPut           = "put"
	OpGet           = "get"
	OpRemove        = "remove"
	OpContainsKey   = "contains_key"
	OpContainsValue = "contains_value"
	OpClear         = "clear"
	OpDump          = "dump"
	OpCheck         = "check"
)

// Runner replays ops against a tree map and a hash map and fails as soon
// as the two disagree.
type Runner struct {
	tree   collections.SortedMap[int64, string]
	ref    collections.Map[int64, string]
	verify bool
	log    *log.Entry
}

type result struct {
	value string
	found bool
}

func NewRunner(logger *log.Entry, verify bool) *Runner {
	return &Runner{
		tree:   collections.NewTreeMap[int64, string](),
		ref:    collections.NewHashMap[int64, string](),
		verify: verify,
		log:    logger,
	}
}

func (r *Runner) Tree() collections.SortedMap[int64, string] {
	return r.tree
}

func (r *Runner) Run(ops []Op) error {
	for i, op := range ops {
		if err := r.Apply(op); err != nil {
			return fmt.Errorf("op %d %s: %w", i, op, err)
		}
	}
	r.log.WithFields(log.Fields{
		"ops":    len(ops),
		"size":   r.tree.Size(),
		"height": r.tree.Height(),
	}).Info("workload finished")
	return nil
}

func (r *Runner) Apply(op Op) error {
	var got, want result
	var err error
	mutated := false
	switch op.Op {
	case OpPut:
		got.value, got.found, err = r.tree.Put(op.Key, op.Value)
		if err == nil {
			want.value, want.found, err = r.ref.Put(op.Key, op.Value)
		}
		mutated = true
	case OpGet:
		got.value, got.found, err = r.tree.Get(op.Key)
		if err == nil {
			want.value, want.found, err = r.ref.Get(op.Key)
		}
	case OpRemove:
		got.value, got.found, err = r.tree.Remove(op.Key)
		if err == nil {
			want.value, want.found, err = r.ref.Remove(op.Key)
		}
		mutated = true
	case OpContainsKey:
		got.found, err = r.tree.ContainsKey(op.Key)
		if err == nil {
			want.found, err = r.ref.ContainsKey(op.Key)
		}
	case OpContainsValue:
		got.found = r.tree.ContainsValue(op.Value)
		want.found = r.ref.ContainsValue(op.Value)
	case OpClear:
		r.tree.Clear()
		r.ref.Clear()
		mutated = true
	case OpDump:
		r.log.WithFields(log.Fields{
			"size":   r.tree.Size(),
			"height": r.tree.Height(),
		}).Info(r.tree.String())
		return nil
	case OpCheck:
		return r.check()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	if err != nil {
		return err
	}
	r.log.WithFields(log.Fields{
		"op":    op.Op,
		"key":   op.Key,
		"value": got.value,
		"found": got.found,
		"size":  r.tree.Size(),
	}).Debug("applied")
	if got != want {
		return fmt.Errorf("%w: got %+v, want %+v", ErrDivergence, got, want)
	}
	if r.tree.Size() != r.ref.Size() {
		return fmt.Errorf("%w: size %d, want %d", ErrDivergence, r.tree.Size(), r.ref.Size())
	}
	if mutated && r.verify {
		return r.check()
	}
	return nil
}

// check verifies the tree structure and that iteration is strictly
// ascending and agrees with the reference map.
func (r *Runner) check() error {
	if err := r.tree.Check(); err != nil {
		return err
	}
	entries := r.tree.Entries()
	it := entries.Iterator()
	count := 0
	var prev int64
	for it.HasNext() {
		e, _ := it.Next()
		if count > 0 && e.Key <= prev {
			return fmt.Errorf("%w: key %d after %d", collections.ErrInvariantViolated, e.Key, prev)
		}
		if !r.ref.Entries().Contains(e) {
			return fmt.Errorf("%w: unexpected entry %s", ErrDivergence, e)
		}
		prev = e.Key
		count++
	}
	if count != entries.Size() || count != r.ref.Size() {
		return fmt.Errorf("%w: iterated %d entries, want %d", ErrDivergence, count, r.ref.Size())
	}
	return nil
}
