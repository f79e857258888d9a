package main

import (
	"math/rand"
	"testing"

	"github.com/tuannh982/treemap/utils/collections"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestRunner(verify bool) (*Runner, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	return NewRunner(log.NewEntry(logger), verify), hook
}

func TestRunnerTwoChildRemoval(t *testing.T) {
	r, hook := newTestRunner(true)
	ops := make([]Op, 0)
	for _, k := range []int64{5, 2, 8, 1, 3, 7, 9} {
		ops = append(ops, Op{Op: OpPut, Key: k, Value: "v"})
	}
	ops = append(ops,
		Op{Op: OpRemove, Key: 5},
		Op{Op: OpGet, Key: 5},
		Op{Op: OpContainsKey, Key: 7},
		Op{Op: OpDump},
	)
	require.Nil(t, r.Run(ops))
	require.Equal(t, []int64{1, 2, 3, 7, 8, 9}, r.Tree().Keys().Slice())

	var dumped bool
	for _, e := range hook.AllEntries() {
		if e.Message == "{1=v, 2=v, 3=v, 7=v, 8=v, 9=v}" {
			dumped = true
			require.Equal(t, 6, e.Data["size"])
		}
	}
	require.Equal(t, true, dumped)
	require.Equal(t, "workload finished", hook.LastEntry().Message)
}

func TestRunnerRandomWorkload(t *testing.T) {
	r, _ := newTestRunner(true)
	rnd := rand.New(rand.NewSource(1))
	ops := make([]Op, 0, 2000)
	values := []string{"a", "b", "c", "d"}
	for i := 0; i < 2000; i++ {
		key := int64(rnd.Intn(64))
		value := values[rnd.Intn(len(values))]
		switch rnd.Intn(10) {
		case 0, 1, 2, 3:
			ops = append(ops, Op{Op: OpPut, Key: key, Value: value})
		case 4, 5, 6:
			ops = append(ops, Op{Op: OpRemove, Key: key})
		case 7:
			ops = append(ops, Op{Op: OpGet, Key: key})
		case 8:
			ops = append(ops, Op{Op: OpContainsValue, Value: value})
		default:
			ops = append(ops, Op{Op: OpContainsKey, Key: key})
		}
	}
	ops = append(ops, Op{Op: OpCheck}, Op{Op: OpClear}, Op{Op: OpCheck})
	require.Nil(t, r.Run(ops))
	require.Equal(t, true, r.Tree().IsEmpty())
}

func TestRunnerUnknownOp(t *testing.T) {
	r, _ := newTestRunner(false)
	err := r.Run([]Op{{Op: "upsert", Key: 1}})
	require.ErrorIs(t, err, ErrUnknownOp)
}

func TestRunnerCheckDetectsDivergence(t *testing.T) {
	r, _ := newTestRunner(false)
	require.Nil(t, r.Apply(Op{Op: OpPut, Key: 1, Value: "a"}))
	_, _, err := r.ref.Put(1, "b")
	require.Nil(t, err)
	require.ErrorIs(t, r.Apply(Op{Op: OpCheck}), ErrDivergence)
	require.ErrorIs(t, r.Apply(Op{Op: OpGet, Key: 1}), ErrDivergence)

	r.tree = collections.NewTreeMap[int64, string]()
	require.ErrorIs(t, r.Apply(Op{Op: OpContainsKey, Key: 1}), ErrDivergence)
}
