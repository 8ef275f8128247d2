package worker

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	results := Map(10, 4, func(i int) (string, error) {
		return fmt.Sprintf("page-%d", i), nil
	})

	if len(results) != 10 {
		t.Fatalf("results = %d, want 10", len(results))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("results[%d].Index = %d", i, res.Index)
		}
		if res.Value != fmt.Sprintf("page-%d", i) {
			t.Errorf("results[%d].Value = %q", i, res.Value)
		}
	}
}

func TestMapCarriesErrors(t *testing.T) {
	boom := errors.New("boom")
	results := Map(3, 2, func(i int) (int, error) {
		if i == 1 {
			return 0, boom
		}
		return i * 2, nil
	})

	if results[1].Err != boom {
		t.Errorf("results[1].Err = %v", results[1].Err)
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("unexpected errors on successful tasks")
	}
	if results[2].Value != 4 {
		t.Errorf("results[2].Value = %d", results[2].Value)
	}
}

func TestMapRunsAllTasks(t *testing.T) {
	var count atomic.Int64
	Map(100, 8, func(i int) (struct{}, error) {
		count.Add(1)
		return struct{}{}, nil
	})
	if count.Load() != 100 {
		t.Errorf("ran %d tasks, want 100", count.Load())
	}
}

func TestMapZeroTasks(t *testing.T) {
	results := Map(0, 4, func(i int) (int, error) { return 0, nil })
	if len(results) != 0 {
		t.Errorf("results = %v, want empty", results)
	}
}
