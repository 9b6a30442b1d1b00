package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRunWorkerPoolPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results, errs := RunWorkerPool(context.Background(), items, 3, func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})

	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	for i, n := range items {
		if errs[i] != nil {
			t.Errorf("item %d unexpected error: %v", n, errs[i])
		}
		if results[i] != n*10 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], n*10)
		}
	}
}

func TestRunWorkerPoolErrors(t *testing.T) {
	wantErr := errors.New("boom")
	items := []string{"ok", "bad", "ok"}
	results, errs := RunWorkerPool(context.Background(), items, 2, func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", wantErr
		}
		return s + "!", nil
	})

	if errs[0] != nil || errs[2] != nil {
		t.Errorf("unexpected errors: %v", errs)
	}
	if !errors.Is(errs[1], wantErr) {
		t.Errorf("errs[1] = %v, want %v", errs[1], wantErr)
	}
	if results[0] != "ok!" || results[2] != "ok!" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestRunWorkerPoolEmptyInput(t *testing.T) {
	results, errs := RunWorkerPool(context.Background(), nil, 4, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if results != nil || errs != nil {
		t.Errorf("empty input returned %v, %v", results, errs)
	}
}

func TestRunWorkerPoolCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	_, errs := RunWorkerPool(ctx, items, 4, func(ctx context.Context, n int) (int, error) {
		return n, ctx.Err()
	})

	for i, err := range errs {
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("errs[%d] = %v, want context.Canceled", i, err)
		}
	}
}

func TestRunWorkerPoolMoreWorkersThanItems(t *testing.T) {
	items := []int{1, 2}
	results, _ := RunWorkerPool(context.Background(), items, 16, func(_ context.Context, n int) (int, error) {
		return n, nil
	})
	if fmt.Sprint(results) != "[1 2]" {
		t.Errorf("results = %v, want [1 2]", results)
	}
}
