package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/gridpath/search"
)

// TestControlToggle covers the flag mechanics of the shared handle.
func TestControlToggle(t *testing.T) {
	c := search.NewControl()
	if c.Paused() || c.Cancelled() {
		t.Fatal("fresh handle must be unpaused and uncancelled")
	}
	if !c.TogglePause() {
		t.Error("TogglePause from unpaused should report true")
	}
	if c.TogglePause() {
		t.Error("TogglePause from paused should report false")
	}
	c.Pause()
	c.Resume()
	if c.Paused() {
		t.Error("Resume did not clear pause")
	}
	c.Cancel()
	if !c.Cancelled() {
		t.Error("Cancel did not set the flag")
	}
	c.Rearm()
	if c.Cancelled() {
		t.Error("Rearm did not clear cancellation")
	}
}

// TestPreCancelled verifies that a cancel observed at the very first
// checkpoint terminates immediately with a clean partial result.
func TestPreCancelled(t *testing.T) {
	for _, a := range algorithms {
		t.Run(a.name, func(t *testing.T) {
			fx := newFixture(t, 5, nil, [2]int{0, 0}, [2]int{4, 4})
			ctrl := search.NewControl()
			ctrl.Cancel()
			res, err := a.run(fx.g, fx.start, fx.end, search.WithControl(ctrl))
			if err != nil {
				t.Fatalf("cancellation must not be an error, got %v", err)
			}
			if res.Found || res.Visited != 0 || res.PathLen != 0 {
				t.Errorf("result = %+v; want clean empty not-found", res)
			}
		})
	}
}

// TestCancelMidRun cancels from within the report callback and expects a
// not-found result whose visited count never exceeds the uninterrupted run.
func TestCancelMidRun(t *testing.T) {
	for _, a := range algorithms {
		t.Run(a.name, func(t *testing.T) {
			full := newFixture(t, 7, mazeBarriers, [2]int{0, 0}, [2]int{6, 6})
			uninterrupted, err := a.run(full.g, full.start, full.end)
			if err != nil {
				t.Fatalf("baseline run error: %v", err)
			}

			fx := newFixture(t, 7, mazeBarriers, [2]int{0, 0}, [2]int{6, 6})
			ctrl := search.NewControl()
			steps := 0
			res, err := a.run(fx.g, fx.start, fx.end,
				search.WithControl(ctrl),
				search.WithOnStep(func(search.StepEvent) {
					steps++
					if steps == 5 {
						ctrl.Cancel()
					}
				}))
			if err != nil {
				t.Fatalf("cancellation must not be an error, got %v", err)
			}
			if res.Found {
				t.Error("Found = true after mid-run cancel")
			}
			if res.Visited > uninterrupted.Visited {
				t.Errorf("cancelled Visited = %d exceeds uninterrupted %d",
					res.Visited, uninterrupted.Visited)
			}
		})
	}
}

// TestPauseBlocksAndResumes pauses a run before it starts, confirms it makes
// no progress while paused, then resumes and waits for completion.
func TestPauseBlocksAndResumes(t *testing.T) {
	fx := newFixture(t, 5, nil, [2]int{0, 0}, [2]int{4, 4})
	ctrl := search.NewControl()
	ctrl.Pause()

	done := make(chan *search.Result, 1)
	go func() {
		res, err := search.BFS(fx.g, fx.start, fx.end,
			search.WithControl(ctrl),
			search.WithPollInterval(time.Millisecond))
		if err != nil {
			t.Errorf("run error: %v", err)
		}
		done <- res
	}()

	select {
	case <-done:
		t.Fatal("run completed while paused")
	case <-time.After(30 * time.Millisecond):
	}

	ctrl.Resume()
	select {
	case res := <-done:
		if !res.Found || res.PathLen != 9 {
			t.Errorf("post-resume result = %+v; want found path of 9", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not complete after resume")
	}
}

// TestCancelWhilePaused verifies a paused run still honors cancellation.
func TestCancelWhilePaused(t *testing.T) {
	fx := newFixture(t, 5, nil, [2]int{0, 0}, [2]int{4, 4})
	ctrl := search.NewControl()
	ctrl.Pause()

	done := make(chan *search.Result, 1)
	go func() {
		res, err := search.BFS(fx.g, fx.start, fx.end,
			search.WithControl(ctrl),
			search.WithPollInterval(time.Millisecond))
		if err != nil {
			t.Errorf("run error: %v", err)
		}
		done <- res
	}()

	time.Sleep(10 * time.Millisecond)
	ctrl.Cancel()
	select {
	case res := <-done:
		if res.Found {
			t.Error("Found = true after cancel while paused")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("paused run ignored cancellation")
	}
}

// TestContextCancellation checks that a done context aborts with ctx.Err(),
// unlike the clean Control cancellation outcome.
func TestContextCancellation(t *testing.T) {
	fx := newFixture(t, 5, nil, [2]int{0, 0}, [2]int{4, 4})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := search.BFS(fx.g, fx.start, fx.end, search.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v; want context.Canceled", err)
	}
	if res == nil || res.Found {
		t.Errorf("result = %+v; want non-nil not-found", res)
	}
}
