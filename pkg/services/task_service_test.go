package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fabula-ai/fabula/ent"
	"github.com/fabula-ai/fabula/ent/generationtask"
	testdb "github.com/fabula-ai/fabula/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Enqueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("queues a task", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "enqueue")

		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusQueued, task.Status)
		assert.Equal(t, generationtask.KindDraft, task.Kind)
		assert.Equal(t, 0, task.Attempt)

		// Drain so later subtests claim their own tasks
		require.NoError(t, service.Cancel(ctx, task.ID))
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := service.Enqueue(ctx, "nonexistent", generationtask.KindDraft)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("one live task per session", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "single")

		first, err := service.Enqueue(ctx, sess.ID, generationtask.KindQuestions)
		require.NoError(t, err)

		// Queued blocks a second enqueue, of any kind
		_, err = service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		assert.Equal(t, ErrTaskAlreadyQueued, err)

		// Running still blocks
		claimed, err := service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, first.ID, claimed.ID)
		_, err = service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		assert.Equal(t, ErrTaskAlreadyQueued, err)

		// Terminal does not
		require.NoError(t, service.Complete(ctx, first.ID))
		_, err = service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		assert.NoError(t, err)
	})
}

func TestTaskService_ClaimNextQueued(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("claims in FIFO order", func(t *testing.T) {
		older := createTestSession(t, client.Client, "fifo")
		newer := createTestSession(t, client.Client, "fifo")

		first, err := service.Enqueue(ctx, older.ID, generationtask.KindWriting)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond) // distinct created_at
		second, err := service.Enqueue(ctx, newer.ID, generationtask.KindWriting)
		require.NoError(t, err)

		claimed, err := service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)

		claimed, err = service.ClaimNextQueued(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, second.ID, claimed.ID)
	})

	t.Run("claim stamps the bookkeeping", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "stamps")
		_, err := service.Enqueue(ctx, sess.ID, generationtask.KindCritique)
		require.NoError(t, err)

		claimed, err := service.ClaimNextQueued(ctx, "pod-7")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		assert.Equal(t, generationtask.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-7", *claimed.PodID)
		assert.Equal(t, 1, claimed.Attempt)
		assert.NotNil(t, claimed.ClaimedAt)
		assert.NotNil(t, claimed.LastInteractionAt)
	})

	t.Run("empty queue yields nil", func(t *testing.T) {
		claimed, err := service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})
}

// TestTaskService_ConcurrentClaiming verifies that concurrent workers never
// claim the same task twice.
func TestTaskService_ConcurrentClaiming(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	const tasks = 5
	for i := 0; i < tasks; i++ {
		sess := createTestSession(t, client.Client, "race")
		_, err := service.Enqueue(ctx, sess.ID, generationtask.KindWriting)
		require.NoError(t, err)
	}

	const workers = 10
	results := make(chan *ent.GenerationTask, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := service.ClaimNextQueued(ctx, "pod-x")
			if err != nil {
				t.Errorf("claim failed: %v", err)
				return
			}
			results <- claimed
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	claimedCount := 0
	for task := range results {
		if task == nil {
			continue
		}
		assert.False(t, seen[task.ID], "task %s claimed twice", task.ID)
		seen[task.ID] = true
		claimedCount++
	}

	assert.LessOrEqual(t, claimedCount, tasks)

	// Whatever the interleaving, no queued task is claimed by two workers
	// and the rest of the queue remains claimable.
	remaining := 0
	for {
		claimed, err := service.ClaimNextQueued(ctx, "pod-y")
		require.NoError(t, err)
		if claimed == nil {
			break
		}
		assert.False(t, seen[claimed.ID])
		remaining++
	}
	assert.Equal(t, tasks, claimedCount+remaining)
}

func TestTaskService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, client.Client, "heartbeat")
	task, err := service.Enqueue(ctx, sess.ID, generationtask.KindWriting)
	require.NoError(t, err)

	t.Run("queued tasks have no heartbeat", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.Heartbeat(ctx, task.ID))
	})

	t.Run("bumps the claim timestamp", func(t *testing.T) {
		claimed, err := service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)

		before := *claimed.LastInteractionAt
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, service.Heartbeat(ctx, task.ID))

		fresh, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, fresh.LastInteractionAt.After(before))
	})

	t.Run("cancellation surfaces on the next beat", func(t *testing.T) {
		require.NoError(t, service.Cancel(ctx, task.ID))
		assert.Equal(t, ErrNotFound, service.Heartbeat(ctx, task.ID))
	})
}

func TestTaskService_Finish(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("complete", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "finish")
		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindOutline)
		require.NoError(t, err)
		_, err = service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)

		require.NoError(t, service.Complete(ctx, task.ID))

		fresh, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusCompleted, fresh.Status)
		assert.NotNil(t, fresh.FinishedAt)
		assert.Nil(t, fresh.Error)
	})

	t.Run("fail records the error", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "finish")
		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		require.NoError(t, err)

		require.NoError(t, service.Fail(ctx, task.ID, "model refused the prompt"))

		fresh, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusFailed, fresh.Status)
		require.NotNil(t, fresh.Error)
		assert.Equal(t, "model refused the prompt", *fresh.Error)
	})

	t.Run("terminal tasks stay terminal", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "finish")
		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindCritique)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, task.ID))

		assert.Equal(t, ErrNotFound, service.Complete(ctx, task.ID))
		assert.Equal(t, ErrNotFound, service.Fail(ctx, task.ID, "late failure"))

		fresh, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusCompleted, fresh.Status)
	})
}

func TestTaskService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("cancels a queued task", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "cancel")
		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindWriting)
		require.NoError(t, err)

		require.NoError(t, service.Cancel(ctx, task.ID))

		fresh, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusCancelled, fresh.Status)
		assert.NotNil(t, fresh.FinishedAt)
	})

	t.Run("terminal tasks are not cancellable", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "cancel")
		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindWriting)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, task.ID))

		assert.Equal(t, ErrNotCancellable, service.Cancel(ctx, task.ID))
	})

	t.Run("missing task", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.Cancel(ctx, "nonexistent"))
	})

	t.Run("by session", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "cancel")
		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindWriting)
		require.NoError(t, err)

		require.NoError(t, service.CancelBySession(ctx, sess.ID))

		fresh, err := service.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, generationtask.StatusCancelled, fresh.Status)

		// Nothing live left to cancel
		assert.Equal(t, ErrNotCancellable, service.CancelBySession(ctx, sess.ID))
	})
}

func TestTaskService_Queries(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("live task lookup", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "queries")

		live, err := service.GetLiveTask(ctx, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, live)

		task, err := service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		require.NoError(t, err)

		live, err = service.GetLiveTask(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, live)
		assert.Equal(t, task.ID, live.ID)

		require.NoError(t, service.Complete(ctx, task.ID))
		live, err = service.GetLiveTask(ctx, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, live)
	})

	t.Run("task history, newest first", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "queries")

		first, err := service.Enqueue(ctx, sess.ID, generationtask.KindQuestions)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, first.ID))
		time.Sleep(10 * time.Millisecond)
		second, err := service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		require.NoError(t, err)

		tasks, err := service.ListTasksForSession(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, second.ID, tasks[0].ID)
		assert.Equal(t, first.ID, tasks[1].ID)

		require.NoError(t, service.Cancel(ctx, second.ID))
	})

	t.Run("count running", func(t *testing.T) {
		count, err := service.CountRunning(ctx)
		require.NoError(t, err)
		require.Zero(t, count)

		sess := createTestSession(t, client.Client, "queries")
		_, err = service.Enqueue(ctx, sess.ID, generationtask.KindWriting)
		require.NoError(t, err)
		_, err = service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)

		count, err = service.CountRunning(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestTaskService_FindOrphanedTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	healthy := createTestSession(t, client.Client, "orphans")
	dead := createTestSession(t, client.Client, "orphans")

	healthyTask, err := service.Enqueue(ctx, healthy.ID, generationtask.KindWriting)
	require.NoError(t, err)
	deadTask, err := service.Enqueue(ctx, dead.ID, generationtask.KindWriting)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := service.ClaimNextQueued(ctx, "pod-1")
		require.NoError(t, err)
	}

	// Backdate the dead worker's heartbeat past the threshold
	err = client.GenerationTask.UpdateOneID(deadTask.ID).
		SetLastInteractionAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err := service.FindOrphanedTasks(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, deadTask.ID, orphans[0].ID)

	// A live heartbeat keeps the healthy task out
	require.NoError(t, service.Heartbeat(ctx, healthyTask.ID))
	orphans, err = service.FindOrphanedTasks(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}

func TestTaskService_DeleteFinishedBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTaskService(client.Client)
	ctx := context.Background()

	t.Run("rejects a non-positive ttl", func(t *testing.T) {
		_, err := service.DeleteFinishedBefore(ctx, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ttl must be positive")
	})

	t.Run("deletes only old terminal tasks", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "cleanup")

		old, err := service.Enqueue(ctx, sess.ID, generationtask.KindQuestions)
		require.NoError(t, err)
		require.NoError(t, service.Complete(ctx, old.ID))
		err = client.GenerationTask.UpdateOneID(old.ID).
			SetFinishedAt(time.Now().AddDate(0, 0, -40)).
			Exec(ctx)
		require.NoError(t, err)

		recent, err := service.Enqueue(ctx, sess.ID, generationtask.KindDraft)
		require.NoError(t, err)
		require.NoError(t, service.Fail(ctx, recent.ID, "failed yesterday"))

		live, err := service.Enqueue(ctx, sess.ID, generationtask.KindOutline)
		require.NoError(t, err)

		count, err := service.DeleteFinishedBefore(ctx, 30*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = service.GetTask(ctx, old.ID)
		assert.Equal(t, ErrNotFound, err)
		_, err = service.GetTask(ctx, recent.ID)
		assert.NoError(t, err)
		_, err = service.GetTask(ctx, live.ID)
		assert.NoError(t, err)
	})
}
