package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/signup/internal/domain"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	chess, err := domain.NewActivity("Chess Club", "Learn chess", "Fridays", 2, []string{"michael@mergington.edu"})
	require.NoError(t, err)
	gym, err := domain.NewActivity("Gym Class", "PE", "Mondays", 30, nil)
	require.NoError(t, err)

	store, err := NewStore([]domain.Activity{chess, gym}, opts...)
	require.NoError(t, err)
	return store
}

func TestStoreGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	activity, ok := store.Get(ctx, "Chess Club")
	require.True(t, ok)
	require.Equal(t, "Learn chess", activity.Description)

	_, ok = store.Get(ctx, "chess club")
	require.False(t, ok, "lookup is case-sensitive")
}

func TestStoreAddAndRemoveParticipant(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	updated, err := store.AddParticipant(ctx, "Chess Club", "emma@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"michael@mergington.edu", "emma@mergington.edu"}, updated.Participants)

	_, err = store.AddParticipant(ctx, "Chess Club", "emma@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)

	_, err = store.AddParticipant(ctx, "Robotics", "emma@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	updated, err = store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"emma@mergington.edu"}, updated.Participants)

	_, err = store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrNotRegistered)

	_, err = store.RemoveParticipant(ctx, "Robotics", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestStoreReturnsCopies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all := store.All(ctx)
	chess := all["Chess Club"]
	chess.Participants[0] = "hacker@mergington.edu"

	activity, _ := store.Get(ctx, "Chess Club")
	require.Equal(t, []string{"michael@mergington.edu"}, activity.Participants)
}

func TestStoreCapacityNotEnforcedByDefault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.AddParticipant(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
		require.NoError(t, err)
	}
	activity, _ := store.Get(ctx, "Chess Club")
	require.Len(t, activity.Participants, 4)
}

func TestStoreCapacityEnforced(t *testing.T) {
	store := newTestStore(t, WithCapacityEnforcement(true))
	ctx := context.Background()

	_, err := store.AddParticipant(ctx, "Chess Club", "emma@mergington.edu")
	require.NoError(t, err)

	_, err = store.AddParticipant(ctx, "Chess Club", "sophia@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityFull)

	_, err = store.AddParticipant(ctx, "Chess Club", "emma@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadyRegistered, "duplicate check comes before capacity")
}

func TestStoreRejectsDuplicateNames(t *testing.T) {
	a, err := domain.NewActivity("Chess Club", "a", "s", 1, nil)
	require.NoError(t, err)

	_, err = NewStore([]domain.Activity{a, a})
	require.Error(t, err)
}

func TestStoreConcurrentSignups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i%10)
			if _, err := store.AddParticipant(ctx, "Gym Class", email); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	}
	activity, _ := store.Get(ctx, "Gym Class")
	require.Len(t, activity.Participants, 10)
}

func TestSeededStore(t *testing.T) {
	store, err := NewSeededStore()
	require.NoError(t, err)

	all := store.All(context.Background())
	require.Len(t, all, len(seedActivities))
	chess, ok := all["Chess Club"]
	require.True(t, ok)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	for name, activity := range all {
		require.NotEmpty(t, activity.Description, name)
		require.NotEmpty(t, activity.Schedule, name)
		require.LessOrEqual(t, len(activity.Participants), activity.MaxParticipants, name)
	}
}
