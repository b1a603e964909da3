package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skillswap-api/internal/models"
	"github.com/noah-isme/skillswap-api/internal/repository"
	"github.com/noah-isme/skillswap-api/pkg/bus"
	appErrors "github.com/noah-isme/skillswap-api/pkg/errors"
	"github.com/noah-isme/skillswap-api/pkg/kv"
	"github.com/noah-isme/skillswap-api/pkg/meeting"
)

type stubResolver struct {
	provider models.Provider
	tier     MatchTier
	calls    int
}

func (r *stubResolver) Resolve(skillName, category string) (models.Provider, MatchTier) {
	r.calls++
	return r.provider, r.tier
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	warnings  []string
}

func (n *recordingNotifier) Success(title, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title)
}

func (n *recordingNotifier) Warning(title, detail string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, title)
}

func (n *recordingNotifier) successCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.successes)
}

type failingRepo struct {
	inner *repository.LearningRepository
}

func (r failingRepo) Load(ctx context.Context) []models.LearningRequest {
	return r.inner.Load(ctx)
}

func (r failingRepo) Persist(context.Context, []models.LearningRequest) error {
	return appErrors.Wrap(errors.New("disk full"), appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to persist learning collection")
}

type testEnv struct {
	svc      *LearningService
	repo     *repository.LearningRepository
	store    *kv.MemoryStore
	signals  *bus.Bus
	notifier *recordingNotifier
	resolver *stubResolver
}

func newTestEnv(t *testing.T, opts LearningServiceOptions) *testEnv {
	t.Helper()

	store := kv.NewMemoryStore()
	repo := repository.NewLearningRepository(store, nil)
	// Seed an empty collection so tests start from a clean slate.
	require.NoError(t, repo.Persist(context.Background(), []models.LearningRequest{}))

	signals := bus.New(nil)
	notifier := &recordingNotifier{}
	resolver := &stubResolver{
		provider: models.Provider{ID: "9", Name: "Priya Nair"},
		tier:     TierExact,
	}

	opts.Notifier = notifier
	if opts.Rand == nil {
		opts.Rand = rand.NewSource(1)
	}

	links := meeting.NewGenerator(false, rand.NewSource(1))
	svc := NewLearningService(repo, resolver, links, signals, nil, nil, opts)
	t.Cleanup(svc.Stop)

	return &testEnv{svc: svc, repo: repo, store: store, signals: signals, notifier: notifier, resolver: resolver}
}

func TestCreateMatchesImmediately(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{
		SkillName: "Spanish",
		Category:  "Language Learning",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.MatchMatched, created.MatchStatus)
	assert.Equal(t, "Priya Nair", created.Provider)
	assert.Empty(t, created.ScheduledDate)
	assert.Empty(t, created.MeetingLink)

	listed := env.svc.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestCreatePublishesChangeSignal(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})

	var fired int
	unsub := env.signals.Subscribe(TopicLearningUpdated, func() { fired++ })
	defer unsub()

	_, err := env.svc.Create(context.Background(), CreateLearningRequest{
		SkillName: "Photography",
		Category:  "Photography",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestCreateRejectsShortSkillName(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	_, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Go", Category: "Web Development"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "skill_name")

	assert.Empty(t, env.svc.List(ctx), "validation failures must not mutate state")
}

func TestCreateRejectsEmptyCategory(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	_, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "  "})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "category")

	assert.Empty(t, env.svc.List(ctx))
}

func TestScheduleSessionTransitionsToScheduled(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)

	updated, err := env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{
		Date: "2025-06-01",
		Time: "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, models.MatchScheduled, updated.MatchStatus)
	assert.Equal(t, "Jun 1, 2025, 2:30 PM", updated.ScheduledDate)
	assert.NotEmpty(t, updated.MeetingLink)
	assert.True(t, meeting.IsValidMeetingLink(updated.MeetingLink))
}

func TestScheduleSessionKeepsSuppliedLink(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)

	custom := "https://us02web.zoom.us/j/99999999999?pwd=custom99"
	updated, err := env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{
		Date:        "2025-06-01",
		Time:        "09:05",
		MeetingLink: custom,
	})
	require.NoError(t, err)
	assert.Equal(t, custom, updated.MeetingLink)
	assert.Equal(t, "Jun 1, 2025, 9:05 AM", updated.ScheduledDate)
}

func TestScheduleSessionRequiresTime(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)

	_, err = env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{Date: "2025-06-01"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "time")

	listed := env.svc.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, models.MatchMatched, listed[0].MatchStatus)
	assert.Empty(t, listed[0].ScheduledDate)
	assert.Empty(t, listed[0].MeetingLink)
}

func TestScheduleSessionRequiresDate(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)

	_, err = env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{Time: "14:30"})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "date")

	listed := env.svc.List(ctx)
	assert.Equal(t, models.MatchMatched, listed[0].MatchStatus)
}

func TestScheduleSessionUnknownID(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})

	_, err := env.svc.ScheduleSession(context.Background(), "nope", ScheduleSessionRequest{Date: "2025-06-01", Time: "14:30"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestScheduleSessionRejectsTerminalState(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)

	_, err = env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{Date: "2025-06-01", Time: "14:30"})
	require.NoError(t, err)

	_, err = env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{Date: "2025-06-02", Time: "10:00"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestScheduleSessionReResolvesTeacher(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)
	callsAfterCreate := env.resolver.calls

	env.resolver.provider = models.Provider{ID: "2", Name: "Sam Wilson"}
	updated, err := env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{Date: "2025-06-01", Time: "14:30"})
	require.NoError(t, err)

	assert.Equal(t, callsAfterCreate+1, env.resolver.calls)
	assert.Equal(t, "Sam Wilson", updated.Provider, "scheduling re-resolves and may replace the matched name")
}

func TestCollectionSurvivesReload(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err)
	_, err = env.svc.ScheduleSession(ctx, created.ID, ScheduleSessionRequest{Date: "2025-06-01", Time: "14:30"})
	require.NoError(t, err)
	before := env.svc.List(ctx)

	// A fresh service over the same snapshot reconstructs identical state.
	reloaded := NewLearningService(env.repo, env.resolver, meeting.NewGenerator(false, rand.NewSource(2)), bus.New(nil), nil, nil, LearningServiceOptions{})
	t.Cleanup(reloaded.Stop)

	assert.Equal(t, before, reloaded.List(ctx))
}

func TestDeferredCreateStaysPendingUntilBackgroundMatch(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{MatchDelay: 20 * time.Millisecond})
	ctx := context.Background()

	created, err := env.svc.Create(ctx, CreateLearningRequest{
		SkillName: "Quantum Computing",
		Category:  "Data Science",
		Defer:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MatchPending, created.MatchStatus)
	assert.Empty(t, created.Provider)

	require.Eventually(t, func() bool {
		listed := env.svc.List(ctx)
		return listed[0].MatchStatus == models.MatchMatched && listed[0].Provider != ""
	}, time.Second, 5*time.Millisecond)
}

func TestBackgroundMatchFiresExactlyOnce(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{MatchDelay: 20 * time.Millisecond})
	ctx := context.Background()

	_, err := env.svc.Create(ctx, CreateLearningRequest{
		SkillName: "Quantum Computing",
		Category:  "Data Science",
		Defer:     true,
	})
	require.NoError(t, err)

	// Repeated reads during the delay window model view re-mounts; none of
	// them may arm a second timer.
	for i := 0; i < 5; i++ {
		env.svc.List(ctx)
	}

	require.Eventually(t, func() bool {
		return env.svc.List(ctx)[0].MatchStatus == models.MatchMatched
	}, time.Second, 5*time.Millisecond)

	matched := env.svc.List(ctx)[0].Provider
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, matched, env.svc.List(ctx)[0].Provider)
	// Two notifications total: creation and the single match announcement.
	assert.Equal(t, 2, env.notifier.successCount())
}

func TestBackgroundMatchAssignsFillerTeacher(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{MatchDelay: 10 * time.Millisecond})
	ctx := context.Background()

	_, err := env.svc.Create(ctx, CreateLearningRequest{
		SkillName: "Quantum Computing",
		Category:  "Data Science",
		Defer:     true,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return env.svc.List(ctx)[0].MatchStatus == models.MatchMatched
	}, time.Second, 5*time.Millisecond)

	assert.Contains(t, fillerTeachers, env.svc.List(ctx)[0].Provider)
}

func TestStopCancelsPendingBackgroundMatch(t *testing.T) {
	env := newTestEnv(t, LearningServiceOptions{MatchDelay: 30 * time.Millisecond})
	ctx := context.Background()

	_, err := env.svc.Create(ctx, CreateLearningRequest{
		SkillName: "Quantum Computing",
		Category:  "Data Science",
		Defer:     true,
	})
	require.NoError(t, err)
	creationNotices := env.notifier.successCount()

	env.svc.Stop()
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, models.MatchPending, env.svc.List(ctx)[0].MatchStatus)
	assert.Equal(t, creationNotices, env.notifier.successCount(), "cancelled matches must not notify")
}

func TestPersistFailureKeepsInMemoryState(t *testing.T) {
	store := kv.NewMemoryStore()
	inner := repository.NewLearningRepository(store, nil)
	require.NoError(t, inner.Persist(context.Background(), []models.LearningRequest{}))

	notifier := &recordingNotifier{}
	resolver := &stubResolver{provider: models.Provider{Name: "Priya Nair"}, tier: TierExact}
	svc := NewLearningService(failingRepo{inner: inner}, resolver, meeting.NewGenerator(false, rand.NewSource(1)), bus.New(nil), nil, nil, LearningServiceOptions{Notifier: notifier})
	t.Cleanup(svc.Stop)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateLearningRequest{SkillName: "Spanish", Category: "Language Learning"})
	require.NoError(t, err, "persistence failure must not fail the operation")

	listed := svc.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.NotEmpty(t, notifier.warnings)
}
