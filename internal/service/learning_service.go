package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/skillswap-api/internal/models"
	"github.com/noah-isme/skillswap-api/pkg/bus"
	appErrors "github.com/noah-isme/skillswap-api/pkg/errors"
	"github.com/noah-isme/skillswap-api/pkg/meeting"
)

// TopicLearningUpdated is broadcast after every successful mutation of the
// learning-request collection. It carries no payload: subscribers re-read the
// collection instead of trusting a diff.
const TopicLearningUpdated bus.Topic = "learning.collection.updated"

// fillerTeachers is the pool the simulated background matcher draws from.
var fillerTeachers = []string{"Alex Garcia", "Taylor Wong", "Jordan Smith", "Casey Rivera", "Robin Chen"}

const (
	dateLayout    = "2006-01-02"
	timeLayout    = "15:04"
	displayLayout = "Jan 2, 2006, 3:04 PM"
)

type learningRepository interface {
	Load(ctx context.Context) []models.LearningRequest
	Persist(ctx context.Context, collection []models.LearningRequest) error
}

type teacherResolver interface {
	Resolve(skillName, category string) (models.Provider, MatchTier)
}

// CreateLearningRequest is the payload for filing a learning request.
type CreateLearningRequest struct {
	SkillName   string `json:"skill_name" validate:"required,min=3"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`

	// Defer skips the immediate match and leaves the request pending for
	// the simulated background matcher.
	Defer bool `json:"defer,omitempty"`
}

// ScheduleSessionRequest carries the date, time, and optional meeting link
// for scheduling a matched request.
type ScheduleSessionRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingLink string `json:"meeting_link,omitempty"`
}

// LearningService owns the learning-request collection for the active
// profile. Views never touch the persisted snapshot directly: they read
// through List and mutate through Create/ScheduleSession, and observe changes
// via TopicLearningUpdated.
type LearningService struct {
	repo     learningRepository
	resolver teacherResolver
	links    *meeting.Generator
	signals  *bus.Bus
	fanout   *bus.RedisFanout
	notifier Notifier
	metrics  *MetricsService

	validator  *validator.Validate
	logger     *zap.Logger
	matchDelay time.Duration

	mu       sync.Mutex
	requests []models.LearningRequest
	loaded   bool
	rnd      *rand.Rand
	timers   map[string]*time.Timer
	// fired guards the single-fire guarantee of the background matcher: an
	// entity id in this set never gets another timer, even across reloads.
	fired map[string]struct{}
}

// LearningServiceOptions bundles optional collaborators.
type LearningServiceOptions struct {
	Fanout     *bus.RedisFanout
	Notifier   Notifier
	Metrics    *MetricsService
	MatchDelay time.Duration
	Rand       rand.Source
}

// NewLearningService constructs the service.
func NewLearningService(repo learningRepository, resolver teacherResolver, links *meeting.Generator, signals *bus.Bus, validate *validator.Validate, logger *zap.Logger, opts LearningServiceOptions) *LearningService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Notifier == nil {
		opts.Notifier = NewLogNotifier(logger)
	}
	if opts.MatchDelay <= 0 {
		opts.MatchDelay = 5 * time.Second
	}
	if opts.Rand == nil {
		opts.Rand = rand.NewSource(time.Now().UnixNano())
	}
	return &LearningService{
		repo:       repo,
		resolver:   resolver,
		links:      links,
		signals:    signals,
		fanout:     opts.Fanout,
		notifier:   opts.Notifier,
		metrics:    opts.Metrics,
		validator:  validate,
		logger:     logger,
		matchDelay: opts.MatchDelay,
		rnd:        rand.New(opts.Rand),
		timers:     make(map[string]*time.Timer),
		fired:      make(map[string]struct{}),
	}
}

// List returns a copy of the current collection, loading the persisted
// snapshot on first use. Pending entities found in the snapshot get their
// background-match timer armed exactly once.
func (s *LearningService) List(ctx context.Context) []models.LearningRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.snapshotLocked()
}

// Create validates the payload, resolves a teacher, and appends the new
// request to the collection. With Defer set the request starts pending and
// the background matcher takes over.
func (s *LearningService) Create(ctx context.Context, req CreateLearningRequest) (models.LearningRequest, error) {
	if err := s.validateCreate(req); err != nil {
		return models.LearningRequest{}, err
	}

	entity := models.LearningRequest{
		ID:          uuid.NewString(),
		SkillName:   strings.TrimSpace(req.SkillName),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now().UTC(),
	}

	if req.Defer {
		entity.MatchStatus = models.MatchPending
	} else {
		provider, tier := s.resolver.Resolve(entity.SkillName, entity.Category)
		entity.Provider = provider.Name
		entity.MatchStatus = models.MatchMatched
		if s.metrics != nil {
			s.metrics.RecordMatch(tier)
		}
	}

	s.mu.Lock()
	s.ensureLoaded(ctx)
	s.requests = append(s.requests, entity)
	s.persistLocked(ctx)
	if entity.MatchStatus == models.MatchPending {
		s.armMatchTimerLocked(entity.ID)
	}
	s.mu.Unlock()

	s.publish(ctx)

	if entity.MatchStatus == models.MatchMatched {
		s.notifier.Success("Learning request added! We've found you a teacher.",
			fmt.Sprintf("%s is available to teach you.", entity.Provider))
	} else {
		s.notifier.Success("Learning request added!", "We're looking for a teacher.")
	}

	return entity, nil
}

// ScheduleSession transitions a matched request to scheduled. Both date and
// time are required; the teacher is re-resolved by skill name, and the
// meeting link falls back to a freshly generated one.
func (s *LearningService) ScheduleSession(ctx context.Context, id string, req ScheduleSessionRequest) (models.LearningRequest, error) {
	if strings.TrimSpace(req.Date) == "" {
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrValidation, "date is required to schedule the class")
	}
	if strings.TrimSpace(req.Time) == "" {
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrValidation, "time is required to schedule the class")
	}

	day, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrValidation, "date must be formatted as YYYY-MM-DD")
	}
	clock, err := time.Parse(timeLayout, strings.TrimSpace(req.Time))
	if err != nil {
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrValidation, "time must be formatted as HH:MM")
	}
	when := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)

	link := strings.TrimSpace(req.MeetingLink)
	if link == "" {
		link = s.links.MeetingURL()
	}

	s.mu.Lock()
	s.ensureLoaded(ctx)

	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrNotFound, "learning request not found")
	}
	switch s.requests[idx].MatchStatus {
	case models.MatchScheduled:
		s.mu.Unlock()
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrConflict, "session already scheduled")
	case models.MatchPending:
		s.mu.Unlock()
		return models.LearningRequest{}, appErrors.Clone(appErrors.ErrConflict, "request has no teacher yet")
	}

	// Scheduling re-resolves by skill name alone, which can replace the
	// previously matched name.
	provider, tier := s.resolver.Resolve(s.requests[idx].SkillName, s.requests[idx].SkillName)

	s.requests[idx].MatchStatus = models.MatchScheduled
	s.requests[idx].ScheduledDate = when.Format(displayLayout)
	s.requests[idx].Provider = provider.Name
	s.requests[idx].MeetingLink = link
	updated := s.requests[idx]

	s.persistLocked(ctx)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordMatch(tier)
	}
	s.publish(ctx)
	s.notifier.Success("Class Scheduled!",
		fmt.Sprintf("Your class has been scheduled with %s for %s", updated.Provider, updated.ScheduledDate))

	return updated, nil
}

// Stop cancels every armed background-match timer. Cancelled timers neither
// mutate state nor emit their notification.
func (s *LearningService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *LearningService) validateCreate(req CreateLearningRequest) error {
	if len(strings.TrimSpace(req.SkillName)) < 3 {
		return appErrors.Clone(appErrors.ErrValidation, "skill_name must be at least 3 characters")
	}
	if strings.TrimSpace(req.Category) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "category is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid learning request payload")
	}
	return nil
}

// ensureLoaded hydrates the in-memory collection from the snapshot once and
// arms timers for any pending entities it finds. Callers hold s.mu.
func (s *LearningService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.requests = s.repo.Load(ctx)
	s.loaded = true
	for _, r := range s.requests {
		if r.MatchStatus == models.MatchPending {
			s.armMatchTimerLocked(r.ID)
		}
	}
}

// armMatchTimerLocked schedules the one-shot simulated match for an entity.
// Re-arming an already armed or already fired id is a no-op, which is what
// keeps the transition single-fire across reloads and re-subscriptions.
func (s *LearningService) armMatchTimerLocked(id string) {
	if _, done := s.fired[id]; done {
		return
	}
	if _, armed := s.timers[id]; armed {
		return
	}
	s.timers[id] = time.AfterFunc(s.matchDelay, func() {
		s.fireBackgroundMatch(id)
	})
}

func (s *LearningService) fireBackgroundMatch(id string) {
	ctx := context.Background()

	s.mu.Lock()
	delete(s.timers, id)
	if _, done := s.fired[id]; done {
		s.mu.Unlock()
		return
	}
	s.fired[id] = struct{}{}

	idx := s.indexOfLocked(id)
	if idx < 0 || s.requests[idx].MatchStatus != models.MatchPending {
		s.mu.Unlock()
		return
	}
	teacher := fillerTeachers[s.rnd.Intn(len(fillerTeachers))]
	s.requests[idx].Provider = teacher
	s.requests[idx].MatchStatus = models.MatchMatched
	skillName := s.requests[idx].SkillName
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx)
	s.notifier.Success(fmt.Sprintf("We found a teacher for %q!", skillName),
		fmt.Sprintf("%s is available to teach you.", teacher))
}

// persistLocked writes the snapshot and downgrades failures to a warning:
// the in-memory collection stays authoritative for the rest of the session.
func (s *LearningService) persistLocked(ctx context.Context) {
	err := s.repo.Persist(ctx, s.requests)
	if s.metrics != nil {
		s.metrics.RecordPersist(err)
	}
	if err != nil {
		s.logger.Warn("learning collection persist failed, in-memory state is authoritative", zap.Error(err))
		s.notifier.Warning("Changes not saved", "Your latest changes could not be stored and will be lost on restart.")
	}
}

func (s *LearningService) publish(ctx context.Context) {
	s.signals.Publish(TopicLearningUpdated)
	if s.metrics != nil {
		s.metrics.RecordSignal()
	}
	if s.fanout != nil {
		s.fanout.Publish(ctx)
	}
}

func (s *LearningService) indexOfLocked(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *LearningService) snapshotLocked() []models.LearningRequest {
	out := make([]models.LearningRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
