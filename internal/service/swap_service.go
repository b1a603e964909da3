package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/skillswap-api/internal/dto"
	"github.com/noah-isme/skillswap-api/internal/models"
	"github.com/noah-isme/skillswap-api/pkg/bus"
	"github.com/noah-isme/skillswap-api/pkg/meeting"
)

type learningReader interface {
	List(ctx context.Context) []models.LearningRequest
}

// SwapService maintains the "active swaps" view over the learning-request
// collection. It holds no state tree shared with the learning service:
// whenever the change signal fires it re-reads the collection and rebuilds
// its projection, exactly like an independently mounted view would.
type SwapService struct {
	learning learningReader
	links    *meeting.Generator
	signals  *bus.Bus
	logger   *zap.Logger

	mu     sync.Mutex
	cached []dto.ActiveSwap
	rnd    *rand.Rand
	unsub  func()
}

// NewSwapService constructs the service. A nil source gets a time seed.
func NewSwapService(learning learningReader, links *meeting.Generator, signals *bus.Bus, src rand.Source, logger *zap.Logger) *SwapService {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwapService{
		learning: learning,
		links:    links,
		signals:  signals,
		logger:   logger,
		rnd:      rand.New(src),
	}
}

// Start builds the initial projection and subscribes to collection changes.
// Calling Start after Stop re-subscribes cleanly.
func (s *SwapService) Start(ctx context.Context) {
	s.rebuild(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsub != nil {
		return
	}
	s.unsub = s.signals.Subscribe(TopicLearningUpdated, func() {
		s.rebuild(context.Background())
	})
}

// Stop deregisters the change listener. Safe to call repeatedly.
func (s *SwapService) Stop() {
	s.mu.Lock()
	unsub := s.unsub
	s.unsub = nil
	s.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// ActiveSwaps returns the current projection.
func (s *SwapService) ActiveSwaps() []dto.ActiveSwap {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.ActiveSwap, len(s.cached))
	copy(out, s.cached)
	return out
}

func (s *SwapService) rebuild(ctx context.Context) {
	requests := s.learning.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	swaps := make([]dto.ActiveSwap, 0, len(requests))
	for _, r := range requests {
		if !r.Scheduled() {
			continue
		}
		link := r.MeetingLink
		if link == "" {
			link = s.links.MeetingURL()
		}
		swaps = append(swaps, dto.ActiveSwap{
			ID:         "learning-" + r.ID,
			SkillTitle: r.SkillName,
			Provider: dto.SwapContact{
				Name:     r.Provider,
				Location: "Remote",
				Phone:    s.syntheticPhoneLocked(),
			},
			Status:      "active",
			NextSession: r.ScheduledDate,
			MeetingLink: link,
			Joinable:    meeting.IsValidMeetingLink(link),
		})
	}
	s.cached = swaps
	s.logger.Debug("swap projection rebuilt", zap.Int("active", len(swaps)))
}

func (s *SwapService) syntheticPhoneLocked() string {
	return fmt.Sprintf("+1 555-%d-%d", 100+s.rnd.Intn(900), 1000+s.rnd.Intn(9000))
}
