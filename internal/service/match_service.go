package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/skillswap-api/internal/models"
)

// MatchTier labels which resolution tier produced a provider.
type MatchTier string

const (
	TierExact   MatchTier = "exact"
	TierPartial MatchTier = "partial"
	TierRoster  MatchTier = "roster"
	TierRandom  MatchTier = "random"
)

// ResolveTeacher maps a requested (skillName, category) pair to exactly one
// provider. It is a pure function of its inputs: the rand source is only
// consulted on the final fallback tier. The roster must be non-empty.
//
// Tiers, in order:
//  1. first listing (catalog order) whose title equals skillName or whose
//     category equals category, case-insensitive;
//  2. among listings whose title contains skillName or whose category
//     contains category, the highest-rated one (missing rating counts as 0,
//     ties keep the first encountered);
//  3. among roster members with any skill that contains skillName or that
//     skillName contains, the one with the earliest CreatedAt;
//  4. a uniformly random roster member.
func ResolveTeacher(skillName, category string, catalog []models.SkillListing, roster []models.Provider, rnd *rand.Rand) (models.Provider, MatchTier) {
	name := strings.ToLower(skillName)
	cat := strings.ToLower(category)

	for _, l := range catalog {
		if strings.ToLower(l.Title) == name || strings.ToLower(l.Category) == cat {
			return l.Owner, TierExact
		}
	}

	var best *models.SkillListing
	for i := range catalog {
		l := &catalog[i]
		if !strings.Contains(strings.ToLower(l.Title), name) && !strings.Contains(strings.ToLower(l.Category), cat) {
			continue
		}
		if best == nil || l.Rating > best.Rating {
			best = l
		}
	}
	if best != nil {
		return best.Owner, TierPartial
	}

	var senior *models.Provider
	for i := range roster {
		p := &roster[i]
		if !hasRelatedSkill(p, name) {
			continue
		}
		if senior == nil || p.CreatedAt.Before(senior.CreatedAt) {
			senior = p
		}
	}
	if senior != nil {
		return *senior, TierRoster
	}

	return roster[rnd.Intn(len(roster))], TierRandom
}

func hasRelatedSkill(p *models.Provider, loweredName string) bool {
	for _, s := range p.Skills {
		skill := strings.ToLower(s)
		if strings.Contains(skill, loweredName) || strings.Contains(loweredName, skill) {
			return true
		}
	}
	return false
}

type catalogSource interface {
	Listings() []models.SkillListing
	Providers() []models.Provider
}

// MatchService resolves teachers against the static catalog and roster.
type MatchService struct {
	catalog catalogSource
	logger  *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMatchService constructs a MatchService. A nil source gets a time seed;
// tests pass a fixed seed for reproducible fallback selection.
func NewMatchService(catalog catalogSource, src rand.Source, logger *zap.Logger) *MatchService {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{catalog: catalog, rnd: rand.New(src), logger: logger}
}

// Resolve picks a teacher for the requested skill and category.
func (s *MatchService) Resolve(skillName, category string) (models.Provider, MatchTier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	provider, tier := ResolveTeacher(skillName, category, s.catalog.Listings(), s.catalog.Providers(), s.rnd)
	s.logger.Debug("teacher resolved",
		zap.String("skill", skillName),
		zap.String("category", category),
		zap.String("provider", provider.Name),
		zap.String("tier", string(tier)),
	)
	return provider, tier
}
