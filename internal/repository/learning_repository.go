package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/skillswap-api/internal/models"
	appErrors "github.com/noah-isme/skillswap-api/pkg/errors"
	"github.com/noah-isme/skillswap-api/pkg/kv"
)

// Storage keys. Each holds a whole-collection JSON snapshot, never a delta.
const (
	KeyLearningRequests = "learning_requests"
	KeyOfferedSkills    = "offered_skills"
	KeyProfile          = "profile"
)

// LearningRepository persists the learning-request collection as a single
// JSON document in a key-value store.
type LearningRepository struct {
	store  kv.Store
	key    string
	logger *zap.Logger
}

// NewLearningRepository constructs a repository over the given store.
func NewLearningRepository(store kv.Store, logger *zap.Logger) *LearningRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LearningRepository{store: store, key: KeyLearningRequests, logger: logger}
}

// Load reads the persisted collection. A missing key or an undecodable
// snapshot degrades to the seed collection; Load never fails.
func (r *LearningRepository) Load(ctx context.Context) []models.LearningRequest {
	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			r.logger.Warn("learning snapshot read failed, using seed collection", zap.Error(err))
		}
		return SeedLearningRequests()
	}

	var collection []models.LearningRequest
	if err := json.Unmarshal([]byte(raw), &collection); err != nil {
		r.logger.Warn("learning snapshot corrupt, using seed collection", zap.Error(err))
		return SeedLearningRequests()
	}
	return collection
}

// Persist writes the full collection verbatim.
func (r *LearningRepository) Persist(ctx context.Context, collection []models.LearningRequest) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to encode learning collection")
	}
	if err := r.store.Set(ctx, r.key, string(payload)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to persist learning collection")
	}
	return nil
}
