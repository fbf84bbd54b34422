package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
	"estate-app/internal/utils"
)

const roleCacheTTL = 5 * time.Minute

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	InsertIfAbsent(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserService struct {
	repo  UserRepository
	cache *utils.RedisClient
}

// NewUserService wires the user store and an optional Redis cache for
// role lookups; pass nil to run without caching.
func NewUserService(repo UserRepository, cache *utils.RedisClient) *UserService {
	return &UserService{repo: repo, cache: cache}
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// RegisterUser inserts the user unless the email is already taken.
// Duplicate registration is not an error: the caller gets inserted ==
// false and no second document is created.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if err := user.Validate(); err != nil {
		return primitive.NilObjectID, false, err
	}

	return s.repo.InsertIfAbsent(ctx, user)
}

// IsAdmin answers the RequireAdmin gate. The role is cached briefly;
// ChangeRole drops the cache entry so promotions take effect at once.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if s.cache != nil {
		var role string
		if err := s.cache.Get(ctx, roleCacheKey(email), &role); err == nil {
			return role == models.RoleAdmin, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, roleCacheKey(email), user.Role, roleCacheTTL); err != nil {
			log.Printf("[CACHE] failed to store role for %s: %v", email, err)
		}
	}

	return user.Role == models.RoleAdmin, nil
}

func (s *UserService) ChangeRole(ctx context.Context, id primitive.ObjectID, update models.RoleUpdate) (*mongo.UpdateResult, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	res, err := s.repo.UpdateRole(ctx, id, update.Role)
	if err != nil {
		return nil, err
	}

	s.invalidateRole(ctx, id)
	return res, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.invalidateRole(ctx, id)
	return s.repo.Delete(ctx, id)
}

// invalidateRole clears the cached role for the user with the given
// id. The cache is keyed by email, so the document is read back first.
func (s *UserService) invalidateRole(ctx context.Context, id primitive.ObjectID) {
	if s.cache == nil {
		return
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return
	}
	if err := s.cache.Delete(ctx, roleCacheKey(user.Email)); err != nil {
		log.Printf("[CACHE] failed to drop role for %s: %v", user.Email, err)
	}
}

func roleCacheKey(email string) string {
	return "user_role:" + email
}
