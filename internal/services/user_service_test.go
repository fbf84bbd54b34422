package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) InsertIfAbsent(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error) {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return primitive.NilObjectID, false, nil
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user.ID, true, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestRegisterUser_DefaultsRole(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, nil)

	id, inserted, err := svc.RegisterUser(context.Background(), &models.User{Email: "a@x.com", Name: "A"})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	if !inserted {
		t.Fatal("inserted = false, want true")
	}
	if id.IsZero() {
		t.Error("insertedId is zero")
	}
	if repo.users[0].Role != models.RoleUser {
		t.Errorf("role = %q, want %q", repo.users[0].Role, models.RoleUser)
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, nil)

	if _, _, err := svc.RegisterUser(context.Background(), &models.User{Email: "a@x.com"}); err != nil {
		t.Fatalf("first RegisterUser: %v", err)
	}

	id, inserted, err := svc.RegisterUser(context.Background(), &models.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("second RegisterUser: %v", err)
	}
	if inserted {
		t.Error("inserted = true, want false")
	}
	if !id.IsZero() {
		t.Errorf("insertedId = %v, want zero", id)
	}
	if len(repo.users) != 1 {
		t.Errorf("user count = %d, want 1", len(repo.users))
	}
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, nil)

	_, _, err := svc.RegisterUser(context.Background(), &models.User{Email: "not-an-email"})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestIsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{
		{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: models.RoleAdmin},
		{ID: primitive.NewObjectID(), Email: "user@x.com", Role: models.RoleUser},
	}}
	svc := NewUserService(repo, nil)

	admin, err := svc.IsAdmin(context.Background(), "admin@x.com")
	if err != nil || !admin {
		t.Errorf("IsAdmin(admin@x.com) = %v, %v; want true, nil", admin, err)
	}

	admin, err = svc.IsAdmin(context.Background(), "user@x.com")
	if err != nil || admin {
		t.Errorf("IsAdmin(user@x.com) = %v, %v; want false, nil", admin, err)
	}

	if _, err := svc.IsAdmin(context.Background(), "ghost@x.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("IsAdmin(ghost@x.com) err = %v, want ErrNotFound", err)
	}
}

func TestChangeRole(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeUserRepo{users: []models.User{{ID: id, Email: "u@x.com", Role: models.RoleUser}}}
	svc := NewUserService(repo, nil)

	res, err := svc.ChangeRole(context.Background(), id, models.RoleUpdate{Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("ChangeRole: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", res.MatchedCount, res.ModifiedCount)
	}
	if repo.users[0].Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", repo.users[0].Role)
	}
}

func TestChangeRole_InvalidRole(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, nil)

	_, err := svc.ChangeRole(context.Background(), primitive.NewObjectID(), models.RoleUpdate{Role: "superuser"})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
