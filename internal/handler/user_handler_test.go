package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"estate-app/internal/models"
)

type fakeUserService struct {
	users      map[string]models.User
	registered []models.User
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: map[string]models.User{}}
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	all := []models.User{}
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserService) RegisterUser(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error) {
	if _, ok := f.users[user.Email]; ok {
		return primitive.NilObjectID, false, nil
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = *user
	f.registered = append(f.registered, *user)
	return user.ID, true, nil
}

func (f *fakeUserService) ChangeRole(ctx context.Context, id primitive.ObjectID, update models.RoleUpdate) (*mongo.UpdateResult, error) {
	for email, u := range f.users {
		if u.ID == id {
			u.Role = update.Role
			f.users[email] = u
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

func newUserRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)
	router := gin.New()
	router.GET("/users", h.GetAllUsers)
	router.GET("/users/admin/:email", h.GetUserByEmail)
	router.POST("/users", h.RegisterUser)
	router.PATCH("/users/admin/:id", h.ChangeRole)
	router.DELETE("/users/:id", h.DeleteUser)
	return router
}

func TestRegisterUser_Duplicate(t *testing.T) {
	router := newUserRouter(newFakeUserService())
	body := `{"email":"a@x.com","name":"A"}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("first register status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("second register status = %d", w.Code)
	}

	var resp struct {
		Message    string      `json:"message"`
		InsertedID interface{} `json:"insertedId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Message != "user already exists" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.InsertedID != nil {
		t.Errorf("insertedId = %v, want null", resp.InsertedID)
	}
}

func TestGetUserByEmail_AdminFlag(t *testing.T) {
	svc := newFakeUserService()
	svc.users["admin@x.com"] = models.User{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: models.RoleAdmin}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/admin/admin@x.com", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Admin bool `json:"admin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Admin {
		t.Error("admin = false, want true")
	}
}

func TestGetUserByEmail_Unknown(t *testing.T) {
	router := newUserRouter(newFakeUserService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/admin/ghost@x.com", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestChangeRole_MalformedID(t *testing.T) {
	router := newUserRouter(newFakeUserService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/users/admin/not-a-hex-id", strings.NewReader(`{"role":"admin"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteUser_ReportsCount(t *testing.T) {
	svc := newFakeUserService()
	id := primitive.NewObjectID()
	svc.users["u@x.com"] = models.User{ID: id, Email: "u@x.com", Role: models.RoleUser}
	router := newUserRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+id.Hex(), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", resp.DeletedCount)
	}
}
