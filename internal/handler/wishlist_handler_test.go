package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estate-app/internal/models"
	"estate-app/internal/utils"
)

type fakeWishlistService struct {
	entries []models.WishlistEntry
}

func (f *fakeWishlistService) GetWishlist(ctx context.Context, userEmail string) ([]models.WishlistEntry, error) {
	matched := []models.WishlistEntry{}
	for _, e := range f.entries {
		if e.UserEmail == userEmail {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (f *fakeWishlistService) AddEntry(ctx context.Context, entry *models.WishlistEntry) (primitive.ObjectID, error) {
	entry.ID = primitive.NewObjectID()
	f.entries = append(f.entries, *entry)
	return entry.ID, nil
}

func (f *fakeWishlistService) RemoveEntry(ctx context.Context, userEmail string, id primitive.ObjectID) (int64, error) {
	for i := range f.entries {
		if f.entries[i].ID == id && f.entries[i].UserEmail == userEmail {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestAddEntry_UsesAuthenticatedEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeWishlistService{}
	h := NewWishlistHandler(svc)

	router := gin.New()
	router.POST("/wishlist", func(c *gin.Context) {
		c.Set(utils.CtxEmail, "me@x.com")
	}, h.AddEntry)

	// The body claims another owner; the token wins.
	body := `{"userEmail":"attacker@x.com","propertyId":"` + primitive.NewObjectID().Hex() + `","title":"Flat"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/wishlist", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if svc.entries[0].UserEmail != "me@x.com" {
		t.Errorf("userEmail = %q, want me@x.com", svc.entries[0].UserEmail)
	}
}

func TestRemoveEntry_ScopedToOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeWishlistService{}
	h := NewWishlistHandler(svc)

	router := gin.New()
	router.DELETE("/wishlist/:email/:id", h.RemoveEntry)

	id := primitive.NewObjectID()
	svc.entries = append(svc.entries, models.WishlistEntry{ID: id, UserEmail: "me@x.com"})

	// Deleting under the wrong owner matches nothing.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/wishlist/other@x.com/"+id.Hex(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(svc.entries) != 1 {
		t.Fatal("entry deleted by non-owner")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/wishlist/me@x.com/"+id.Hex(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if len(svc.entries) != 0 {
		t.Error("entry not deleted by owner")
	}
}
