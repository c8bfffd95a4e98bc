package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIndexListsAvailableItems(t *testing.T) {
	db := freshDB()
	router := setupRouter(db, &mockStorage{})

	seedItem(t, db, "Fedora", "Hats", 40.0)
	seedItem(t, db, "Trench Coat", "Clothing", 85.0)

	sold := seedItem(t, db, "Sold Bowler", "Hats", 25.0)
	db.Model(&sold).Update("status", "Sold")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Fedora") || !strings.Contains(body, "Trench Coat") {
		t.Errorf("expected available items on the index page, got: %s", body)
	}
	if strings.Contains(body, "Sold Bowler") {
		t.Error("sold item should not appear on the index page")
	}
}

func TestCategoryPagesFilterByCategory(t *testing.T) {
	db := freshDB()
	router := setupRouter(db, &mockStorage{})

	seedItem(t, db, "Fedora", "Hats", 40.0)
	seedItem(t, db, "Trench Coat", "Clothing", 85.0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/hats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Fedora") {
		t.Error("expected Fedora on the hats page")
	}
	if strings.Contains(w.Body.String(), "Trench Coat") {
		t.Error("clothing item should not appear on the hats page")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/clothing", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "Fedora") {
		t.Error("hat should not appear on the clothing page")
	}
	if !strings.Contains(w.Body.String(), "Trench Coat") {
		t.Error("expected Trench Coat on the clothing page")
	}
}

func TestIndexEmptyCatalog(t *testing.T) {
	db := freshDB()
	router := setupRouter(db, &mockStorage{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No items available") {
		t.Error("expected empty-catalog message")
	}
}
