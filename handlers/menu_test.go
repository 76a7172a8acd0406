package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetMenu(t *testing.T) {
	router := gin.New()
	router.GET("/api/menu", (&MenuHandler{}).GetMenu)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/menu", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	menu := parseResponse(w)["menu"].([]interface{})
	if len(menu) != 25 {
		t.Fatalf("expected 25 menu items, got %d", len(menu))
	}

	categories := map[string]bool{}
	for _, raw := range menu {
		item := raw.(map[string]interface{})
		if item["id"] == "" || item["name"] == "" {
			t.Errorf("menu item missing id or name: %v", item)
		}
		if item["price"].(float64) <= 0 {
			t.Errorf("menu item %v has a non-positive price", item["id"])
		}
		categories[item["category"].(string)] = true
	}
	for _, want := range []string{"Starters", "Steaks", "Sides", "Desserts", "Wines", "Drinks"} {
		if !categories[want] {
			t.Errorf("expected category %s in the menu", want)
		}
	}
}
