package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"CrowdCheck/internal/models"
)

func seedCampaign(t *testing.T, f *fakeCampaignStore, name string, score int, status string) int64 {
	t.Helper()
	id, err := f.Insert(context.Background(), &models.Campaign{
		Name:       name,
		Amount:     1000,
		Address:    "1234567890",
		TrustScore: score,
		Status:     status,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return id
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := h.Routes()

	for _, path := range []string{"/admin", "/approve/1", "/reject/1", "/logout"} {
		rec := get(t, router, path, nil)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
			t.Fatalf("%s: code=%d location=%q, want redirect to /login",
				path, rec.Code, rec.Header().Get("Location"))
		}
	}
}

func TestDashboardEmptyStore(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := h.Routes()
	cookies := loginCookies(t, router)

	rec := get(t, router, "/admin", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Всего: <b>0</b>", "Средний trust score: <b>0</b>", "Кампаний не найдено"} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, body)
		}
	}
}

func TestDashboardFilter(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	router := h.Routes()

	seedCampaign(t, campaigns, "abc books", 90, models.StatusApproved)
	seedCampaign(t, campaigns, "abc scam", 40, models.StatusPending)
	seedCampaign(t, campaigns, "water well", 100, models.StatusApproved)

	cookies := loginCookies(t, router)
	rec := get(t, router, "/admin?search=abc&status=Approved", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("code=%d, want 200", rec.Code)
	}
	body := rec.Body.String()

	// оба предиката сразу: подстрока имени И точный статус
	if !strings.Contains(body, "abc books") {
		t.Fatal("matching campaign missing from filtered view")
	}
	if strings.Contains(body, "abc scam") || strings.Contains(body, "water well") {
		t.Fatal("filtered view leaked non-matching campaigns")
	}
	// эхо текущего фильтра в форме
	if !strings.Contains(body, `value="abc"`) {
		t.Fatal("search filter value not echoed")
	}
}

func TestApproveIdempotent(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	router := h.Routes()
	id := seedCampaign(t, campaigns, "abc books", 90, models.StatusPending)
	cookies := loginCookies(t, router)

	for i := 0; i < 2; i++ {
		rec := get(t, router, "/approve/1", cookies)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin" {
			t.Fatalf("approve #%d: code=%d location=%q", i+1, rec.Code, rec.Header().Get("Location"))
		}
		if campaigns.items[0].ID != id || campaigns.items[0].Status != models.StatusApproved {
			t.Fatalf("approve #%d: %+v", i+1, campaigns.items[0])
		}
	}
}

func TestRejectCampaign(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	router := h.Routes()
	seedCampaign(t, campaigns, "abc scam", 20, models.StatusPending)
	cookies := loginCookies(t, router)

	rec := get(t, router, "/reject/1", cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("code=%d, want 302", rec.Code)
	}
	if campaigns.items[0].Status != models.StatusRejected {
		t.Fatalf("status = %q, want Rejected", campaigns.items[0].Status)
	}
}

func TestModerationFailSoft(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	router := h.Routes()
	seedCampaign(t, campaigns, "abc books", 90, models.StatusPending)
	cookies := loginCookies(t, router)

	// неизвестный id: стор не меняется, админу никакой ошибки
	rec := get(t, router, "/approve/999", cookies)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin" {
		t.Fatalf("unknown id: code=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}
	if campaigns.items[0].Status != models.StatusPending {
		t.Fatalf("unknown id mutated the store: %+v", campaigns.items[0])
	}

	// кривой id: тоже молча назад
	rec = get(t, router, "/approve/not-a-number", cookies)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/admin" {
		t.Fatalf("malformed id: code=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}
	if campaigns.items[0].Status != models.StatusPending {
		t.Fatalf("malformed id mutated the store: %+v", campaigns.items[0])
	}
}

func TestModerationPreservesFilter(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	router := h.Routes()
	seedCampaign(t, campaigns, "abc books", 90, models.StatusPending)
	cookies := loginCookies(t, router)

	rec := get(t, router, "/approve/1?search=abc&status=Pending", cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("code=%d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if loc != "/admin?search=abc&status=Pending" {
		t.Fatalf("filter lost on redirect: %q", loc)
	}
}
