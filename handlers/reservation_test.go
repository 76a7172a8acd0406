package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"steakz-backend/models"

	"github.com/google/uuid"
)

func reservationBody(userID uuid.UUID, date, timeOfDay string) map[string]interface{} {
	return map[string]interface{}{
		"userId":    userID.String(),
		"date":      date,
		"time":      timeOfDay,
		"partySize": 4,
	}
}

func TestCreateReservation(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, token := seedTestUser(db, "guest@example.com", models.RoleCustomer)

	w := httptest.NewRecorder()
	body := reservationBody(user.ID, "2026-09-20", "19:30")
	body["specialRequest"] = "Window table"
	router.ServeHTTP(w, authRequest("POST", "/api/reservation", body, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Reservation
	if err := db.Where("user_id = ?", user.ID).First(&stored).Error; err != nil {
		t.Fatalf("reservation not persisted: %v", err)
	}
	if stored.Status != models.ReservationStatusPending {
		t.Errorf("expected status PENDING, got %s", stored.Status)
	}
	if stored.Time != "19:30" {
		t.Errorf("expected time 19:30, got %s", stored.Time)
	}
	want := time.Date(2026, 9, 20, 19, 30, 0, 0, time.UTC)
	if !stored.Date.Equal(want) {
		t.Errorf("expected combined instant %v, got %v", want, stored.Date)
	}
	if stored.SpecialRequest != "Window table" {
		t.Errorf("special request not stored: %q", stored.SpecialRequest)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, token := seedTestUser(db, "guest@example.com", models.RoleCustomer)

	cases := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{"bad date", reservationBody(user.ID, "20-09-2026", "19:30"), http.StatusBadRequest},
		{"bad time", reservationBody(user.ID, "2026-09-20", "7pm"), http.StatusBadRequest},
		{"party too large", map[string]interface{}{"userId": user.ID.String(), "date": "2026-09-20", "time": "19:30", "partySize": 21}, http.StatusBadRequest},
		{"party zero", map[string]interface{}{"userId": user.ID.String(), "date": "2026-09-20", "time": "19:30", "partySize": 0}, http.StatusBadRequest},
		{"unknown user", reservationBody(uuid.New(), "2026-09-20", "19:30"), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, authRequest("POST", "/api/reservation", tc.body, token))
			if w.Code != tc.code {
				t.Errorf("expected status %d, got %d: %s", tc.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateReservationConflict(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, token := seedTestUser(db, "guest@example.com", models.RoleCustomer)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, authRequest("POST", "/api/reservation", reservationBody(user.ID, "2026-09-20", "19:30"), token))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status 201 on first booking, got %d", first.Code)
	}

	duplicate := httptest.NewRecorder()
	router.ServeHTTP(duplicate, authRequest("POST", "/api/reservation", reservationBody(user.ID, "2026-09-20", "19:30"), token))
	if duplicate.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 on duplicate booking, got %d", duplicate.Code)
	}
	if parseResponse(duplicate)["error"] != "You already have a reservation at this date and time" {
		t.Errorf("unexpected error message: %s", duplicate.Body.String())
	}

	// Same date, different time is fine.
	otherTime := httptest.NewRecorder()
	router.ServeHTTP(otherTime, authRequest("POST", "/api/reservation", reservationBody(user.ID, "2026-09-20", "21:00"), token))
	if otherTime.Code != http.StatusCreated {
		t.Errorf("expected status 201 for a different time, got %d", otherTime.Code)
	}
}

func TestCancelledReservationDoesNotBlockRebooking(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, token := seedTestUser(db, "guest@example.com", models.RoleCustomer)

	at := time.Date(2026, 9, 20, 19, 30, 0, 0, time.UTC)
	seedReservation(db, user.ID, at, models.ReservationStatusCancelled)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/reservation", reservationBody(user.ID, "2026-09-20", "19:30"), token))
	if w.Code != http.StatusCreated {
		t.Errorf("a cancelled reservation must not block rebooking, got %d: %s", w.Code, w.Body.String())
	}
}

func TestConfirmedReservationBlocksRebooking(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, token := seedTestUser(db, "guest@example.com", models.RoleCustomer)

	at := time.Date(2026, 9, 20, 19, 30, 0, 0, time.UTC)
	seedReservation(db, user.ID, at, models.ReservationStatusConfirmed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/reservation", reservationBody(user.ID, "2026-09-20", "19:30"), token))
	if w.Code != http.StatusBadRequest {
		t.Errorf("a confirmed reservation must block rebooking, got %d", w.Code)
	}
}

func TestReservationListOrderings(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, userToken := seedTestUser(db, "guest@example.com", models.RoleCustomer)
	_, cashierToken := seedTestUser(db, "cashier@example.com", models.RoleCashier)

	early := seedReservation(db, user.ID, time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC), models.ReservationStatusPending)
	late := seedReservation(db, user.ID, time.Date(2026, 9, 25, 20, 0, 0, 0, time.UTC), models.ReservationStatusPending)

	// Staff listing: earliest date first.
	staff := httptest.NewRecorder()
	router.ServeHTTP(staff, authRequest("GET", "/api/reservations", nil, cashierToken))
	if staff.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", staff.Code)
	}
	staffList := parseResponse(staff)["reservations"].([]interface{})
	if len(staffList) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(staffList))
	}
	if staffList[0].(map[string]interface{})["id"] != early.ID.String() {
		t.Error("staff listing must be ordered by date ascending")
	}

	// Per-user listing: most recent date first.
	own := httptest.NewRecorder()
	router.ServeHTTP(own, authRequest("GET", "/api/reservations/"+user.ID.String(), nil, userToken))
	if own.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", own.Code)
	}
	ownList := parseResponse(own)["reservations"].([]interface{})
	if ownList[0].(map[string]interface{})["id"] != late.ID.String() {
		t.Error("user listing must be ordered by date descending")
	}
}

func TestReservationListingRoleGates(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	owner, _ := seedTestUser(db, "guest@example.com", models.RoleCustomer)
	_, chefToken := seedTestUser(db, "chef@example.com", models.RoleChef)
	_, otherToken := seedTestUser(db, "other@example.com", models.RoleCustomer)

	// Chefs are staff but not on the front-desk tier.
	asChef := httptest.NewRecorder()
	router.ServeHTTP(asChef, authRequest("GET", "/api/reservations", nil, chefToken))
	if asChef.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for chef on the desk listing, got %d", asChef.Code)
	}

	// But a chef may still view a specific user's bookings as staff.
	asChefOwner := httptest.NewRecorder()
	router.ServeHTTP(asChefOwner, authRequest("GET", "/api/reservations/"+owner.ID.String(), nil, chefToken))
	if asChefOwner.Code != http.StatusOK {
		t.Errorf("expected status 200 for chef on a user listing, got %d", asChefOwner.Code)
	}

	asOther := httptest.NewRecorder()
	router.ServeHTTP(asOther, authRequest("GET", "/api/reservations/"+owner.ID.String(), nil, otherToken))
	if asOther.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for another customer, got %d", asOther.Code)
	}
}

func TestUpdateReservationStatus(t *testing.T) {
	db := freshDB()
	router := setupReservationRouter(db)
	user, _ := seedTestUser(db, "guest@example.com", models.RoleCustomer)
	_, cashierToken := seedTestUser(db, "cashier@example.com", models.RoleCashier)
	reservation := seedReservation(db, user.ID, time.Date(2026, 9, 20, 19, 30, 0, 0, time.UTC), models.ReservationStatusPending)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PATCH", "/api/reservations/"+reservation.ID.String()+"/status",
		map[string]interface{}{"status": "CONFIRMED"}, cashierToken))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Reservation
	db.First(&updated, reservation.ID)
	if updated.Status != models.ReservationStatusConfirmed {
		t.Errorf("expected status CONFIRMED, got %s", updated.Status)
	}

	invalid := httptest.NewRecorder()
	router.ServeHTTP(invalid, authRequest("PATCH", "/api/reservations/"+reservation.ID.String()+"/status",
		map[string]interface{}{"status": "DONE"}, cashierToken))
	if invalid.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unknown status, got %d", invalid.Code)
	}

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, authRequest("PATCH", "/api/reservations/"+uuid.New().String()+"/status",
		map[string]interface{}{"status": "CONFIRMED"}, cashierToken))
	if missing.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown reservation, got %d", missing.Code)
	}
}
