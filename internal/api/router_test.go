package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomdesk/meeting-room-backend/internal/app"
	"github.com/roomdesk/meeting-room-backend/internal/auth"
	bookingHttp "github.com/roomdesk/meeting-room-backend/internal/booking/http"
	"github.com/roomdesk/meeting-room-backend/internal/mirror"
	roomHttp "github.com/roomdesk/meeting-room-backend/internal/room/http"
)

const (
	testUser     = "api"
	testPassword = "secret"
)

type testEnv struct {
	router *gin.Engine
	mirror *mirror.MemoryMirror
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hasher := auth.NewBcryptPasswordHasher(4) // Lower cost for testing purposes
	hash, err := hasher.Hash(testPassword)
	require.NoError(t, err)

	m := mirror.NewMemoryMirror()
	container := app.NewContainer(app.Config{
		Username:     testUser,
		PasswordHash: hash,
		Mirror:       m,
	})

	return &testEnv{router: container.Router, mirror: m}
}

func (e *testEnv) execute(method, path string, body any, withAuth bool) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if withAuth {
		req.SetBasicAuth(testUser, testPassword)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpointIsOpen(t *testing.T) {
	env := newTestEnv(t)

	w := env.execute("GET", "/", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Meeting Room API is running!", body["message"])
}

func TestCredentialGate(t *testing.T) {
	env := newTestEnv(t)

	// Missing credentials
	w := env.execute("GET", "/v1/rooms", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")

	// Wrong password
	req, _ := http.NewRequest("GET", "/v1/rooms", nil)
	req.SetBasicAuth(testUser, "wrong")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong username
	req, _ = http.NewRequest("GET", "/v1/rooms", nil)
	req.SetBasicAuth("intruder", testPassword)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid credentials
	w = env.execute("GET", "/v1/rooms", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoomAndBookingScenario(t *testing.T) {
	env := newTestEnv(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	// Register Room A
	w := env.execute("POST", "/v1/rooms", roomHttp.CreateRoomRequest{
		Name: "A", Capacity: 4, Amenities: []string{"projector"},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var created roomHttp.CreateRoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "A", created.Name)
	assert.True(t, created.Mirrored)

	// Duplicate name is rejected
	w = env.execute("POST", "/v1/rooms", roomHttp.CreateRoomRequest{Name: "A", Capacity: 8}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Invalid capacity is rejected by binding
	w = env.execute("POST", "/v1/rooms", map[string]any{"name": "B", "capacity": 0}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// List rooms returns the name->room mapping
	w = env.execute("GET", "/v1/rooms", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms map[string]roomHttp.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 1)
	assert.Equal(t, 4, rooms["A"].Capacity)

	// Book 09:00-10:00
	w = env.execute("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		RoomName: "A", StartTime: at(9, 0), EndTime: at(10, 0), BookedBy: "alice",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var booked bookingHttp.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))
	assert.NotEmpty(t, booked.ID)
	assert.True(t, booked.Mirrored)

	// Overlapping booking conflicts
	w = env.execute("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		RoomName: "A", StartTime: at(9, 30), EndTime: at(9, 45), BookedBy: "bob",
	}, true)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Boundary-touching booking succeeds
	w = env.execute("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		RoomName: "A", StartTime: at(10, 0), EndTime: at(11, 0), BookedBy: "bob",
	}, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unknown room
	w = env.execute("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		RoomName: "B", StartTime: at(9, 0), EndTime: at(10, 0), BookedBy: "carol",
	}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Inverted interval
	w = env.execute("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		RoomName: "A", StartTime: at(13, 0), EndTime: at(12, 0), BookedBy: "carol",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// List bookings in creation order
	w = env.execute("GET", "/v1/bookings", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []bookingHttp.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 2)
	assert.Equal(t, "alice", bookings[0].BookedBy)
	assert.Equal(t, "bob", bookings[1].BookedBy)
}

func TestAuditEndpointReturnsMirrorRecords(t *testing.T) {
	env := newTestEnv(t)

	w := env.execute("POST", "/v1/rooms", roomHttp.CreateRoomRequest{Name: "A", Capacity: 4}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.execute("POST", "/v1/bookings", bookingHttp.CreateBookingRequest{
		RoomName:  "A",
		StartTime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		BookedBy:  "alice",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.execute("GET", "/v1/audit", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var records []struct {
		Kind   string   `json:"kind"`
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "room", records[0].Kind)
	assert.Equal(t, "booking", records[1].Kind)
	assert.Equal(t, "A", records[0].Fields[0])

	// Cross-check against the mirror directly.
	direct, err := env.mirror.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, direct, 2)
}
