package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"tidify/models"
	"tidify/services/user"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs injects the identity the auth middleware would have set.
func authAs(username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("username", username)
		c.Set("role", role)
	}
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v: %s", err, w.Body.String())
	}
	return out
}

type stubUserService struct {
	pub         *models.PublicUser
	registerErr error
	auth        *user.AuthResponse
	authErr     error
	account     *models.User
	accountErr  error
	revokeErr   error
	all         []models.User
	allErr      error
	count       int
	countErr    error
}

func (s *stubUserService) Register(_ context.Context, _ models.RegisterRequest) (*models.PublicUser, error) {
	return s.pub, s.registerErr
}

func (s *stubUserService) Authenticate(_ context.Context, _, _ string) (*user.AuthResponse, error) {
	return s.auth, s.authErr
}

func (s *stubUserService) RevokeAuthToken(_ context.Context, _ string) error {
	return s.revokeErr
}

func (s *stubUserService) GetByUsername(_ context.Context, _ string) (*models.User, error) {
	return s.account, s.accountErr
}

func (s *stubUserService) GetAllUsers(_ context.Context) ([]models.User, error) {
	return s.all, s.allErr
}

func (s *stubUserService) Count(_ context.Context) (int, error) {
	return s.count, s.countErr
}

type stubWorkerService struct {
	profile    *models.Worker
	profileErr error
	saved      *models.Worker
	saveErr    error
	workerRow  *models.Worker
	workerErr  error
	list       []models.Worker
	listErr    error
	gotFilters models.WorkerFilters
	count      int
	countErr   error
}

func (s *stubWorkerService) GetProfile(_ context.Context, _ string) (*models.Worker, error) {
	return s.profile, s.profileErr
}

func (s *stubWorkerService) SaveProfile(_ context.Context, _ string, _ models.WorkerProfileRequest) (*models.Worker, error) {
	return s.saved, s.saveErr
}

func (s *stubWorkerService) GetWorker(_ context.Context, _ string) (*models.Worker, error) {
	return s.workerRow, s.workerErr
}

func (s *stubWorkerService) ListWorkers(_ context.Context, filters models.WorkerFilters) ([]models.Worker, error) {
	s.gotFilters = filters
	return s.list, s.listErr
}

func (s *stubWorkerService) Count(_ context.Context) (int, error) {
	return s.count, s.countErr
}

type stubBookingService struct {
	slots        []string
	slotsErr     error
	created      *models.Booking
	emailSent    bool
	createErr    error
	gotCreate    models.CreateBookingRequest
	gotCustomer  *models.User
	cancelled    *models.Booking
	cancelErr    error
	rows         []models.Booking
	rowsErr      error
	gotRequester *models.User
	count        int
	countErr     error
}

func (s *stubBookingService) AvailableSlots(_ context.Context, _, _ string, _ int) ([]string, error) {
	return s.slots, s.slotsErr
}

func (s *stubBookingService) Create(_ context.Context, customer *models.User, req models.CreateBookingRequest) (*models.Booking, bool, error) {
	s.gotCustomer = customer
	s.gotCreate = req
	return s.created, s.emailSent, s.createErr
}

func (s *stubBookingService) Cancel(_ context.Context, _ string, requester *models.User) (*models.Booking, error) {
	s.gotRequester = requester
	return s.cancelled, s.cancelErr
}

func (s *stubBookingService) ListFor(_ context.Context, requester *models.User) ([]models.Booking, error) {
	s.gotRequester = requester
	return s.rows, s.rowsErr
}

func (s *stubBookingService) Count(_ context.Context) (int, error) {
	return s.count, s.countErr
}
