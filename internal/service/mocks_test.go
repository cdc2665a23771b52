package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/gateway"
	"travelapp/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of repository.BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Error injection
	GetByIDError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK PAYMENT REPOSITORY
// ──────────────────────────────────────────────

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
// TransitionStatus has the same compare-and-swap semantics as the postgres
// implementation, so concurrency tests exercise the real contract.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment // keyed by transaction ref

	// Counters for verification
	CreateCallCount     int32
	TransitionCallCount int32

	// Error injection
	CreateError     error
	TransitionError error
}

// NewMockPaymentRepository creates a new mock payment repository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

// AddPayment adds a payment to the mock repository.
func (m *MockPaymentRepository) AddPayment(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.TransactionRef] = payment
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.payments[payment.TransactionRef]; exists {
		return errors.New("duplicate transaction ref")
	}
	copy := *payment
	m.payments[payment.TransactionRef] = &copy
	return nil
}

func (m *MockPaymentRepository) GetByTransactionRef(ctx context.Context, txRef string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payment, ok := m.payments[txRef]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *payment
	return &copy, nil
}

func (m *MockPaymentRepository) ListByBookingID(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Payment
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			copy := *p
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockPaymentRepository) TransitionStatus(ctx context.Context, txRef string, from, to domain.PaymentStatus) (bool, error) {
	atomic.AddInt32(&m.TransitionCallCount, 1)
	if m.TransitionError != nil {
		return false, m.TransitionError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	payment, ok := m.payments[txRef]
	if !ok || payment.Status != from {
		return false, nil
	}
	payment.Status = to
	payment.UpdatedAt = time.Now().UTC()
	return true, nil
}

// GetPayment returns the stored payment for test assertions.
func (m *MockPaymentRepository) GetPayment(txRef string) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[txRef]
}

// CountPayments returns the number of stored payments.
func (m *MockPaymentRepository) CountPayments() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}

// ──────────────────────────────────────────────
// MOCK GATEWAY CLIENT
// ──────────────────────────────────────────────

// MockGateway is a mock implementation of gateway.Client.
type MockGateway struct {
	mu sync.Mutex

	// Counters for verification
	InitializeCallCount int32
	QueryCallCount      int32

	// Canned behavior
	InitializeResponse *gateway.InitializeResponse
	InitializeError    error
	QueryStatusResult  gateway.Status
	QueryStatusError   error

	// LastInitialize records the most recent initialize request.
	LastInitialize gateway.InitializeRequest
}

// NewMockGateway creates a mock gateway that accepts initialization.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		InitializeResponse: &gateway.InitializeResponse{CheckoutURL: "https://checkout.example/pay"},
		QueryStatusResult:  gateway.StatusSuccess,
	}
}

func (m *MockGateway) InitializeTransaction(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	atomic.AddInt32(&m.InitializeCallCount, 1)
	m.mu.Lock()
	m.LastInitialize = req
	m.mu.Unlock()
	if m.InitializeError != nil {
		return nil, m.InitializeError
	}
	return m.InitializeResponse, nil
}

func (m *MockGateway) QueryStatus(ctx context.Context, txRef string) (gateway.Status, error) {
	atomic.AddInt32(&m.QueryCallCount, 1)
	if m.QueryStatusError != nil {
		return gateway.StatusUnknown, m.QueryStatusError
	}
	return m.QueryStatusResult, nil
}

// LastRequest returns the most recent initialize request.
func (m *MockGateway) LastRequest() gateway.InitializeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LastInitialize
}

// ──────────────────────────────────────────────
// MOCK NOTIFIER
// ──────────────────────────────────────────────

// MockNotifier is a mock implementation of service.Notifier.
type MockNotifier struct {
	mu sync.Mutex

	NotifyCallCount int32
	Recipients      []string
	BookingIDs      []string

	// Error injection
	NotifyError error
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) NotifyPaymentSuccess(ctx context.Context, recipientEmail, bookingID string) error {
	atomic.AddInt32(&m.NotifyCallCount, 1)
	m.mu.Lock()
	m.Recipients = append(m.Recipients, recipientEmail)
	m.BookingIDs = append(m.BookingIDs, bookingID)
	m.mu.Unlock()
	return m.NotifyError
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of redis.LockStoreInterface.
type MockLockStore struct {
	mu   sync.Mutex
	held map[string]bool

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{held: make(map[string]bool)}
}

func (m *MockLockStore) AcquireVerifyLock(ctx context.Context, txRef string, ttl time.Duration) (bool, error) {
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[txRef] {
		return false, nil
	}
	m.held[txRef] = true
	return true, nil
}

func (m *MockLockStore) ReleaseVerifyLock(ctx context.Context, txRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, txRef)
	return nil
}
