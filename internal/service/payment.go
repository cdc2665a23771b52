package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"travelapp/internal/domain"
	"travelapp/internal/gateway"
	"travelapp/internal/redis"
	"travelapp/internal/repository"
)

const (
	// paymentCurrency is the only currency the gateway is charged in.
	paymentCurrency = "ETB"

	// verifyLockTTL caps how long a crashed verifier can hold the lock.
	verifyLockTTL = 30 * time.Second
)

// PaymentService drives payments through their lifecycle: Initiate creates
// a pending payment against the gateway, Verify reconciles the gateway's
// answer into the single terminal state the record will keep.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	gateway     gateway.Client
	notifier    Notifier
	locks       redis.LockStoreInterface

	callbackBaseURL string
	returnURL       string
}

// NewPaymentService creates a new PaymentService. locks may be nil; the
// conditional update at the repository is what guarantees a single
// transition, the lock only spares the gateway concurrent queries.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	gw gateway.Client,
	notifier Notifier,
	locks redis.LockStoreInterface,
	callbackBaseURL string,
	returnURL string,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		bookingRepo:     bookingRepo,
		gateway:         gw,
		notifier:        notifier,
		locks:           locks,
		callbackBaseURL: callbackBaseURL,
		returnURL:       returnURL,
	}
}

// InitiatePaymentResponse contains the result of initiating a payment.
type InitiatePaymentResponse struct {
	Payment     *domain.Payment
	CheckoutURL string
}

// InitiatePayment registers a transaction with the gateway for the
// booking's total price and persists a pending payment. Nothing is
// persisted unless the gateway accepted the transaction, so a rejection
// leaves no partial state behind.
func (s *PaymentService) InitiatePayment(ctx context.Context, bookingID string) (*InitiatePaymentResponse, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	txRef := newTransactionRef()

	init, err := s.gateway.InitializeTransaction(ctx, gateway.InitializeRequest{
		Amount:         booking.TotalPrice,
		Currency:       paymentCurrency,
		Email:          booking.GuestEmail,
		FirstName:      booking.GuestFirstName,
		LastName:       booking.GuestLastName,
		TransactionRef: txRef,
		CallbackURL:    fmt.Sprintf("%s/v1/payments/verify?tx_ref=%s", s.callbackBaseURL, txRef),
		ReturnURL:      s.returnURL,
		Title:          "Booking Payment",
		Description:    fmt.Sprintf("Payment for booking %s", booking.ID),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:             uuid.New().String(),
		BookingID:      booking.ID,
		Amount:         booking.TotalPrice,
		TransactionRef: txRef,
		Status:         domain.PaymentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &InitiatePaymentResponse{
		Payment:     payment,
		CheckoutURL: init.CheckoutURL,
	}, nil
}

// VerifyPaymentResponse contains the result of verifying a payment.
type VerifyPaymentResponse struct {
	Payment *domain.Payment

	// Transitioned reports whether this call moved the payment into its
	// terminal state. False for repeated or concurrent verifications.
	Transitioned bool
}

// VerifyPayment reconciles the gateway's status for txRef into the payment
// record. It is idempotent: once the payment is terminal, further calls
// report the current status without touching the record or re-notifying.
// Concurrent calls race on an atomic conditional update, so exactly one of
// them performs the transition and sends the notification.
func (s *PaymentService) VerifyPayment(ctx context.Context, txRef string) (*VerifyPaymentResponse, error) {
	if txRef == "" {
		return nil, ErrMissingTransactionRef
	}

	payment, err := s.paymentRepo.GetByTransactionRef(ctx, txRef)
	if err != nil {
		return nil, err
	}

	// Gateway callback retries and polling clients both land here; a
	// payment that already reached a terminal state is reported as-is.
	if payment.Status.IsTerminal() {
		return &VerifyPaymentResponse{Payment: payment}, nil
	}

	if s.locks != nil {
		acquired, lockErr := s.locks.AcquireVerifyLock(ctx, txRef, verifyLockTTL)
		if lockErr != nil {
			log.Printf("verify %s: lock acquisition failed: %v", txRef, lockErr)
		} else if acquired {
			defer func() {
				if relErr := s.locks.ReleaseVerifyLock(context.WithoutCancel(ctx), txRef); relErr != nil {
					log.Printf("verify %s: lock release failed: %v", txRef, relErr)
				}
			}()
		}
	}

	status, err := s.gateway.QueryStatus(ctx, txRef)
	if err != nil {
		// The payment stays pending; verification is safe to retry.
		return nil, err
	}

	// The caller may have disconnected while we waited on the gateway.
	// The transition still has to land.
	persistCtx := context.WithoutCancel(ctx)

	switch status {
	case gateway.StatusSuccess:
		transitioned, err := s.paymentRepo.TransitionStatus(persistCtx, txRef,
			domain.PaymentStatusPending, domain.PaymentStatusCompleted)
		if err != nil {
			return nil, err
		}

		payment.Status = domain.PaymentStatusCompleted
		if transitioned {
			s.notifySuccess(persistCtx, payment)
		}

		return &VerifyPaymentResponse{Payment: payment, Transitioned: transitioned}, nil

	case gateway.StatusFailed:
		transitioned, err := s.paymentRepo.TransitionStatus(persistCtx, txRef,
			domain.PaymentStatusPending, domain.PaymentStatusFailed)
		if err != nil {
			return nil, err
		}

		payment.Status = domain.PaymentStatusFailed

		return &VerifyPaymentResponse{Payment: payment, Transitioned: transitioned}, nil

	default:
		// Not terminal at the gateway yet; leave the payment pending.
		return nil, ErrVerificationPending
	}
}

// ListBookingPayments retrieves the payment audit trail for a booking.
func (s *PaymentService) ListBookingPayments(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	return s.paymentRepo.ListByBookingID(ctx, bookingID)
}

// notifySuccess sends the payment confirmation. Failures are logged, never
// propagated: the status transition already happened and stays.
func (s *PaymentService) notifySuccess(ctx context.Context, payment *domain.Payment) {
	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		log.Printf("payment %s: booking lookup for notification failed: %v", payment.ID, err)
		return
	}

	if err := s.notifier.NotifyPaymentSuccess(ctx, booking.GuestEmail, booking.ID); err != nil {
		log.Printf("payment %s: success notification failed: %v", payment.ID, err)
	}
}

// newTransactionRef generates the correlation token shared with the
// gateway. The 128-bit random UUID makes collisions practically impossible;
// the database uniqueness constraint backs that up.
func newTransactionRef() string {
	return "tx-" + uuid.New().String()
}
