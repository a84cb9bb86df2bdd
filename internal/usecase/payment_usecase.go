package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/sirupsen/logrus"
)

// 決済確認画面の状態 verifying → success / pending / error
type VerificationState string

const (
	VerificationVerifying VerificationState = "verifying"
	VerificationSuccess   VerificationState = "success"
	VerificationPending   VerificationState = "pending"
	VerificationError     VerificationState = "error"
)

// SideEffectは主の遷移とは別に結果を持つ付随処理（失敗しても状態は変えない）
type SideEffect struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

func (s SideEffect) OK() bool { return s.Err == nil }

// Navigationは一度だけ予約する画面遷移
type Navigation struct {
	Path  string        `json:"path"`
	After time.Duration `json:"after"`
}

type Verification struct {
	State       VerificationState `json:"state"`
	Payment     *model.Payment    `json:"payment,omitempty"`
	Message     string            `json:"message,omitempty"`
	SideEffects []SideEffect      `json:"sideEffects,omitempty"`
	Navigation  *Navigation       `json:"navigation,omitempty"`
}

type PaymentUsecase struct {
	paymentRepo repo.PaymentRepository
	cartRepo    repo.CartRepository
	log         logrus.FieldLogger
	delay       time.Duration
}

func NewPaymentUsecase(
	paymentRepo repo.PaymentRepository,
	cartRepo repo.CartRepository,
	log logrus.FieldLogger,
	redirectDelay time.Duration,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		log:         orDiscard(log),
		delay:       redirectDelay,
	}
}

// Verifyは session_id で1回だけ確認する（再試行・ポーリングなし）
func (u *PaymentUsecase) Verify(ctx context.Context, id model.Identity, sessionID string) Verification {
	v := Verification{State: VerificationVerifying}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		v.State = VerificationError
		v.Message = "Missing session ID"
		return v
	}

	p, err := u.paymentRepo.Verify(ctx, sessionID)
	if err != nil {
		u.log.WithError(err).WithField("session_id", sessionID).Warn("payment verification failed")
		v.State = VerificationError
		v.Message = err.Error()
		return v
	}
	v.Payment = &p

	switch p.Status {
	case model.PaymentStatusCompleted:
		v.State = VerificationSuccess
		v.SideEffects = append(v.SideEffects, u.clearCart(ctx, id))
		v.Navigation = &Navigation{Path: "/orders", After: u.delay}
	case model.PaymentStatusPending:
		v.State = VerificationPending
	default:
		v.State = VerificationError
		v.Message = fmt.Sprintf("Payment status: %s", p.Status)
	}
	return v
}

// 決済後のカート削除（best-effort）
func (u *PaymentUsecase) clearCart(ctx context.Context, id model.Identity) SideEffect {
	se := SideEffect{Name: "cart.clear"}
	if !id.IsAuthenticated() {
		se.Err = ErrAuthenticationRequired
	} else {
		se.Err = u.cartRepo.Clear(ctx)
	}
	if se.Err != nil {
		u.log.WithError(se.Err).WithField("user_id", id.UserID).Error("failed to clear cart after payment")
	}
	return se
}
