package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clipora/video-backend/internal/config"
	"github.com/clipora/video-backend/internal/constants"
	"github.com/clipora/video-backend/internal/metrics"
	"github.com/clipora/video-backend/internal/model"
	"github.com/clipora/video-backend/internal/repository"
	"github.com/clipora/video-backend/pkg/paymentgateway"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	// Single-SKU pricing: the unlock costs a fixed, server-determined
	// amount. The client never supplies a price.
	unlockPriceMinorUnits int64 = 999
	unlockCurrency              = "usd"

	appName             = "clipora"
	defaultPurchaseType = "unlimited_video_selection"
	unknownValue        = "unknown"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (CreatePaymentResult, error)
	ConfirmPayment(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error)
}

type payment struct {
	gateway       paymentgateway.PaymentGateway
	ledger        repository.Ledger
	keys          *repository.KeyMutex
	validate      *validator.Validate
	timeout       time.Duration
	strictConfirm bool
	logger        *zap.Logger
	metrics       *metrics.Metrics
}

func NewPaymentService(gateway paymentgateway.PaymentGateway, ledger repository.Ledger, keys *repository.KeyMutex,
	cfg *config.Config, logger *zap.Logger, metrics *metrics.Metrics) PaymentService {
	return &payment{
		gateway:       gateway,
		ledger:        ledger,
		keys:          keys,
		validate:      validator.New(),
		timeout:       cfg.PaymentGateway.Timeout,
		strictConfirm: cfg.Payments.StrictConfirm,
		logger:        logger,
		metrics:       metrics,
	}
}

func (p *payment) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (CreatePaymentResult, error) {
	if err := p.validateCreate(cmd); err != nil {
		p.metrics.RecordPaymentError("create", constants.ErrCodeValidationFailed)
		return CreatePaymentResult{}, err
	}

	purchaseType := cmd.PurchaseType
	if purchaseType == "" {
		purchaseType = defaultPurchaseType
	}

	now := time.Now()
	description := fmt.Sprintf("%s one-time unlock (%s)", appName, purchaseType)

	request := paymentgateway.CreateIntentRequest{
		Amount:       unlockPriceMinorUnits,
		Currency:     unlockCurrency,
		Description:  description,
		ReceiptEmail: cmd.UserEmail,
		Metadata: map[string]string{
			"userId":       cmd.UserID,
			"userName":     cmd.UserName,
			"userEmail":    cmd.UserEmail,
			"purchaseType": purchaseType,
			"appName":      appName,
			"appVersion":   orUnknown(cmd.AppVersion),
			"deviceInfo":   orUnknown(cmd.DeviceInfo),
			"createdAt":    now.Format(time.RFC3339),
			"amountUSD":    fmt.Sprintf("%.2f", float64(unlockPriceMinorUnits)/100),
		},
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	gatewayStart := time.Now()
	intent, err := p.gateway.CreateIntent(gatewayCtx, request)
	p.metrics.RecordGatewayCall("payment", "create_intent", time.Since(gatewayStart))

	if err != nil {
		p.logger.Error("Failed to create payment intent",
			zap.Error(err),
			zap.String("userID", cmd.UserID))
		p.metrics.RecordPaymentError("create", constants.ErrCodeGatewayError)

		return CreatePaymentResult{}, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	// The user upsert must land before the pending transaction becomes
	// visible, otherwise a confirmation racing this call could complete a
	// transaction whose user record does not exist yet.
	p.keys.Lock(cmd.UserID)
	p.upsertUser(cmd, now)

	transaction := model.Transaction{
		PaymentRef: intent.ID,
		UserID:     cmd.UserID,
		Amount:     unlockPriceMinorUnits,
		Currency:   unlockCurrency,
		Status:     model.TransactionStatusPending,
		CreatedAt:  now,
		Metadata: model.Metadata{
			PurchaseType: purchaseType,
			AppVersion:   orUnknown(cmd.AppVersion),
			DeviceInfo:   orUnknown(cmd.DeviceInfo),
		},
	}
	p.ledger.PutTransaction(transaction)
	p.keys.Unlock(cmd.UserID)

	p.metrics.RecordPaymentCreated()
	p.logger.Info("Payment intent created",
		zap.String("paymentRef", intent.ID),
		zap.String("userID", cmd.UserID),
		zap.Int64("amount", unlockPriceMinorUnits))

	result := CreatePaymentResult{
		ClientSecret: intent.ClientSecret,
		PaymentRef:   intent.ID,
		Amount:       unlockPriceMinorUnits,
		Currency:     unlockCurrency,
		UserDetails: UserDetails{
			UserID:    cmd.UserID,
			UserName:  cmd.UserName,
			UserEmail: cmd.UserEmail,
		},
		TransactionDetails: TransactionDetails{
			Description:  description,
			ReceiptEmail: cmd.UserEmail,
			CreatedAt:    now,
		},
	}

	return result, nil
}

func (p *payment) ConfirmPayment(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	if err := p.validate.Struct(cmd); err != nil {
		p.metrics.RecordPaymentError("confirm", constants.ErrCodeValidationFailed)
		return ConfirmPaymentResult{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New(constants.ErrMsgMissingConfirmation))
	}

	// The gateway is the only source of truth for payment status. A
	// caller-reported success is never sufficient.
	gatewayCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	gatewayStart := time.Now()
	intent, err := p.gateway.RetrieveIntent(gatewayCtx, cmd.PaymentRef)
	p.metrics.RecordGatewayCall("payment", "retrieve_intent", time.Since(gatewayStart))

	if err != nil {
		p.logger.Error("Failed to retrieve payment intent",
			zap.Error(err),
			zap.String("paymentRef", cmd.PaymentRef))
		p.metrics.RecordPaymentError("confirm", constants.ErrCodeGatewayError)

		return ConfirmPaymentResult{}, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	p.metrics.RecordPaymentConfirmed(intent.Status)

	if intent.Status != paymentgateway.IntentStatusSucceeded {
		p.logger.Warn("Payment not completed",
			zap.String("paymentRef", cmd.PaymentRef),
			zap.String("status", intent.Status))

		return ConfirmPaymentResult{}, NewServiceError(constants.ErrCodePaymentNotCompleted,
			fmt.Errorf("payment not completed, status: %s", intent.Status))
	}

	transitioned, err := p.completeTransaction(cmd.PaymentRef)
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	// User aggregates move only on the pending -> completed transition, so
	// confirming the same intent twice can never double-count a purchase.
	if transitioned {
		if err := p.recordPurchase(cmd.UserID, intent.Amount); err != nil {
			return ConfirmPaymentResult{}, err
		}
	}

	p.logger.Info("Payment confirmed",
		zap.String("paymentRef", cmd.PaymentRef),
		zap.String("userID", cmd.UserID),
		zap.Bool("transitioned", transitioned))

	result := ConfirmPaymentResult{
		Success:    true,
		Message:    "payment confirmed successfully",
		PaymentRef: cmd.PaymentRef,
		Amount:     intent.Amount,
		Status:     intent.Status,
	}

	return result, nil
}

func (p *payment) validateCreate(cmd CreatePaymentCommand) error {
	errs := p.validate.Struct(cmd)
	if errs == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(errs, &validationErrors) {
		for _, fieldError := range validationErrors {
			if fieldError.Tag() == "required" {
				return NewServiceError(constants.ErrCodeValidationFailed,
					errors.New(constants.ErrMsgMissingUserInfo))
			}
		}

		return NewServiceError(constants.ErrCodeValidationFailed,
			errors.New(constants.ErrMsgInvalidEmailFormat))
	}

	return NewServiceError(constants.ErrCodeValidationFailed, errs)
}

// upsertUser must run under the user's key lock.
func (p *payment) upsertUser(cmd CreatePaymentCommand, now time.Time) {
	user, err := p.ledger.GetUser(cmd.UserID)
	if err != nil {
		p.ledger.PutUser(model.User{
			UserID:              cmd.UserID,
			UserName:            cmd.UserName,
			UserEmail:           cmd.UserEmail,
			FirstSeen:           now,
			LastPurchaseAttempt: now,
			TotalAttempts:       1,
		})
		return
	}

	user.UserName = cmd.UserName
	user.UserEmail = cmd.UserEmail
	user.LastPurchaseAttempt = now
	user.TotalAttempts++
	p.ledger.PutUser(user)
}

// completeTransaction flips the transaction to completed and reports
// whether this call performed the transition. Re-confirming an already
// completed transaction is a no-op.
func (p *payment) completeTransaction(paymentRef string) (bool, error) {
	p.keys.Lock(paymentRef)
	defer p.keys.Unlock(paymentRef)

	transaction, err := p.ledger.GetTransaction(paymentRef)
	if err != nil {
		if p.strictConfirm {
			return false, NewServiceError(constants.ErrCodeRecordNotFound, err)
		}

		p.logger.Warn("No transaction for confirmed payment", zap.String("paymentRef", paymentRef))
		return false, nil
	}

	if transaction.Status == model.TransactionStatusCompleted {
		return false, nil
	}

	now := time.Now()
	transaction.Status = model.TransactionStatusCompleted
	transaction.CompletedAt = &now
	p.ledger.PutTransaction(transaction)

	return true, nil
}

func (p *payment) recordPurchase(userID string, amount int64) error {
	p.keys.Lock(userID)
	defer p.keys.Unlock(userID)

	user, err := p.ledger.GetUser(userID)
	if err != nil {
		if p.strictConfirm {
			return NewServiceError(constants.ErrCodeRecordNotFound, err)
		}

		p.logger.Warn("No user record for confirmed payment", zap.String("userID", userID))
		return nil
	}

	now := time.Now()
	user.SuccessfulPurchases++
	user.TotalSpent += amount
	user.LastSuccessfulPurchase = &now
	user.IsPremium = true
	p.ledger.PutUser(user)

	return nil
}

func orUnknown(value string) string {
	if value == "" {
		return unknownValue
	}
	return value
}
