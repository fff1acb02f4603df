package payment

import (
	"context"

	paymentRepo "classadmin/database/repository/payment"
	"classadmin/models"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, record models.PaymentRecord) (*models.PaymentRecord, error)
	GetHistory(ctx context.Context, studentID string) ([]models.PaymentLog, error)
	GetPlans(ctx context.Context) ([]models.PaymentPlan, error)
	CreatePlan(ctx context.Context, plan models.PaymentPlan) (*models.PaymentPlan, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo paymentRepo.PaymentRepository
}
