// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"

	"classadmin/database"
	"classadmin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	CreateRecord(ctx context.Context, record models.PaymentRecord) (string, error)
	GetRecordsByStudent(ctx context.Context, studentID string) ([]models.PaymentRecord, error)
	GetPlanByID(ctx context.Context, planID string) (*models.PaymentPlan, error)
	GetPlans(ctx context.Context) ([]models.PaymentPlan, error)
	CreatePlan(ctx context.Context, plan models.PaymentPlan) (string, error)
}

type mongoPaymentRepo struct {
	records *mongo.Collection
	plans   *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.DB()
	return &mongoPaymentRepo{
		records: db.Collection("payment_records"),
		plans:   db.Collection("payment_plans"),
	}
}
