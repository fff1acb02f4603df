// File: database/repository/payment/crud.go
package paymentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"classadmin/models"
)

func (r *mongoPaymentRepo) CreateRecord(ctx context.Context, record models.PaymentRecord) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if _, err := r.records.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

func (r *mongoPaymentRepo) GetRecordsByStudent(ctx context.Context, studentID string) ([]models.PaymentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.records.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PaymentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoPaymentRepo) GetPlanByID(ctx context.Context, planID string) (*models.PaymentPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.PaymentPlan
	if err := r.plans.FindOne(ctx, bson.M{"id": planID}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mongoPaymentRepo) GetPlans(ctx context.Context) ([]models.PaymentPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.plans.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.PaymentPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mongoPaymentRepo) CreatePlan(ctx context.Context, plan models.PaymentPlan) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt == "" {
		plan.CreatedAt = time.Now().UTC().Format("2006-01-02")
	}
	if _, err := r.plans.InsertOne(ctx, plan); err != nil {
		return "", err
	}
	return plan.ID, nil
}
