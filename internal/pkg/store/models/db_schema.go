package models

import (
	"time"

	"creditscoring/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID        primitive.ObjectID `bson:"_id"`
	FullName  string             `bson:"fullName"`
	Username  string             `bson:"username,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type Account struct {
	ID         primitive.ObjectID `bson:"_id"`
	CustomerID primitive.ObjectID `bson:"customerId"`
	Balance    float64            `bson:"balance"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

// Transaction is an immutable historical fact; CreatedAt ordering is
// significant for all pattern calculations.
type Transaction struct {
	ID        primitive.ObjectID     `bson:"_id"`
	AccountID primitive.ObjectID     `bson:"accountId"`
	Amount    float64                `bson:"amount"`
	Type      consts.TransactionType `bson:"transactionType"`
	CreatedAt time.Time              `bson:"createdAt"`
}

type Loan struct {
	ID                    primitive.ObjectID `bson:"_id"`
	AccountID             primitive.ObjectID `bson:"accountId"`
	Amount                float64            `bson:"amount"`
	InterestRate          float64            `bson:"interestRate"`
	Status                consts.LoanStatus  `bson:"loanStatus"`
	RepaymentPeriodMonths int32              `bson:"repaymentPeriodMonths"`
	EndDate               time.Time          `bson:"endDate,omitempty"`
	CreatedAt             time.Time          `bson:"createdAt"`
}

type Repayment struct {
	ID        primitive.ObjectID     `bson:"_id"`
	LoanID    primitive.ObjectID     `bson:"loanId"`
	Amount    float64                `bson:"amount"`
	Status    consts.RepaymentStatus `bson:"status"`
	CreatedAt time.Time              `bson:"createdAt"`
}
