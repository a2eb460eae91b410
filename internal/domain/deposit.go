package domain

import "time"

type DepositSourceWalletType string

const (
	SourceWalletManual     DepositSourceWalletType = "manual"
	SourceWalletCoinductor DepositSourceWalletType = "coinductor"
)

type DepositStatus string

const (
	DepositPending     DepositStatus = "pending"
	DepositConfirmed   DepositStatus = "confirmed"
	DepositFailed      DepositStatus = "failed"
	DepositNeedsReview DepositStatus = "needs_review"
)

// DepositAttempt tracks an agent top-up from an external wallet into the
// casino deposit address. SourceWalletVerified is true only when the wallet
// was connected through Coinductor rather than entered by hand.
type DepositAttempt struct {
	ID                   string                  `json:"id"`
	SourceWalletAddress  string                  `json:"sourceWalletAddress"`
	SourceWalletVerified bool                    `json:"sourceWalletVerified"`
	SourceWalletType     DepositSourceWalletType `json:"sourceWalletType"`
	CasinoDepositAddress string                  `json:"casinoDepositAddress"`
	Status               DepositStatus           `json:"status"`
	InitiatedAt          time.Time               `json:"initiatedAt"`
	CompletedAt          *time.Time              `json:"completedAt,omitempty"`
	Amount               *Money                  `json:"amount,omitempty"`
	TransactionHash      string                  `json:"transactionHash,omitempty"`
}
