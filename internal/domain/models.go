package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money is a signed amount in the agent's settlement currency. Ledger
// amounts are positive for credits and negative for debits.
type Money = decimal.Decimal

type KycTier string

const (
	KycTierA KycTier = "Tier A"
	KycTierB KycTier = "Tier B"
	KycTierC KycTier = "Tier C"
)

type PlayerStatus string

const (
	PlayerActive     PlayerStatus = "Active"
	PlayerFrozen     PlayerStatus = "Frozen"
	PlayerRestricted PlayerStatus = "Restricted"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "Pending"
	InviteAccepted InviteStatus = "Accepted"
	InviteExpired  InviteStatus = "Expired"
)

type InviteChannel string

const (
	ChannelEmail    InviteChannel = "Email"
	ChannelWhatsApp InviteChannel = "WhatsApp"
	ChannelTelegram InviteChannel = "Telegram"
	ChannelSMS      InviteChannel = "SMS"
	ChannelCopy     InviteChannel = "Copy"
)

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "Pending"
	PayoutCompleted PayoutStatus = "Completed"
	PayoutFailed    PayoutStatus = "Failed"
)

type PayoutMethod string

const (
	MethodCrypto PayoutMethod = "Crypto"
	MethodFiat   PayoutMethod = "Fiat"
)

type LedgerType string

const (
	LedgerAgentDeposit     LedgerType = "Agent Deposit"
	LedgerCommissionCredit LedgerType = "Commission Credit"
	LedgerDepositConv      LedgerType = "Player Deposit Conversion"
	LedgerCreditReclaim    LedgerType = "Credit Reclaim"
	LedgerWarEntryLock     LedgerType = "War Entry Lock"
	LedgerWarEntryRelease  LedgerType = "War Entry Release"
	LedgerBonusPoolCofund  LedgerType = "Bonus Pool Co-fund"
)

type StatementStatus string

const (
	StatementPaid     StatementStatus = "Paid"
	StatementPending  StatementStatus = "Pending"
	StatementAdjusted StatementStatus = "Adjusted"
)

type GoalType string

const (
	GoalIndividual GoalType = "Individual"
	GoalClanWide   GoalType = "Clan-wide"
	GoalAllMember  GoalType = "All-member"
)

type WarStatus string

const (
	WarUpcoming WarStatus = "Upcoming"
	WarActive   WarStatus = "Active"
	WarPast     WarStatus = "Past"
)

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "High"
	SeverityMedium AlertSeverity = "Medium"
	SeverityLow    AlertSeverity = "Low"
)

type Player struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Username         string       `json:"username"`
	KycTier          KycTier      `json:"kycTier"`
	Status           PlayerStatus `json:"status"`
	RiskScore        int          `json:"riskScore"` // 0-100
	LastActive       time.Time    `json:"lastActive"`
	BalanceAvailable Money        `json:"balanceAvailable"`
	BalancePending   Money        `json:"balancePending"`
	BalanceLocked    Money        `json:"balanceLocked"`
}

type Invite struct {
	ID                 string        `json:"id"`
	Label              string        `json:"label,omitempty"`
	Channel            InviteChannel `json:"channel"`
	Status             InviteStatus  `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
	ExpiresAt          time.Time     `json:"expiresAt"`
	AcceptedByPlayerID string        `json:"acceptedByPlayerId,omitempty"`
	Link               string        `json:"link"`
}

type PayoutEvent struct {
	At     time.Time `json:"at"`
	Status string    `json:"status"`
	Note   string    `json:"note,omitempty"`
}

type Payout struct {
	ID                string        `json:"id"`
	PlayerID          string        `json:"playerId"`
	PlayerName        string        `json:"playerName"`
	Amount            Money         `json:"amount"`
	Method            PayoutMethod  `json:"method"`
	Status            PayoutStatus  `json:"status"`
	RequestedAt       time.Time     `json:"requestedAt"`
	DestinationMasked string        `json:"destinationMasked"`
	TxHash            string        `json:"txHash,omitempty"`
	Timeline          []PayoutEvent `json:"timeline"`
}

// Clone returns a copy whose timeline does not share backing storage
// with the original.
func (p Payout) Clone() Payout {
	out := p
	out.Timeline = make([]PayoutEvent, len(p.Timeline))
	copy(out.Timeline, p.Timeline)
	return out
}

type Statement struct {
	ID             string          `json:"id"`
	WeekLabel      string          `json:"weekLabel"`
	Status         StatementStatus `json:"status"`
	GGR            Money           `json:"ggr"`
	NGR            Money           `json:"ngr"`
	CommissionRate decimal.Decimal `json:"commissionRate"` // 0-1
	Adjustments    Money           `json:"adjustments"`
	FinalPayout    Money           `json:"finalPayout"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
	LedgerRefID    string          `json:"ledgerRefId"`
}

// ComputeFinalPayout derives the payable amount from the statement's
// own figures: ngr * commissionRate + adjustments.
func (s Statement) ComputeFinalPayout() Money {
	return s.NGR.Mul(s.CommissionRate).Add(s.Adjustments)
}

type LedgerEntry struct {
	ID                  string     `json:"id"`
	At                  time.Time  `json:"at"`
	Type                LedgerType `json:"type"`
	Description         string     `json:"description"`
	Amount              Money      `json:"amount"` // + credit / - debit
	BalanceAfter        *Money     `json:"balanceAfter,omitempty"`
	RefID               string     `json:"refId"`
	SourceWalletAddress string     `json:"sourceWalletAddress,omitempty"`
}

type WalletSummary struct {
	Available Money `json:"available"`
	Locked    Money `json:"locked"`
	Total     Money `json:"total"`
}

type Goal struct {
	ID             string   `json:"id"`
	Type           GoalType `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Progress       int      `json:"progress"` // 0-100
	RemainingLabel string   `json:"remainingLabel"`
}

type War struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Status     WarStatus `json:"status"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	EntryFee   Money     `json:"entryFee"`
	Opponent   string    `json:"opponent"`
	Registered bool      `json:"registered"`
	ScoreYou   int       `json:"scoreYou"`
	ScoreThem  int       `json:"scoreThem"`
}

type Alert struct {
	ID          string        `json:"id"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DeepLink    string        `json:"deepLink"`
}
