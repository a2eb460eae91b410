// Package seed builds the initial in-memory snapshot the mock domain
// service starts from. Construction is deterministic for a given clock
// reading: fixed ids, fixed amounts, timestamps relative to now.
package seed

import (
	"time"

	"agent-dashboard/internal/domain"

	"github.com/shopspring/decimal"
)

type Snapshot struct {
	Players    []domain.Player
	Wallet     domain.WalletSummary
	Ledger     []domain.LedgerEntry
	Invites    []domain.Invite
	Payouts    []domain.Payout
	Statements []domain.Statement
	Goals      []domain.Goal
	Wars       []domain.War
	Alerts     []domain.Alert
	Deposits   []domain.DepositAttempt
}

func New(now time.Time) Snapshot {
	players := Players(now)
	return Snapshot{
		Players:    players,
		Wallet:     Wallet(),
		Ledger:     Ledger(now),
		Invites:    Invites(now),
		Payouts:    Payouts(now, players),
		Statements: Statements(now),
		Goals:      Goals(),
		Wars:       Wars(now),
		Alerts:     Alerts(),
		Deposits:   DepositAttempts(now),
	}
}

func money(s string) domain.Money {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *domain.Money {
	m := money(s)
	return &m
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func Players(now time.Time) []domain.Player {
	return []domain.Player{
		{
			ID: "pl_001", Name: "Marco Reyes", Username: "mreyes88",
			KycTier: domain.KycTierA, Status: domain.PlayerActive, RiskScore: 12,
			LastActive:       now.Add(-25 * time.Minute),
			BalanceAvailable: money("842.50"), BalancePending: money("120.00"), BalanceLocked: money("0"),
		},
		{
			ID: "pl_002", Name: "Lena Vasquez", Username: "lenav",
			KycTier: domain.KycTierA, Status: domain.PlayerActive, RiskScore: 8,
			LastActive:       now.Add(-2 * time.Hour),
			BalanceAvailable: money("1520.00"), BalancePending: money("0"), BalanceLocked: money("250.00"),
		},
		{
			ID: "pl_003", Name: "Dmitri Kovacs", Username: "dkov",
			KycTier: domain.KycTierB, Status: domain.PlayerFrozen, RiskScore: 74,
			LastActive:       now.Add(-3 * 24 * time.Hour),
			BalanceAvailable: money("310.25"), BalancePending: money("0"), BalanceLocked: money("310.25"),
		},
		{
			ID: "pl_004", Name: "Aisha Mbeki", Username: "aisha_m",
			KycTier: domain.KycTierB, Status: domain.PlayerActive, RiskScore: 31,
			LastActive:       now.Add(-40 * time.Minute),
			BalanceAvailable: money("95.00"), BalancePending: money("45.00"), BalanceLocked: money("0"),
		},
		{
			ID: "pl_005", Name: "Tomas Lindqvist", Username: "tlind",
			KycTier: domain.KycTierC, Status: domain.PlayerRestricted, RiskScore: 88,
			LastActive:       now.Add(-6 * 24 * time.Hour),
			BalanceAvailable: money("12.40"), BalancePending: money("0"), BalanceLocked: money("500.00"),
		},
		{
			ID: "pl_006", Name: "Priya Narang", Username: "priyan",
			KycTier: domain.KycTierA, Status: domain.PlayerActive, RiskScore: 5,
			LastActive:       now.Add(-10 * time.Minute),
			BalanceAvailable: money("2210.80"), BalancePending: money("300.00"), BalanceLocked: money("0"),
		},
		{
			ID: "pl_007", Name: "Jonah Okafor", Username: "jokafor",
			KycTier: domain.KycTierB, Status: domain.PlayerActive, RiskScore: 44,
			LastActive:       now.Add(-5 * time.Hour),
			BalanceAvailable: money("640.00"), BalancePending: money("80.00"), BalanceLocked: money("120.00"),
		},
		{
			ID: "pl_008", Name: "Sofia Marchetti", Username: "sofiam",
			KycTier: domain.KycTierC, Status: domain.PlayerActive, RiskScore: 57,
			LastActive:       now.Add(-90 * time.Minute),
			BalanceAvailable: money("58.90"), BalancePending: money("0"), BalanceLocked: money("0"),
		},
	}
}

func Wallet() domain.WalletSummary {
	available := money("12450.75")
	locked := money("3200.00")
	return domain.WalletSummary{
		Available: available,
		Locked:    locked,
		Total:     available.Add(locked),
	}
}

// Ledger history, newest first. BalanceAfter snapshots walk backwards from
// the current available balance so the trail reads consistently.
func Ledger(now time.Time) []domain.LedgerEntry {
	return []domain.LedgerEntry{
		{
			ID: "led_0007", At: now.Add(-6 * time.Hour),
			Type:        domain.LedgerCommissionCredit,
			Description: "Weekly commission — W34 statement",
			Amount:      money("1890.25"), BalanceAfter: moneyPtr("12450.75"),
			RefID: "st_w34",
		},
		{
			ID: "led_0006", At: now.Add(-20 * time.Hour),
			Type:        domain.LedgerWarEntryLock,
			Description: "War Entry Lock – Clash of Clans: Midnight Cup",
			Amount:      money("-1200.00"), BalanceAfter: moneyPtr("10560.50"),
			RefID: "war_002",
		},
		{
			ID: "led_0005", At: now.Add(-2 * 24 * time.Hour),
			Type:        domain.LedgerAgentDeposit,
			Description: "Agent deposit via USDT (TRC-20)",
			Amount:      money("5000.00"), BalanceAfter: moneyPtr("11760.50"),
			RefID:               "dep_001",
			SourceWalletAddress: "TXk9q4mP2vR8wN3jL5hB7cD1eF6gA0sYzQ",
		},
		{
			ID: "led_0004", At: now.Add(-3 * 24 * time.Hour),
			Type:        domain.LedgerDepositConv,
			Description: "Player deposit conversion — mreyes88",
			Amount:      money("420.00"), BalanceAfter: moneyPtr("6760.50"),
			RefID: "pl_001",
		},
		{
			ID: "led_0003", At: now.Add(-4 * 24 * time.Hour),
			Type:        domain.LedgerBonusPoolCofund,
			Description: "Bonus pool co-fund — August reload promo",
			Amount:      money("-750.00"), BalanceAfter: moneyPtr("6340.50"),
			RefID: "promo_aug_reload",
		},
		{
			ID: "led_0002", At: now.Add(-5 * 24 * time.Hour),
			Type:        domain.LedgerCreditReclaim,
			Description: "Credit reclaim — dormant player tlind",
			Amount:      money("190.50"), BalanceAfter: moneyPtr("7090.50"),
			RefID: "pl_005",
		},
		{
			ID: "led_0001", At: now.Add(-7 * 24 * time.Hour),
			Type:        domain.LedgerWarEntryRelease,
			Description: "War Entry Release – Delta Isles Showdown",
			Amount:      money("900.00"), BalanceAfter: moneyPtr("6900.00"),
			RefID: "war_004",
		},
	}
}

func Invites(now time.Time) []domain.Invite {
	return []domain.Invite{
		{
			ID: "inv_a1b2", Label: "VIP reactivation", Channel: domain.ChannelEmail,
			Status:    domain.InvitePending,
			CreatedAt: now.Add(-1 * 24 * time.Hour), ExpiresAt: now.Add(6 * 24 * time.Hour),
			Link: "https://clazino.app/invite?token=k3j9x2m8q1w7",
		},
		{
			ID: "inv_c3d4", Channel: domain.ChannelWhatsApp,
			Status:    domain.InviteAccepted,
			CreatedAt: now.Add(-9 * 24 * time.Hour), ExpiresAt: now.Add(-2 * 24 * time.Hour),
			AcceptedByPlayerID: "pl_008",
			Link:               "https://clazino.app/invite?token=p5r2t8y4u6i0",
		},
		{
			ID: "inv_e5f6", Label: "Telegram channel drop", Channel: domain.ChannelTelegram,
			Status:    domain.InvitePending,
			CreatedAt: now.Add(-12 * 24 * time.Hour), ExpiresAt: now.Add(-5 * 24 * time.Hour),
			Link: "https://clazino.app/invite?token=z9x8c7v6b5n4",
		},
		{
			ID: "inv_g7h8", Channel: domain.ChannelCopy,
			Status:    domain.InvitePending,
			CreatedAt: now.Add(-3 * time.Hour), ExpiresAt: now.Add(7 * 24 * time.Hour),
			Link: "https://clazino.app/invite?token=m1n2b3v4c5x6",
		},
	}
}

func Payouts(now time.Time, players []domain.Player) []domain.Payout {
	byIndex := func(i int) domain.Player {
		if i < len(players) {
			return players[i]
		}
		return domain.Player{ID: "pl_unknown", Name: "Unknown Player"}
	}

	p1, p2, p3 := byIndex(0), byIndex(1), byIndex(4)

	return []domain.Payout{
		{
			ID: "pay_9001", PlayerID: p1.ID, PlayerName: p1.Name,
			Amount: money("350.00"), Method: domain.MethodCrypto,
			Status:      domain.PayoutPending,
			RequestedAt: now.Add(-4 * time.Hour),
			DestinationMasked: "TXk9…sYzQ",
			Timeline: []domain.PayoutEvent{
				{At: now.Add(-4 * time.Hour), Status: "Requested"},
				{At: now.Add(-3 * time.Hour), Status: "Under review", Note: "Routine velocity check"},
			},
		},
		{
			ID: "pay_9002", PlayerID: p2.ID, PlayerName: p2.Name,
			Amount: money("1200.00"), Method: domain.MethodFiat,
			Status:      domain.PayoutCompleted,
			RequestedAt: now.Add(-2 * 24 * time.Hour),
			DestinationMasked: "**** 4417",
			TxHash:            "0x8f3a1c9e7b2d5f4a6c8e0b1d3f5a7c9e",
			Timeline: []domain.PayoutEvent{
				{At: now.Add(-2 * 24 * time.Hour), Status: "Requested"},
				{At: now.Add(-2*24*time.Hour + 2*time.Hour), Status: "Approved"},
				{At: now.Add(-1 * 24 * time.Hour), Status: "Completed", Note: "Settled via bank rail"},
			},
		},
		{
			ID: "pay_9003", PlayerID: p3.ID, PlayerName: p3.Name,
			Amount: money("500.00"), Method: domain.MethodCrypto,
			Status:      domain.PayoutFailed,
			RequestedAt: now.Add(-5 * 24 * time.Hour),
			DestinationMasked: "bc1q…7slz",
			Timeline: []domain.PayoutEvent{
				{At: now.Add(-5 * 24 * time.Hour), Status: "Requested"},
				{At: now.Add(-5*24*time.Hour + 1*time.Hour), Status: "Failed", Note: "KYC tier insufficient for amount"},
			},
		},
	}
}

func Statements(now time.Time) []domain.Statement {
	statements := []domain.Statement{
		{
			ID: "st_w34", WeekLabel: "Week 34 · Aug 18 – Aug 24",
			Status: domain.StatementPaid,
			GGR:    money("14200.00"), NGR: money("11800.00"),
			CommissionRate: decimal.RequireFromString("0.15"),
			Adjustments:    money("120.25"),
			PaidAt:         timePtr(now.Add(-6 * time.Hour)),
			LedgerRefID:    "led_0007",
		},
		{
			ID: "st_w33", WeekLabel: "Week 33 · Aug 11 – Aug 17",
			Status: domain.StatementAdjusted,
			GGR:    money("9800.00"), NGR: money("8150.00"),
			CommissionRate: decimal.RequireFromString("0.15"),
			Adjustments:    money("-340.00"),
			PaidAt:         timePtr(now.Add(-8 * 24 * time.Hour)),
			LedgerRefID:    "led_w33",
		},
		{
			ID: "st_w35", WeekLabel: "Week 35 · Aug 25 – Aug 31",
			Status: domain.StatementPending,
			GGR:    money("6100.00"), NGR: money("5020.00"),
			CommissionRate: decimal.RequireFromString("0.15"),
			Adjustments:    money("0"),
			LedgerRefID:    "",
		},
	}
	for i := range statements {
		statements[i].FinalPayout = statements[i].ComputeFinalPayout()
	}
	return statements
}

func Goals() []domain.Goal {
	return []domain.Goal{
		{
			ID: "goal_001", Type: domain.GoalClanWide,
			Title:          "Clan NGR 50K",
			Description:    "Reach 50,000 combined NGR this month to unlock the tier bonus.",
			Progress:       68, RemainingLabel: "16,000 NGR to go",
		},
		{
			ID: "goal_002", Type: domain.GoalIndividual,
			Title:          "Recruit 5 verified players",
			Description:    "Invites accepted and KYC cleared count toward this goal.",
			Progress:       40, RemainingLabel: "3 players to go",
		},
		{
			ID: "goal_003", Type: domain.GoalAllMember,
			Title:          "Every member active this week",
			Description:    "All clan members place at least one wager before Sunday.",
			Progress:       85, RemainingLabel: "2 members inactive",
		},
	}
}

func Wars(now time.Time) []domain.War {
	return []domain.War{
		{
			ID: "war_001", Name: "Friday Night Blitz",
			Status:   domain.WarUpcoming,
			StartsAt: now.Add(2 * 24 * time.Hour), EndsAt: now.Add(3 * 24 * time.Hour),
			EntryFee: money("800.00"), Opponent: "Neon Tigers",
		},
		{
			ID: "war_002", Name: "Midnight Cup",
			Status:   domain.WarActive,
			StartsAt: now.Add(-20 * time.Hour), EndsAt: now.Add(4 * time.Hour),
			EntryFee: money("1200.00"), Opponent: "Crimson Syndicate",
			Registered: true, ScoreYou: 14250, ScoreThem: 13890,
		},
		{
			ID: "war_003", Name: "Sunday Showdown",
			Status:   domain.WarUpcoming,
			StartsAt: now.Add(4 * 24 * time.Hour), EndsAt: now.Add(5 * 24 * time.Hour),
			EntryFee: money("500.00"), Opponent: "Golden Serpents",
		},
		{
			ID: "war_004", Name: "Delta Isles Showdown",
			Status:   domain.WarPast,
			StartsAt: now.Add(-8 * 24 * time.Hour), EndsAt: now.Add(-7 * 24 * time.Hour),
			EntryFee: money("900.00"), Opponent: "Iron Wolves",
			Registered: true, ScoreYou: 9100, ScoreThem: 11400,
		},
	}
}

func Alerts() []domain.Alert {
	return []domain.Alert{
		{
			ID: "al_001", Severity: domain.SeverityHigh,
			Title:       "Player frozen pending review",
			Description: "dkov was frozen after three failed withdrawal attempts.",
			DeepLink:    "/players/pl_003",
		},
		{
			ID: "al_002", Severity: domain.SeverityMedium,
			Title:       "Statement adjusted",
			Description: "Week 33 statement carries a -340.00 chargeback adjustment.",
			DeepLink:    "/commissions/st_w33",
		},
		{
			ID: "al_003", Severity: domain.SeverityLow,
			Title:       "War starts soon",
			Description: "Friday Night Blitz opens registration in 2 days.",
			DeepLink:    "/wars/war_001",
		},
	}
}

func DepositAttempts(now time.Time) []domain.DepositAttempt {
	return []domain.DepositAttempt{
		{
			ID:                   "dep_001",
			SourceWalletAddress:  "TXk9q4mP2vR8wN3jL5hB7cD1eF6gA0sYzQ",
			SourceWalletVerified: true,
			SourceWalletType:     domain.SourceWalletCoinductor,
			CasinoDepositAddress: "TQr7e1nV5kJ2mX8wB4cZ6dF0gH3sL9yAuP",
			Status:               domain.DepositConfirmed,
			InitiatedAt:          now.Add(-2 * 24 * time.Hour),
			CompletedAt:          timePtr(now.Add(-2*24*time.Hour + 18*time.Minute)),
			Amount:               moneyPtr("5000.00"),
			TransactionHash:      "7c1f4e9a2b8d6c3f5a0e7b4d9c2f8a1e",
		},
		{
			ID:                   "dep_002",
			SourceWalletAddress:  "TJm3w8qK1xN6vB2cR9dZ4eF7gH0sL5yAtE",
			SourceWalletVerified: false,
			SourceWalletType:     domain.SourceWalletManual,
			CasinoDepositAddress: "TQr7e1nV5kJ2mX8wB4cZ6dF0gH3sL9yAuP",
			Status:               domain.DepositNeedsReview,
			InitiatedAt:          now.Add(-7 * time.Hour),
		},
	}
}
