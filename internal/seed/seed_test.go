package seed

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestStatementsCarryDerivedFinalPayout(t *testing.T) {
	for _, st := range Statements(testNow) {
		want := st.ComputeFinalPayout()
		if !st.FinalPayout.Equal(want) {
			t.Fatalf("statement %s: finalPayout %s, derived %s", st.ID, st.FinalPayout, want)
		}
	}
}

func TestWalletTotalIsAvailablePlusLocked(t *testing.T) {
	wallet := Wallet()
	if !wallet.Total.Equal(wallet.Available.Add(wallet.Locked)) {
		t.Fatalf("total=%s available=%s locked=%s", wallet.Total, wallet.Available, wallet.Locked)
	}
}

func TestPayoutNamesMatchPlayers(t *testing.T) {
	players := Players(testNow)
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	for _, payout := range Payouts(testNow, players) {
		want, ok := names[payout.PlayerID]
		if !ok {
			t.Fatalf("payout %s references unknown player %s", payout.ID, payout.PlayerID)
		}
		if payout.PlayerName != want {
			t.Fatalf("payout %s: snapshot name %q, player is %q", payout.ID, payout.PlayerName, want)
		}
	}
}

func TestSnapshotIDsAreUnique(t *testing.T) {
	snap := New(testNow)

	check := func(kind string, ids []string) {
		t.Helper()
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if id == "" {
				t.Fatalf("%s: empty id", kind)
			}
			if seen[id] {
				t.Fatalf("%s: duplicate id %s", kind, id)
			}
			seen[id] = true
		}
	}

	var ids []string
	for _, p := range snap.Players {
		ids = append(ids, p.ID)
	}
	check("players", ids)

	ids = ids[:0]
	for _, e := range snap.Ledger {
		ids = append(ids, e.ID)
	}
	check("ledger", ids)

	ids = ids[:0]
	for _, i := range snap.Invites {
		ids = append(ids, i.ID)
	}
	check("invites", ids)

	ids = ids[:0]
	for _, w := range snap.Wars {
		ids = append(ids, w.ID)
	}
	check("wars", ids)
}

func TestInviteWindowsAreOrdered(t *testing.T) {
	for _, invite := range Invites(testNow) {
		if !invite.CreatedAt.Before(invite.ExpiresAt) {
			t.Fatalf("invite %s: createdAt %s not before expiresAt %s",
				invite.ID, invite.CreatedAt, invite.ExpiresAt)
		}
	}
}

func TestWarWindowsAreOrdered(t *testing.T) {
	for _, war := range Wars(testNow) {
		if !war.StartsAt.Before(war.EndsAt) {
			t.Fatalf("war %s: startsAt %s not before endsAt %s", war.ID, war.StartsAt, war.EndsAt)
		}
		if war.EntryFee.Sign() < 0 {
			t.Fatalf("war %s: negative entry fee %s", war.ID, war.EntryFee)
		}
	}
}
