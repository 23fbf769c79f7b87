package economy

import "testing"

func TestSpendFailsWithoutChanging(t *testing.T) {
	r := &Resources{Funds: 100, Science: 5}
	if r.SpendFunds(150) {
		t.Fatal("overspend should fail")
	}
	if r.Funds != 100 {
		t.Fatalf("funds = %d after failed spend, want 100", r.Funds)
	}
	if !r.SpendFunds(100) {
		t.Fatal("exact spend should succeed")
	}
	if r.Funds != 0 {
		t.Fatalf("funds = %d, want 0", r.Funds)
	}
	if r.SpendScience(6) || r.Science != 5 {
		t.Fatal("science overspend must leave the balance alone")
	}
}

func TestNegativeAmountsIgnored(t *testing.T) {
	r := &Resources{Funds: 10, Science: 10}
	r.AddFunds(-5)
	r.AddScience(-5)
	if r.Funds != 10 || r.Science != 10 {
		t.Fatal("negative credits should be ignored")
	}
	if r.SpendFunds(-5) || r.SpendScience(-5) {
		t.Fatal("negative debits should fail")
	}
}

func TestLedgerFirstTouchOrder(t *testing.T) {
	l := NewLedger()
	l.Team("blue").AddFunds(50)
	l.Team("red").AddFunds(75)
	l.Team("blue").AddFunds(25)

	teams := l.Teams()
	if len(teams) != 2 || teams[0] != "blue" || teams[1] != "red" {
		t.Fatalf("teams = %v, want [blue red]", teams)
	}
	if got := l.Team("blue").Funds; got != 75 {
		t.Fatalf("blue funds = %d, want 75", got)
	}
	if got := l.Team("red").Funds; got != 75 {
		t.Fatalf("red funds = %d, want 75", got)
	}
}
