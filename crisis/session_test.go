package crisis

import (
	"testing"

	"campus-crisis/card"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 7
	s, err := NewSession(cfg, card.DefaultCatalog())
	if err != nil {
		t.Fatalf("NewSession err: %v", err)
	}
	return s
}

func fillSession(t *testing.T, s *Session) []*Player {
	t.Helper()
	players := make([]*Player, 0, 3)
	for i := 0; i < 3; i++ {
		p, err := s.Join()
		if err != nil {
			t.Fatalf("join %d err: %v", i, err)
		}
		players = append(players, p)
	}
	return players
}

// startedSession builds a running session with a known crisis and known
// hands, bypassing the random dealer.
func startedSession(t *testing.T, needs map[card.ResourceKind]int) *Session {
	t.Helper()
	s := newTestSession(t)

	generalSupport := card.ActionCard{Type: card.TypeStudent, Title: "General Support", EffectType: card.ResourceSupport, Tags: []string{card.TagGeneral}}
	generalPolicy := card.ActionCard{Type: card.TypeTeacher, Title: "General Policy", EffectType: card.ResourcePolicy, Tags: []string{card.TagGeneral}}
	guardSupport := card.ActionCard{Type: card.TypeGuard, Title: "Guard Support", EffectType: card.ResourceSupport, Tags: []string{card.TagGeneral}}
	offTopic := func(ct card.CardType) card.ActionCard {
		return card.ActionCard{Type: ct, Title: "Off Topic", EffectType: card.ResourceSupport, Tags: []string{"Cultural"}}
	}

	s.players = []*Player{
		{ID: "p1", Role: card.RoleStudent, Color: "#4CAF50", Hand: []card.ActionCard{generalSupport, offTopic(card.TypeStudent)}},
		{ID: "p2", Role: card.RoleTeacher, Color: "#2196F3", Hand: []card.ActionCard{generalPolicy, offTopic(card.TypeTeacher)}},
		{ID: "p3", Role: card.RoleGuard, Color: "#FF9800", Hand: []card.ActionCard{guardSupport, offTopic(card.TypeGuard)}},
	}
	s.started = true
	s.usedTitles = make(map[string]bool)
	cloned := make(map[card.ResourceKind]int, len(needs))
	for k, v := range needs {
		cloned[k] = v
	}
	s.crises = []card.CrisisCard{{
		Level: 1,
		Title: "Test Crisis",
		Needs: cloned,
		Tags:  []string{"Harassment"},
	}}
	return s
}

func TestThreeJoinsAutoStart(t *testing.T) {
	s := newTestSession(t)
	players := fillSession(t, s)

	if !s.Started() {
		t.Fatalf("expected session started after third join")
	}
	if s.Pressure() != 0 {
		t.Fatalf("pressure = %d at start", s.Pressure())
	}
	if _, ok := s.ActiveCrisis(); !ok {
		t.Fatalf("expected an active crisis at start")
	}

	seen := make(map[card.Role]bool)
	for _, p := range players {
		if !p.Role.Valid() {
			t.Fatalf("player %s has no role", p.ID)
		}
		if seen[p.Role] {
			t.Fatalf("role %s assigned twice", p.Role)
		}
		seen[p.Role] = true
		if len(p.Hand) != 3 {
			t.Fatalf("player %s hand size %d", p.ID, len(p.Hand))
		}
		for _, c := range p.Hand {
			if !p.Role.CanDraw(c.Type) {
				t.Fatalf("player %s (%s) holds ineligible card %q", p.ID, p.Role, c.Title)
			}
		}
	}
	if len(seen) != 3 {
		t.Fatalf("roles are not a permutation of the fixed set: %v", seen)
	}
}

func TestJoinRejectsFourthPlayer(t *testing.T) {
	s := newTestSession(t)
	fillSession(t, s)

	if _, err := s.Join(); err != ErrSessionFull {
		t.Fatalf("expected ErrSessionFull, got %v", err)
	}
	if s.PlayerCount() != 3 {
		t.Fatalf("player count = %d after rejected join", s.PlayerCount())
	}
}

func TestJoinRejectedIntoStartedSessionWithOpenSeat(t *testing.T) {
	s := newTestSession(t)
	players := fillSession(t, s)

	if !s.Leave(players[2].ID) {
		t.Fatalf("leave failed for %s", players[2].ID)
	}
	if !s.Started() || s.PlayerCount() != 2 {
		t.Fatalf("started=%v count=%d after one leave", s.Started(), s.PlayerCount())
	}

	// Roles and hands are dealt once at start; a mid-game joiner would sit
	// role-less with an empty hand and stall every round for the others.
	if _, err := s.Join(); err != ErrSessionFull {
		t.Fatalf("expected ErrSessionFull for join into started session, got %v", err)
	}
	for _, p := range s.players {
		if !p.Role.Valid() || len(p.Hand) == 0 {
			t.Fatalf("player %s left in invalid state: role=%q hand=%d", p.ID, p.Role, len(p.Hand))
		}
	}

	// The remaining players must still be able to close out a round.
	// Inflated needs keep the crisis unresolved so the round boundary is
	// the all-played predicate.
	s.crises[0].Needs = map[card.ResourceKind]int{card.ResourceSupport: 9, card.ResourcePolicy: 9}
	for _, p := range s.Players() {
		if r := s.PlayCard(p.ID, 0); !r.Applied {
			t.Fatalf("play by %s rejected", p.ID)
		}
	}
	for _, p := range s.players {
		if p.Played {
			t.Fatalf("turn flag for %s not reset after full round", p.ID)
		}
		if len(p.Hand) != 3 {
			t.Fatalf("hand of %s not refilled: %d", p.ID, len(p.Hand))
		}
	}
	if s.Rounds() != 1 {
		t.Fatalf("rounds = %d, want 1", s.Rounds())
	}
}

func TestJoinReclaimsFailedSession(t *testing.T) {
	s := newTestSession(t)
	fillSession(t, s)
	s.pressure = s.cfg.MaxPressure
	s.failed = true

	p, err := s.Join()
	if err != nil {
		t.Fatalf("join into failed session err: %v", err)
	}
	if s.Failed() || s.Started() {
		t.Fatalf("stale session was not reclaimed: failed=%v started=%v", s.Failed(), s.Started())
	}
	if s.PlayerCount() != 1 || s.players[0] != p {
		t.Fatalf("expected fresh single-player session")
	}
}

func TestPlayCardSilentRejections(t *testing.T) {
	s := startedSession(t, map[card.ResourceKind]int{card.ResourceSupport: 2})

	if r := s.PlayCard("nobody", 0); r.Applied {
		t.Fatalf("unknown player was accepted")
	}
	if r := s.PlayCard("p1", 5); r.Applied {
		t.Fatalf("out-of-range index was accepted")
	}
	if r := s.PlayCard("p1", -1); r.Applied {
		t.Fatalf("negative index was accepted")
	}

	if r := s.PlayCard("p1", 0); !r.Applied {
		t.Fatalf("valid play rejected")
	}
	// Same request again: card already removed, turn flag already set.
	if r := s.PlayCard("p1", 0); r.Applied {
		t.Fatalf("replayed request was not a no-op")
	}
	if len(s.players[0].Hand) != 1 {
		t.Fatalf("hand size %d after idempotent replay", len(s.players[0].Hand))
	}
}

func TestMismatchedPlayHasNoImmediatePenalty(t *testing.T) {
	s := startedSession(t, map[card.ResourceKind]int{card.ResourceSupport: 2})

	r := s.PlayCard("p1", 1) // off-topic card
	if !r.Applied || r.NeedReduced {
		t.Fatalf("unexpected result %+v", r)
	}
	if s.Pressure() != 0 {
		t.Fatalf("mismatched play raised pressure to %d; penalty is round-deferred", s.Pressure())
	}
}

func TestCrisisResolutionDrawsNextAndRefills(t *testing.T) {
	s := startedSession(t, map[card.ResourceKind]int{card.ResourceSupport: 2, card.ResourcePolicy: 1})

	if r := s.PlayCard("p1", 0); !r.NeedReduced || r.CrisisSolved {
		t.Fatalf("first play result %+v", r)
	}
	if r := s.PlayCard("p3", 0); !r.NeedReduced || r.CrisisSolved {
		t.Fatalf("second play result %+v", r)
	}
	r := s.PlayCard("p2", 0)
	if !r.CrisisSolved {
		t.Fatalf("third matching play did not resolve the crisis: %+v", r)
	}

	crisis, ok := s.ActiveCrisis()
	if !ok {
		t.Fatalf("no replacement crisis drawn")
	}
	if crisis.Title == "Test Crisis" {
		t.Fatalf("resolved crisis still active")
	}
	if s.CrisesSolved() != 1 {
		t.Fatalf("crises solved = %d", s.CrisesSolved())
	}
	if s.Pressure() != 0 {
		t.Fatalf("resolution raised pressure to %d", s.Pressure())
	}
	for _, p := range s.players {
		if p.Played {
			t.Fatalf("player %s turn flag not reset", p.ID)
		}
		if len(p.Hand) != 3 {
			t.Fatalf("player %s hand refilled to %d", p.ID, len(p.Hand))
		}
	}
}

func TestRoundCompletionPenalty(t *testing.T) {
	s := startedSession(t, map[card.ResourceKind]int{card.ResourceSupport: 2, card.ResourcePolicy: 1})

	s.PlayCard("p1", 1)
	s.PlayCard("p2", 1)
	if s.Pressure() != 0 {
		t.Fatalf("pressure %d before round completed", s.Pressure())
	}
	r := s.PlayCard("p3", 1)
	if !r.RoundComplete {
		t.Fatalf("third play did not complete the round: %+v", r)
	}
	if s.Pressure() != 2 {
		t.Fatalf("round penalty: pressure = %d, want 2", s.Pressure())
	}
	for _, p := range s.players {
		if p.Played {
			t.Fatalf("player %s turn flag not reset after round", p.ID)
		}
		if len(p.Hand) != 3 {
			t.Fatalf("player %s hand refilled to %d", p.ID, len(p.Hand))
		}
	}
}

func TestPressureFailureIsTerminalUntilRestart(t *testing.T) {
	s := startedSession(t, map[card.ResourceKind]int{card.ResourceSupport: 2, card.ResourcePolicy: 1})
	s.pressure = s.cfg.MaxPressure - 2

	s.PlayCard("p1", 1)
	s.PlayCard("p2", 1)
	r := s.PlayCard("p3", 1)
	if !r.Failed || !s.Failed() {
		t.Fatalf("expected failure at max pressure, got %+v", r)
	}
	if s.Pressure() < s.MaxPressure() {
		t.Fatalf("failed with pressure %d < max %d", s.Pressure(), s.MaxPressure())
	}

	if r := s.PlayCard("p1", 0); r.Applied {
		t.Fatalf("play accepted after failure")
	}

	s.Restart()
	if s.Failed() || s.Started() || s.PlayerCount() != 0 || s.Pressure() != 0 {
		t.Fatalf("restart did not clear state")
	}
}

func TestLeaveLastPlayerResetsSession(t *testing.T) {
	s := newTestSession(t)
	players := fillSession(t, s)

	for _, p := range players {
		if !s.Leave(p.ID) {
			t.Fatalf("leave %s failed", p.ID)
		}
	}
	if s.PlayerCount() != 0 || s.Started() {
		t.Fatalf("session not reset after last leave")
	}
	if s.Leave("ghost") {
		t.Fatalf("leave of unknown player reported success")
	}
}

func TestHandsStayRoleEligibleAcrossRounds(t *testing.T) {
	s := newTestSession(t)
	fillSession(t, s)

	// Churn through several rounds of arbitrary plays.
	for round := 0; round < 10; round++ {
		for _, p := range s.Players() {
			s.PlayCard(p.ID, 0)
			if s.Failed() {
				return
			}
		}
		for _, p := range s.Players() {
			for _, c := range p.Hand {
				if !p.Role.CanDraw(c.Type) {
					t.Fatalf("round %d: player %s (%s) holds ineligible card %q", round, p.ID, p.Role, c.Title)
				}
			}
		}
	}
}
