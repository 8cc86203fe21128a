package crisis

import (
	"fmt"
	"math/rand"
	"time"

	"campus-crisis/card"
)

// Player is a session participant. Owned exclusively by the Session; the
// transport layer refers to players only by ID.
type Player struct {
	ID     string
	Role   card.Role
	Hand   []card.ActionCard
	Color  string
	Played bool
}

// Session is the authoritative game state. It is a plain state machine
// with no internal locking: all mutation must funnel through a single
// serialization point (the room actor).
type Session struct {
	cfg     Config
	catalog *card.Catalog
	rng     *rand.Rand

	pressure   int
	crises     []card.CrisisCard
	players    []*Player
	started    bool
	failed     bool
	usedTitles map[string]bool

	rounds         int
	crisesResolved int
}

// PlayResult describes what a single accepted play did. A zero result with
// Applied=false means the play was silently rejected.
type PlayResult struct {
	Applied       bool
	Card          card.ActionCard
	TagMatch      bool
	NeedReduced   bool
	CrisisSolved  bool
	RoundComplete bool
	Failed        bool
}

var handColors = []string{"#4CAF50", "#2196F3", "#FF9800"}

func NewSession(cfg Config, catalog *card.Catalog) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, InvalidCatalogError("nil catalog")
	}
	if err := catalog.Validate(); err != nil {
		return nil, InvalidCatalogError(err.Error())
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.pressure = 0
	s.crises = nil
	s.players = nil
	s.started = false
	s.failed = false
	s.usedTitles = make(map[string]bool)
	s.rounds = 0
	s.crisesResolved = 0
}

// Join admits a new player. A failed or empty session is reclaimed first.
// Returns ErrSessionFull for any join into a started session, even one
// with an open seat: roles and hands are dealt once at start, so a
// mid-game joiner could never receive either. Reconnecting players
// reclaim their seat at the transport layer instead of rejoining.
// Auto-starts the game when the table fills.
func (s *Session) Join() (*Player, error) {
	if s.failed || len(s.players) == 0 {
		s.reset()
	}
	if s.started || len(s.players) >= s.cfg.MaxPlayers {
		return nil, ErrSessionFull
	}

	p := &Player{
		ID:    s.newPlayerID(),
		Color: handColors[len(s.players)%len(handColors)],
	}
	s.players = append(s.players, p)

	if len(s.players) == s.cfg.MaxPlayers && !s.started {
		s.start()
	}
	return p, nil
}

// start assigns roles by shuffling the fixed role set against join order,
// deals hands, and draws the first crisis.
func (s *Session) start() {
	roles := card.Roles()
	s.rng.Shuffle(len(roles), func(i, j int) { roles[i], roles[j] = roles[j], roles[i] })

	for i, p := range s.players {
		p.Role = roles[i%len(roles)]
		p.Played = false
		p.Hand = dealHand(s.rng, s.catalog, p.Role, s.cfg.HandSize)
	}

	s.started = true
	s.pressure = 0
	s.usedTitles = make(map[string]bool)
	s.crises = []card.CrisisCard{selectCrisis(s.rng, s.catalog, s.usedTitles)}
}

// Leave removes a player. When the last player leaves, the session resets
// to empty so a later join starts fresh.
func (s *Session) Leave(playerID string) bool {
	for i, p := range s.players {
		if p.ID == playerID {
			s.players = append(s.players[:i], s.players[i+1:]...)
			if len(s.players) == 0 {
				s.reset()
			}
			return true
		}
	}
	return false
}

// Restart clears all state back to the empty configuration.
func (s *Session) Restart() {
	s.reset()
}

// PlayCard resolves a single play. Invalid plays (unknown player, already
// played, bad index, no active crisis, game over) are silent no-ops: they
// are treated as client-side races, not faults.
func (s *Session) PlayCard(playerID string, cardIndex int) PlayResult {
	if !s.started || s.failed {
		return PlayResult{}
	}
	player := s.PlayerByID(playerID)
	if player == nil || player.Played {
		return PlayResult{}
	}
	if cardIndex < 0 || cardIndex >= len(player.Hand) {
		return PlayResult{}
	}
	if len(s.crises) == 0 {
		return PlayResult{}
	}

	played := player.Hand[cardIndex]
	crisis := &s.crises[0]
	result := PlayResult{Applied: true, Card: played}

	result.TagMatch = played.Matches(crisis.Tags)
	if result.TagMatch && crisis.Needs[played.EffectType] > 0 {
		crisis.Needs[played.EffectType]--
		result.NeedReduced = true
	}

	player.Hand = append(player.Hand[:cardIndex], player.Hand[cardIndex+1:]...)
	player.Played = true

	if crisis.Resolved() {
		result.CrisisSolved = true
		s.crisesResolved++
		s.rounds++
		s.crises = s.crises[1:]
		s.crises = append(s.crises, selectCrisis(s.rng, s.catalog, s.usedTitles))
		s.beginRound()
	} else if s.allPlayed() {
		result.RoundComplete = true
		s.rounds++
		s.pressure += s.cfg.RoundPenalty
		s.beginRound()
	}

	s.failed = s.pressure >= s.cfg.MaxPressure
	result.Failed = s.failed
	return result
}

// beginRound resets turn flags and refills every hand against the now
// active crisis.
func (s *Session) beginRound() {
	var tags []string
	if len(s.crises) > 0 {
		tags = s.crises[0].Tags
	}
	for _, p := range s.players {
		p.Played = false
		p.Hand = refillHand(s.rng, s.catalog, p.Role, p.Hand, tags, s.cfg.HandSize)
	}
}

func (s *Session) allPlayed() bool {
	for _, p := range s.players {
		if !p.Played {
			return false
		}
	}
	return len(s.players) > 0
}

func (s *Session) PlayerByID(id string) *Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// newPlayerID issues a session-scoped opaque id. The id space is small by
// design (display-friendly); uniqueness is enforced within the session.
func (s *Session) newPlayerID() string {
	for {
		id := fmt.Sprintf("%d", 1000+s.rng.Intn(9000))
		if s.PlayerByID(id) == nil {
			return id
		}
	}
}

func (s *Session) Started() bool     { return s.started }
func (s *Session) Failed() bool      { return s.failed }
func (s *Session) Pressure() int     { return s.pressure }
func (s *Session) MaxPressure() int  { return s.cfg.MaxPressure }
func (s *Session) PlayerCount() int  { return len(s.players) }
func (s *Session) Rounds() int       { return s.rounds }
func (s *Session) CrisesSolved() int { return s.crisesResolved }

// ActiveCrisis returns a copy of the current crisis, if any.
func (s *Session) ActiveCrisis() (card.CrisisCard, bool) {
	if len(s.crises) == 0 {
		return card.CrisisCard{}, false
	}
	return s.crises[0].Clone(), true
}

// Players returns the player list in join order. Callers must not mutate
// the returned players; the slice itself is a copy.
func (s *Session) Players() []*Player {
	out := make([]*Player, len(s.players))
	copy(out, s.players)
	return out
}

// RoleByPlayer maps player id to assigned role, for end-of-session reports.
func (s *Session) RoleByPlayer() map[string]string {
	roles := make(map[string]string, len(s.players))
	for _, p := range s.players {
		roles[p.ID] = string(p.Role)
	}
	return roles
}
