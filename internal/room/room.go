package room

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"campus-crisis/crisis"
	"campus-crisis/internal/codec"
	"campus-crisis/internal/history"

	"github.com/google/uuid"
)

// Room wraps a single session with an actor model: every mutation funnels
// through the event channel and is applied by one goroutine.
type Room struct {
	ID string

	mu       sync.RWMutex
	session  *crisis.Session
	members  map[string]*Member // playerID -> member
	closed   bool
	stopOnce sync.Once

	events chan Event
	done   chan struct{}

	// Server sequence for event ordering
	serverSeq uint64

	grace           time.Duration
	failureRecorded bool

	// Callbacks into the transport layer
	broadcast  func(connID string, data []byte)
	disconnect func(connID string)
	history    history.Service
}

// Member tracks a seated player's connection state. A member whose
// connection dropped keeps the seat until the grace period expires.
type Member struct {
	PlayerID    string
	ResumeToken string
	ConnID      string
	Online      bool
	LastSeen    time.Time
}

// Event types for the actor message queue
type EventType int

const (
	EventJoin EventType = iota
	EventPlayCard
	EventRestart
	EventConnLost
	EventClose
)

// Event represents a message to the room actor
type Event struct {
	Type        EventType
	ConnID      string
	PlayerID    string
	ResumeToken string
	CardIndex   int
	Timestamp   time.Time
	Response    chan error
}

var ErrRoomClosed = errors.New("room closed")

// New creates a room around a fresh session and starts the actor goroutine.
func New(
	id string,
	session *crisis.Session,
	grace time.Duration,
	broadcastFn func(connID string, data []byte),
	disconnectFn func(connID string),
	historyService history.Service,
) *Room {
	r := &Room{
		ID:         id,
		session:    session,
		members:    make(map[string]*Member),
		events:     make(chan Event, 256),
		done:       make(chan struct{}),
		grace:      grace,
		broadcast:  broadcastFn,
		disconnect: disconnectFn,
		history:    historyService,
	}

	go r.run()

	log.Printf("[Room %s] Created (grace=%s)", id, grace)
	return r
}

// run is the main actor loop
func (r *Room) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case event := <-r.events:
			err := r.handleEvent(event)
			if event.Response != nil {
				event.Response <- err
			}
		case <-ticker.C:
			r.tick()
		case <-r.done:
			log.Printf("[Room %s] Actor stopped", r.ID)
			return
		}
	}
}

func (r *Room) handleEvent(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed && e.Type != EventClose {
		return ErrRoomClosed
	}

	switch e.Type {
	case EventJoin:
		return r.handleJoin(e.ConnID, e.PlayerID, e.ResumeToken, e.Timestamp)
	case EventPlayCard:
		return r.handlePlayCard(e.ConnID, e.PlayerID, e.CardIndex)
	case EventRestart:
		return r.handleRestart()
	case EventConnLost:
		return r.handleConnLost(e.ConnID, e.Timestamp)
	case EventClose:
		r.stopLocked()
		return nil
	default:
		return fmt.Errorf("unknown event type: %d", e.Type)
	}
}

func (r *Room) handleJoin(connID, playerID, resumeToken string, now time.Time) error {
	if now.IsZero() {
		now = time.Now()
	}

	// Resume path: the client presents the credentials it was issued on its
	// first join. The seat must still exist (grace not yet expired).
	if playerID != "" && resumeToken != "" {
		member := r.members[playerID]
		if member != nil && member.ResumeToken == resumeToken {
			if member.Online && member.ConnID != connID {
				// Old socket superseded by the new one.
				r.disconnect(member.ConnID)
			}
			member.ConnID = connID
			member.Online = true
			member.LastSeen = now
			log.Printf("[Room %s] Player %s resumed", r.ID, playerID)
			r.sendIdentity(member)
			r.sendView(member)
			r.broadcastOccupancy(member.PlayerID)
			r.broadcastViews()
			return nil
		}
		// Stale credentials fall through to a fresh join.
	}

	player, err := r.session.Join()
	if err != nil {
		if errors.Is(err, crisis.ErrSessionFull) {
			log.Printf("[Room %s] Join rejected, session full", r.ID)
			r.sendError(connID, "session is full")
			r.disconnect(connID)
			return err
		}
		return err
	}
	// A failed or empty session is reclaimed by Join; drop members that the
	// reset orphaned.
	r.pruneOrphanedMembers()
	r.failureRecorded = false

	member := &Member{
		PlayerID:    player.ID,
		ResumeToken: uuid.NewString(),
		ConnID:      connID,
		Online:      true,
		LastSeen:    now,
	}
	r.members[player.ID] = member
	log.Printf("[Room %s] Player %s joined (%d seated)", r.ID, player.ID, r.session.PlayerCount())

	r.sendIdentity(member)
	r.sendView(member)
	r.broadcastOccupancy(member.PlayerID)
	r.broadcastViews()
	return nil
}

// pruneOrphanedMembers drops members whose player no longer exists in the
// session. Happens after the session resets itself on reclaim.
func (r *Room) pruneOrphanedMembers() {
	for playerID, member := range r.members {
		if r.session.PlayerByID(playerID) != nil {
			continue
		}
		if member.Online {
			r.disconnect(member.ConnID)
		}
		delete(r.members, playerID)
	}
}

func (r *Room) handlePlayCard(connID, playerID string, cardIndex int) error {
	member := r.members[playerID]
	if member == nil || member.ConnID != connID {
		// Plays from sockets that don't own the seat are ignored.
		return nil
	}

	result := r.session.PlayCard(playerID, cardIndex)
	if !result.Applied {
		return nil
	}
	log.Printf("[Room %s] Player %s played %q (match=%v solved=%v)",
		r.ID, playerID, result.Card.Title, result.TagMatch, result.CrisisSolved)

	if result.Failed && !r.failureRecorded {
		r.failureRecorded = true
		r.recordOutcome(history.OutcomeFailed)
		log.Printf("[Room %s] Session failed at pressure %d", r.ID, r.session.Pressure())
	}

	r.broadcastViews()
	return nil
}

func (r *Room) handleRestart() error {
	if r.session.PlayerCount() > 0 && r.session.Started() && !r.failureRecorded {
		r.recordOutcome(history.OutcomeReset)
	}
	r.session.Restart()
	r.failureRecorded = false

	log.Printf("[Room %s] Restarting, disconnecting %d members", r.ID, len(r.members))
	for playerID, member := range r.members {
		if member.Online {
			r.disconnect(member.ConnID)
		}
		delete(r.members, playerID)
	}
	return nil
}

func (r *Room) handleConnLost(connID string, ts time.Time) error {
	if ts.IsZero() {
		ts = time.Now()
	}
	playerID := r.memberByConn(connID)
	if playerID == "" {
		return nil
	}
	member := r.members[playerID]
	member.Online = false
	member.LastSeen = ts
	log.Printf("[Room %s] Player %s connection lost", r.ID, playerID)
	return nil
}

// memberByConn resolves the player id owning a connection, or "".
func (r *Room) memberByConn(connID string) string {
	for playerID, member := range r.members {
		if member.ConnID == connID {
			return playerID
		}
	}
	return ""
}

func (r *Room) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.releaseExpiredSeats(time.Now())
}

func (r *Room) releaseExpiredSeats(now time.Time) {
	removed := false
	for playerID, member := range r.members {
		if member.Online {
			continue
		}
		if now.Sub(member.LastSeen) < r.grace {
			continue
		}
		r.session.Leave(playerID)
		delete(r.members, playerID)
		removed = true
		log.Printf("[Room %s] Released seat of offline player %s after %s", r.ID, playerID, r.grace)
	}
	if removed {
		r.broadcastOccupancy("")
		r.broadcastViews()
	}
}

func (r *Room) recordOutcome(outcome history.Outcome) {
	if r.history == nil {
		return
	}
	summary := history.Summary{
		EndedAt:        time.Now().UTC(),
		Outcome:        outcome,
		Pressure:       r.session.Pressure(),
		MaxPressure:    r.session.MaxPressure(),
		CrisesResolved: r.session.CrisesSolved(),
		Rounds:         r.session.Rounds(),
		Roles:          r.session.RoleByPlayer(),
	}
	r.history.RecordSession(summary)
}

// SubmitEvent sends an event to the actor and waits for the result.
func (r *Room) SubmitEvent(e Event) error {
	e.Timestamp = time.Now()
	if e.Response == nil {
		e.Response = make(chan error, 1)
	}

	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return ErrRoomClosed
	}

	select {
	case r.events <- e:
	case <-r.done:
		return ErrRoomClosed
	}

	select {
	case err := <-e.Response:
		return err
	case <-r.done:
		return ErrRoomClosed
	}
}

// Stop shuts down the room actor
func (r *Room) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Room) stopLocked() {
	r.closed = true
	r.stopOnce.Do(func() {
		close(r.done)
	})
}

func (r *Room) IsClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

// --- Broadcast helpers ---

func (r *Room) nextSeq() uint64 {
	r.serverSeq++
	return r.serverSeq
}

// sendIdentity delivers the member's own id and resume token. Only the
// owning socket ever sees the token.
func (r *Room) sendIdentity(member *Member) {
	data, err := codec.EncodePlayerConnected(r.nextSeq(), codec.PlayerConnected{
		PlayerID:     member.PlayerID,
		ResumeToken:  member.ResumeToken,
		TotalPlayers: r.session.PlayerCount(),
	})
	if err != nil {
		log.Printf("[Room %s] Failed to encode identity: %v", r.ID, err)
		return
	}
	r.broadcast(member.ConnID, data)
}

// broadcastOccupancy announces the player count to everyone except the
// member named by exceptPlayerID, who already got the identity message.
func (r *Room) broadcastOccupancy(exceptPlayerID string) {
	data, err := codec.EncodePlayerConnected(r.nextSeq(), codec.PlayerConnected{
		TotalPlayers: r.session.PlayerCount(),
	})
	if err != nil {
		log.Printf("[Room %s] Failed to encode occupancy: %v", r.ID, err)
		return
	}
	for _, member := range r.members {
		if !member.Online || member.PlayerID == exceptPlayerID {
			continue
		}
		r.broadcast(member.ConnID, data)
	}
}

// sendView delivers one member's redacted projection.
func (r *Room) sendView(member *Member) {
	data, err := codec.EncodeGameState(r.nextSeq(), r.session.ViewFor(member.PlayerID))
	if err != nil {
		log.Printf("[Room %s] Failed to encode view for %s: %v", r.ID, member.PlayerID, err)
		return
	}
	r.broadcast(member.ConnID, data)
}

// broadcastViews projects and sends a per-player redacted view to every
// online member. Pre-start there is nothing to project; joiners get their
// own view directly.
func (r *Room) broadcastViews() {
	if !r.session.Started() {
		return
	}
	for _, member := range r.members {
		if !member.Online {
			continue
		}
		r.sendView(member)
	}
}

func (r *Room) sendError(connID, message string) {
	data, err := codec.EncodeError(r.nextSeq(), message)
	if err != nil {
		log.Printf("[Room %s] Failed to encode error: %v", r.ID, err)
		return
	}
	r.broadcast(connID, data)
}
