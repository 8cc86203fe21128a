package crisis

import "campus-crisis/card"

// RedactedDescription replaces crisis text written for other roles.
const RedactedDescription = "****"

// CrisisView is the censored projection of an active crisis. Needs pass
// through unredacted: remaining demand is shared team knowledge.
type CrisisView struct {
	Level          int                       `json:"level"`
	Title          string                    `json:"title"`
	DescForTeacher string                    `json:"desc_for_teacher"`
	DescForStudent string                    `json:"desc_for_student"`
	DescForGuard   string                    `json:"desc_for_guard"`
	Needs          map[card.ResourceKind]int `json:"needs"`
}

// PlayerEntry is one player as seen by a particular viewer. The viewer's
// own entry carries the full hand; everyone else exposes only a count.
type PlayerEntry struct {
	ID                string            `json:"id"`
	Role              card.Role         `json:"role"`
	Hand              []card.ActionCard `json:"hand,omitempty"`
	HandCount         *int              `json:"hand_count,omitempty"`
	Color             string            `json:"color"`
	HasPlayedThisTurn bool              `json:"has_played_this_turn"`
}

// PlayerView is the per-player redacted snapshot broadcast after every
// mutation. Field names match the client wire format.
type PlayerView struct {
	Pressure      int           `json:"pressure"`
	MaxPressure   int           `json:"max_pressure"`
	ActiveCrises  []CrisisView  `json:"active_crises"`
	CurrentPlayer int           `json:"current_player"`
	Players       []PlayerEntry `json:"players"`
	Started       bool          `json:"started"`
	Failed        bool          `json:"failed"`
}

// ViewFor projects the session for a single viewer. Pure: no session state
// is mutated and nothing in the returned view aliases session state.
func (s *Session) ViewFor(viewerID string) PlayerView {
	view := PlayerView{
		Pressure:      s.pressure,
		MaxPressure:   s.cfg.MaxPressure,
		ActiveCrises:  make([]CrisisView, 0, len(s.crises)),
		CurrentPlayer: 1,
		Players:       make([]PlayerEntry, 0, len(s.players)),
		Started:       s.started,
		Failed:        s.failed,
	}

	viewer := s.PlayerByID(viewerID)
	for _, crisis := range s.crises {
		if viewer == nil {
			continue
		}
		cv := CrisisView{
			Level:          crisis.Level,
			Title:          crisis.Title,
			DescForTeacher: RedactedDescription,
			DescForStudent: RedactedDescription,
			DescForGuard:   RedactedDescription,
			Needs:          make(map[card.ResourceKind]int, len(crisis.Needs)),
		}
		switch viewer.Role {
		case card.RoleTeacher:
			cv.DescForTeacher = crisis.DescForTeacher
		case card.RoleStudent:
			cv.DescForStudent = crisis.DescForStudent
		case card.RoleGuard:
			cv.DescForGuard = crisis.DescForGuard
		}
		for kind, count := range crisis.Needs {
			cv.Needs[kind] = count
		}
		view.ActiveCrises = append(view.ActiveCrises, cv)
	}

	for _, p := range s.players {
		entry := PlayerEntry{
			ID:                p.ID,
			Role:              p.Role,
			Color:             p.Color,
			HasPlayedThisTurn: p.Played,
		}
		if p.ID == viewerID {
			entry.Hand = append([]card.ActionCard(nil), p.Hand...)
		} else {
			count := len(p.Hand)
			entry.HandCount = &count
		}
		view.Players = append(view.Players, entry)
	}

	return view
}
