package card

// CardType is the player-category tag on an action card. The category
// either names a role directly (teacher/student/guard) or a resource
// category shared by several roles.
type CardType string

const (
	TypeTeacher CardType = "teacher"
	TypeStudent CardType = "student"
	TypeGuard   CardType = "guard"
	TypePolicy  CardType = "policy"
	TypeSupport CardType = "support"
)

// ResourceKind is a crisis resource category. Crises demand resources by
// kind; each action card contributes exactly one kind.
type ResourceKind string

const (
	ResourceSupport ResourceKind = "support"
	ResourcePolicy  ResourceKind = "policy"
)

func (k ResourceKind) Valid() bool {
	return k == ResourceSupport || k == ResourcePolicy
}

// TagGeneral marks an action card that matches any crisis.
const TagGeneral = "General"

// ActionCard is an immutable catalog entry. Instances are dealt into hands
// and removed when played, never mutated.
type ActionCard struct {
	Type       CardType     `json:"type"`
	Title      string       `json:"title"`
	Effect     string       `json:"effect"`
	EffectType ResourceKind `json:"effect_type"`
	Tags       []string     `json:"tags"`
}

func (c ActionCard) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesAnyTag reports whether the card shares a topic tag with tags.
func (c ActionCard) MatchesAnyTag(tags []string) bool {
	for _, t := range tags {
		if c.HasTag(t) {
			return true
		}
	}
	return false
}

// Matches reports whether the card can address a crisis carrying tags:
// either a shared topic tag or the General wildcard.
func (c ActionCard) Matches(tags []string) bool {
	return c.MatchesAnyTag(tags) || c.HasTag(TagGeneral)
}

// CrisisCard is a catalog entry for a shared objective. Needs is the only
// field mutated during play, and only on a Clone, never on the catalog copy.
type CrisisCard struct {
	Level          int                  `json:"level"`
	Title          string               `json:"title"`
	DescForTeacher string               `json:"desc_for_teacher"`
	DescForStudent string               `json:"desc_for_student"`
	DescForGuard   string               `json:"desc_for_guard"`
	Needs          map[ResourceKind]int `json:"needs"`
	Tags           []string             `json:"tags"`
}

// Clone returns a copy whose Needs map does not alias the receiver.
func (c CrisisCard) Clone() CrisisCard {
	needs := make(map[ResourceKind]int, len(c.Needs))
	for k, v := range c.Needs {
		needs[k] = v
	}
	c.Needs = needs
	return c
}

// DescriptionFor returns the crisis text written for the given role.
func (c CrisisCard) DescriptionFor(r Role) string {
	switch r {
	case RoleTeacher:
		return c.DescForTeacher
	case RoleStudent:
		return c.DescForStudent
	case RoleGuard:
		return c.DescForGuard
	}
	return ""
}

// Resolved reports whether every remaining need is zero.
func (c CrisisCard) Resolved() bool {
	for _, n := range c.Needs {
		if n > 0 {
			return false
		}
	}
	return true
}
