package card

// Role is one of the three hidden roles assigned at game start.
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
	RoleGuard   Role = "Guard"
)

// Roles returns the fixed role set in assignment order.
func Roles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleGuard}
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleGuard:
		return true
	}
	return false
}

// AllowedCardTypes lists the action-card categories a role may draw.
// Exhaustive over the fixed role set; an unassigned role draws nothing.
func (r Role) AllowedCardTypes() []CardType {
	switch r {
	case RoleTeacher:
		return []CardType{TypeTeacher, TypePolicy}
	case RoleStudent:
		return []CardType{TypeStudent, TypeSupport}
	case RoleGuard:
		return []CardType{TypeGuard, TypeSupport}
	}
	return nil
}

// CanDraw reports whether an action card of type t is eligible for this role.
func (r Role) CanDraw(t CardType) bool {
	for _, allowed := range r.AllowedCardTypes() {
		if allowed == t {
			return true
		}
	}
	return false
}
