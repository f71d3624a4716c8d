package accesspolicy

// Tier is a named access level resolved from a caller's role. The set is
// closed so authorization branches can be checked exhaustively instead of
// comparing bare strings.
type Tier string

const (
	TierUsers         Tier = "Users"
	TierModerator     Tier = "Moderator"
	TierAdministrator Tier = "Administrator"
)

// tierPrecedence orders resolution when policy rows overlap: a role granted
// to several tiers resolves to the most privileged one.
var tierPrecedence = []Tier{TierAdministrator, TierModerator, TierUsers}

// Precedence returns the deterministic resolution order.
func Precedence() []Tier {
	return tierPrecedence
}

// Elevated reports whether the tier may read every attendance record.
func (t Tier) Elevated() bool {
	return t == TierAdministrator || t == TierModerator
}

// Policy is one row of the access_control table: a tier label and the set of
// role references it is granted to. Externally administered, read-only here.
type Policy struct {
	ID        int64
	Name      string
	AllowedTo []int64
}

// Allows reports whether the policy grants the given role.
func (p Policy) Allows(roleID int64) bool {
	for _, id := range p.AllowedTo {
		if id == roleID {
			return true
		}
	}
	return false
}
