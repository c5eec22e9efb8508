package domain

// Position labels are kept verbatim from the legacy system so that existing
// records and report consumers keep working.
const (
	PositionAdministrator    = "Адміністратор"
	PositionDeveloper        = "Розробник"
	PositionTester           = "Тестувальник"
	PositionBusinessAnalyst  = "Бізнес-аналітик"
	PositionFinancialAnalyst = "Фінансовий-аналітик"
)

// Positions returns the closed set of role labels offered at registration.
func Positions() []string {
	return []string{
		PositionAdministrator,
		PositionDeveloper,
		PositionTester,
		PositionBusinessAnalyst,
		PositionFinancialAnalyst,
	}
}

// IsValidPosition reports whether p belongs to the closed position set.
func IsValidPosition(p string) bool {
	for _, known := range Positions() {
		if p == known {
			return true
		}
	}
	return false
}

const (
	RequesterIdCtxKey    = "mt-requesterId"
	SessionTokenCtxKey   = "mt-sessionToken"
	RequesterIdentityKey = "mt-requesterIdentity"
)
