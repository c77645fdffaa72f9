package auth

// CanMutate decides whether the authenticated principal may modify or delete
// the resource owned by ownerID. The check is exact identifier equality and
// fails closed: an empty principal or owner ID always denies.
//
// Callers must confirm the resource exists before asking; a missing resource
// is a not-found outcome, not a denial.
func CanMutate(principalID, ownerID string) bool {
	if principalID == "" || ownerID == "" {
		return false
	}
	return principalID == ownerID
}
