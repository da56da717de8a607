package utils

// IsAdmin reports whether role grants curation and on-behalf-of writes.
func IsAdmin(role string) bool {
	return role == RoleAdmin
}

// CanActFor is the owner-or-admin predicate.
func CanActFor(callerID, role, ownerID string) bool {
	if callerID == "" {
		return false
	}
	return callerID == ownerID || IsAdmin(role)
}

// ResolveActor picks the user a write is performed for. An empty requested id
// means the caller itself.
func ResolveActor(callerID, role, requestedID string) (string, error) {
	if callerID == "" {
		return "", ErrUnauthorized
	}
	if requestedID == "" {
		return callerID, nil
	}
	if !CanActFor(callerID, role, requestedID) {
		return "", ErrPermissionDenied
	}
	return requestedID, nil
}
