package auth

import "minimart/internal/models"

// CanModify decides whether the authenticated actor may act on the
// resources of the user identified by targetEmail: only the user
// themselves or an admin.
func CanModify(claims *models.UserClaims, targetEmail string) bool {
	if claims == nil {
		return false
	}
	return claims.Email == targetEmail || claims.IsAdmin()
}
