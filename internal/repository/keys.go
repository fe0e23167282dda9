package repository

import "fmt"

// Persisted key layout. Keys are relative to the deployment namespace the
// store was wrapped with.
const (
	keyCurrentUser = "currentUser"
	keyUsers       = "users"
	keyRememberMe  = "rememberMe"
	keyCart        = "cart"
	keyMenu        = "menu"
)

// userKey builds a per-user key such as "user_<id>_addresses".
func userKey(userID, family string) string {
	return fmt.Sprintf("user_%s_%s", userID, family)
}
