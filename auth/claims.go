package auth

import "github.com/golang-jwt/jwt/v5"

// Claims defines the JWT claims structure shared by the VCM services.
// It embeds jwt.RegisteredClaims for standard fields (exp, iat, etc.) and
// adds the user identity fields the admin console and entitlement checks
// need.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	Plan     string `json:"plan,omitempty"` // pricing tier id ("free", "pro", "agency")
}
