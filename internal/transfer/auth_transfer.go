package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SignInPayload is the identity handed over by the platform sign-in flow.
type SignInPayload struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type ProfileUpdate struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	BusinessName *string `json:"business_name"`
	BusinessType *string `json:"business_type"`
	AvatarURL    *string `json:"avatar_url"`
}

type PlanUpdate struct {
	Plan string `json:"plan"`
}
