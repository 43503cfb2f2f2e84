package models

// TokenPair is what a successful login or registration hands back.
// RefreshToken may be empty; the API does not always issue one.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
