package dto

// OAuth2AccessToken carries the access token a client hands over.
type OAuth2AccessToken struct {
	AccessToken string `json:"accessToken"`
}
