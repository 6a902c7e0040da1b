package domain

// CredentialsFile is the service account document referenced by Credentials.Path or
// carried inline by Credentials.CredentialsString.
type CredentialsFile struct {
	ClientID   string `json:"clientID"`
	ClientName string `json:"clientName"`
	KeyID      string `json:"keyID"`
	TokenURI   string `json:"tokenURI"`
	PrivateKey string `json:"privateKey"`
}

// SignedDataTokensRequest asks for each data token to be signed with the service account key.
type SignedDataTokensRequest struct {
	DataTokens []string
	TTL        int // seconds; zero uses DefaultSignedTokenTTL
}

// SignedDataToken is a data token together with its signed form.
type SignedDataToken struct {
	Token       string
	SignedToken string
	ExpiresAt   int64
}
