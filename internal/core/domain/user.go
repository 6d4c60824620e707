package domain

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is a back-office operator account.
type User struct {
	UserID         string       `json:"userID"` // Primary key (UUID)
	Username       string       `json:"username"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"` // Empty for OAuth-only accounts
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Google 'sub' claim for OAuth accounts
	IsAdmin        bool         `json:"isAdmin"`
	IsActive       bool         `json:"isActive"`
	AuditFields
}
