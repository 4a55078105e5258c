package domain

// User represents an authenticated user of the rental service
type User struct {
	ID        int
	Email     string
	Name      string
	AvatarURL string
	IsPro     bool
	Token     string
}

// AuthStatus is the authorization state of the current user
type AuthStatus string

const (
	AuthStatusUnknown AuthStatus = "UNKNOWN"
	AuthStatusNoAuth  AuthStatus = "NO_AUTH"
	AuthStatusAuth    AuthStatus = "AUTH"
)

// Credentials are sent to the login endpoint
type Credentials struct {
	Email    string
	Password string
}

// DialogState represents user's current interaction state
type DialogState string

const (
	StateIdle            DialogState = "idle"
	StateWaitingEmail    DialogState = "waiting_email"
	StateWaitingPassword DialogState = "waiting_password"
	StateWaitingRating   DialogState = "waiting_rating"
	StateWaitingReview   DialogState = "waiting_review"
)

// DialogData holds temporary data for user's current dialog
type DialogData struct {
	State   DialogState
	Email   string
	OfferID int
	Review  *ReviewForm
}
