package adapter

// Server-side payloads of the six-cities API

// ServerLocation is a map point as sent by the server
type ServerLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// ServerCity is a city as sent by the server
type ServerCity struct {
	Name     string         `json:"name"`
	Location ServerLocation `json:"location"`
}

// ServerUser is the user returned by the login endpoints, also used for hosts and review authors
type ServerUser struct {
	ID        int    `json:"id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	IsPro     bool   `json:"is_pro"`
	Token     string `json:"token,omitempty"`
}

// ServerOffer is an offer as sent by the server
type ServerOffer struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Type         string         `json:"type"`
	Description  string         `json:"description"`
	Price        int            `json:"price"`
	Rating       float64        `json:"rating"`
	Bedrooms     int            `json:"bedrooms"`
	MaxAdults    int            `json:"max_adults"`
	Goods        []string       `json:"goods"`
	Location     ServerLocation `json:"location"`
	City         ServerCity     `json:"city"`
	Host         ServerUser     `json:"host"`
	PreviewImage string         `json:"preview_image"`
	Images       []string       `json:"images"`
	IsPremium    bool           `json:"is_premium"`
	IsFavorite   bool           `json:"is_favorite"`
}

// ServerReview is a review as sent by the server
type ServerReview struct {
	ID      int        `json:"id"`
	User    ServerUser `json:"user"`
	Rating  float64    `json:"rating"`
	Comment string     `json:"comment"`
	Date    string     `json:"date"`
}

// ServerReviewPost is the body of POST /comments/:id
type ServerReviewPost struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// ServerCredentials is the body of POST /login
type ServerCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
