package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleUser      UserRole = "user"
	UserRoleVolunteer UserRole = "volunteer"
)

// IsStaff reports whether the role grants shelter-wide read/write scope.
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleVolunteer
}

// UserStatus represents account status
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// Address holds a user's postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Preferences holds notification preference flags.
type Preferences struct {
	Notifications bool `json:"notifications"`
	EmailUpdates  bool `json:"emailUpdates"`
	SMSAlerts     bool `json:"smsAlerts"`
}

// PetInteractions tracks pets the user has adopted, fostered or favorited.
type PetInteractions struct {
	AdoptedPets  []string `json:"adoptedPets"`
	FosteredPets []string `json:"fosteredPets"`
	FavoritePets []string `json:"favoritePets"`
}

// VerificationStatus tracks identity verification progress.
type VerificationStatus struct {
	EmailVerified   bool      `json:"emailVerified"`
	PhoneVerified   bool      `json:"phoneVerified"`
	BackgroundCheck bool      `json:"backgroundCheck"`
	DateVerified    null.Time `json:"dateVerified,omitempty"`
}

// AccountDetails tracks account lifecycle metadata.
type AccountDetails struct {
	DateCreated   time.Time `json:"dateCreated"`
	LastLogin     time.Time `json:"lastLogin"`
	LastUpdated   time.Time `json:"lastUpdated"`
	LoginAttempts int       `json:"loginAttempts"`
}

// User represents a shelter account. The password hash is write-only: it is
// never serialized on any read path.
type User struct {
	ID                 uuid.UUID          `json:"id"`
	Avatar             string             `json:"avatar"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Email              string             `json:"email"`
	PhoneNumber        string             `json:"phoneNumber"`
	PasswordHash       string             `json:"-"`
	Address            Address            `json:"address"`
	Role               UserRole           `json:"role"`
	Status             UserStatus         `json:"status"`
	Preferences        Preferences        `json:"preferences"`
	PetInteractions    PetInteractions    `json:"petInteractions"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	AccountDetails     AccountDetails     `json:"accountDetails"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// CreateUserInput represents signup input
type CreateUserInput struct {
	Avatar          string          `json:"avatar"`
	FirstName       string          `json:"firstName" binding:"required"`
	LastName        string          `json:"lastName" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	PhoneNumber     string          `json:"phoneNumber"`
	Password        string          `json:"password" binding:"required,min=8"`
	Address         Address         `json:"address"`
	Preferences     Preferences     `json:"preferences"`
	PetInteractions PetInteractions `json:"petInteractions"`
}

// UpdateUserInput represents a partial profile update. A password change
// additionally requires the current password.
type UpdateUserInput struct {
	Avatar          *string          `json:"avatar"`
	FirstName       *string          `json:"firstName"`
	LastName        *string          `json:"lastName"`
	Email           *string          `json:"email"`
	PhoneNumber     *string          `json:"phoneNumber"`
	Address         *Address         `json:"address"`
	Status          *UserStatus      `json:"status"`
	Preferences     *Preferences     `json:"preferences"`
	PetInteractions *PetInteractions `json:"petInteractions"`
	Password        string           `json:"password"`
	OldPassword     string           `json:"oldPassword"`
}

// SigninInput represents signin input
type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by signin and signup.
type AuthResponse struct {
	User           *User     `json:"user"`
	Token          string    `json:"token"`
	ExpirationTime time.Time `json:"expirationTime"`
}

// DeviceInfo is the parsed client context recorded with each issued token.
type DeviceInfo struct {
	UserAgent string `json:"userAgent"`
	IP        string `json:"ip"`
}

// SignInToken is an audit record of an issued session token. The JWT itself
// is self-verifying; this record exists for auditing only and is pruned
// after fifteen days.
type SignInToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Token      string     `json:"token"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
	CreatedAt  time.Time  `json:"createdAt"`
}
