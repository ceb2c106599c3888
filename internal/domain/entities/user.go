package entities

// User is the account record returned by the demo createUser mutation.
// It is fabricated per request and never stored.
type User struct {
	ID        string
	Confirmed bool
	Email     string
	Initials  string
}

// CreateUserInput carries the createUser mutation arguments.
type CreateUserInput struct {
	Email            string
	Initials         string
	Password         string
	// ClientMutationID is echoed back unchanged; nil when the client sent none.
	ClientMutationID *string
}

// CreateUserPayload is the createUser mutation result.
type CreateUserPayload struct {
	User             User
	ClientMutationID *string
}
