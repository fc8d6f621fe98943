package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields (empty email, empty password, empty entry title, ...).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password is wrong. The two cases are deliberately not
	// distinguished, so login failures cannot be used to enumerate
	// registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned by Authenticate for every failure mode:
	// missing, malformed, expired, or forged token, and tokens issued for
	// an account that no longer exists.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrMalformedStoredData is returned when a stored password hash cannot
	// be parsed. It indicates storage corruption; the handler layer maps it
	// to a generic server error and never forwards details to the client.
	ErrMalformedStoredData = errors.New("stored credential data is malformed")

	// ErrTokenCreationFailed is returned when signing a new session token
	// fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnpairedCipherUpdate is returned when an update carries
	// encrypted_password without iv or vice versa. The two always travel
	// together; writing one without the other would make the entry
	// undecryptable on the client.
	ErrUnpairedCipherUpdate = errors.New("encrypted_password and iv must be updated together")
)

// Password generator validation errors.
var (
	// ErrInvalidPasswordLength is returned for requested lengths outside
	// the 4..128 range.
	ErrInvalidPasswordLength = errors.New("length must be between 4 and 128")

	// ErrNoCharactersSelected is returned when every character class is
	// disabled.
	ErrNoCharactersSelected = errors.New("at least one character class must be selected")
)
