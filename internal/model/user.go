package model

import "time"

// User represents a demo account as stored in the `users` table. Unlike the
// listings tables this one is owned by the application: rows are created by
// /auth/signup and credentials are always bcrypt-hashed before storage.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Username     – unique login name.
//	PasswordHash – bcrypt hashed password.
//	DisplayName  – name shown in the client header.
//	CreatedAt    – timestamp of creation.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}

// Session models an entry in the `sessions` table. The session cookie holds
// a signed JWT; only the SHA-256 hash of that token is stored so stolen rows
// cannot be replayed, and logout works by stamping RevokedAt.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owner of the session.
//	TokenHash – SHA-256 hex digest of the session token.
//	ExpiresAt – expiration timestamp of the session.
//	RevokedAt – when the session was revoked (null while active).
//	CreatedAt – timestamp of creation.
type Session struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
