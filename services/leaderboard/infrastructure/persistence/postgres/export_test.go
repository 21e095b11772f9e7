package postgres

// NewTestDatabase exposes the shared integration database to external test
// packages that wire the repositories into the application services.
var NewTestDatabase = newTestDatabase
