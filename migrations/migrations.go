// Package migrations embeds the goose SQL migrations for every bounded context.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed leaderboard/*.sql
var files embed.FS

// Leaderboard returns the leaderboard migrations rooted at their directory.
func Leaderboard() fs.FS {
	sub, err := fs.Sub(files, "leaderboard")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory exists
	}
	return sub
}
