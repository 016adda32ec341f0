// Package cli implements the interactive Edvora terminal client: a small REPL
// over the REST API for accounts, tasks, events and statistics.
//
// Commands (not logged in): register, login, quote, health, help, exit.
// Commands (logged in): profile, avatar <file>, tasks, add, done <id>, delete <id>,
// events [YYYY-MM], stats, quote, health, logout, help, exit.
package cli
