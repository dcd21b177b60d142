// Package screens holds the five screens shown by the shell and the routing table
// that maps each navigation target to its constructor.
//
// Screens only present static travel content; they hold no business logic.
package screens
