// Package cookalong provides a voice-assistant skill that searches a recipe
// site, lets the user pick a result and then reads the instructions back one
// step at a time across independent, stateless turns.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, redis/, goquery/).
package cookalong
