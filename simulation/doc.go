// Package simulation replays a breach schedule against two identical
// threshold committees, one that never refreshes its shares and one that
// refreshes after every epoch, and records what an adversary holding the
// stolen shares could do at each point.
//
// The static committee is broken once t of its parties have ever been
// compromised. The proactive committee is only broken if t parties are
// compromised within the same epoch.
package simulation
