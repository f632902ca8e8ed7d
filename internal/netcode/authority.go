package netcode

import "fmt"

// Authority says whether the local process should originate replicated
// gameplay state.
type Authority int

const (
	AuthorityNone Authority = iota
	AuthorityClient
	AuthorityHost
)

func (a Authority) String() string {
	switch a {
	case AuthorityNone:
		return "none"
	case AuthorityClient:
		return "client"
	case AuthorityHost:
		return "host"
	default:
		return fmt.Sprintf("authority(%d)", int(a))
	}
}

// Playlist describes the rules of a match.
type Playlist struct {
	Name string
	LAN  bool
}

// Match is the host's view of the current session. A nil Playlist means the
// host could not resolve one.
type Match struct {
	Playlist *Playlist
}

// Game exposes the host's session topology. The Match accessors return nil
// when no such view exists.
type Game interface {
	InReplay() bool
	InOnlineGame() bool
	ReplayMatch() *Match
	OnlineMatch() *Match
	LocalMatch() *Match
}

// CurrentMatch prefers the replay view, then the online session, then the
// locally owned match.
func CurrentMatch(g Game) *Match {
	if g == nil {
		return nil
	}
	switch {
	case g.InReplay():
		return g.ReplayMatch()
	case g.InOnlineGame():
		return g.OnlineMatch()
	default:
		return g.LocalMatch()
	}
}

// ResolveAuthority derives authority from the game state at call time. Only
// LAN matches carry authority: a process connected to someone else's
// session is a Client, the owner is the Host.
func ResolveAuthority(g Game) Authority {
	m := CurrentMatch(g)
	if m == nil || m.Playlist == nil || !m.Playlist.LAN {
		return AuthorityNone
	}
	if g.InOnlineGame() {
		return AuthorityClient
	}
	return AuthorityHost
}
