package hostsim

import "github.com/danmuck/netcode/internal/netcode"

// Game is a settable session topology.
type Game struct {
	Replay bool
	Online bool

	ReplayView *netcode.Match
	OnlineView *netcode.Match
	LocalView  *netcode.Match
}

// LANMatch returns a match on a LAN playlist.
func LANMatch() *netcode.Match {
	return &netcode.Match{Playlist: &netcode.Playlist{Name: "LAN", LAN: true}}
}

// HostingLAN is a process that owns a LAN match.
func HostingLAN() *Game {
	return &Game{LocalView: LANMatch()}
}

// JoinedLAN is a process connected to another participant's LAN match.
func JoinedLAN() *Game {
	return &Game{Online: true, OnlineView: LANMatch()}
}

func (g *Game) InReplay() bool              { return g.Replay }
func (g *Game) InOnlineGame() bool          { return g.Online }
func (g *Game) ReplayMatch() *netcode.Match { return g.ReplayView }
func (g *Game) OnlineMatch() *netcode.Match { return g.OnlineView }
func (g *Game) LocalMatch() *netcode.Match  { return g.LocalView }
