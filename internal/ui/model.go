// ABOUTME: Bubbletea model for the playback TUI
// ABOUTME: Maps keys to engine actions and ticks the fade clock
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
	"github.com/Cadenza-Audio/cadenza-go/pkg/cadenza"
)

// Player is the engine surface the TUI drives.
type Player interface {
	PlayMusic(path string) error
	PlaySoundEffect(path string) error
	FadeInMusic(path string, loops, ms int) error
	FadeOutMusic(ms int)
	OperateCurrentMusic(action cadenza.Action)
	OperateCurrentSounds(action cadenza.Action)
	SetMusicVolume(volume int)
	GetMusicVolume() int
	MusicType(path string) audio.FileFormat
	IsMusicPlaying() bool
	IsMusicPaused() bool
	IsMusicFading() bool
	Tick()
}

// Model represents the TUI state
type Model struct {
	player   Player
	tickRate int

	// Playlist
	tracks  []string
	current int

	// Playback
	muted     bool
	lastErr   error
	statusMsg string

	// Debug
	showDebug bool
	ticks     int64

	// Dimensions
	width  int
	height int
}

// NewModel creates a new TUI model over player. tracks must be non-empty.
func NewModel(player Player, tracks []string, tickRate int) Model {
	return Model{
		player:   player,
		tickRate: tickRate,
		tracks:   tracks,
	}
}

// tickMsg drives the engine's fixed-step clock.
type tickMsg time.Time

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.tickRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts playback of the first track and the tick loop
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.player.Tick()
		m.ticks++
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := ""
	s += m.renderHeader()
	s += m.renderTrack()
	s += m.renderControls()

	if m.showDebug {
		s += m.renderDebug()
	}

	s += m.renderHelp()

	return s
}

// renderHeader renders playback state
func (m Model) renderHeader() string {
	state := "Stopped"
	switch {
	case m.player.IsMusicFading():
		state = "Fading"
	case m.player.IsMusicPlaying():
		state = "Playing"
	case m.player.IsMusicPaused():
		state = "Paused"
	}

	return fmt.Sprintf(`┌─ Cadenza Player ─────────────────────────────────────┐
│ State: %-46s │
├──────────────────────────────────────────────────────┤
`, state)
}

// renderTrack renders the current track and format
func (m Model) renderTrack() string {
	if len(m.tracks) == 0 {
		return "│ No tracks                                            │\n"
	}

	path := m.tracks[m.current]
	format := m.player.MusicType(path)

	s := fmt.Sprintf("│ Track %d/%d: %-41s │\n",
		m.current+1, len(m.tracks), truncate(path, 41))
	s += fmt.Sprintf("│ Format: %-45s │\n", format)
	return s
}

// renderControls renders the volume bar and status line
func (m Model) renderControls() string {
	volume := m.player.GetMusicVolume()
	muteIcon := ""
	if m.muted {
		muteIcon = " (muted)"
	}

	status := m.statusMsg
	if m.lastErr != nil {
		status = "error: " + m.lastErr.Error()
	}

	return fmt.Sprintf("│ Volume: [%s] %3d%%%s%-26s │\n"+
		"│ %-52s │\n",
		renderBar(volume, 100, 10), volume, muteIcon, "",
		truncate(status, 52))
}

// renderDebug renders debug information
func (m Model) renderDebug() string {
	return fmt.Sprintf(`│ DEBUG:                                               │
│   Ticks: %-43d │
│   Fading: %-42v │
`, m.ticks, m.player.IsMusicFading())
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ space:Play/Pause  n:Next  r:Replay  s:Stop  l:Loop   │
│ ↑/↓:Volume  m:Mute  i:FadeIn  o:FadeOut  e:Effect    │
│ d:Debug  q:Quit                                      │
└──────────────────────────────────────────────────────┘
`
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.player.IsMusicPaused() {
			m.player.OperateCurrentMusic(cadenza.ActionResume)
			m.statusMsg = "resumed"
		} else if m.player.IsMusicPlaying() {
			m.player.OperateCurrentMusic(cadenza.ActionPause)
			m.statusMsg = "paused"
		} else {
			m.lastErr = m.player.PlayMusic(m.currentTrack())
			m.statusMsg = "playing " + m.currentTrack()
		}
	case "n":
		if len(m.tracks) > 0 {
			m.current = (m.current + 1) % len(m.tracks)
			m.lastErr = m.player.PlayMusic(m.currentTrack())
			m.statusMsg = "playing " + m.currentTrack()
		}
	case "r":
		m.player.OperateCurrentMusic(cadenza.ActionReplay)
	case "s":
		m.player.OperateCurrentMusic(cadenza.ActionStop)
		m.statusMsg = "stopped"
	case "l":
		m.player.OperateCurrentMusic(cadenza.ActionLoop)
		m.statusMsg = "looping"
	case "up":
		m.player.OperateCurrentMusic(cadenza.ActionVolumeUp)
	case "down":
		m.player.OperateCurrentMusic(cadenza.ActionVolumeDown)
	case "m":
		if m.muted {
			m.player.OperateCurrentMusic(cadenza.ActionUnmute)
		} else {
			m.player.OperateCurrentMusic(cadenza.ActionMute)
		}
		m.muted = !m.muted
	case "i":
		m.lastErr = m.player.FadeInMusic(m.currentTrack(), cadenza.LoopInfinite, 2000)
		m.statusMsg = "fading in"
	case "o":
		m.player.FadeOutMusic(2000)
		m.statusMsg = "fading out"
	case "e":
		m.lastErr = m.player.PlaySoundEffect(m.currentTrack())
		m.statusMsg = "effect spawned"
	case "d":
		m.showDebug = !m.showDebug
	}

	return m, nil
}

func (m Model) currentTrack() string {
	if len(m.tracks) == 0 {
		return ""
	}
	return m.tracks[m.current]
}

// Utility functions
func renderBar(value, max, width int) string {
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
