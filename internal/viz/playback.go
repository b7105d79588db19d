package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/advect/internal/export"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

// playbackModel replays a finished run: marching is one deterministic pass,
// so the live view steps through the already-filled buffers.
type playbackModel struct {
	doc   *export.Document
	title string

	step    int
	playing bool
	fps     int
	cols    int
	rows    int
}

// Playback opens a full-screen animation of the document's trajectories.
func Playback(doc *export.Document, title string, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	m := playbackModel{
		doc:     doc,
		title:   title,
		playing: true,
		fps:     fps,
		cols:    80,
		rows:    24,
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m playbackModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playbackModel) Init() tea.Cmd {
	return m.tick()
}

func (m playbackModel) lastStep() int {
	if len(m.doc.Parts) == 0 {
		return 0
	}
	return len(m.doc.Parts[0].X)
}

func (m playbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.step = 0
			m.playing = true
		case "right", "l":
			m.playing = false
			if m.step < m.lastStep() {
				m.step++
			}
		case "left", "h":
			m.playing = false
			if m.step > 0 {
				m.step--
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.cols = msg.Width - 4
		m.rows = msg.Height - 5
		if m.cols < 10 {
			m.cols = 10
		}
		if m.rows < 5 {
			m.rows = 5
		}
		return m, nil

	case tickMsg:
		if m.playing {
			if m.step < m.lastStep() {
				m.step++
			} else {
				m.playing = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m playbackModel) View() string {
	canvas := DrawTrajectories(m.doc, m.cols, m.rows, m.step)

	state := "paused"
	if m.playing {
		state = "playing"
	}
	t := 0.0
	if m.step > 0 && m.step-1 < len(m.doc.T) {
		t = m.doc.T[m.step-1]
	}
	status := statusStyle.Render(fmt.Sprintf(
		"%s  step %d/%d  t=%.2f  [space] pause  [←/→] step  [r] restart  [q] quit",
		state, m.step, m.lastStep(), t,
	))

	return titleStyle.Render(m.title) + "\n" +
		frameStyle.Render(canvas.String()) + "\n" +
		status
}
