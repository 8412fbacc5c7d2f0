package cpu

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"mos6502/status"
)

// tickMsg drives the dashboard's auto-run mode: one instruction executes
// per tick, paced by DebugModel.delay.
type tickMsg struct{}

// DebugModel is a bubbletea program that drives a Cpu one instruction at a
// time, rendering eight 16-byte rows of memory starting at offset (the
// byte under the program counter is bracketed when it falls in view), the
// register/flag file, and a structured dump of the opcode about to
// execute. Left to run (the default), it advances automatically every
// delay and stops itself on BRK or once max instructions have executed;
// "q" quits early and " "/"j" single-step regardless of delay.
type DebugModel struct {
	cpu    *Cpu
	offset uint16 // base address of the fixed memory page view
	delay  time.Duration
	max    uint32 // 0 means unbounded

	prevPC  uint16
	count   uint32
	stopped bool
}

// NewDebugModel wires cpu into a debugger view. The Cpu is assumed to
// already be reset (PC loaded, registers established) by the caller. A
// delay of 0 turns off auto-advance (instructions run only on keypress)
// and a max of 0 leaves the instruction count unbounded, matching the
// reference driver's --delay/--max flags.
func NewDebugModel(cpu *Cpu, offset uint16, delay time.Duration, max uint32) DebugModel {
	return DebugModel{cpu: cpu, offset: offset, delay: delay, max: max}
}

func tick(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m DebugModel) Init() tea.Cmd {
	if m.delay > 0 {
		return tick(m.delay)
	}
	return nil
}

// atBreak reports whether the opcode under PC is BRK, the auto-run stop
// condition the reference driver checks before executing each instruction.
func (m DebugModel) atBreak() bool {
	return m.cpu.Bus.Read(m.cpu.PC) == 0x00
}

func (m DebugModel) step() (DebugModel, tea.Cmd) {
	if m.stopped || m.atBreak() || (m.max > 0 && m.count >= m.max) {
		m.stopped = true
		return m, tea.Quit
	}
	m.prevPC = m.cpu.PC
	m.cpu.ExecuteInstruction()
	m.count++
	return m, nil
}

func (m DebugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m, _ = m.step()
		}

	case tickMsg:
		next, cmd := m.step()
		if cmd != nil {
			return next, cmd
		}
		return next, tick(m.delay)
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a line, bracketing the
// byte currently under the program counter.
func (m DebugModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Bus.Read(addr)
		if addr == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m DebugModel) status() string {
	flags := m.flagLine()

	return fmt.Sprintf(`
Instructions: %d
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.count,
		m.cpu.PC,
		m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
	) + flags
}

func (m DebugModel) flagLine() string {
	bits := []bool{
		m.cpu.Status.Get(status.Negative),
		m.cpu.Status.Get(status.Overflow),
		m.cpu.Status.Get(status.Unused),
		m.cpu.Status.Get(status.Break),
		m.cpu.Status.Get(status.DecimalMode),
		m.cpu.Status.Get(status.InterruptDisable),
		m.cpu.Status.Get(status.Zero),
		m.cpu.Status.Get(status.Carry),
	}
	var s string
	for _, b := range bits {
		if b {
			s += "/ "
		} else {
			s += "  "
		}
	}
	return s
}

func (m DebugModel) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}
	base := m.offset &^ 0xF
	for i := uint16(0); i < 8; i++ {
		pages = append(pages, m.renderPage(base+i*16))
	}
	return strings.Join(pages, "\n")
}

func (m DebugModel) View() string {
	next := opcodeTable[m.cpu.Bus.Read(m.cpu.PC)]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.cpu.Disassemble(m.cpu.PC),
		spew.Sdump(next),
	)
}

// Run starts the dashboard. With delay > 0 it auto-advances one
// instruction per tick and returns once BRK is hit or max instructions
// (0 meaning unbounded) have executed; a delay of 0 waits for manual
// " "/"j" stepping instead. "q" quits early either way.
func Run(cpu *Cpu, offset uint16, delay time.Duration, max uint32) error {
	_, err := tea.NewProgram(NewDebugModel(cpu, offset, delay, max)).Run()
	return err
}
